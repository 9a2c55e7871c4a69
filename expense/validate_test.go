package expense_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/expense-engine/expense"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func validateToday(t *testing.T, amountText string, category expense.Category) expense.Outcome {
	t.Helper()
	return expense.ValidateAt(amountText, anchor(), category, anchor())
}

// =============================================================================
// ACCEPTANCE TESTS
// =============================================================================

func TestValidate_PositiveAmount_Accepted(t *testing.T) {
	outcome := validateToday(t, "34.08", expense.CategoryFood)

	require.True(t, outcome.Accepted)
	assert.True(t, outcome.Record.Amount.Equal(expense.NewAmount(34.08)))
	assert.Equal(t, expense.CategoryFood, outcome.Record.Category)
	assert.True(t, outcome.Record.Date.Equal(anchor()))
	assert.True(t, outcome.Record.Valid())
}

func TestValidate_PastDate_Accepted(t *testing.T) {
	outcome := expense.ValidateAt("12.50", anchor().AddDays(-30), expense.CategoryEntertainment, anchor())

	require.True(t, outcome.Accepted)
	assert.True(t, outcome.Record.Date.Before(anchor()))
}

// =============================================================================
// REJECTION TESTS
// =============================================================================

func TestValidate_ZeroAmount_Rejected(t *testing.T) {
	outcome := validateToday(t, "0", expense.CategoryFood)

	require.False(t, outcome.Accepted)
	assert.Equal(t, expense.RejectNonPositive, outcome.Reason)
}

func TestValidate_NegativeAmount_Rejected(t *testing.T) {
	outcome := validateToday(t, "-5", expense.CategoryFood)

	require.False(t, outcome.Accepted)
	assert.Equal(t, expense.RejectNonPositive, outcome.Reason)
}

func TestValidate_UnparsableAmount_RejectedAsZero(t *testing.T) {
	// Unparsable text is reported under its own reason but still counts as
	// a zero amount, the entry form convention.
	outcome := validateToday(t, "abc", expense.CategoryFood)

	require.False(t, outcome.Accepted)
	assert.Equal(t, expense.RejectNotANumber, outcome.Reason)
	assert.True(t, outcome.Amount.IsZero())
}

func TestValidate_FutureDate_Rejected(t *testing.T) {
	outcome := expense.ValidateAt("10", anchor().AddDays(1), expense.CategoryFood, anchor())

	require.False(t, outcome.Accepted)
	assert.Equal(t, expense.RejectFutureDate, outcome.Reason)
}

func TestValidate_WildcardCategory_Rejected(t *testing.T) {
	// "All" is a filter value, never a storable category.
	outcome := validateToday(t, "10", expense.Category(expense.FilterAll))

	require.False(t, outcome.Accepted)
	assert.Equal(t, expense.RejectUnknownCategory, outcome.Reason)
}

func TestValidate_Rejection_HasNoRecord(t *testing.T) {
	// A rejected outcome must never carry an appendable record.
	outcome := validateToday(t, "-1", expense.CategoryFood)

	require.False(t, outcome.Accepted)
	assert.False(t, outcome.Record.Valid())
}

// =============================================================================
// AMOUNT PARSING
// =============================================================================

func TestParseAmount(t *testing.T) {
	a, ok := expense.ParseAmount("123.45")
	require.True(t, ok)
	assert.Equal(t, "123.45", a.String())

	zero, ok := expense.ParseAmount("not a number")
	assert.False(t, ok)
	assert.True(t, zero.IsZero())
}

func TestAmount_String_TwoDecimals(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1200, "1200.00"},
		{34.08, "34.08"},
		{0.5, "0.50"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, expense.NewAmount(tc.in).String())
	}
}
