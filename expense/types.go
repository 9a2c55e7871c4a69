/*
Package expense provides the core expense query engine.

PURPOSE:
  This package contains the domain types and algorithms behind an expense
  report: filtering recorded expenses by category and date range, sorting
  them for display, summing their amounts, and validating new entries
  before they are admitted to the store.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A monetary quantity backed by decimal arithmetic
  - Record: An immutable expense entry (amount, date, category)

DESIGN PRINCIPLES:
  1. Immutability: Records are never modified after creation
  2. Precision: Uses decimal.Decimal to avoid floating-point drift in totals
  3. Purity: Evaluate and Resolve are side-effect-free functions; the only
     mutation in the package is Store.Append
  4. Resilience: A malformed query degrades to a safe default, never an error

USAGE:
  amount, _ := expense.ParseAmount("34.08")
  rec := expense.Record{Amount: amount, Date: expense.Today(), Category: expense.CategoryFood}

SEE ALSO:
  - category.go: Closed category set and filter selection
  - daterange.go: Relative range selectors and period resolution
  - query.go: Query evaluation (filter, sort, total)
  - validate.go: New-entry validation
*/
package expense

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Monetary quantity
// =============================================================================

type Amount struct {
	Value decimal.Decimal
}

func NewAmount(value float64) Amount {
	return Amount{Value: decimal.NewFromFloat(value)}
}

// ParseAmount parses a decimal string. The boolean reports whether the text
// was a valid number; on failure the returned amount is zero, matching the
// entry form convention that unparsable input counts as zero.
func ParseAmount(s string) (Amount, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ZeroAmount(), false
	}
	return Amount{Value: d}, true
}

func ZeroAmount() Amount { return Amount{Value: decimal.Zero} }

func (a Amount) Add(b Amount) Amount      { return Amount{Value: a.Value.Add(b.Value)} }
func (a Amount) IsPositive() bool         { return a.Value.IsPositive() }
func (a Amount) IsZero() bool             { return a.Value.IsZero() }
func (a Amount) Equal(b Amount) bool      { return a.Value.Equal(b.Value) }
func (a Amount) LessThan(b Amount) bool   { return a.Value.LessThan(b.Value) }

// String renders the amount with two decimal places, the display convention
// for dollar totals.
func (a Amount) String() string { return a.Value.StringFixed(2) }

// =============================================================================
// RECORD - Immutable expense entry
// =============================================================================

// Record is a single recorded expense. Identity is by value: two records
// with identical fields are interchangeable for display. Records are created
// exclusively through the Validate -> Store.Append path and never mutated.
type Record struct {
	Amount   Amount
	Date     TimePoint
	Category Category
}

// Valid reports whether the record satisfies the store invariants: a
// strictly positive amount and a category from the closed set (never the
// "All" filter wildcard).
func (r Record) Valid() bool {
	return r.Amount.IsPositive() && r.Category.Known()
}
