/*
validate.go - New-entry validation

PURPOSE:
  Checks a candidate expense before it is admitted to the store. The
  validator has no side effects: the caller appends an accepted record and
  surfaces a rejection reason to the user.

RULES:
  1. The amount text must parse as a decimal number. Unparsable text is
     treated as zero (the entry form convention) but reported under its own
     reason so the user is told the input was not a number rather than that
     zero is too small.
  2. The parsed amount must be strictly greater than zero.
  3. The date must not be in the future. The original form only constrained
     this at the picker widget; here the validator enforces it as well, so
     the rule holds even for callers without a constrained picker.
  4. The category must be a member of the closed set. This keeps the store
     invariant that no record ever carries the "All" wildcard.

SEE ALSO:
  - store.go: The append path that consumes accepted outcomes
*/
package expense

// =============================================================================
// REJECTION REASONS
// =============================================================================

type RejectReason string

const (
	RejectNotANumber      RejectReason = "not a number"
	RejectNonPositive     RejectReason = "amount must be greater than zero"
	RejectFutureDate      RejectReason = "date is in the future"
	RejectUnknownCategory RejectReason = "unknown category"
)

// =============================================================================
// OUTCOME
// =============================================================================

// Outcome is the result of validating one candidate entry. Exactly one of
// the two arms is meaningful: an accepted outcome carries the record to
// append, a rejected one carries the reason to show the user.
type Outcome struct {
	Accepted bool
	Record   Record       // set when Accepted
	Reason   RejectReason // set when rejected
	Amount   Amount       // the parsed amount (zero when unparsable)
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks a candidate entry against today's date.
func Validate(amountText string, date TimePoint, category Category) Outcome {
	return ValidateAt(amountText, date, category, Today())
}

// ValidateAt is Validate with an explicit "now" for deterministic tests.
func ValidateAt(amountText string, date TimePoint, category Category, now TimePoint) Outcome {
	amount, ok := ParseAmount(amountText)
	if !ok {
		return Outcome{Reason: RejectNotANumber, Amount: ZeroAmount()}
	}
	if !amount.IsPositive() {
		return Outcome{Reason: RejectNonPositive, Amount: amount}
	}
	if date.After(now) {
		return Outcome{Reason: RejectFutureDate, Amount: amount}
	}
	if !category.Known() {
		return Outcome{Reason: RejectUnknownCategory, Amount: amount}
	}
	return Outcome{
		Accepted: true,
		Amount:   amount,
		Record:   Record{Amount: amount, Date: date, Category: category},
	}
}
