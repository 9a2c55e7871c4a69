package expense

// =============================================================================
// RANGE SELECTOR - Relative date-range choices offered by the picker
// =============================================================================

type RangeSelector string

const (
	RangeDay    RangeSelector = "day"
	RangeWeek   RangeSelector = "week"
	RangeMonth  RangeSelector = "month"
	RangeYear   RangeSelector = "year"
	RangeCustom RangeSelector = "custom"
)

// RangeSelectors returns all selectors in picker order.
func RangeSelectors() []RangeSelector {
	return []RangeSelector{RangeDay, RangeWeek, RangeMonth, RangeYear, RangeCustom}
}

// Label returns the display string for the range picker.
func (r RangeSelector) Label() string {
	switch r {
	case RangeDay:
		return "Today"
	case RangeWeek:
		return "Past week"
	case RangeMonth:
		return "Past month"
	case RangeYear:
		return "Past year"
	case RangeCustom:
		return "Custom"
	default:
		return string(r)
	}
}

// ParseRangeSelector maps a selector identifier back to a RangeSelector.
// The boolean is false for unrecognized input.
func ParseRangeSelector(s string) (RangeSelector, bool) {
	for _, r := range RangeSelectors() {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// =============================================================================
// PERIOD - Concrete [start, end] interval, inclusive on both ends
// =============================================================================

type Period struct {
	Start TimePoint
	End   TimePoint
}

// Contains returns true if the time point is within [Start, End].
func (p Period) Contains(tp TimePoint) bool {
	return tp.AfterOrEqual(p.Start) && tp.BeforeOrEqual(p.End)
}

// Inverted reports whether Start is after End. An inverted period contains
// nothing; the query engine yields an empty result rather than an error.
func (p Period) Inverted() bool {
	return p.Start.After(p.End)
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

// =============================================================================
// RESOLVER - Relative selector + anchor -> concrete period
// =============================================================================

// Resolve maps a relative range selector and an anchor date to a concrete
// period ending at the anchor:
//
//	day:   [anchor - 1 day,  anchor]
//	week:  [anchor - 7 days, anchor]
//	month: [anchor - 1 calendar month, anchor]
//	year:  [anchor - 1 calendar year,  anchor]
//
// Month and year steps use calendar arithmetic that clamps to the nearest
// valid prior day, so resolving a month back from Mar 31 lands on the last
// day of February. For custom the caller supplies the interval verbatim;
// Resolve returns the picker defaults (see CustomDefaults).
//
// Resolve never fails: if arithmetic produces a start past the anchor or an
// unrepresentable date, the anchor itself is used as the start. A refresh
// must never crash on a degenerate anchor.
func Resolve(selector RangeSelector, anchor TimePoint) Period {
	var start TimePoint
	switch selector {
	case RangeDay:
		start = anchor.AddDays(-1)
	case RangeWeek:
		start = anchor.AddDays(-7)
	case RangeMonth:
		start = anchor.AddMonths(-1)
	case RangeYear:
		start = anchor.AddYears(-1)
	case RangeCustom:
		return CustomDefaults(anchor)
	default:
		start = anchor
	}
	if start.IsZero() || start.After(anchor) {
		start = anchor
	}
	return Period{Start: start, End: anchor}
}

// CustomDefaults returns sane initial bounds for a custom-range picker:
// end = anchor, start = the day before.
func CustomDefaults(anchor TimePoint) Period {
	return Period{Start: anchor.AddDays(-1), End: anchor}
}
