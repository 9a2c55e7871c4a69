/*
query.go - Query evaluation: filter, sort, total

PURPOSE:
  Turns the full set of recorded expenses plus the user's query parameters
  into a display-ready result: a filtered, sorted row list and the sum of
  its amounts.

ALGORITHM (in order):
  1. Category filter: a resolvable label keeps only matching records;
     "All" or an unknown label keeps everything.
  2. Date filter: custom queries use the caller interval verbatim, others
     resolve the selector against the anchor. Bounds are inclusive.
  3. Stable sort by grouping key (amount asc, date asc, or category label
     lexicographic). Ties keep store insertion order.
  4. Total: decimal sum of the surviving amounts; zero when empty.

PURITY:
  Evaluate has no side effects and is idempotent: the same records and
  query always produce the same rows and total. Rows are a fresh slice and
  never alias the caller's.

DEGRADATION:
  There are no error conditions. An unknown category label means no filter;
  an inverted custom interval means an empty result; a degenerate anchor
  falls back per Resolve. A malformed query yields an empty or unfiltered
  report, never a failure.

SEE ALSO:
  - daterange.go: Period resolution
  - category.go: FilterFor semantics
*/
package expense

import "sort"

// =============================================================================
// QUERY - What the caller wants to see
// =============================================================================

type GroupingKey string

const (
	GroupByDate     GroupingKey = "date"
	GroupByAmount   GroupingKey = "amount"
	GroupByCategory GroupingKey = "category"
)

// GroupingKeys returns the grouping choices in picker order.
func GroupingKeys() []GroupingKey {
	return []GroupingKey{GroupByCategory, GroupByDate, GroupByAmount}
}

// ParseGroupingKey maps an identifier to a GroupingKey. Unrecognized input
// degrades to the category grouping, the report's default.
func ParseGroupingKey(s string) GroupingKey {
	switch GroupingKey(s) {
	case GroupByDate:
		return GroupByDate
	case GroupByAmount:
		return GroupByAmount
	default:
		return GroupByCategory
	}
}

// Query describes one evaluation request. It is transient: rebuilt on every
// picker change, never persisted.
type Query struct {
	// CategoryLabel is the raw label reported by the filter picker. "All"
	// and unrecognized labels both mean no category filter.
	CategoryLabel string

	// Range selects the date interval. When Range is RangeCustom the
	// Custom interval is used verbatim.
	Range  RangeSelector
	Custom Period

	GroupBy GroupingKey
}

// Result is the display-ready outcome of one evaluation.
type Result struct {
	Rows  []Record
	Total Amount
}

// =============================================================================
// EVALUATION
// =============================================================================

// Evaluate runs the query against the records with today as the anchor for
// relative ranges.
func Evaluate(records []Record, q Query) Result {
	return EvaluateAt(records, q, Today())
}

// EvaluateAt is Evaluate with an explicit anchor, which keeps relative
// ranges deterministic under test.
func EvaluateAt(records []Record, q Query, anchor TimePoint) Result {
	filter := FilterFor(q.CategoryLabel)

	period := q.Custom
	if q.Range != RangeCustom {
		period = Resolve(q.Range, anchor)
	}

	rows := make([]Record, 0, len(records))
	for _, r := range records {
		if filter.Matches(r.Category) && period.Contains(r.Date) {
			rows = append(rows, r)
		}
	}

	sortRows(rows, q.GroupBy)

	total := ZeroAmount()
	for _, r := range rows {
		total = total.Add(r.Amount)
	}
	return Result{Rows: rows, Total: total}
}

// sortRows orders rows by the grouping key. The sort is stable so records
// with equal keys keep their store insertion order. Sorting by category
// label makes equal-category rows contiguous, which is the only grouping
// the report does: there is no bucketed group-by or per-group subtotal,
// and that is intentional.
func sortRows(rows []Record, key GroupingKey) {
	switch key {
	case GroupByAmount:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Amount.LessThan(rows[j].Amount)
		})
	case GroupByDate:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Date.Before(rows[j].Date)
		})
	case GroupByCategory:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Category.Label() < rows[j].Category.Label()
		})
	}
}
