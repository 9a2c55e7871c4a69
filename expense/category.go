/*
category.go - Closed category set and filter selection

PURPOSE:
  Defines the fixed set of spending categories, their display labels, and
  the lookup used when a picker reports the chosen label as plain text.

WILDCARD:
  "All" is a filter-selection value only. It appears in FilterOptions so a
  picker can offer it, but it is never a Category and is never stored on a
  record. The stored-record type and the filter-selection type are kept
  separate so the two cannot be conflated.

NOT-FOUND SEMANTICS:
  ResolveCategory on an unrecognized label reports not-found. The query
  engine treats not-found as "no category filter", never as an error.

SEE ALSO:
  - query.go: FilterFor and how the filter drives Evaluate
*/
package expense

// =============================================================================
// CATEGORY - Closed set of spending categories
// =============================================================================

type Category string

const (
	CategoryFood           Category = "Food"
	CategoryEntertainment  Category = "Entertainment"
	CategoryTransportation Category = "Transportation"
)

// FilterAll is the wildcard label offered by filter pickers. It is not a
// member of the category set and is never stored on a record.
const FilterAll = "All"

// Categories returns the closed set in stable declaration order.
func Categories() []Category {
	return []Category{CategoryFood, CategoryEntertainment, CategoryTransportation}
}

// Label returns the human-readable display string for the category.
func (c Category) Label() string { return string(c) }

// Known reports whether the category is a member of the closed set.
func (c Category) Known() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ResolveCategory maps a display label back to a Category. The boolean is
// false when the label is unrecognized (including the "All" wildcard).
func ResolveCategory(label string) (Category, bool) {
	c := Category(label)
	if c.Known() {
		return c, true
	}
	return "", false
}

// FilterOptions returns the display labels for a filter picker: every
// category label plus the "All" wildcard.
func FilterOptions() []string {
	options := make([]string, 0, len(Categories())+1)
	for _, c := range Categories() {
		options = append(options, c.Label())
	}
	return append(options, FilterAll)
}

// =============================================================================
// CATEGORY FILTER - Selection type for queries
// =============================================================================

// CategoryFilter is either a specific category or no filter at all. It is a
// separate type from Category so the wildcard never leaks into stored data.
type CategoryFilter struct {
	category Category
	active   bool
}

// FilterFor builds the filter selection for a picker label. The "All"
// wildcard and any unrecognized label both produce the no-filter arm.
func FilterFor(label string) CategoryFilter {
	if c, ok := ResolveCategory(label); ok {
		return CategoryFilter{category: c, active: true}
	}
	return CategoryFilter{}
}

// Matches reports whether a record with the given category passes the filter.
func (f CategoryFilter) Matches(c Category) bool {
	return !f.active || f.category == c
}
