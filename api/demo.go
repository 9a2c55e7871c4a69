/*
demo.go - Demo dataset loader

PURPOSE:
  Populates the store with the sample expenses the report historically
  showed on first launch: ten entries spread across the three categories
  and across the past year, so every range selector has something to show.

HOW IT WORKS:
 1. Reset the store (clear all records)
 2. Append the sample records, dated relative to today

USAGE VIA API:

	POST /api/demo

NOTE:

	Loading the demo resets the store. Only use in development/demo
	environments.

SEE ALSO:
  - handlers.go: LoadDemo handler registration
*/
package api

import (
	"context"
	"net/http"

	"github.com/warp/expense-engine/expense"
)

// =============================================================================
// DEMO DATASET
// =============================================================================

// demoRecords returns the sample expenses, dated relative to the anchor.
func demoRecords(anchor expense.TimePoint) []expense.Record {
	entry := func(amount float64, daysAgo int, category expense.Category) expense.Record {
		return expense.Record{
			Amount:   expense.NewAmount(amount),
			Date:     anchor.AddDays(-daysAgo),
			Category: category,
		}
	}

	return []expense.Record{
		entry(40.31, 0, expense.CategoryTransportation),
		entry(34.08, 0, expense.CategoryFood),
		entry(123.45, 10, expense.CategoryEntertainment),
		entry(23.95, 5, expense.CategoryFood),
		entry(55.43, 50, expense.CategoryEntertainment),
		entry(105.49, 3, expense.CategoryTransportation),
		entry(99.05, 405, expense.CategoryFood),
		entry(1200.00, 20, expense.CategoryTransportation),
		entry(38.42, 100, expense.CategoryFood),
		entry(43.36, 14, expense.CategoryFood),
	}
}

// LoadDemoData resets the store and loads the demo dataset.
func LoadDemoData(ctx context.Context, store expense.Store) error {
	if err := store.Reset(ctx); err != nil {
		return err
	}
	for _, r := range demoRecords(expense.Today()) {
		if err := store.Append(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

// LoadDemo handles POST /api/demo.
func (h *Handler) LoadDemo(w http.ResponseWriter, r *http.Request) {
	if err := LoadDemoData(r.Context(), h.Store); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load demo data", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"loaded": len(demoRecords(expense.Today())),
	})
}
