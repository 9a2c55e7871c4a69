/*
handlers.go - HTTP handlers for the expense report

PURPOSE:
  Exposes the expense query engine over REST. Handles request parsing and
  JSON serialization, then delegates to the engine; every query-parameter
  change from a client maps to one Evaluate call and every form submission
  to one Validate call.

ENDPOINTS:
  GET  /api/expenses      Evaluate the report for the given query params
  POST /api/expenses      Validate and append a new expense
  GET  /api/categories    Filter picker options (labels + "All")
  GET  /api/ranges        Range picker options + date-picker bounds
  GET  /api/groupings     Grouping picker options
  POST /api/demo          Reset the store and load the demo dataset

QUERY PARAMETERS (GET /api/expenses):
  category  Picker label; "All" or unknown means no filter
  range     day | week | month | year | custom (default: day)
  start,end Custom interval, "2006-01-02"; missing or unparsable fields
            fall back to the custom-picker defaults
  group     date | amount | category (default: category)

ERROR HANDLING:
  Query anomalies never fail: an unknown category keeps all rows, an
  inverted custom interval yields an empty report. Form submissions are the
  only 400s, and they carry the validator's rejection reason so the client
  can render the alert.

SEE ALSO:
  - dto.go: Request/response data structures
  - demo.go: Demo dataset loader
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/warp/expense-engine/expense"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds the handlers' single dependency: the expense store.
type Handler struct {
	Store expense.Store
}

func NewHandler(store expense.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// REPORT HANDLERS
// =============================================================================

// GetReport evaluates the report for the query parameters.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read expenses", err)
		return
	}

	q := queryFromRequest(r)
	writeJSON(w, http.StatusOK, toReportDTO(expense.Evaluate(records, q)))
}

// queryFromRequest builds an engine query from URL parameters. Malformed
// parameters degrade to defaults rather than erroring, matching the
// engine's own resilience contract.
func queryFromRequest(r *http.Request) expense.Query {
	params := r.URL.Query()

	selector, ok := expense.ParseRangeSelector(params.Get("range"))
	if !ok {
		selector = expense.RangeDay
	}

	q := expense.Query{
		CategoryLabel: params.Get("category"),
		Range:         selector,
		GroupBy:       expense.ParseGroupingKey(params.Get("group")),
	}

	if selector == expense.RangeCustom {
		q.Custom = customPeriod(params.Get("start"), params.Get("end"))
	}
	return q
}

// customPeriod parses the custom interval, falling back to the picker
// defaults for missing or unparsable bounds. An inverted interval is passed
// through verbatim; the engine answers it with an empty report.
func customPeriod(startText, endText string) expense.Period {
	defaults := expense.CustomDefaults(expense.Today())
	p := defaults
	if start, err := expense.ParseDate(startText); err == nil {
		p.Start = start
	}
	if end, err := expense.ParseDate(endText); err == nil {
		p.End = end
	}
	return p
}

// SubmitExpense validates the entry form and appends the record on success.
func (h *Handler) SubmitExpense(w http.ResponseWriter, r *http.Request) {
	var req SubmitExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	date, err := expense.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	category, _ := expense.ResolveCategory(req.Category)
	outcome := expense.Validate(req.Amount, date, category)
	if !outcome.Accepted {
		// The alert contract: the client shows the reason and the user
		// must acknowledge before retrying. Nothing is appended.
		writeJSON(w, http.StatusBadRequest, RejectionDTO{
			Error:  "Invalid",
			Reason: string(outcome.Reason),
		})
		return
	}

	if err := h.Store.Append(r.Context(), outcome.Record); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record expense", err)
		return
	}
	writeJSON(w, http.StatusCreated, toRowDTO(outcome.Record))
}

// =============================================================================
// PICKER HANDLERS
// =============================================================================

// ListCategories returns the filter picker options, wildcard included.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	labels := expense.FilterOptions()
	options := make([]OptionDTO, len(labels))
	for i, label := range labels {
		options[i] = OptionDTO{ID: label, Label: label}
	}
	writeJSON(w, http.StatusOK, options)
}

// ListRanges returns the range picker options and the date bounds clients
// use to constrain their pickers: custom defaults for the range picker and
// today as the ceiling for the entry form's date picker.
func (h *Handler) ListRanges(w http.ResponseWriter, r *http.Request) {
	selectors := expense.RangeSelectors()
	options := make([]OptionDTO, len(selectors))
	for i, s := range selectors {
		options[i] = OptionDTO{ID: string(s), Label: s.Label()}
	}

	today := expense.Today()
	defaults := expense.CustomDefaults(today)
	writeJSON(w, http.StatusOK, RangeOptionsDTO{
		Options:      options,
		DefaultStart: defaults.Start.String(),
		DefaultEnd:   defaults.End.String(),
		MaxDate:      today.String(),
	})
}

// ListGroupings returns the grouping picker options.
func (h *Handler) ListGroupings(w http.ResponseWriter, r *http.Request) {
	keys := expense.GroupingKeys()
	options := make([]OptionDTO, len(keys))
	for i, k := range keys {
		options[i] = OptionDTO{ID: string(k), Label: groupingLabel(k)}
	}
	writeJSON(w, http.StatusOK, options)
}

func groupingLabel(k expense.GroupingKey) string {
	switch k {
	case expense.GroupByDate:
		return "Date"
	case expense.GroupByAmount:
		return "Amount"
	default:
		return "Category"
	}
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := RejectionDTO{Error: message}
	if err != nil {
		resp.Reason = err.Error()
	}
	writeJSON(w, status, resp)
}
