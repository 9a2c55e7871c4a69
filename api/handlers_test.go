/*
handlers_test.go - Unit tests for API handlers

Tests for:
- Report evaluation (GetReport) and its query-parameter degradation
- Entry submission (SubmitExpense) and the rejection/alert contract
- Picker option endpoints
- Demo dataset loading
*/
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/warp/expense-engine/expense"
	"github.com/warp/expense-engine/expense/store"
)

func newTestRouter() (http.Handler, *store.Memory) {
	s := store.NewMemory()
	return NewRouter(NewHandler(s), []string{"http://localhost:8080"}), s
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil && rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec
}

func TestSubmitExpense_ThenReport(t *testing.T) {
	// GIVEN: An empty store
	// WHEN: Submitting a valid expense and evaluating the report
	// THEN: The report shows the row and the matching total

	router, _ := newTestRouter()

	today := expense.Today().String()
	var row ExpenseRowDTO
	rec := doJSON(t, router, http.MethodPost, "/api/expenses", SubmitExpenseRequest{
		Amount:   "34.08",
		Date:     today,
		Category: "Food",
	}, &row)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if row.Amount != "34.08" || row.Category != "Food" {
		t.Errorf("unexpected row DTO: %+v", row)
	}

	var report ReportDTO
	rec = doJSON(t, router, http.MethodGet, "/api/expenses?range=week&group=category&category=All", nil, &report)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if report.Count != 1 || report.Total != "34.08" {
		t.Errorf("expected one row totalling 34.08, got %+v", report)
	}
}

func TestSubmitExpense_NonPositive_RejectedWithReason(t *testing.T) {
	// GIVEN: An entry form submission with a zero amount
	// WHEN: Submitting
	// THEN: 400 with the alert reason, and nothing is appended

	router, s := newTestRouter()

	var rejection RejectionDTO
	rec := doJSON(t, router, http.MethodPost, "/api/expenses", SubmitExpenseRequest{
		Amount:   "0",
		Date:     expense.Today().String(),
		Category: "Food",
	}, &rejection)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rejection.Reason != string(expense.RejectNonPositive) {
		t.Errorf("expected reason %q, got %q", expense.RejectNonPositive, rejection.Reason)
	}

	records, _ := s.Snapshot(context.Background())
	if len(records) != 0 {
		t.Errorf("rejected submission must not append; store has %d records", len(records))
	}
}

func TestSubmitExpense_UnparsableAmount_Rejected(t *testing.T) {
	router, _ := newTestRouter()

	var rejection RejectionDTO
	rec := doJSON(t, router, http.MethodPost, "/api/expenses", SubmitExpenseRequest{
		Amount:   "abc",
		Date:     expense.Today().String(),
		Category: "Food",
	}, &rejection)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rejection.Reason != string(expense.RejectNotANumber) {
		t.Errorf("expected reason %q, got %q", expense.RejectNotANumber, rejection.Reason)
	}
}

func TestGetReport_UnknownCategoryParam_KeepsAllRows(t *testing.T) {
	// GIVEN: A seeded store
	// WHEN: Querying with a category label the registry does not know
	// THEN: The report is unfiltered rather than an error

	router, s := newTestRouter()
	if err := LoadDemoData(context.Background(), s); err != nil {
		t.Fatalf("Failed to seed store: %v", err)
	}

	var all, unknown ReportDTO
	doJSON(t, router, http.MethodGet, "/api/expenses?range=year&category=All", nil, &all)
	doJSON(t, router, http.MethodGet, "/api/expenses?range=year&category=Groceries", nil, &unknown)

	if all.Count == 0 {
		t.Fatal("expected demo rows in the past year")
	}
	if all.Count != unknown.Count {
		t.Errorf("unknown category filtered rows: %d vs %d", unknown.Count, all.Count)
	}
}

func TestGetReport_InvertedCustomInterval_EmptyReport(t *testing.T) {
	router, s := newTestRouter()
	if err := LoadDemoData(context.Background(), s); err != nil {
		t.Fatalf("Failed to seed store: %v", err)
	}

	start := expense.Today().String()
	end := expense.Today().AddDays(-10).String()
	var report ReportDTO
	rec := doJSON(t, router, http.MethodGet,
		"/api/expenses?range=custom&start="+start+"&end="+end, nil, &report)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for an inverted interval, got %d", rec.Code)
	}
	if report.Count != 0 || report.Total != "0.00" {
		t.Errorf("expected an empty report, got %+v", report)
	}
}

func TestListCategories_IncludesWildcard(t *testing.T) {
	router, _ := newTestRouter()

	var options []OptionDTO
	rec := doJSON(t, router, http.MethodGet, "/api/categories", nil, &options)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(options) != 4 || options[len(options)-1].Label != expense.FilterAll {
		t.Errorf("expected 3 categories plus %q, got %+v", expense.FilterAll, options)
	}
}

func TestListRanges_LabelsAndBounds(t *testing.T) {
	router, _ := newTestRouter()

	var ranges RangeOptionsDTO
	rec := doJSON(t, router, http.MethodGet, "/api/ranges", nil, &ranges)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(ranges.Options) != 5 {
		t.Fatalf("expected 5 range options, got %d", len(ranges.Options))
	}
	if ranges.Options[0].Label != "Today" || ranges.Options[4].Label != "Custom" {
		t.Errorf("unexpected range labels: %+v", ranges.Options)
	}
	if ranges.MaxDate != expense.Today().String() {
		t.Errorf("expected max date today, got %s", ranges.MaxDate)
	}
	if ranges.DefaultEnd != expense.Today().String() {
		t.Errorf("expected default end today, got %s", ranges.DefaultEnd)
	}
}

func TestLoadDemo_PopulatesStore(t *testing.T) {
	router, _ := newTestRouter()

	var loaded map[string]int
	rec := doJSON(t, router, http.MethodPost, "/api/demo", nil, &loaded)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if loaded["loaded"] != 10 {
		t.Errorf("expected 10 demo records, got %d", loaded["loaded"])
	}

	var report ReportDTO
	doJSON(t, router, http.MethodGet, "/api/expenses?range=year&category=All&group=amount", nil, &report)
	// One demo record (405 days old) falls outside the past year.
	if report.Count != 9 {
		t.Errorf("expected 9 rows in the past year, got %d", report.Count)
	}
}
