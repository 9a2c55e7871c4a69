/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for the presentation boundary. These types
  decouple the engine's domain model from the wire contract: amounts cross
  the boundary as fixed-point strings, dates as "2006-01-02".

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/warp/expense-engine/expense"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// ExpenseRowDTO is one display row: the category label, a short date
// string, and the two-decimal dollar amount.
type ExpenseRowDTO struct {
	Category string `json:"category"`
	Date     string `json:"date"`
	Amount   string `json:"amount"`
}

// ReportDTO is the rendered report: ordered rows plus the footer total.
type ReportDTO struct {
	Rows  []ExpenseRowDTO `json:"rows"`
	Total string          `json:"total"`
	Count int             `json:"count"`
}

// SubmitExpenseRequest is the entry form payload. Amount arrives as the raw
// text the user typed; the validator decides whether it is a number.
type SubmitExpenseRequest struct {
	Amount   string `json:"amount"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

// RejectionDTO mirrors the entry form's alert: a rejection the user must
// acknowledge before retrying.
type RejectionDTO struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// OptionDTO is one picker choice with its display label.
type OptionDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// RangeOptionsDTO lists the range-selector choices plus the bounds a client
// should use to initialize its custom-range and entry-form date pickers.
type RangeOptionsDTO struct {
	Options      []OptionDTO `json:"options"`
	DefaultStart string      `json:"default_start"`
	DefaultEnd   string      `json:"default_end"`
	MaxDate      string      `json:"max_date"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toRowDTO(r expense.Record) ExpenseRowDTO {
	return ExpenseRowDTO{
		Category: r.Category.Label(),
		Date:     r.Date.String(),
		Amount:   r.Amount.String(),
	}
}

func toReportDTO(result expense.Result) ReportDTO {
	rows := make([]ExpenseRowDTO, len(result.Rows))
	for i, r := range result.Rows {
		rows[i] = toRowDTO(r)
	}
	return ReportDTO{Rows: rows, Total: result.Total.String(), Count: len(rows)}
}
