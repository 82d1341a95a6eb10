package dto

import csvimport "github.com/siteops/backend/internal/infrastructure/import"

// StockReceiptImportResponse represents the result of a stock receipt
// CSV import
type StockReceiptImportResponse struct {
	Status      string               `json:"status"`
	Imported    int                  `json:"imported"`
	Skipped     int                  `json:"skipped"`
	Summary     string               `json:"summary"`
	Errors      []csvimport.RowError `json:"errors,omitempty"`
	IsTruncated bool                 `json:"is_truncated,omitempty"`
	TotalErrors int                  `json:"total_errors,omitempty"`
}
