package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	ppeapp "github.com/siteops/backend/internal/application/ppe"
	csvimport "github.com/siteops/backend/internal/infrastructure/import"
	"github.com/siteops/backend/internal/interfaces/http/dto"
)

// StockImportHandler handles bulk stock receipt imports from CSV files
type StockImportHandler struct {
	BaseHandler
	importService *ppeapp.StockReceiptImportService
	maxFileSize   int64
}

// NewStockImportHandler creates a new StockImportHandler
func NewStockImportHandler(importService *ppeapp.StockReceiptImportService, maxFileSize int64) *StockImportHandler {
	if maxFileSize <= 0 {
		maxFileSize = 5 << 20
	}
	return &StockImportHandler{
		importService: importService,
		maxFileSize:   maxFileSize,
	}
}

// ImportReceipts imports stock receipts from an uploaded CSV file. Rows
// are persisted one at a time; a failing row is skipped and reported
// without rolling back rows already imported.
func (h *StockImportHandler) ImportReceipts(c *gin.Context) {
	submittedBy := c.PostForm("submitted_by")
	if submittedBy == "" {
		h.BadRequest(c, "submitted_by is required")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	if header.Size > h.maxFileSize {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge, "file exceeds maximum size")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType != "" && contentType != "text/csv" && contentType != "application/octet-stream" &&
		contentType != "text/plain" && contentType != "application/vnd.ms-excel" {
		h.Error(c, http.StatusUnsupportedMediaType, dto.ErrCodeValidation, "file must be a CSV file")
		return
	}

	outcome, err := h.importService.Import(c.Request.Context(), file, submittedBy)
	if err != nil {
		switch {
		case errors.Is(err, csvimport.ErrEmptyFile):
			h.BadRequest(c, "CSV file is empty")
		case errors.Is(err, csvimport.ErrInvalidEncoding):
			h.BadRequest(c, "CSV file has invalid encoding, must be UTF-8")
		case errors.Is(err, csvimport.ErrMissingHeader):
			h.BadRequest(c, "CSV file is missing header row")
		case errors.Is(err, csvimport.ErrMissingColumns):
			h.BadRequest(c, err.Error())
		default:
			h.HandleError(c, err)
		}
		return
	}

	h.Success(c, dto.StockReceiptImportResponse{
		Status:      string(outcome.Status),
		Imported:    outcome.Imported,
		Skipped:     outcome.Skipped,
		Summary:     outcome.Summary(),
		Errors:      outcome.Errors,
		IsTruncated: outcome.IsTruncated,
		TotalErrors: outcome.TotalErrors,
	})
}

// RegisterRoutes registers the stock import routes
func (h *StockImportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ppe/stock/import", h.ImportReceipts)
}
