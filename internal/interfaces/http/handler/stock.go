package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	ppeapp "github.com/siteops/backend/internal/application/ppe"
	"github.com/siteops/backend/internal/domain/ppe"
	"github.com/siteops/backend/internal/domain/shared"
	"github.com/siteops/backend/internal/interfaces/http/dto"
)

// StockHandler exposes the PPE catalog and stock movement endpoints
type StockHandler struct {
	BaseHandler
	stockService *ppeapp.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *ppeapp.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// ItemResponse represents a catalog item
type ItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toItemResponse(item *ppe.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		Status:    string(item.Status),
		CreatedAt: item.CreatedAt,
	}
}

// SizeOptionResponse represents a size option
type SizeOptionResponse struct {
	ID       uuid.UUID `json:"id"`
	Category string    `json:"category"`
	Code     string    `json:"code"`
	Active   bool      `json:"active"`
}

func toSizeOptionResponse(size *ppe.SizeOption) SizeOptionResponse {
	return SizeOptionResponse{
		ID:       size.ID,
		Category: size.Category,
		Code:     size.Code,
		Active:   size.Active,
	}
}

// StockTransactionResponse represents a stock movement
type StockTransactionResponse struct {
	ID              uuid.UUID `json:"id"`
	ItemID          uuid.UUID `json:"item_id"`
	SizeID          uuid.UUID `json:"size_id"`
	Quantity        int       `json:"quantity"`
	UnitCost        string    `json:"unit_cost"`
	Type            string    `json:"type"`
	TransactionDate time.Time `json:"transaction_date"`
	SubmittedBy     string    `json:"submitted_by"`
	Notes           string    `json:"notes,omitempty"`
}

func toStockTransactionResponse(txn *ppe.StockTransaction) StockTransactionResponse {
	return StockTransactionResponse{
		ID:              txn.ID,
		ItemID:          txn.ItemID,
		SizeID:          txn.SizeID,
		Quantity:        txn.Quantity,
		UnitCost:        txn.UnitCost.String(),
		Type:            string(txn.Type),
		TransactionDate: txn.TransactionDate,
		SubmittedBy:     txn.SubmittedBy,
		Notes:           txn.Notes,
	}
}

// CreateItemRequest represents a request to add a catalog item
type CreateItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// CreateSizeOptionRequest represents a request to add a size option
type CreateSizeOptionRequest struct {
	Category string `json:"category" binding:"required"`
	Code     string `json:"code" binding:"required"`
}

// RecordReceiptRequest represents a manual stock-in request
type RecordReceiptRequest struct {
	ItemID      string `json:"item_id" binding:"required,uuid"`
	SizeID      string `json:"size_id" binding:"required,uuid"`
	Quantity    int    `json:"quantity" binding:"min=0"`
	UnitCost    string `json:"unit_cost"`
	Date        string `json:"date"`
	SubmittedBy string `json:"submitted_by" binding:"required"`
	Notes       string `json:"notes"`
}

// RecordIssueRequest represents a stock-out request
type RecordIssueRequest struct {
	ItemID      string `json:"item_id" binding:"required,uuid"`
	SizeID      string `json:"size_id" binding:"required,uuid"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	Date        string `json:"date"`
	SubmittedBy string `json:"submitted_by" binding:"required"`
	Notes       string `json:"notes"`
}

// ListItems returns the active item catalog
func (h *StockHandler) ListItems(c *gin.Context) {
	items, err := h.stockService.Items(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toItemResponse(&items[i]))
	}
	h.Success(c, responses)
}

// CreateItem adds a new catalog item
func (h *StockHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	item, err := h.stockService.CreateItem(c.Request.Context(), req.Name, req.Category)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toItemResponse(item))
}

// ListSizes returns the active size options for a category
func (h *StockHandler) ListSizes(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		h.BadRequest(c, "category query parameter is required")
		return
	}

	sizes, err := h.stockService.SizesForCategory(c.Request.Context(), category)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]SizeOptionResponse, 0, len(sizes))
	for i := range sizes {
		responses = append(responses, toSizeOptionResponse(&sizes[i]))
	}
	h.Success(c, responses)
}

// CreateSize adds a new size option
func (h *StockHandler) CreateSize(c *gin.Context) {
	var req CreateSizeOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	size, err := h.stockService.CreateSizeOption(c.Request.Context(), req.Category, req.Code)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toSizeOptionResponse(size))
}

// StockLevels returns current on-hand quantities per item and size
func (h *StockHandler) StockLevels(c *gin.Context) {
	levels, err := h.stockService.StockLevels(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, levels)
}

// ItemHistory returns the transaction history for one item
func (h *StockHandler) ItemHistory(c *gin.Context) {
	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}
	itemID, err := uuid.Parse(idReq.ID)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	filter := shared.DefaultFilter()
	if listReq.Page > 0 {
		filter.Page = listReq.Page
	}
	if listReq.PageSize > 0 {
		filter.PageSize = listReq.PageSize
	}
	if listReq.OrderBy != "" {
		filter.OrderBy = listReq.OrderBy
	}
	if listReq.OrderDir != "" {
		filter.OrderDir = listReq.OrderDir
	}

	txns, err := h.stockService.History(c.Request.Context(), itemID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]StockTransactionResponse, 0, len(txns))
	for i := range txns {
		responses = append(responses, toStockTransactionResponse(&txns[i]))
	}
	h.Success(c, responses)
}

// RecordReceipt records a single manual stock-in transaction
func (h *StockHandler) RecordReceipt(c *gin.Context) {
	var req RecordReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	itemID, _ := uuid.Parse(req.ItemID)
	sizeID, _ := uuid.Parse(req.SizeID)

	unitCost := decimal.Zero
	if req.UnitCost != "" {
		parsed, err := decimal.NewFromString(req.UnitCost)
		if err != nil {
			h.BadRequest(c, "Invalid unit_cost")
			return
		}
		unitCost = parsed
	}

	date, ok := parseDateParam(req.Date)
	if !ok {
		h.BadRequest(c, "Invalid date, expected YYYY-MM-DD or RFC 3339")
		return
	}

	txn, err := h.stockService.RecordReceipt(c.Request.Context(), itemID, sizeID, req.Quantity, unitCost, date, req.SubmittedBy, req.Notes)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toStockTransactionResponse(txn))
}

// RecordIssue records a single stock-out transaction
func (h *StockHandler) RecordIssue(c *gin.Context) {
	var req RecordIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	itemID, _ := uuid.Parse(req.ItemID)
	sizeID, _ := uuid.Parse(req.SizeID)

	date, ok := parseDateParam(req.Date)
	if !ok {
		h.BadRequest(c, "Invalid date, expected YYYY-MM-DD or RFC 3339")
		return
	}

	txn, err := h.stockService.RecordIssue(c.Request.Context(), itemID, sizeID, req.Quantity, date, req.SubmittedBy, req.Notes)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toStockTransactionResponse(txn))
}

// parseDateParam parses an optional date parameter. An empty string
// returns the zero time, which downstream code treats as "now".
func parseDateParam(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// RegisterRoutes registers the PPE catalog and stock routes
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ppeGroup := rg.Group("/ppe")
	{
		ppeGroup.GET("/items", h.ListItems)
		ppeGroup.POST("/items", h.CreateItem)
		ppeGroup.GET("/items/:id/transactions", h.ItemHistory)
		ppeGroup.GET("/sizes", h.ListSizes)
		ppeGroup.POST("/sizes", h.CreateSize)
		ppeGroup.GET("/stock/levels", h.StockLevels)
		ppeGroup.POST("/stock/receipts", h.RecordReceipt)
		ppeGroup.POST("/stock/issues", h.RecordIssue)
	}
}
