package ppeapp

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siteops/backend/internal/domain/ppe"
	"github.com/siteops/backend/internal/domain/shared"
	csvimport "github.com/siteops/backend/internal/infrastructure/import"
	"go.uber.org/zap"
)

// ImportOutcome summarises one import invocation. The aggregate counts are
// the primary user-facing result; Errors carries a bounded per-row detail
// list for diagnostics.
type ImportOutcome struct {
	Status      csvimport.ImportStatus `json:"status"`
	Imported    int                    `json:"imported"`
	Skipped     int                    `json:"skipped"`
	Errors      []csvimport.RowError   `json:"errors,omitempty"`
	IsTruncated bool                   `json:"is_truncated,omitempty"`
	TotalErrors int                    `json:"total_errors,omitempty"`
}

// Summary returns the one-line message shown to the user
func (o *ImportOutcome) Summary() string {
	return fmt.Sprintf("Imported %d, skipped %d", o.Imported, o.Skipped)
}

// StockReceiptImportService reads a delimited stock-receipt file, resolves
// each row against the item and size catalogs, and records a receipt
// transaction per valid row. Rows are processed strictly in file order and
// each row's persistence is an independent operation: one failed row is
// counted and skipped, it never aborts or rolls back the batch.
type StockReceiptImportService struct {
	itemRepo  ppe.ItemRepository
	sizeRepo  ppe.SizeOptionRepository
	txnRepo   ppe.StockTransactionRepository
	eventBus  shared.EventPublisher
	logger    *zap.Logger
	category  string
	maxErrors int
	now       func() time.Time
}

// ImportOption is a functional option for StockReceiptImportService
type ImportOption func(*StockReceiptImportService)

// WithCategory sets the catalog category word used for header matching
// (default "ppe")
func WithCategory(category string) ImportOption {
	return func(s *StockReceiptImportService) {
		s.category = category
	}
}

// WithMaxErrors bounds the per-row error detail list
func WithMaxErrors(n int) ImportOption {
	return func(s *StockReceiptImportService) {
		s.maxErrors = n
	}
}

// WithClock overrides the processing-timestamp source, used by tests and
// by callers that thread an explicit clock
func WithClock(now func() time.Time) ImportOption {
	return func(s *StockReceiptImportService) {
		s.now = now
	}
}

// WithEventBus sets the publisher for domain events raised by imported rows
func WithEventBus(bus shared.EventPublisher) ImportOption {
	return func(s *StockReceiptImportService) {
		s.eventBus = bus
	}
}

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) ImportOption {
	return func(s *StockReceiptImportService) {
		s.logger = logger
	}
}

// NewStockReceiptImportService creates a new StockReceiptImportService
func NewStockReceiptImportService(
	itemRepo ppe.ItemRepository,
	sizeRepo ppe.SizeOptionRepository,
	txnRepo ppe.StockTransactionRepository,
	opts ...ImportOption,
) *StockReceiptImportService {
	s := &StockReceiptImportService{
		itemRepo:  itemRepo,
		sizeRepo:  sizeRepo,
		txnRepo:   txnRepo,
		logger:    zap.NewNop(),
		category:  "ppe",
		maxErrors: 100,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// referenceData holds the lookup maps built once per import invocation.
// Both maps are immutable for the duration of the batch.
type referenceData struct {
	itemsByName map[string]*ppe.Item
	sizeIDByKey map[string]uuid.UUID
}

// Import runs the full pipeline against the given file. Fatal errors
// (unreadable file, missing required columns) are returned before any row
// is processed; row-level failures are folded into the outcome counters.
func (s *StockReceiptImportService) Import(ctx context.Context, r io.Reader, submittedBy string) (*ImportOutcome, error) {
	outcome := &ImportOutcome{Status: csvimport.StatusLoading}

	parser, err := csvimport.NewParser(r)
	if err != nil {
		outcome.Status = csvimport.StatusFailed
		return outcome, err
	}

	if err := parser.ParseHeader(); err != nil {
		outcome.Status = csvimport.StatusFailed
		return outcome, err
	}

	cols, err := csvimport.ResolveColumns(parser.Headers(), s.category)
	if err != nil {
		outcome.Status = csvimport.StatusFailed
		return outcome, err
	}

	refs, err := s.loadReferenceData(ctx)
	if err != nil {
		outcome.Status = csvimport.StatusFailed
		return outcome, fmt.Errorf("failed to load reference data: %w", err)
	}

	outcome.Status = csvimport.StatusImporting
	errors := csvimport.NewErrorCollection(s.maxErrors)

	for {
		select {
		case <-ctx.Done():
			outcome.Status = csvimport.StatusFailed
			return outcome, ctx.Err()
		default:
		}

		row, err := parser.ReadRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			errors.Add(csvimport.NewRowError(parser.CurrentRow(), "", csvimport.ErrCodeImportCSVParsing, err.Error()))
			outcome.Skipped++
			continue
		}
		if row.IsEmpty() {
			continue
		}

		s.importRow(ctx, row, cols, refs, submittedBy, outcome, errors)
	}

	outcome.Errors = errors.Errors()
	outcome.IsTruncated = errors.IsTruncated()
	outcome.TotalErrors = errors.TotalCount()
	outcome.Status = csvimport.StatusCompleted

	s.logger.Info("stock receipt import completed",
		zap.Int("imported", outcome.Imported),
		zap.Int("skipped", outcome.Skipped),
	)

	return outcome, nil
}

// loadReferenceData builds the two lookup maps used for row resolution:
// exact item name (last write wins on duplicates) and (category, size code).
func (s *StockReceiptImportService) loadReferenceData(ctx context.Context) (*referenceData, error) {
	items, err := s.itemRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	sizes, err := s.sizeRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	refs := &referenceData{
		itemsByName: make(map[string]*ppe.Item, len(items)),
		sizeIDByKey: make(map[string]uuid.UUID, len(sizes)),
	}
	for i := range items {
		refs.itemsByName[items[i].Name] = &items[i]
	}
	for i := range sizes {
		refs.sizeIDByKey[sizes[i].Key()] = sizes[i].ID
	}

	return refs, nil
}

// importRow resolves, validates and persists a single data row. All
// failures here are row-level: counted, never fatal.
func (s *StockReceiptImportService) importRow(
	ctx context.Context,
	row *csvimport.Row,
	cols csvimport.Columns,
	refs *referenceData,
	submittedBy string,
	outcome *ImportOutcome,
	errors *csvimport.ErrorCollection,
) {
	if row.Len() < cols.MinRowLen() {
		errors.Add(csvimport.NewRowError(row.LineNumber, "", csvimport.ErrCodeImportShortRow,
			fmt.Sprintf("row has %d fields, %d required", row.Len(), cols.MinRowLen())))
		outcome.Skipped++
		return
	}

	itemName := row.Field(cols.Item)
	item, ok := refs.itemsByName[itemName]
	if !ok {
		errors.Add(csvimport.NewRowErrorWithValue(row.LineNumber, csvimport.ColumnItem, csvimport.ErrCodeImportUnknownItem,
			fmt.Sprintf("item '%s' not found in catalog", itemName), itemName))
		outcome.Skipped++
		return
	}

	// Size codes are only meaningful within the item's category.
	sizeCode := row.Field(cols.Size)
	sizeID, ok := refs.sizeIDByKey[ppe.SizeKey(item.Category, sizeCode)]
	if !ok {
		errors.Add(csvimport.NewRowErrorWithValue(row.LineNumber, csvimport.ColumnSize, csvimport.ErrCodeImportUnknownSize,
			fmt.Sprintf("size '%s' not found for category '%s'", sizeCode, item.Category), sizeCode))
		outcome.Skipped++
		return
	}

	quantity := csvimport.ParseLooseInt(row.Field(cols.Quantity))
	if quantity < 0 {
		errors.Add(csvimport.NewRowErrorWithValue(row.LineNumber, csvimport.ColumnQuantity, csvimport.ErrCodeImportNegativeValue,
			"quantity cannot be negative", row.Field(cols.Quantity)))
		outcome.Skipped++
		return
	}

	unitCost := decimal.Zero
	if cleaned := csvimport.ParseLooseDecimal(row.Field(cols.Cost)); cleaned != "" {
		if parsed, err := decimal.NewFromString(cleaned); err == nil {
			unitCost = parsed
		}
	}
	if unitCost.IsNegative() {
		errors.Add(csvimport.NewRowErrorWithValue(row.LineNumber, csvimport.ColumnUnitCost, csvimport.ErrCodeImportNegativeValue,
			"unit cost cannot be negative", row.Field(cols.Cost)))
		outcome.Skipped++
		return
	}

	// An unparsable or absent date is not an error: the row falls back to
	// the processing timestamp.
	transactionDate := s.now()
	if parsed := csvimport.ParseFlexibleDate(row.Field(cols.Date)); parsed != nil {
		transactionDate = *parsed
	}

	var notes string
	if cols.Notes >= 0 {
		notes = row.Field(cols.Notes)
	}

	txn, err := ppe.NewReceipt(item.ID, sizeID, quantity, unitCost, transactionDate, submittedBy, notes)
	if err != nil {
		errors.Add(csvimport.NewRowError(row.LineNumber, "", csvimport.ErrCodeImportNegativeValue, err.Error()))
		outcome.Skipped++
		return
	}

	if err := s.txnRepo.Create(ctx, txn); err != nil {
		errors.Add(csvimport.NewRowError(row.LineNumber, "", csvimport.ErrCodeImportPersistence,
			"failed to save receipt: "+err.Error()))
		outcome.Skipped++
		return
	}

	if s.eventBus != nil {
		if events := txn.GetDomainEvents(); len(events) > 0 {
			if err := s.eventBus.Publish(ctx, events...); err != nil {
				s.logger.Warn("failed to publish stock receipt events", zap.Error(err))
			}
		}
		txn.ClearDomainEvents()
	}

	outcome.Imported++
}
