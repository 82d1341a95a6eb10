package ppeapp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siteops/backend/internal/domain/ppe"
	"github.com/siteops/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// StockService handles single stock movements and stock-level queries
type StockService struct {
	itemRepo ppe.ItemRepository
	sizeRepo ppe.SizeOptionRepository
	txnRepo  ppe.StockTransactionRepository
	eventBus shared.EventPublisher
	logger   *zap.Logger
}

// NewStockService creates a new StockService
func NewStockService(
	itemRepo ppe.ItemRepository,
	sizeRepo ppe.SizeOptionRepository,
	txnRepo ppe.StockTransactionRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *StockService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockService{
		itemRepo: itemRepo,
		sizeRepo: sizeRepo,
		txnRepo:  txnRepo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// RecordReceipt records a single manual stock-in transaction
func (s *StockService) RecordReceipt(ctx context.Context, itemID, sizeID uuid.UUID, quantity int, unitCost decimal.Decimal, date time.Time, submittedBy, notes string) (*ppe.StockTransaction, error) {
	if err := s.checkReferences(ctx, itemID, sizeID); err != nil {
		return nil, err
	}

	txn, err := ppe.NewReceipt(itemID, sizeID, quantity, unitCost, date, submittedBy, notes)
	if err != nil {
		return nil, err
	}

	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, txn)

	return txn, nil
}

// RecordIssue records a single stock-out transaction
func (s *StockService) RecordIssue(ctx context.Context, itemID, sizeID uuid.UUID, quantity int, date time.Time, submittedBy, notes string) (*ppe.StockTransaction, error) {
	if err := s.checkReferences(ctx, itemID, sizeID); err != nil {
		return nil, err
	}

	txn, err := ppe.NewIssue(itemID, sizeID, quantity, date, submittedBy, notes)
	if err != nil {
		return nil, err
	}

	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	return txn, nil
}

// StockLevels returns current on-hand quantities per item/size
func (s *StockService) StockLevels(ctx context.Context) ([]ppe.StockLevel, error) {
	return s.txnRepo.StockLevels(ctx)
}

// History returns the transaction history for one item
func (s *StockService) History(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]ppe.StockTransaction, error) {
	return s.txnRepo.FindByItem(ctx, itemID, filter)
}

// Items returns the active item catalog
func (s *StockService) Items(ctx context.Context) ([]ppe.Item, error) {
	return s.itemRepo.FindActive(ctx)
}

// SizesForCategory returns the active size options for a category
func (s *StockService) SizesForCategory(ctx context.Context, category string) ([]ppe.SizeOption, error) {
	return s.sizeRepo.FindByCategory(ctx, category)
}

// CreateItem adds a new item to the catalog. Item names must be unique.
func (s *StockService) CreateItem(ctx context.Context, name, category string) (*ppe.Item, error) {
	item, err := ppe.NewItem(name, category)
	if err != nil {
		return nil, err
	}

	if _, err := s.itemRepo.FindByName(ctx, item.Name); err == nil {
		return nil, shared.ErrAlreadyExists
	} else if !shared.IsNotFound(err) {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	if s.eventBus != nil {
		if events := item.GetDomainEvents(); len(events) > 0 {
			if err := s.eventBus.Publish(ctx, events...); err != nil {
				s.logger.Warn("failed to publish item events", zap.Error(err))
			}
		}
		item.ClearDomainEvents()
	}

	return item, nil
}

// CreateSizeOption adds a new size option for a category
func (s *StockService) CreateSizeOption(ctx context.Context, category, code string) (*ppe.SizeOption, error) {
	size, err := ppe.NewSizeOption(category, code)
	if err != nil {
		return nil, err
	}

	if err := s.sizeRepo.Save(ctx, size); err != nil {
		return nil, err
	}

	return size, nil
}

// checkReferences verifies that both catalog references exist
func (s *StockService) checkReferences(ctx context.Context, itemID, sizeID uuid.UUID) error {
	if _, err := s.itemRepo.FindByID(ctx, itemID); err != nil {
		return err
	}
	if _, err := s.sizeRepo.FindByID(ctx, sizeID); err != nil {
		return err
	}
	return nil
}

// publishEvents publishes an aggregate's pending events, logging failures
// instead of failing the operation
func (s *StockService) publishEvents(ctx context.Context, txn *ppe.StockTransaction) {
	if s.eventBus == nil {
		return
	}
	if events := txn.GetDomainEvents(); len(events) > 0 {
		if err := s.eventBus.Publish(ctx, events...); err != nil {
			s.logger.Warn("failed to publish stock events", zap.Error(err))
		}
	}
	txn.ClearDomainEvents()
}
