package ppe

import (
	"context"

	"github.com/google/uuid"
	"github.com/siteops/backend/internal/domain/shared"
)

// ItemRepository defines the interface for catalog item persistence
type ItemRepository interface {
	// FindByID finds an item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindByName finds an item by exact name
	FindByName(ctx context.Context, name string) (*Item, error)

	// FindActive returns all active catalog items
	FindActive(ctx context.Context) ([]Item, error)

	// FindAll finds all items matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Item, error)

	// Save creates or updates an item
	Save(ctx context.Context, item *Item) error

	// Delete deletes an item
	Delete(ctx context.Context, id uuid.UUID) error
}

// SizeOptionRepository defines the interface for size option persistence
type SizeOptionRepository interface {
	// FindByID finds a size option by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*SizeOption, error)

	// FindActive returns the full active size catalog
	FindActive(ctx context.Context) ([]SizeOption, error)

	// FindByCategory returns active size options for a category
	FindByCategory(ctx context.Context, category string) ([]SizeOption, error)

	// Save creates or updates a size option
	Save(ctx context.Context, option *SizeOption) error
}

// StockTransactionRepository defines the interface for stock transaction persistence
type StockTransactionRepository interface {
	// FindByID finds a transaction by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*StockTransaction, error)

	// FindByItem returns transactions for an item, newest first
	FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]StockTransaction, error)

	// FindAll finds all transactions matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]StockTransaction, error)

	// Create persists a new transaction
	Create(ctx context.Context, txn *StockTransaction) error

	// StockLevels returns current on-hand quantity per item/size
	StockLevels(ctx context.Context) ([]StockLevel, error)

	// CountBelow counts item/size combinations with on-hand below the threshold
	CountBelow(ctx context.Context, threshold int) (int64, error)
}
