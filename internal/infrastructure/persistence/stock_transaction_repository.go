package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/siteops/backend/internal/domain/ppe"
	"github.com/siteops/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormStockTransactionRepository implements ppe.StockTransactionRepository
// using GORM
type GormStockTransactionRepository struct {
	db *gorm.DB
}

// NewGormStockTransactionRepository creates a new GormStockTransactionRepository
func NewGormStockTransactionRepository(db *gorm.DB) *GormStockTransactionRepository {
	return &GormStockTransactionRepository{db: db}
}

// FindByID finds a transaction by its ID
func (r *GormStockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ppe.StockTransaction, error) {
	var txn ppe.StockTransaction
	if err := r.db.WithContext(ctx).First(&txn, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &txn, nil
}

// FindByItem finds transactions for one item
func (r *GormStockTransactionRepository) FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]ppe.StockTransaction, error) {
	var txns []ppe.StockTransaction
	query := applyFilter(
		r.db.WithContext(ctx).Model(&ppe.StockTransaction{}).Where("item_id = ?", itemID),
		filter,
		transactionOrderColumns,
	)
	if err := query.Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

// FindAll finds transactions matching the filter
func (r *GormStockTransactionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ppe.StockTransaction, error) {
	var txns []ppe.StockTransaction
	query := applyFilter(
		r.db.WithContext(ctx).Model(&ppe.StockTransaction{}),
		filter,
		transactionOrderColumns,
	)
	if err := query.Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

// Create persists a new transaction. Transactions are append-only.
func (r *GormStockTransactionRepository) Create(ctx context.Context, txn *ppe.StockTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

// StockLevels aggregates current quantity on hand per (item, size)
func (r *GormStockTransactionRepository) StockLevels(ctx context.Context) ([]ppe.StockLevel, error) {
	var levels []ppe.StockLevel
	err := r.db.WithContext(ctx).
		Table("ppe_stock_transactions AS t").
		Select(`t.item_id,
			i.name AS item_name,
			i.category,
			t.size_id,
			s.code AS size_code,
			SUM(CASE WHEN t.type = ? THEN -t.quantity ELSE t.quantity END) AS on_hand`,
			ppe.TransactionTypeIssue).
		Joins("JOIN ppe_items i ON i.id = t.item_id").
		Joins("JOIN ppe_size_options s ON s.id = t.size_id").
		Group("t.item_id, i.name, i.category, t.size_id, s.code").
		Order("i.name ASC, s.code ASC").
		Scan(&levels).Error
	if err != nil {
		return nil, err
	}
	return levels, nil
}

// CountBelow counts stock lines whose on-hand quantity is below threshold
func (r *GormStockTransactionRepository) CountBelow(ctx context.Context, threshold int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("(?) AS levels", r.db.
			Table("ppe_stock_transactions AS t").
			Select("SUM(CASE WHEN t.type = ? THEN -t.quantity ELSE t.quantity END) AS on_hand", ppe.TransactionTypeIssue).
			Group("t.item_id, t.size_id")).
		Where("levels.on_hand < ?", threshold).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

var transactionOrderColumns = map[string]bool{
	"transaction_date": true,
	"created_at":       true,
	"quantity":         true,
}

var _ ppe.StockTransactionRepository = (*GormStockTransactionRepository)(nil)
