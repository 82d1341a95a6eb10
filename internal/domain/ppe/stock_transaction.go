package ppe

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siteops/backend/internal/domain/shared"
)

// TransactionType represents the direction of a stock transaction
type TransactionType string

const (
	TransactionTypeReceive TransactionType = "receive"
	TransactionTypeIssue   TransactionType = "issue"
)

// StockTransaction records a single stock movement for one item/size
// combination. Receipts carry a unit cost; issues record who the stock
// was issued to via Notes.
type StockTransaction struct {
	shared.BaseAggregateRoot
	ItemID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	SizeID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity        int             `gorm:"not null"`
	UnitCost        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Type            TransactionType `gorm:"type:varchar(20);not null;index"`
	TransactionDate time.Time       `gorm:"not null;index"`
	SubmittedBy     string          `gorm:"type:varchar(100);not null"`
	Notes           string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (StockTransaction) TableName() string {
	return "ppe_stock_transactions"
}

// NewReceipt creates a stock-in transaction. Quantity and unit cost must
// both be non-negative; zero is accepted, negatives are rejected.
func NewReceipt(itemID, sizeID uuid.UUID, quantity int, unitCost decimal.Decimal, transactionDate time.Time, submittedBy, notes string) (*StockTransaction, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID is required")
	}
	if sizeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SIZE", "Size ID is required")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("NEGATIVE_QUANTITY", "Quantity cannot be negative")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("NEGATIVE_COST", "Unit cost cannot be negative")
	}
	if transactionDate.IsZero() {
		transactionDate = time.Now()
	}

	txn := &StockTransaction{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ItemID:            itemID,
		SizeID:            sizeID,
		Quantity:          quantity,
		UnitCost:          unitCost,
		Type:              TransactionTypeReceive,
		TransactionDate:   transactionDate,
		SubmittedBy:       submittedBy,
		Notes:             notes,
	}

	txn.AddDomainEvent(NewStockReceivedEvent(txn))

	return txn, nil
}

// NewIssue creates a stock-out transaction
func NewIssue(itemID, sizeID uuid.UUID, quantity int, transactionDate time.Time, submittedBy, notes string) (*StockTransaction, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID is required")
	}
	if sizeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SIZE", "Size ID is required")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Issue quantity must be positive")
	}
	if transactionDate.IsZero() {
		transactionDate = time.Now()
	}

	return &StockTransaction{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ItemID:            itemID,
		SizeID:            sizeID,
		Quantity:          quantity,
		UnitCost:          decimal.Zero,
		Type:              TransactionTypeIssue,
		TransactionDate:   transactionDate,
		SubmittedBy:       submittedBy,
		Notes:             notes,
	}, nil
}

// SignedQuantity returns the quantity with its effect on stock level
func (t *StockTransaction) SignedQuantity() int {
	if t.Type == TransactionTypeIssue {
		return -t.Quantity
	}
	return t.Quantity
}

// TotalCost returns quantity * unit cost
func (t *StockTransaction) TotalCost() decimal.Decimal {
	return t.UnitCost.Mul(decimal.NewFromInt(int64(t.Quantity)))
}

// StockLevel is a read model: current quantity on hand per item/size
type StockLevel struct {
	ItemID   uuid.UUID `json:"item_id"`
	ItemName string    `json:"item_name"`
	Category string    `json:"category"`
	SizeID   uuid.UUID `json:"size_id"`
	SizeCode string    `json:"size_code"`
	OnHand   int       `json:"on_hand"`
}
