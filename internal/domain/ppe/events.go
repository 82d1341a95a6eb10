package ppe

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siteops/backend/internal/domain/shared"
)

// Event types for the PPE domain
const (
	EventTypeItemCreated   = "ppe.item.created"
	EventTypeStockReceived = "ppe.stock.received"
)

// ItemCreatedEvent is published when a new catalog item is created
type ItemCreatedEvent struct {
	shared.BaseDomainEvent
	Name     string `json:"name"`
	Category string `json:"category"`
}

// NewItemCreatedEvent creates a new ItemCreatedEvent
func NewItemCreatedEvent(item *Item) *ItemCreatedEvent {
	return &ItemCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemCreated, "ppe_item", item.ID),
		Name:            item.Name,
		Category:        item.Category,
	}
}

// StockReceivedEvent is published when a stock receipt is recorded
type StockReceivedEvent struct {
	shared.BaseDomainEvent
	ItemID   uuid.UUID       `json:"item_id"`
	SizeID   uuid.UUID       `json:"size_id"`
	Quantity int             `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// NewStockReceivedEvent creates a new StockReceivedEvent
func NewStockReceivedEvent(txn *StockTransaction) *StockReceivedEvent {
	return &StockReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockReceived, "ppe_stock_transaction", txn.ID),
		ItemID:          txn.ItemID,
		SizeID:          txn.SizeID,
		Quantity:        txn.Quantity,
		UnitCost:        txn.UnitCost,
	}
}
