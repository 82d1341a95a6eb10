package ppe

import (
	"strings"
	"time"

	"github.com/siteops/backend/internal/domain/shared"
)

// ItemStatus represents the status of a PPE catalog item
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusInactive ItemStatus = "inactive"
)

// Item represents an entry in the master catalog of receivable PPE items.
// It is the aggregate root for PPE catalog operations.
type Item struct {
	shared.BaseAggregateRoot
	Name     string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	Category string     `gorm:"type:varchar(50);not null;index"`
	Status   ItemStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "ppe_items"
}

// NewItem creates a new catalog item
func NewItem(name, category string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot exceed 200 characters")
	}
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Item category cannot be empty")
	}

	item := &Item{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Category:          category,
		Status:            ItemStatusActive,
	}

	item.AddDomainEvent(NewItemCreatedEvent(item))

	return item, nil
}

// IsActive returns true if the item can receive stock
func (i *Item) IsActive() bool {
	return i.Status == ItemStatusActive
}

// Deactivate removes the item from active use without deleting history
func (i *Item) Deactivate() {
	i.Status = ItemStatusInactive
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

// Rename updates the item name
func (i *Item) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	i.Name = name
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}
