package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/siteops/backend/internal/domain/ppe"
	"github.com/siteops/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormItemRepository implements ppe.ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds an item by its ID
func (r *GormItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*ppe.Item, error) {
	var item ppe.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByName finds an item by its exact name
func (r *GormItemRepository) FindByName(ctx context.Context, name string) (*ppe.Item, error) {
	var item ppe.Item
	if err := r.db.WithContext(ctx).First(&item, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindActive returns all active items
func (r *GormItemRepository) FindActive(ctx context.Context) ([]ppe.Item, error) {
	var items []ppe.Item
	if err := r.db.WithContext(ctx).
		Where("status = ?", ppe.ItemStatusActive).
		Order("name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindAll finds items matching the filter
func (r *GormItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ppe.Item, error) {
	var items []ppe.Item
	query := r.db.WithContext(ctx).Model(&ppe.Item{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	query = applyFilter(query, filter, map[string]bool{
		"name":       true,
		"category":   true,
		"created_at": true,
	})

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates an item
func (r *GormItemRepository) Save(ctx context.Context, item *ppe.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes an item
func (r *GormItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ppe.Item{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ ppe.ItemRepository = (*GormItemRepository)(nil)
