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

// GormSizeOptionRepository implements ppe.SizeOptionRepository using GORM
type GormSizeOptionRepository struct {
	db *gorm.DB
}

// NewGormSizeOptionRepository creates a new GormSizeOptionRepository
func NewGormSizeOptionRepository(db *gorm.DB) *GormSizeOptionRepository {
	return &GormSizeOptionRepository{db: db}
}

// FindByID finds a size option by its ID
func (r *GormSizeOptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ppe.SizeOption, error) {
	var option ppe.SizeOption
	if err := r.db.WithContext(ctx).First(&option, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &option, nil
}

// FindActive returns all active size options
func (r *GormSizeOptionRepository) FindActive(ctx context.Context) ([]ppe.SizeOption, error) {
	var options []ppe.SizeOption
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("category ASC, code ASC").
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

// FindByCategory returns active size options for one category
func (r *GormSizeOptionRepository) FindByCategory(ctx context.Context, category string) ([]ppe.SizeOption, error) {
	var options []ppe.SizeOption
	if err := r.db.WithContext(ctx).
		Where("category = ? AND active = ?", strings.ToLower(strings.TrimSpace(category)), true).
		Order("code ASC").
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

// Save creates or updates a size option
func (r *GormSizeOptionRepository) Save(ctx context.Context, option *ppe.SizeOption) error {
	return r.db.WithContext(ctx).Save(option).Error
}

var _ ppe.SizeOptionRepository = (*GormSizeOptionRepository)(nil)
