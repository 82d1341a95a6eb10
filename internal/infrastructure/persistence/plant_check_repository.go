package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/siteops/backend/internal/domain/plant"
	"github.com/siteops/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPlantCheckRepository implements plant.PlantCheckRepository using GORM
type GormPlantCheckRepository struct {
	db *gorm.DB
}

// NewGormPlantCheckRepository creates a new GormPlantCheckRepository
func NewGormPlantCheckRepository(db *gorm.DB) *GormPlantCheckRepository {
	return &GormPlantCheckRepository{db: db}
}

// FindByID finds a check by ID
func (r *GormPlantCheckRepository) FindByID(ctx context.Context, id uuid.UUID) (*plant.PlantCheck, error) {
	var check plant.PlantCheck
	if err := r.db.WithContext(ctx).First(&check, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &check, nil
}

// FindBetween returns checks within [from, to), newest first
func (r *GormPlantCheckRepository) FindBetween(ctx context.Context, from, to time.Time) ([]plant.PlantCheck, error) {
	var checks []plant.PlantCheck
	if err := r.db.WithContext(ctx).
		Where("checked_at >= ? AND checked_at < ?", from, to).
		Order("checked_at DESC").
		Find(&checks).Error; err != nil {
		return nil, err
	}
	return checks, nil
}

// CountBetween counts checks within [from, to)
func (r *GormPlantCheckRepository) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&plant.PlantCheck{}).
		Where("checked_at >= ? AND checked_at < ?", from, to).
		Count(&count).Error
	return count, err
}

// Create persists a new check
func (r *GormPlantCheckRepository) Create(ctx context.Context, check *plant.PlantCheck) error {
	return r.db.WithContext(ctx).Create(check).Error
}

var _ plant.PlantCheckRepository = (*GormPlantCheckRepository)(nil)
