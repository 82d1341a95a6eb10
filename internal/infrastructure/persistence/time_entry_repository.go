package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/siteops/backend/internal/domain/shared"
	"github.com/siteops/backend/internal/domain/workforce"
	"gorm.io/gorm"
)

// GormTimeEntryRepository implements workforce.TimeEntryRepository using GORM
type GormTimeEntryRepository struct {
	db *gorm.DB
}

// NewGormTimeEntryRepository creates a new GormTimeEntryRepository
func NewGormTimeEntryRepository(db *gorm.DB) *GormTimeEntryRepository {
	return &GormTimeEntryRepository{db: db}
}

// FindByID finds a time entry by ID
func (r *GormTimeEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*workforce.TimeEntry, error) {
	var entry workforce.TimeEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindOpenByEmployee returns the employee's open entry, or ErrNotFound
func (r *GormTimeEntryRepository) FindOpenByEmployee(ctx context.Context, employeeID uuid.UUID) (*workforce.TimeEntry, error) {
	var entry workforce.TimeEntry
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND clock_out IS NULL", employeeID).
		Order("clock_in DESC").
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindByEmployeeBetween returns an employee's entries within [from, to)
func (r *GormTimeEntryRepository) FindByEmployeeBetween(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]workforce.TimeEntry, error) {
	var entries []workforce.TimeEntry
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND clock_in >= ? AND clock_in < ?", employeeID, from, to).
		Order("clock_in ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindBetween returns all entries within [from, to)
func (r *GormTimeEntryRepository) FindBetween(ctx context.Context, from, to time.Time) ([]workforce.TimeEntry, error) {
	var entries []workforce.TimeEntry
	if err := r.db.WithContext(ctx).
		Where("clock_in >= ? AND clock_in < ?", from, to).
		Order("clock_in ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// CountOpen counts currently open entries
func (r *GormTimeEntryRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&workforce.TimeEntry{}).
		Where("clock_out IS NULL").
		Count(&count).Error
	return count, err
}

// Save creates or updates a time entry
func (r *GormTimeEntryRepository) Save(ctx context.Context, entry *workforce.TimeEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

var _ workforce.TimeEntryRepository = (*GormTimeEntryRepository)(nil)
