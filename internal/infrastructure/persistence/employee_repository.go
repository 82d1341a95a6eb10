package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/siteops/backend/internal/domain/shared"
	"github.com/siteops/backend/internal/domain/workforce"
	"gorm.io/gorm"
)

// GormEmployeeRepository implements workforce.EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByID finds an employee by ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*workforce.Employee, error) {
	var employee workforce.Employee
	if err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// FindActive returns all active employees ordered by name
func (r *GormEmployeeRepository) FindActive(ctx context.Context) ([]workforce.Employee, error) {
	var employees []workforce.Employee
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// FindAll finds employees matching the filter
func (r *GormEmployeeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]workforce.Employee, error) {
	var employees []workforce.Employee
	query := r.db.WithContext(ctx).Model(&workforce.Employee{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	query = applyFilter(query, filter, map[string]bool{
		"name":       true,
		"role":       true,
		"created_at": true,
	})

	if err := query.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// CountActive counts active employees
func (r *GormEmployeeRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&workforce.Employee{}).
		Where("active = ?", true).
		Count(&count).Error
	return count, err
}

// Save creates or updates an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, employee *workforce.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

var _ workforce.EmployeeRepository = (*GormEmployeeRepository)(nil)
