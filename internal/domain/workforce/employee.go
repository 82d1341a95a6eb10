package workforce

import (
	"strings"

	"github.com/siteops/backend/internal/domain/shared"
)

// Employee represents a member of the workforce
type Employee struct {
	shared.BaseAggregateRoot
	Name   string `gorm:"type:varchar(200);not null;index"`
	Role   string `gorm:"type:varchar(100)"`
	Active bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates a new employee record
func NewEmployee(name, role string) (*Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Employee name cannot be empty")
	}

	return &Employee{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Role:              strings.TrimSpace(role),
		Active:            true,
	}, nil
}

// Deactivate marks the employee as no longer active
func (e *Employee) Deactivate() {
	e.Active = false
	e.Touch()
	e.IncrementVersion()
}
