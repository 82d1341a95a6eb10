package workforce

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/siteops/backend/internal/domain/shared"
)

// EmployeeRepository defines the interface for employee persistence
type EmployeeRepository interface {
	// FindByID finds an employee by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)

	// FindActive returns all active employees
	FindActive(ctx context.Context) ([]Employee, error)

	// FindAll finds employees matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Employee, error)

	// CountActive counts active employees
	CountActive(ctx context.Context) (int64, error)

	// Save creates or updates an employee
	Save(ctx context.Context, employee *Employee) error
}

// TimeEntryRepository defines the interface for time entry persistence
type TimeEntryRepository interface {
	// FindByID finds a time entry by ID
	FindByID(ctx context.Context, id uuid.UUID) (*TimeEntry, error)

	// FindOpenByEmployee returns the employee's open entry, or ErrNotFound
	FindOpenByEmployee(ctx context.Context, employeeID uuid.UUID) (*TimeEntry, error)

	// FindByEmployeeBetween returns an employee's entries within [from, to)
	FindByEmployeeBetween(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]TimeEntry, error)

	// FindBetween returns all entries within [from, to)
	FindBetween(ctx context.Context, from, to time.Time) ([]TimeEntry, error)

	// CountOpen counts currently open entries
	CountOpen(ctx context.Context) (int64, error)

	// Save creates or updates a time entry
	Save(ctx context.Context, entry *TimeEntry) error
}
