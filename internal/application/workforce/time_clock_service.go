package workforceapp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/siteops/backend/internal/domain/shared"
	"github.com/siteops/backend/internal/domain/workforce"
	"go.uber.org/zap"
)

// TimeClockService handles clock-in and clock-out use cases. An employee
// may hold at most one open time entry at a time.
type TimeClockService struct {
	employeeRepo workforce.EmployeeRepository
	entryRepo    workforce.TimeEntryRepository
	logger       *zap.Logger
	now          func() time.Time
}

// ClockOption configures a TimeClockService
type ClockOption func(*TimeClockService)

// WithClock injects the time source, used by tests
func WithClock(now func() time.Time) ClockOption {
	return func(s *TimeClockService) {
		s.now = now
	}
}

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) ClockOption {
	return func(s *TimeClockService) {
		s.logger = logger
	}
}

// NewTimeClockService creates a new TimeClockService
func NewTimeClockService(
	employeeRepo workforce.EmployeeRepository,
	entryRepo workforce.TimeEntryRepository,
	opts ...ClockOption,
) *TimeClockService {
	s := &TimeClockService{
		employeeRepo: employeeRepo,
		entryRepo:    entryRepo,
		logger:       zap.NewNop(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClockIn opens a time entry for the employee. Fails with
// shared.ErrAlreadyClockedIn when an open entry already exists.
func (s *TimeClockService) ClockIn(ctx context.Context, employeeID uuid.UUID, site string) (*workforce.TimeEntry, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !employee.Active {
		return nil, shared.NewDomainError("EMPLOYEE_INACTIVE", "Employee is not active")
	}

	if _, err := s.entryRepo.FindOpenByEmployee(ctx, employeeID); err == nil {
		return nil, shared.ErrAlreadyClockedIn
	} else if !shared.IsNotFound(err) {
		return nil, err
	}

	entry, err := workforce.NewTimeEntry(employeeID, s.now(), site)
	if err != nil {
		return nil, err
	}

	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("employee clocked in",
		zap.String("employee_id", employeeID.String()),
		zap.String("site", site))

	return entry, nil
}

// ClockOut closes the employee's open time entry. Fails with
// shared.ErrNotClockedIn when no entry is open.
func (s *TimeClockService) ClockOut(ctx context.Context, employeeID uuid.UUID, notes string) (*workforce.TimeEntry, error) {
	entry, err := s.entryRepo.FindOpenByEmployee(ctx, employeeID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.ErrNotClockedIn
		}
		return nil, err
	}

	if err := entry.Close(s.now()); err != nil {
		return nil, err
	}
	if notes != "" {
		entry.Notes = notes
	}

	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("employee clocked out",
		zap.String("employee_id", employeeID.String()),
		zap.Duration("duration", entry.Duration()))

	return entry, nil
}

// Status returns the employee's open entry, or nil when off the clock
func (s *TimeClockService) Status(ctx context.Context, employeeID uuid.UUID) (*workforce.TimeEntry, error) {
	entry, err := s.entryRepo.FindOpenByEmployee(ctx, employeeID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

// Employees returns active employees for selection lists
func (s *TimeClockService) Employees(ctx context.Context) ([]workforce.Employee, error) {
	return s.employeeRepo.FindActive(ctx)
}

// CreateEmployee registers a new employee
func (s *TimeClockService) CreateEmployee(ctx context.Context, name, role string) (*workforce.Employee, error) {
	employee, err := workforce.NewEmployee(name, role)
	if err != nil {
		return nil, err
	}
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}
