package workforce

import (
	"time"

	"github.com/google/uuid"
	"github.com/siteops/backend/internal/domain/shared"
)

// TimeEntry records a single clock-in/clock-out pair for an employee.
// An entry with a nil ClockOut is "open": the employee is on the clock.
type TimeEntry struct {
	shared.BaseAggregateRoot
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClockIn    time.Time  `gorm:"not null;index"`
	ClockOut   *time.Time `gorm:"index"`
	Site       string     `gorm:"type:varchar(200)"`
	Notes      string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (TimeEntry) TableName() string {
	return "time_entries"
}

// NewTimeEntry opens a time entry at the given clock-in instant
func NewTimeEntry(employeeID uuid.UUID, clockIn time.Time, site string) (*TimeEntry, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID is required")
	}
	if clockIn.IsZero() {
		clockIn = time.Now()
	}

	return &TimeEntry{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EmployeeID:        employeeID,
		ClockIn:           clockIn,
		Site:              site,
	}, nil
}

// IsOpen returns true while the employee has not clocked out
func (t *TimeEntry) IsOpen() bool {
	return t.ClockOut == nil
}

// Close records the clock-out instant. Clock-out must not precede clock-in.
func (t *TimeEntry) Close(clockOut time.Time) error {
	if !t.IsOpen() {
		return shared.ErrInvalidState
	}
	if clockOut.Before(t.ClockIn) {
		return shared.NewDomainError("INVALID_CLOCK_OUT", "Clock-out cannot precede clock-in")
	}
	t.ClockOut = &clockOut
	t.Touch()
	t.IncrementVersion()
	return nil
}

// Duration returns the worked duration, or elapsed time for an open entry
func (t *TimeEntry) Duration() time.Duration {
	if t.ClockOut == nil {
		return time.Since(t.ClockIn)
	}
	return t.ClockOut.Sub(t.ClockIn)
}
