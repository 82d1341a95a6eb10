package workforceapp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/siteops/backend/internal/domain/workforce"
)

// TimesheetEntry is one clock-in/out pair on a timesheet
type TimesheetEntry struct {
	ID       uuid.UUID  `json:"id"`
	ClockIn  time.Time  `json:"clock_in"`
	ClockOut *time.Time `json:"clock_out,omitempty"`
	Site     string     `json:"site,omitempty"`
	Notes    string     `json:"notes,omitempty"`
	Minutes  int        `json:"minutes"`
	Open     bool       `json:"open"`
}

// TimesheetDay groups a day's entries with a per-day total
type TimesheetDay struct {
	Date    time.Time        `json:"date"`
	Entries []TimesheetEntry `json:"entries"`
	Minutes int              `json:"minutes"`
}

// Timesheet is one employee's week of time entries. Days always holds
// seven elements starting at WeekStart, empty days included.
type Timesheet struct {
	EmployeeID   uuid.UUID      `json:"employee_id"`
	EmployeeName string         `json:"employee_name"`
	WeekStart    time.Time      `json:"week_start"`
	WeekEnd      time.Time      `json:"week_end"`
	Days         []TimesheetDay `json:"days"`
	TotalMinutes int            `json:"total_minutes"`
}

// TimesheetService produces weekly timesheets. The first day of the week
// is configuration, not an assumption.
type TimesheetService struct {
	employeeRepo workforce.EmployeeRepository
	entryRepo    workforce.TimeEntryRepository
	firstDay     time.Weekday
	now          func() time.Time
}

// TimesheetOption configures a TimesheetService
type TimesheetOption func(*TimesheetService)

// WithFirstDayOfWeek sets which weekday starts the working week
func WithFirstDayOfWeek(day time.Weekday) TimesheetOption {
	return func(s *TimesheetService) {
		s.firstDay = day
	}
}

// WithTimesheetClock injects the time source, used by tests
func WithTimesheetClock(now func() time.Time) TimesheetOption {
	return func(s *TimesheetService) {
		s.now = now
	}
}

// NewTimesheetService creates a new TimesheetService. The week starts on
// Monday unless configured otherwise.
func NewTimesheetService(
	employeeRepo workforce.EmployeeRepository,
	entryRepo workforce.TimeEntryRepository,
	opts ...TimesheetOption,
) *TimesheetService {
	s := &TimesheetService{
		employeeRepo: employeeRepo,
		entryRepo:    entryRepo,
		firstDay:     time.Monday,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FirstDayOfWeek returns the configured start of the working week
func (s *TimesheetService) FirstDayOfWeek() time.Weekday {
	return s.firstDay
}

// ForEmployee builds the employee's timesheet for the week containing ref.
// A zero ref means the current week.
func (s *TimesheetService) ForEmployee(ctx context.Context, employeeID uuid.UUID, ref time.Time) (*Timesheet, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if ref.IsZero() {
		ref = s.now()
	}
	start, end := workforce.WeekRange(ref, s.firstDay)

	entries, err := s.entryRepo.FindByEmployeeBetween(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	sheet := &Timesheet{
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		WeekStart:    start,
		WeekEnd:      end,
		Days:         make([]TimesheetDay, 7),
	}
	for i := range sheet.Days {
		sheet.Days[i].Date = start.AddDate(0, 0, i)
		sheet.Days[i].Entries = []TimesheetEntry{}
	}

	for _, entry := range entries {
		idx := dayIndex(start, entry.ClockIn)
		if idx < 0 || idx > 6 {
			continue
		}
		minutes := int(entry.Duration().Minutes())
		sheet.Days[idx].Entries = append(sheet.Days[idx].Entries, TimesheetEntry{
			ID:       entry.ID,
			ClockIn:  entry.ClockIn,
			ClockOut: entry.ClockOut,
			Site:     entry.Site,
			Notes:    entry.Notes,
			Minutes:  minutes,
			Open:     entry.IsOpen(),
		})
		sheet.Days[idx].Minutes += minutes
		sheet.TotalMinutes += minutes
	}

	return sheet, nil
}

// ForWeek builds timesheets for every active employee in the week of ref
func (s *TimesheetService) ForWeek(ctx context.Context, ref time.Time) ([]Timesheet, error) {
	employees, err := s.employeeRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	sheets := make([]Timesheet, 0, len(employees))
	for _, employee := range employees {
		sheet, err := s.ForEmployee(ctx, employee.ID, ref)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, *sheet)
	}
	return sheets, nil
}

// dayIndex returns how many whole days t falls after weekStart
func dayIndex(weekStart, t time.Time) int {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, weekStart.Location())
	return int(day.Sub(weekStart).Hours() / 24)
}
