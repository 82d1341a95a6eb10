package workforceapp

import (
	"context"
	"testing"
	"time"

	"github.com/siteops/backend/internal/domain/workforce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// closedEntry builds a closed entry spanning [clockIn, clockIn+d)
func closedEntry(t *testing.T, e *workforce.Employee, clockIn time.Time, d time.Duration) workforce.TimeEntry {
	t.Helper()
	entry, err := workforce.NewTimeEntry(e.ID, clockIn, "yard")
	require.NoError(t, err)
	require.NoError(t, entry.Close(clockIn.Add(d)))
	return *entry
}

func TestTimesheetService_ForEmployee(t *testing.T) {
	employee := newEmployee(t, "Sam Reed")

	// Wednesday 2026-03-04; week starts Monday 2026-03-02.
	ref := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	entries := []workforce.TimeEntry{
		closedEntry(t, employee, monday.Add(8*time.Hour), 8*time.Hour),
		closedEntry(t, employee, monday.AddDate(0, 0, 2).Add(7*time.Hour), 4*time.Hour),
		closedEntry(t, employee, monday.AddDate(0, 0, 2).Add(13*time.Hour), 4*time.Hour),
	}

	employeeRepo := new(MockEmployeeRepository)
	entryRepo := new(MockTimeEntryRepository)
	employeeRepo.On("FindByID", mock.Anything, employee.ID).Return(employee, nil)
	entryRepo.On("FindByEmployeeBetween", mock.Anything, employee.ID, monday, monday.AddDate(0, 0, 7)).
		Return(entries, nil)

	svc := NewTimesheetService(employeeRepo, entryRepo)

	sheet, err := svc.ForEmployee(context.Background(), employee.ID, ref)
	require.NoError(t, err)

	assert.Equal(t, monday, sheet.WeekStart)
	assert.Equal(t, monday.AddDate(0, 0, 7), sheet.WeekEnd)
	require.Len(t, sheet.Days, 7)

	// Monday: one 8h entry. Wednesday: two 4h entries. Rest empty.
	assert.Equal(t, 480, sheet.Days[0].Minutes)
	require.Len(t, sheet.Days[0].Entries, 1)
	assert.Equal(t, 480, sheet.Days[2].Minutes)
	require.Len(t, sheet.Days[2].Entries, 2)
	assert.Empty(t, sheet.Days[1].Entries)
	assert.Equal(t, 960, sheet.TotalMinutes)
	assert.Equal(t, "Sam Reed", sheet.EmployeeName)
}

func TestTimesheetService_ConfiguredFirstDay(t *testing.T) {
	employee := newEmployee(t, "Sam Reed")

	// Saturday 2026-03-07 with a Sunday-start week: the containing week
	// starts Sunday 2026-03-01, not Monday.
	ref := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	employeeRepo := new(MockEmployeeRepository)
	entryRepo := new(MockTimeEntryRepository)
	employeeRepo.On("FindByID", mock.Anything, employee.ID).Return(employee, nil)
	entryRepo.On("FindByEmployeeBetween", mock.Anything, employee.ID, sunday, sunday.AddDate(0, 0, 7)).
		Return([]workforce.TimeEntry{}, nil)

	svc := NewTimesheetService(employeeRepo, entryRepo,
		WithFirstDayOfWeek(time.Sunday),
	)

	sheet, err := svc.ForEmployee(context.Background(), employee.ID, ref)
	require.NoError(t, err)
	assert.Equal(t, sunday, sheet.WeekStart)
	assert.Equal(t, time.Sunday, svc.FirstDayOfWeek())
}

func TestTimesheetService_ZeroRefUsesClock(t *testing.T) {
	employee := newEmployee(t, "Sam Reed")

	fixed := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	employeeRepo := new(MockEmployeeRepository)
	entryRepo := new(MockTimeEntryRepository)
	employeeRepo.On("FindByID", mock.Anything, employee.ID).Return(employee, nil)
	entryRepo.On("FindByEmployeeBetween", mock.Anything, employee.ID, monday, monday.AddDate(0, 0, 7)).
		Return([]workforce.TimeEntry{}, nil)

	svc := NewTimesheetService(employeeRepo, entryRepo,
		WithTimesheetClock(func() time.Time { return fixed }),
	)

	sheet, err := svc.ForEmployee(context.Background(), employee.ID, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, monday, sheet.WeekStart)
}

func TestTimesheetService_ForWeek(t *testing.T) {
	a := newEmployee(t, "Sam Reed")
	b := newEmployee(t, "Alex Fox")

	ref := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	employeeRepo := new(MockEmployeeRepository)
	entryRepo := new(MockTimeEntryRepository)
	employeeRepo.On("FindActive", mock.Anything).Return([]workforce.Employee{*a, *b}, nil)
	employeeRepo.On("FindByID", mock.Anything, a.ID).Return(a, nil)
	employeeRepo.On("FindByID", mock.Anything, b.ID).Return(b, nil)
	entryRepo.On("FindByEmployeeBetween", mock.Anything, a.ID, monday, monday.AddDate(0, 0, 7)).
		Return([]workforce.TimeEntry{closedEntry(t, a, monday.Add(8*time.Hour), 2*time.Hour)}, nil)
	entryRepo.On("FindByEmployeeBetween", mock.Anything, b.ID, monday, monday.AddDate(0, 0, 7)).
		Return([]workforce.TimeEntry{}, nil)

	svc := NewTimesheetService(employeeRepo, entryRepo)

	sheets, err := svc.ForWeek(context.Background(), ref)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Equal(t, 120, sheets[0].TotalMinutes)
	assert.Equal(t, 0, sheets[1].TotalMinutes)
}
