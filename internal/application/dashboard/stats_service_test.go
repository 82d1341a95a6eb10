package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/siteops/backend/internal/domain/plant"
	"github.com/siteops/backend/internal/domain/ppe"
	"github.com/siteops/backend/internal/domain/shared"
	"github.com/siteops/backend/internal/domain/workforce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEmployeeRepo struct{ mock.Mock }

func (m *mockEmployeeRepo) FindByID(ctx context.Context, id uuid.UUID) (*workforce.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) FindActive(ctx context.Context) ([]workforce.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]workforce.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) FindAll(ctx context.Context, filter shared.Filter) ([]workforce.Employee, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]workforce.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEmployeeRepo) Save(ctx context.Context, employee *workforce.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

type mockTimeEntryRepo struct{ mock.Mock }

func (m *mockTimeEntryRepo) FindByID(ctx context.Context, id uuid.UUID) (*workforce.TimeEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.TimeEntry), args.Error(1)
}

func (m *mockTimeEntryRepo) FindOpenByEmployee(ctx context.Context, employeeID uuid.UUID) (*workforce.TimeEntry, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.TimeEntry), args.Error(1)
}

func (m *mockTimeEntryRepo) FindByEmployeeBetween(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]workforce.TimeEntry, error) {
	args := m.Called(ctx, employeeID, from, to)
	return args.Get(0).([]workforce.TimeEntry), args.Error(1)
}

func (m *mockTimeEntryRepo) FindBetween(ctx context.Context, from, to time.Time) ([]workforce.TimeEntry, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]workforce.TimeEntry), args.Error(1)
}

func (m *mockTimeEntryRepo) CountOpen(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTimeEntryRepo) Save(ctx context.Context, entry *workforce.TimeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type mockTxnRepo struct{ mock.Mock }

func (m *mockTxnRepo) FindByID(ctx context.Context, id uuid.UUID) (*ppe.StockTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ppe.StockTransaction), args.Error(1)
}

func (m *mockTxnRepo) FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]ppe.StockTransaction, error) {
	args := m.Called(ctx, itemID, filter)
	return args.Get(0).([]ppe.StockTransaction), args.Error(1)
}

func (m *mockTxnRepo) FindAll(ctx context.Context, filter shared.Filter) ([]ppe.StockTransaction, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ppe.StockTransaction), args.Error(1)
}

func (m *mockTxnRepo) Create(ctx context.Context, txn *ppe.StockTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *mockTxnRepo) StockLevels(ctx context.Context) ([]ppe.StockLevel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ppe.StockLevel), args.Error(1)
}

func (m *mockTxnRepo) CountBelow(ctx context.Context, threshold int) (int64, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).(int64), args.Error(1)
}

type mockCheckRepo struct{ mock.Mock }

func (m *mockCheckRepo) FindByID(ctx context.Context, id uuid.UUID) (*plant.PlantCheck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plant.PlantCheck), args.Error(1)
}

func (m *mockCheckRepo) FindBetween(ctx context.Context, from, to time.Time) ([]plant.PlantCheck, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]plant.PlantCheck), args.Error(1)
}

func (m *mockCheckRepo) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCheckRepo) Create(ctx context.Context, check *plant.PlantCheck) error {
	args := m.Called(ctx, check)
	return args.Error(0)
}

func TestStatsService_Collect(t *testing.T) {
	// Wednesday 2026-03-04; Monday-start week is [03-02, 03-09).
	fixed := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	employeeRepo := new(mockEmployeeRepo)
	entryRepo := new(mockTimeEntryRepo)
	txnRepo := new(mockTxnRepo)
	checkRepo := new(mockCheckRepo)

	employeeRepo.On("CountActive", mock.Anything).Return(int64(12), nil)
	entryRepo.On("CountOpen", mock.Anything).Return(int64(7), nil)
	txnRepo.On("CountBelow", mock.Anything, 3).Return(int64(2), nil)
	checkRepo.On("CountBetween", mock.Anything, monday, monday.AddDate(0, 0, 7)).Return(int64(5), nil)

	svc := NewStatsService(employeeRepo, entryRepo, txnRepo, checkRepo,
		WithLowStockThreshold(3),
		WithClock(func() time.Time { return fixed }),
	)

	stats, err := svc.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.ActiveEmployees)
	assert.Equal(t, int64(7), stats.OnClock)
	assert.Equal(t, int64(2), stats.LowStockLines)
	assert.Equal(t, int64(5), stats.ChecksThisWeek)
}

func TestStatsService_CollectPropagatesErrors(t *testing.T) {
	employeeRepo := new(mockEmployeeRepo)
	entryRepo := new(mockTimeEntryRepo)
	txnRepo := new(mockTxnRepo)
	checkRepo := new(mockCheckRepo)

	employeeRepo.On("CountActive", mock.Anything).Return(int64(0), shared.ErrNotFound)

	svc := NewStatsService(employeeRepo, entryRepo, txnRepo, checkRepo)

	_, err := svc.Collect(context.Background())
	assert.Error(t, err)
}
