package dashboard

import (
	"context"
	"time"

	"github.com/siteops/backend/internal/domain/plant"
	"github.com/siteops/backend/internal/domain/ppe"
	"github.com/siteops/backend/internal/domain/workforce"
)

// Stats carries the dashboard stat-card counts
type Stats struct {
	ActiveEmployees int64 `json:"active_employees"`
	OnClock         int64 `json:"on_clock"`
	LowStockLines   int64 `json:"low_stock_lines"`
	ChecksThisWeek  int64 `json:"checks_this_week"`
}

// StatsService aggregates counts across the domains for the dashboard
type StatsService struct {
	employeeRepo      workforce.EmployeeRepository
	entryRepo         workforce.TimeEntryRepository
	txnRepo           ppe.StockTransactionRepository
	checkRepo         plant.PlantCheckRepository
	lowStockThreshold int
	firstDay          time.Weekday
	now               func() time.Time
}

// StatsOption configures a StatsService
type StatsOption func(*StatsService)

// WithLowStockThreshold sets the stock level below which a line counts as low
func WithLowStockThreshold(n int) StatsOption {
	return func(s *StatsService) {
		s.lowStockThreshold = n
	}
}

// WithFirstDayOfWeek sets which weekday starts the reporting week
func WithFirstDayOfWeek(day time.Weekday) StatsOption {
	return func(s *StatsService) {
		s.firstDay = day
	}
}

// WithClock injects the time source, used by tests
func WithClock(now func() time.Time) StatsOption {
	return func(s *StatsService) {
		s.now = now
	}
}

// NewStatsService creates a new StatsService
func NewStatsService(
	employeeRepo workforce.EmployeeRepository,
	entryRepo workforce.TimeEntryRepository,
	txnRepo ppe.StockTransactionRepository,
	checkRepo plant.PlantCheckRepository,
	opts ...StatsOption,
) *StatsService {
	s := &StatsService{
		employeeRepo:      employeeRepo,
		entryRepo:         entryRepo,
		txnRepo:           txnRepo,
		checkRepo:         checkRepo,
		lowStockThreshold: 5,
		firstDay:          time.Monday,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Collect gathers the stat-card counts
func (s *StatsService) Collect(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	var err error
	if stats.ActiveEmployees, err = s.employeeRepo.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.OnClock, err = s.entryRepo.CountOpen(ctx); err != nil {
		return nil, err
	}
	if stats.LowStockLines, err = s.txnRepo.CountBelow(ctx, s.lowStockThreshold); err != nil {
		return nil, err
	}

	from, to := workforce.WeekRange(s.now(), s.firstDay)
	if stats.ChecksThisWeek, err = s.checkRepo.CountBetween(ctx, from, to); err != nil {
		return nil, err
	}

	return stats, nil
}
