package plantapp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/siteops/backend/internal/domain/plant"
	"github.com/siteops/backend/internal/domain/workforce"
	"go.uber.org/zap"
)

// PlantCheckService records plant inspections and reports on the current
// inspection week.
type PlantCheckService struct {
	checkRepo plant.PlantCheckRepository
	firstDay  time.Weekday
	logger    *zap.Logger
	now       func() time.Time
}

// CheckOption configures a PlantCheckService
type CheckOption func(*PlantCheckService)

// WithFirstDayOfWeek sets which weekday starts the inspection week
func WithFirstDayOfWeek(day time.Weekday) CheckOption {
	return func(s *PlantCheckService) {
		s.firstDay = day
	}
}

// WithClock injects the time source, used by tests
func WithClock(now func() time.Time) CheckOption {
	return func(s *PlantCheckService) {
		s.now = now
	}
}

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) CheckOption {
	return func(s *PlantCheckService) {
		s.logger = logger
	}
}

// NewPlantCheckService creates a new PlantCheckService
func NewPlantCheckService(checkRepo plant.PlantCheckRepository, opts ...CheckOption) *PlantCheckService {
	s := &PlantCheckService{
		checkRepo: checkRepo,
		firstDay:  time.Monday,
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordCheck persists a plant inspection result
func (s *PlantCheckService) RecordCheck(ctx context.Context, plantID uuid.UUID, plantName, checkedBy string, status plant.CheckStatus, defects string) (*plant.PlantCheck, error) {
	check, err := plant.NewPlantCheck(plantID, plantName, checkedBy, s.now(), status, defects)
	if err != nil {
		return nil, err
	}

	if err := s.checkRepo.Create(ctx, check); err != nil {
		return nil, err
	}

	s.logger.Info("plant check recorded",
		zap.String("plant_id", plantID.String()),
		zap.String("status", string(status)))

	return check, nil
}

// ChecksForWeek returns the inspections in the week containing ref.
// A zero ref means the current week.
func (s *PlantCheckService) ChecksForWeek(ctx context.Context, ref time.Time) ([]plant.PlantCheck, error) {
	if ref.IsZero() {
		ref = s.now()
	}
	from, to := workforce.WeekRange(ref, s.firstDay)
	return s.checkRepo.FindBetween(ctx, from, to)
}

// CountThisWeek counts inspections recorded in the current week
func (s *PlantCheckService) CountThisWeek(ctx context.Context) (int64, error) {
	from, to := workforce.WeekRange(s.now(), s.firstDay)
	return s.checkRepo.CountBetween(ctx, from, to)
}
