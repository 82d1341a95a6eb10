package plant

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/siteops/backend/internal/domain/shared"
)

// CheckStatus represents the outcome of a plant inspection
type CheckStatus string

const (
	CheckStatusPass   CheckStatus = "pass"
	CheckStatusDefect CheckStatus = "defect"
)

// PlantCheck records one weekly inspection of a piece of plant or machinery
type PlantCheck struct {
	shared.BaseAggregateRoot
	PlantID   uuid.UUID   `gorm:"type:uuid;not null;index"`
	PlantName string      `gorm:"type:varchar(200);not null"`
	CheckedBy string      `gorm:"type:varchar(200);not null"`
	CheckedAt time.Time   `gorm:"not null;index"`
	Status    CheckStatus `gorm:"type:varchar(20);not null"`
	Defects   string      `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PlantCheck) TableName() string {
	return "plant_checks"
}

// NewPlantCheck records a completed inspection. A defect status requires a
// defect description.
func NewPlantCheck(plantID uuid.UUID, plantName, checkedBy string, checkedAt time.Time, status CheckStatus, defects string) (*PlantCheck, error) {
	if plantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PLANT", "Plant ID is required")
	}
	plantName = strings.TrimSpace(plantName)
	if plantName == "" {
		return nil, shared.NewDomainError("INVALID_PLANT", "Plant name is required")
	}
	if status != CheckStatusPass && status != CheckStatusDefect {
		return nil, shared.NewDomainError("INVALID_STATUS", "Check status must be pass or defect")
	}
	if status == CheckStatusDefect && strings.TrimSpace(defects) == "" {
		return nil, shared.NewDomainError("MISSING_DEFECTS", "Defect description is required for a defect status")
	}
	if checkedAt.IsZero() {
		checkedAt = time.Now()
	}

	return &PlantCheck{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PlantID:           plantID,
		PlantName:         plantName,
		CheckedBy:         strings.TrimSpace(checkedBy),
		CheckedAt:         checkedAt,
		Status:            status,
		Defects:           strings.TrimSpace(defects),
	}, nil
}

// HasDefect returns true when the inspection found a defect
func (c *PlantCheck) HasDefect() bool {
	return c.Status == CheckStatusDefect
}

// PlantCheckRepository defines the interface for plant check persistence
type PlantCheckRepository interface {
	// FindByID finds a check by ID
	FindByID(ctx context.Context, id uuid.UUID) (*PlantCheck, error)

	// FindBetween returns checks within [from, to), newest first
	FindBetween(ctx context.Context, from, to time.Time) ([]PlantCheck, error)

	// CountBetween counts checks within [from, to)
	CountBetween(ctx context.Context, from, to time.Time) (int64, error)

	// Create persists a new check
	Create(ctx context.Context, check *PlantCheck) error
}
