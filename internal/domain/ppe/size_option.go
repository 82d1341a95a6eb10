package ppe

import (
	"strings"

	"github.com/siteops/backend/internal/domain/shared"
)

// SizeOption represents a valid size code within a category.
// The composite key (category, code) must resolve to exactly one option;
// a clothing "L" is a different entity from a footwear "L".
type SizeOption struct {
	shared.BaseEntity
	Category string `gorm:"type:varchar(50);not null;uniqueIndex:idx_size_category_code,priority:1"`
	Code     string `gorm:"type:varchar(20);not null;uniqueIndex:idx_size_category_code,priority:2"`
	Active   bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (SizeOption) TableName() string {
	return "ppe_size_options"
}

// NewSizeOption creates a new size option for a category
func NewSizeOption(category, code string) (*SizeOption, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Size category cannot be empty")
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_SIZE_CODE", "Size code cannot be empty")
	}

	return &SizeOption{
		BaseEntity: shared.NewBaseEntity(),
		Category:   category,
		Code:       code,
		Active:     true,
	}, nil
}

// Key returns the composite lookup key for this option
func (s *SizeOption) Key() string {
	return SizeKey(s.Category, s.Code)
}

// SizeKey builds the composite (category, code) lookup key
func SizeKey(category, code string) string {
	return strings.ToLower(strings.TrimSpace(category)) + "|" + strings.TrimSpace(code)
}
