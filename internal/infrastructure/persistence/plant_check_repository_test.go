package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/siteops/backend/internal/domain/plant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCheck(t *testing.T, repo *GormPlantCheckRepository, checkedAt time.Time, status plant.CheckStatus) *plant.PlantCheck {
	t.Helper()
	defects := ""
	if status == plant.CheckStatusDefect {
		defects = "hydraulic leak"
	}
	check, err := plant.NewPlantCheck(uuid.New(), "Telehandler 03", "Sam Reed", checkedAt, status, defects)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), check))
	return check
}

func TestGormPlantCheckRepository_FindBetween(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewGormPlantCheckRepository(db)

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	nextMonday := monday.AddDate(0, 0, 7)

	early := seedCheck(t, repo, monday.Add(9*time.Hour), plant.CheckStatusPass)
	late := seedCheck(t, repo, monday.AddDate(0, 0, 3), plant.CheckStatusDefect)
	seedCheck(t, repo, nextMonday, plant.CheckStatusPass) // out of range

	checks, err := repo.FindBetween(ctx, monday, nextMonday)
	require.NoError(t, err)
	require.Len(t, checks, 2)

	// Newest first.
	assert.Equal(t, late.ID, checks[0].ID)
	assert.Equal(t, early.ID, checks[1].ID)
	assert.True(t, checks[0].HasDefect())

	count, err := repo.CountBetween(ctx, monday, nextMonday)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
