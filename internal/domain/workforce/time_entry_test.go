package workforce

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeEntry_Close(t *testing.T) {
	clockIn := time.Date(2026, 3, 2, 7, 30, 0, 0, time.UTC)

	entry, err := NewTimeEntry(uuid.New(), clockIn, "Depot")
	require.NoError(t, err)
	assert.True(t, entry.IsOpen())

	t.Run("rejects clock-out before clock-in", func(t *testing.T) {
		err := entry.Close(clockIn.Add(-time.Hour))
		assert.Error(t, err)
		assert.True(t, entry.IsOpen())
	})

	t.Run("closes and computes duration", func(t *testing.T) {
		err := entry.Close(clockIn.Add(8 * time.Hour))
		require.NoError(t, err)
		assert.False(t, entry.IsOpen())
		assert.Equal(t, 8*time.Hour, entry.Duration())
	})

	t.Run("cannot close twice", func(t *testing.T) {
		err := entry.Close(clockIn.Add(9 * time.Hour))
		assert.Error(t, err)
	})
}

func TestNewTimeEntry_Validation(t *testing.T) {
	_, err := NewTimeEntry(uuid.Nil, time.Now(), "")
	assert.Error(t, err)

	entry, err := NewTimeEntry(uuid.New(), time.Time{}, "")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), entry.ClockIn, time.Minute)
}

func TestWeekOf(t *testing.T) {
	// Wednesday 2026-03-04
	wed := time.Date(2026, 3, 4, 15, 45, 0, 0, time.UTC)

	tests := []struct {
		name     string
		firstDay time.Weekday
		want     time.Time
	}{
		{"week starts Monday", time.Monday, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{"week starts Sunday", time.Sunday, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"week starts Saturday", time.Saturday, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekOf(wed, tt.firstDay))
		})
	}

	t.Run("first day of week maps to itself", func(t *testing.T) {
		mon := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, mon, WeekOf(mon, time.Monday))
	})

	t.Run("week range is half open", func(t *testing.T) {
		start, end := WeekRange(wed, time.Monday)
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), end)
	})
}
