package csvimport

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseLooseInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"10", 10},
		{" 10 units", 10},
		{"1,000", 1000},
		{"-5", -5},
		{"", 0},
		{"abc", 0},
		{"£25", 25},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLooseInt(tt.input), "input %q", tt.input)
	}
}

func TestParseLooseDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2.50", "2.50"},
		{"£2.50", "2.50"},
		{"$1,250.75", "1250.75"},
		{"-0.01", "-0.01"},
		{"free", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLooseDecimal(tt.input), "input %q", tt.input)
	}
}

func TestParseLooseDecimal_RoundTrip(t *testing.T) {
	d, err := decimal.NewFromString(ParseLooseDecimal("£2.50"))
	assert.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("2.5")))
}

func TestErrorCollection_Bounding(t *testing.T) {
	ec := NewErrorCollection(2)
	for i := 1; i <= 5; i++ {
		ec.Add(NewRowError(i, "", ErrCodeImportShortRow, "row too short"))
	}

	assert.Equal(t, 2, ec.Count())
	assert.Equal(t, 5, ec.TotalCount())
	assert.True(t, ec.IsTruncated())
	assert.True(t, ec.HasErrors())
	assert.Contains(t, ec.String(), "5 error(s) found (showing first 2)")
}

func TestImportStatus_Terminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.False(t, StatusImporting.Terminal())
	assert.False(t, StatusIdle.Terminal())
}
