package csvimport

import (
	"strconv"
	"strings"
	"time"
)

// isoLayouts are tried first, strictest to loosest
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseFlexibleDate normalises a free-text date string. It tries a strict
// ISO-8601 parse, then splits on any of "/", "-" or "." into three numeric
// parts and interprets them day-month-year, falling back to year-month-day
// when the first reading is implausible (year outside 1901-2099 or
// month/day out of range). Returns nil when no interpretation works; the
// caller treats that as "use the processing timestamp", not as an error.
func ParseFlexibleDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})
	if len(parts) != 3 {
		return nil
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil
		}
		nums[i] = n
	}

	// Day-month-year first (the dominant convention in the source data),
	// then year-month-day.
	if t, ok := plausibleDate(nums[2], nums[1], nums[0]); ok {
		return &t
	}
	if t, ok := plausibleDate(nums[0], nums[1], nums[2]); ok {
		return &t
	}

	return nil
}

// plausibleDate builds a date and rejects implausible readings: years
// outside [1901, 2099], month/day out of range, and calendar overflow
// (time.Date would silently normalise 31 Feb to 3 Mar).
func plausibleDate(year, month, day int) (time.Time, bool) {
	if year < 1901 || year > 2099 {
		return time.Time{}, false
	}
	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	if day < 1 || day > 31 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
