package workforce

import "time"

// WeekOf returns the start of the week containing t, where firstDay is the
// configured first day of the working week. The result is truncated to
// midnight in t's location.
func WeekOf(t time.Time, firstDay time.Weekday) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) - int(firstDay) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekRange returns the half-open interval [start, end) for the week of t
func WeekRange(t time.Time, firstDay time.Weekday) (time.Time, time.Time) {
	start := WeekOf(t, firstDay)
	return start, start.AddDate(0, 0, 7)
}
