package helper_util

import "time"

// DayStart truncates t to midnight in its own location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// InclusiveDays counts whole days between two dates, both ends included.
func InclusiveDays(start, end time.Time) int {
	start, end = DayStart(start), DayStart(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
