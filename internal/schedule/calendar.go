package schedule

import (
	"time"

	"github.com/alexanderramin/pacer/internal/domain"
)

const dateLayout = "2006-01-02"

// DayKey formats a time as the canonical per-day map key (YYYY-MM-DD).
func DayKey(t time.Time) string {
	return domain.DateOnly(t).Format(dateLayout)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return domain.DateOnly(a).Equal(domain.DateOnly(b))
}

// EnumerateDays returns every calendar date from start through end inclusive,
// ascending. Returns nil if end precedes start.
func EnumerateDays(start, end time.Time) []time.Time {
	s := domain.DateOnly(start)
	e := domain.DateOnly(end)
	if e.Before(s) {
		return nil
	}
	days := make([]time.Time, 0, DayCount(s, e))
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DayCount returns the number of calendar days from start through end
// inclusive, or zero if end precedes start.
func DayCount(start, end time.Time) int {
	s := domain.DateOnly(start)
	e := domain.DateOnly(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
