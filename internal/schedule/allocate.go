package schedule

import (
	"fmt"
	"time"
)

// PageTarget is one day's computed planned-pages value, returned as a
// desired write; the caller's store applies it.
type PageTarget struct {
	Date  time.Time
	Pages int
}

// Allocate splits totalPages evenly across the inclusive start..end range.
// Each day gets floor(total/n); the leftover pages go one apiece to the
// earliest days, so the front of the range carries the uneven remainder
// and the sum is exactly totalPages.
func Allocate(totalPages int, start, end time.Time) ([]PageTarget, error) {
	if totalPages <= 0 {
		return nil, fmt.Errorf("total pages must be positive, got %d: %w", totalPages, ErrInvalidPages)
	}
	days := EnumerateDays(start, end)
	if len(days) == 0 {
		return nil, fmt.Errorf("empty range %s..%s: %w", DayKey(start), DayKey(end), ErrInvalidRange)
	}
	return splitAcross(totalPages, days), nil
}

// splitAcross assigns base or base+1 pages per day, extras to the front.
// pages may be zero (a fully satisfied plan); days must be non-empty.
func splitAcross(pages int, days []time.Time) []PageTarget {
	n := len(days)
	base := pages / n
	remainder := pages % n

	targets := make([]PageTarget, n)
	for i, d := range days {
		p := base
		if i < remainder {
			p++
		}
		targets[i] = PageTarget{Date: d, Pages: p}
	}
	return targets
}
