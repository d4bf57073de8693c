package schedule

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pacer/internal/domain"
)

// Redistribute recomputes planned-pages targets for every open (unset) day
// so that the conservation invariant holds:
//
//	sum(planned over unset days) == totalPages - sum(effective over read days)
//
// Pages already read are subtracted from the pool; missed days keep their
// frozen targets but neither owe pages back nor receive new ones. The
// leftover is split base + remainder-to-front across open days in date
// order, exactly like the initial allocation.
//
// A date absent from days is an implicit unset day with planned zero.
// Out-of-range records are dropped from the computation and reported as
// warnings rather than failing the call.
//
// Only targets that differ from the current stored value are returned, so
// a second call with no intervening status change returns nothing.
func Redistribute(plan *domain.Plan, days []domain.DaySession) ([]PageTarget, []string, error) {
	if plan.TotalPages <= 0 {
		return nil, nil, fmt.Errorf("total pages must be positive, got %d: %w", plan.TotalPages, ErrInvalidPages)
	}
	rangeDays := EnumerateDays(plan.StartDate, plan.EndDate)
	if len(rangeDays) == 0 {
		return nil, nil, fmt.Errorf("empty range %s..%s: %w",
			DayKey(plan.StartDate), DayKey(plan.EndDate), ErrInvalidRange)
	}

	byKey := make(map[string]domain.DaySession, len(days))
	var warnings []string
	for _, d := range days {
		if !plan.Contains(d.Date) {
			warnings = append(warnings, fmt.Sprintf("ignoring day %s outside plan range", DayKey(d.Date)))
			continue
		}
		byKey[DayKey(d.Date)] = d
	}

	accounted := 0
	for _, d := range byKey {
		if d.Status == domain.DayRead {
			accounted += d.EffectivePages()
		}
	}
	remaining := plan.TotalPages - accounted
	if remaining < 0 {
		remaining = 0
	}

	var open []PageTarget // date plus the currently stored planned value
	for _, day := range rangeDays {
		rec, ok := byKey[DayKey(day)]
		if !ok {
			open = append(open, PageTarget{Date: day, Pages: 0})
			continue
		}
		if rec.Status == domain.DayUnset {
			open = append(open, PageTarget{Date: day, Pages: rec.PlannedPages})
		}
	}
	if len(open) == 0 {
		// Nothing left to rebalance; any unread remainder is surfaced by
		// Evaluate as overdue, not absorbed here.
		return nil, warnings, nil
	}

	fresh := splitAcross(remaining, openDates(open))
	writes := make([]PageTarget, 0, len(fresh))
	for i, target := range fresh {
		if target.Pages != open[i].Pages {
			writes = append(writes, target)
		}
	}
	return writes, warnings, nil
}

func openDates(open []PageTarget) []time.Time {
	out := make([]time.Time, len(open))
	for i, t := range open {
		out[i] = t.Date
	}
	return out
}
