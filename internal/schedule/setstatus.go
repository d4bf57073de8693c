package schedule

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pacer/internal/domain"
)

// SetStatus returns a copy of days with the record for date transitioned to
// newStatus. It is the single entry point for every transition: the old
// status is cleared and the new one applied, so even read->missed (two
// steps from the UI's perspective) goes through one path.
//
// actualPages is only meaningful when newStatus is DayRead; nil means the
// day's frozen planned target counts as read. The input slice is never
// mutated. Callers run Redistribute on the result before persisting.
func SetStatus(
	plan *domain.Plan,
	days []domain.DaySession,
	date time.Time,
	newStatus domain.DayStatus,
	actualPages *int,
) ([]domain.DaySession, domain.DaySession, error) {
	if !domain.ValidDayStatuses[string(newStatus)] {
		return nil, domain.DaySession{}, fmt.Errorf("status %q: %w", newStatus, ErrInvalidStatus)
	}
	if actualPages != nil && *actualPages < 0 {
		return nil, domain.DaySession{}, fmt.Errorf("actual pages %d: %w", *actualPages, ErrInvalidPages)
	}
	if !plan.Contains(date) {
		return nil, domain.DaySession{}, fmt.Errorf("day %s not in %s..%s: %w",
			DayKey(date), DayKey(plan.StartDate), DayKey(plan.EndDate), ErrOutOfRange)
	}

	out := make([]domain.DaySession, len(days))
	copy(out, days)

	idx := -1
	for i := range out {
		if SameDay(out[i].Date, date) {
			idx = i
			break
		}
	}
	if idx == -1 {
		// Lazily created day: no row yet means implicitly unset.
		out = append(out, domain.DaySession{
			PlanID: plan.ID,
			Date:   domain.DateOnly(date),
			Status: domain.DayUnset,
		})
		idx = len(out) - 1
	}

	day := out[idx]

	// Clear the old status, then apply the new one.
	day.Status = domain.DayUnset
	day.ActualPages = nil

	switch newStatus {
	case domain.DayRead:
		day.Status = domain.DayRead
		if actualPages != nil {
			v := *actualPages
			day.ActualPages = &v
		}
	case domain.DayMissed:
		day.Status = domain.DayMissed
	case domain.DayUnset:
		// Already cleared; the day re-enters the open pool and picks up a
		// fresh target on the next Redistribute.
	}

	out[idx] = day
	return out, day, nil
}
