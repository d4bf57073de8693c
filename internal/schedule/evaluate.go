package schedule

import (
	"time"

	"github.com/alexanderramin/pacer/internal/domain"
)

type ReportKind string

const (
	ReportOnTrack ReportKind = "on_track"
	ReportCatchUp ReportKind = "catch_up"
	ReportOverdue ReportKind = "overdue"
)

// Report is the progress picture as of an injected "today".
type Report struct {
	Kind           ReportKind
	TotalPagesRead int
	// ExpectedToday is the cumulative planned pages through today under the
	// current (post-redistribution) schedule, not the original allocation.
	ExpectedToday  int
	RemainingPages int
	RemainingDays  int
	// ExplicitMissed counts days before today the user marked missed;
	// ImplicitPastUnread counts days before today simply never recorded.
	ExplicitMissed     int
	ImplicitPastUnread int
	// SuggestedPages is today's catch-up target: remaining pages divided by
	// remaining days, rounded up so the suggestion actually closes the gap.
	// Zero when on track; the full remainder when overdue.
	SuggestedPages int
}

// Evaluate derives cumulative actual vs expected progress for a plan as of
// today. It never fails on a valid plan: out-of-range records are ignored
// and a plan past its end date simply reports overdue.
func Evaluate(plan *domain.Plan, days []domain.DaySession, today time.Time) Report {
	today = domain.DateOnly(today)

	byKey := make(map[string]domain.DaySession, len(days))
	for _, d := range days {
		if plan.Contains(d.Date) {
			byKey[DayKey(d.Date)] = d
		}
	}

	totalRead := 0
	for _, d := range byKey {
		if d.Status == domain.DayRead {
			totalRead += d.EffectivePages()
		}
	}

	var expected, explicitMissed, implicitUnread int
	for _, day := range EnumerateDays(plan.StartDate, plan.EndDate) {
		rec, ok := byKey[DayKey(day)]
		if !day.After(today) {
			if ok {
				expected += rec.PlannedPages
			}
		}
		if day.Before(today) {
			switch {
			case ok && rec.Status == domain.DayRead:
			case ok && rec.Status == domain.DayMissed:
				explicitMissed++
			default:
				implicitUnread++
			}
		}
	}

	remaining := plan.TotalPages - totalRead
	if remaining < 0 {
		remaining = 0
	}

	report := Report{
		TotalPagesRead:     totalRead,
		ExpectedToday:      expected,
		RemainingPages:     remaining,
		ExplicitMissed:     explicitMissed,
		ImplicitPastUnread: implicitUnread,
	}

	// Remaining days run from today (or the plan start, if today precedes
	// it) through the end date inclusive.
	from := today
	if from.Before(domain.DateOnly(plan.StartDate)) {
		from = domain.DateOnly(plan.StartDate)
	}
	report.RemainingDays = DayCount(from, plan.EndDate)

	if totalRead >= expected {
		report.Kind = ReportOnTrack
		return report
	}

	if report.RemainingDays <= 0 {
		report.Kind = ReportOverdue
		report.SuggestedPages = remaining
		return report
	}

	report.Kind = ReportCatchUp
	report.SuggestedPages = (remaining + report.RemainingDays - 1) / report.RemainingDays
	return report
}
