package domain

import (
	"fmt"
	"regexp"
	"time"
)

var shortIDPattern = regexp.MustCompile(`^[A-Z]{3,6}[0-9]{2,4}$`)

// Plan is a reading plan: a fixed page count to finish across an inclusive
// date range. TotalPages may be edited later; the date range is immutable.
type Plan struct {
	ID         string
	ShortID    string
	Title      string
	TotalPages int
	StartDate  time.Time
	EndDate    time.Time
	Status     PlanStatus
	// ScheduleRev increments on every redistribution write; callers holding
	// an optimistic view compare revs to detect a superseded schedule.
	ScheduleRev int64
	ArchivedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidateShortID checks that ShortID is non-empty and matches the required
// format: 3-6 uppercase letters followed by 2-4 digits (e.g. HOB01, DUNE02).
func (p *Plan) ValidateShortID() error {
	if p.ShortID == "" {
		return fmt.Errorf("short ID is required (use --id flag)")
	}
	if !shortIDPattern.MatchString(p.ShortID) {
		return fmt.Errorf("short ID %q must be 3-6 uppercase letters followed by 2-4 digits (e.g. HOB01)", p.ShortID)
	}
	return nil
}

// Validate checks page count and date range before any write.
func (p *Plan) Validate() error {
	if p.TotalPages <= 0 {
		return fmt.Errorf("total pages must be positive, got %d", p.TotalPages)
	}
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("end date %s is before start date %s",
			p.EndDate.Format("2006-01-02"), p.StartDate.Format("2006-01-02"))
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It prefers ShortID; if empty it truncates ID to 8 characters.
func (p *Plan) DisplayID() string {
	if p.ShortID != "" {
		return p.ShortID
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// Contains reports whether d falls within the plan's inclusive date range,
// compared at calendar-day granularity.
func (p *Plan) Contains(d time.Time) bool {
	day := DateOnly(d)
	return !day.Before(DateOnly(p.StartDate)) && !day.After(DateOnly(p.EndDate))
}

// DateOnly strips the time-of-day component, keeping the calendar date.
// All plan arithmetic treats inputs as already-local calendar dates.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
