package domain

import (
	"fmt"
	"time"
)

// DaySession is the per-calendar-day record of a plan. Rows are created
// lazily; a date with no row is implicitly unset with planned pages zero.
type DaySession struct {
	PlanID string
	Date   time.Time
	Status DayStatus
	// PlannedPages is the schedule's current target for this day. It is
	// rewritten by redistribution while the day is unset and frozen once
	// the day is marked read or missed.
	PlannedPages int
	// ActualPages overrides PlannedPages as the pages counted toward
	// progress; only meaningful while Status is DayRead.
	ActualPages *int
	UpdatedAt   time.Time
}

// EffectivePages is the page count a read day contributes to progress:
// the user-entered actual count if present, else the frozen planned target.
func (d *DaySession) EffectivePages() int {
	if d.ActualPages != nil {
		return *d.ActualPages
	}
	return d.PlannedPages
}

// Validate rejects malformed records before any write.
func (d *DaySession) Validate() error {
	if !ValidDayStatuses[string(d.Status)] {
		return fmt.Errorf("invalid day status %q", d.Status)
	}
	if d.PlannedPages < 0 {
		return fmt.Errorf("planned pages must be non-negative, got %d", d.PlannedPages)
	}
	if d.ActualPages != nil && *d.ActualPages < 0 {
		return fmt.Errorf("actual pages must be non-negative, got %d", *d.ActualPages)
	}
	return nil
}
