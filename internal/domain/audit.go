package domain

import "time"

// AuditEntry records a day-status transition, including the planned
// allocation abandoned when a day is marked missed.
type AuditEntry struct {
	ID     string
	PlanID string
	Date   time.Time
	Action AuditAction
	// PagesDelta is the pages the transition added to (positive) or removed
	// from (negative) recorded progress. For MARKED_MISSED it is the negated
	// planned allocation lost with the day.
	PagesDelta int
	Note       string
	CreatedAt  time.Time
}
