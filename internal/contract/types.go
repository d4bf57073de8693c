package contract

import (
	"time"

	"github.com/alexanderramin/pacer/internal/domain"
	"github.com/alexanderramin/pacer/internal/schedule"
)

// CreatePlanRequest carries everything needed to set up a plan and seed its
// initial per-day targets.
type CreatePlanRequest struct {
	Title      string
	ShortID    string
	TotalPages int
	StartDate  time.Time
	EndDate    time.Time
}

// MarkRequest is a single day-status transition. PlanRef accepts a short ID
// or a full plan ID.
type MarkRequest struct {
	PlanRef     string
	Date        time.Time
	Status      domain.DayStatus
	ActualPages *int
}

// MarkResult reports the applied transition and the rebalancing it caused.
type MarkResult struct {
	Plan *domain.Plan
	Day  domain.DaySession
	// RebalancedDays is how many other days' targets changed.
	RebalancedDays int
	// ScheduleRev is the plan's revision after this write; an optimistic
	// caller discards any locally applied delta with an older rev.
	ScheduleRev int64
	Warnings    []string
}

// ProgressResponse pairs a plan with its evaluated progress report.
type ProgressResponse struct {
	Plan   *domain.Plan
	Report schedule.Report
}

// PlanOverview is one row of the multi-plan status listing.
type PlanOverview struct {
	Plan   *domain.Plan
	Report schedule.Report
}
