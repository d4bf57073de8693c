package service

import (
	"context"
	"time"

	"github.com/alexanderramin/pacer/internal/contract"
	"github.com/alexanderramin/pacer/internal/domain"
)

// Clock supplies "today". It is injected everywhere instead of reading the
// global clock so schedules are testable and timezone-stable.
type Clock func() time.Time

// SystemClock is the production Clock.
func SystemClock() time.Time {
	return time.Now()
}

type PlanService interface {
	Create(ctx context.Context, req contract.CreatePlanRequest) (*domain.Plan, error)
	Get(ctx context.Context, ref string) (*domain.Plan, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Plan, error)
	// SetTotalPages edits the page count and rebalances the still-open days;
	// read and missed days are immutable history.
	SetTotalPages(ctx context.Context, ref string, totalPages int) (*domain.Plan, error)
	Archive(ctx context.Context, ref string) error
	Delete(ctx context.Context, ref string) error
}

type TrackerService interface {
	// SetStatus applies one day transition as a single logical transaction:
	// clear old status, apply new status, redistribute, persist.
	SetStatus(ctx context.Context, req contract.MarkRequest) (*contract.MarkResult, error)
	Days(ctx context.Context, ref string) (*domain.Plan, []domain.DaySession, error)
	Audit(ctx context.Context, ref string) ([]domain.AuditEntry, error)
}

type ProgressService interface {
	Report(ctx context.Context, ref string, today *time.Time) (*contract.ProgressResponse, error)
	Overview(ctx context.Context, includeArchived bool, today *time.Time) ([]contract.PlanOverview, error)
}
