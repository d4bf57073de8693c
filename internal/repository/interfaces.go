package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/pacer/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Plan, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Plan, error)
	Update(ctx context.Context, p *domain.Plan) error
	// BumpScheduleRev advances the plan's monotonic schedule revision and
	// returns the new value. Called once per redistribution write batch.
	BumpScheduleRev(ctx context.Context, id string) (int64, error)
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type DayRepo interface {
	Get(ctx context.Context, planID string, date time.Time) (*domain.DaySession, error)
	ListByPlan(ctx context.Context, planID string) ([]domain.DaySession, error)
	// UpsertBatch writes the given day records in one pass; redistribution
	// touches many days that must land together.
	UpsertBatch(ctx context.Context, days []domain.DaySession) error
	Delete(ctx context.Context, planID string, date time.Time) error
}

type AuditRepo interface {
	Append(ctx context.Context, e *domain.AuditEntry) error
	ListByPlan(ctx context.Context, planID string) ([]domain.AuditEntry, error)
}
