package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pacer/internal/contract"
	"github.com/alexanderramin/pacer/internal/db"
	"github.com/alexanderramin/pacer/internal/domain"
	"github.com/alexanderramin/pacer/internal/repository"
	"github.com/alexanderramin/pacer/internal/schedule"
	"github.com/google/uuid"
)

type planService struct {
	plans repository.PlanRepo
	days  repository.DayRepo
	uow   db.UnitOfWork
}

func NewPlanService(plans repository.PlanRepo, days repository.DayRepo, uow db.UnitOfWork) PlanService {
	return &planService{plans: plans, days: days, uow: uow}
}

func (s *planService) Create(ctx context.Context, req contract.CreatePlanRequest) (*domain.Plan, error) {
	now := time.Now().UTC()
	plan := &domain.Plan{
		ID:         uuid.New().String(),
		ShortID:    strings.ToUpper(strings.TrimSpace(req.ShortID)),
		Title:      strings.TrimSpace(req.Title),
		TotalPages: req.TotalPages,
		StartDate:  domain.DateOnly(req.StartDate),
		EndDate:    domain.DateOnly(req.EndDate),
		Status:     domain.PlanActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if plan.Title == "" {
		return nil, fmt.Errorf("plan title is required")
	}
	if err := plan.ValidateShortID(); err != nil {
		return nil, err
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	// Seed every day's initial target before anything is visible.
	targets, err := schedule.Allocate(plan.TotalPages, plan.StartDate, plan.EndDate)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txDays := repository.NewSQLiteDayRepo(tx)

		if err := txPlans.Create(ctx, plan); err != nil {
			return err
		}

		days := make([]domain.DaySession, len(targets))
		for i, tg := range targets {
			days[i] = domain.DaySession{
				PlanID:       plan.ID,
				Date:         tg.Date,
				Status:       domain.DayUnset,
				PlannedPages: tg.Pages,
			}
		}
		return txDays.UpsertBatch(ctx, days)
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) Get(ctx context.Context, ref string) (*domain.Plan, error) {
	return resolvePlan(ctx, s.plans, ref)
}

func (s *planService) List(ctx context.Context, includeArchived bool) ([]*domain.Plan, error) {
	return s.plans.List(ctx, includeArchived)
}

func (s *planService) SetTotalPages(ctx context.Context, ref string, totalPages int) (*domain.Plan, error) {
	if totalPages <= 0 {
		return nil, fmt.Errorf("total pages must be positive, got %d: %w", totalPages, schedule.ErrInvalidPages)
	}

	plan, err := resolvePlan(ctx, s.plans, ref)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txDays := repository.NewSQLiteDayRepo(tx)
		txAudit := repository.NewSQLiteAuditRepo(tx)

		// Re-read inside the transaction; the resolve above may be stale.
		fresh, err := txPlans.GetByID(ctx, plan.ID)
		if err != nil {
			return err
		}
		oldPages := fresh.TotalPages
		fresh.TotalPages = totalPages
		if err := txPlans.Update(ctx, fresh); err != nil {
			return err
		}

		days, err := txDays.ListByPlan(ctx, fresh.ID)
		if err != nil {
			return err
		}
		writes, _, err := schedule.Redistribute(fresh, days)
		if err != nil {
			return err
		}
		if err := txDays.UpsertBatch(ctx, mergeTargets(fresh.ID, days, writes)); err != nil {
			return err
		}
		if _, err := txPlans.BumpScheduleRev(ctx, fresh.ID); err != nil {
			return err
		}

		entry := &domain.AuditEntry{
			ID:         uuid.New().String(),
			PlanID:     fresh.ID,
			Date:       fresh.StartDate,
			Action:     domain.AuditPagesEdited,
			PagesDelta: totalPages - oldPages,
			Note:       fmt.Sprintf("total pages %d -> %d", oldPages, totalPages),
			CreatedAt:  time.Now().UTC(),
		}
		if err := txAudit.Append(ctx, entry); err != nil {
			return err
		}

		*plan = *fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) Archive(ctx context.Context, ref string) error {
	plan, err := resolvePlan(ctx, s.plans, ref)
	if err != nil {
		return err
	}
	return s.plans.Archive(ctx, plan.ID)
}

func (s *planService) Delete(ctx context.Context, ref string) error {
	plan, err := resolvePlan(ctx, s.plans, ref)
	if err != nil {
		return err
	}
	return s.plans.Delete(ctx, plan.ID)
}

// resolvePlan looks a plan up by short ID first, then by full ID.
func resolvePlan(ctx context.Context, plans repository.PlanRepo, ref string) (*domain.Plan, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("plan reference is required")
	}

	plan, err := plans.GetByShortID(ctx, strings.ToUpper(ref))
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	plan, err = plans.GetByID(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("plan %q: %w", ref, err)
	}
	return plan, nil
}

// mergeTargets folds redistribution writes into the persisted day set,
// creating rows for implicitly unset days that gain a target.
func mergeTargets(planID string, days []domain.DaySession, writes []schedule.PageTarget) []domain.DaySession {
	out := make([]domain.DaySession, 0, len(writes))
	for _, w := range writes {
		merged := domain.DaySession{
			PlanID:       planID,
			Date:         w.Date,
			Status:       domain.DayUnset,
			PlannedPages: w.Pages,
		}
		for _, d := range days {
			if schedule.SameDay(d.Date, w.Date) {
				merged = d
				merged.PlannedPages = w.Pages
				break
			}
		}
		out = append(out, merged)
	}
	return out
}
