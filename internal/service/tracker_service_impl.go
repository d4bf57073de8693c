package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pacer/internal/contract"
	"github.com/alexanderramin/pacer/internal/db"
	"github.com/alexanderramin/pacer/internal/domain"
	"github.com/alexanderramin/pacer/internal/repository"
	"github.com/alexanderramin/pacer/internal/schedule"
	"github.com/google/uuid"
)

type trackerService struct {
	plans repository.PlanRepo
	days  repository.DayRepo
	audit repository.AuditRepo
	uow   db.UnitOfWork
}

func NewTrackerService(plans repository.PlanRepo, days repository.DayRepo, audit repository.AuditRepo, uow db.UnitOfWork) TrackerService {
	return &trackerService{plans: plans, days: days, audit: audit, uow: uow}
}

// SetStatus runs the whole transition inside one transaction against the
// authoritative stored state: a concurrent toggle either lands before this
// one (and is accounted for here) or after it (and re-reads this result).
// Nothing partial can persist, so the conservation invariant survives
// failures.
func (s *trackerService) SetStatus(ctx context.Context, req contract.MarkRequest) (*contract.MarkResult, error) {
	plan, err := resolvePlan(ctx, s.plans, req.PlanRef)
	if err != nil {
		return nil, err
	}
	if plan.Status == domain.PlanArchived {
		return nil, fmt.Errorf("plan %s is archived", plan.DisplayID())
	}

	var result contract.MarkResult
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txDays := repository.NewSQLiteDayRepo(tx)
		txAudit := repository.NewSQLiteAuditRepo(tx)

		fresh, err := txPlans.GetByID(ctx, plan.ID)
		if err != nil {
			return err
		}
		days, err := txDays.ListByPlan(ctx, fresh.ID)
		if err != nil {
			return err
		}

		var prev *domain.DaySession
		for i := range days {
			if schedule.SameDay(days[i].Date, req.Date) {
				prev = &days[i]
				break
			}
		}

		updatedDays, updated, err := schedule.SetStatus(fresh, days, req.Date, req.Status, req.ActualPages)
		if err != nil {
			return err
		}
		writes, warnings, err := schedule.Redistribute(fresh, updatedDays)
		if err != nil {
			return err
		}

		merged := mergeTargets(fresh.ID, updatedDays, writes)
		batch := append([]domain.DaySession{updated}, merged...)
		if err := txDays.UpsertBatch(ctx, batch); err != nil {
			return err
		}

		// A cleared day is open again, so redistribution may have rewritten
		// its target; report the row as persisted, not as transitioned.
		for _, m := range merged {
			if schedule.SameDay(m.Date, updated.Date) {
				updated = m
			}
		}
		rev, err := txPlans.BumpScheduleRev(ctx, fresh.ID)
		if err != nil {
			return err
		}
		if err := txAudit.Append(ctx, auditForTransition(fresh.ID, prev, updated)); err != nil {
			return err
		}

		result = contract.MarkResult{
			Plan:           fresh,
			Day:            updated,
			RebalancedDays: len(writes),
			ScheduleRev:    rev,
			Warnings:       warnings,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *trackerService) Days(ctx context.Context, ref string) (*domain.Plan, []domain.DaySession, error) {
	plan, err := resolvePlan(ctx, s.plans, ref)
	if err != nil {
		return nil, nil, err
	}
	days, err := s.days.ListByPlan(ctx, plan.ID)
	if err != nil {
		return nil, nil, err
	}
	return plan, days, nil
}

func (s *trackerService) Audit(ctx context.Context, ref string) ([]domain.AuditEntry, error) {
	plan, err := resolvePlan(ctx, s.plans, ref)
	if err != nil {
		return nil, err
	}
	return s.audit.ListByPlan(ctx, plan.ID)
}

// auditForTransition records what the transition did to recorded progress.
// A missed day's entry carries the abandoned allocation as a negative delta.
func auditForTransition(planID string, prev *domain.DaySession, updated domain.DaySession) *domain.AuditEntry {
	entry := &domain.AuditEntry{
		ID:        uuid.New().String(),
		PlanID:    planID,
		Date:      updated.Date,
		CreatedAt: time.Now().UTC(),
	}

	switch updated.Status {
	case domain.DayRead:
		entry.Action = domain.AuditMarkedRead
		entry.PagesDelta = updated.EffectivePages()
	case domain.DayMissed:
		entry.Action = domain.AuditMarkedMissed
		entry.PagesDelta = -updated.PlannedPages
		entry.Note = "planned allocation abandoned"
	default:
		entry.Action = domain.AuditCleared
		if prev != nil && prev.Status == domain.DayRead {
			entry.PagesDelta = -prev.EffectivePages()
		}
	}
	return entry
}
