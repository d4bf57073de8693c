package service

import (
	"context"
	"time"

	"github.com/alexanderramin/pacer/internal/contract"
	"github.com/alexanderramin/pacer/internal/repository"
	"github.com/alexanderramin/pacer/internal/schedule"
)

type progressService struct {
	plans repository.PlanRepo
	days  repository.DayRepo
	clock Clock
}

func NewProgressService(plans repository.PlanRepo, days repository.DayRepo, clock Clock) ProgressService {
	if clock == nil {
		clock = SystemClock
	}
	return &progressService{plans: plans, days: days, clock: clock}
}

func (s *progressService) Report(ctx context.Context, ref string, today *time.Time) (*contract.ProgressResponse, error) {
	plan, err := resolvePlan(ctx, s.plans, ref)
	if err != nil {
		return nil, err
	}
	days, err := s.days.ListByPlan(ctx, plan.ID)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	if today != nil {
		now = *today
	}
	return &contract.ProgressResponse{
		Plan:   plan,
		Report: schedule.Evaluate(plan, days, now),
	}, nil
}

func (s *progressService) Overview(ctx context.Context, includeArchived bool, today *time.Time) ([]contract.PlanOverview, error) {
	plans, err := s.plans.List(ctx, includeArchived)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	if today != nil {
		now = *today
	}

	overviews := make([]contract.PlanOverview, 0, len(plans))
	for _, plan := range plans {
		days, err := s.days.ListByPlan(ctx, plan.ID)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, contract.PlanOverview{
			Plan:   plan,
			Report: schedule.Evaluate(plan, days, now),
		})
	}
	return overviews, nil
}
