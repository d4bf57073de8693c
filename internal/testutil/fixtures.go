package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/pacer/internal/domain"
	"github.com/google/uuid"
)

var testShortIDCounter atomic.Int64

// Plan options
type PlanOption func(*domain.Plan)

func WithTotalPages(pages int) PlanOption {
	return func(p *domain.Plan) {
		p.TotalPages = pages
	}
}

func WithRange(start, end time.Time) PlanOption {
	return func(p *domain.Plan) {
		p.StartDate = domain.DateOnly(start)
		p.EndDate = domain.DateOnly(end)
	}
}

func WithPlanStatus(s domain.PlanStatus) PlanOption {
	return func(p *domain.Plan) {
		p.Status = s
	}
}

func WithShortID(id string) PlanOption {
	return func(p *domain.Plan) {
		p.ShortID = id
	}
}

func defaultShortID(title string) string {
	upper := strings.ToUpper(title)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testShortIDCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n)
}

// NewTestPlan builds a valid ten-day, 100-page plan starting 2026-03-01.
func NewTestPlan(title string, opts ...PlanOption) *domain.Plan {
	now := time.Now().UTC()
	p := &domain.Plan{
		ID:         uuid.New().String(),
		ShortID:    defaultShortID(title),
		Title:      title,
		TotalPages: 100,
		StartDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:     domain.PlanActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DaySession options
type DayOption func(*domain.DaySession)

func WithDayStatus(s domain.DayStatus) DayOption {
	return func(d *domain.DaySession) {
		d.Status = s
	}
}

func WithActualPages(pages int) DayOption {
	return func(d *domain.DaySession) {
		d.ActualPages = &pages
	}
}

// NewTestDay builds an unset day record for the given plan and date.
func NewTestDay(planID string, date time.Time, plannedPages int, opts ...DayOption) domain.DaySession {
	d := domain.DaySession{
		PlanID:       planID,
		Date:         domain.DateOnly(date),
		Status:       domain.DayUnset,
		PlannedPages: plannedPages,
		UpdatedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}
