package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pacer/internal/contract"
	"github.com/alexanderramin/pacer/internal/domain"
	"github.com/alexanderramin/pacer/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestProgressService_CatchUpScenario(t *testing.T) {
	planSvc, _, progressSvc := newServices(t, fixedClock(mar(4)))
	ctx := context.Background()

	_, err := planSvc.Create(ctx, createRequest())
	require.NoError(t, err)

	resp, err := progressSvc.Report(ctx, "HOB01", nil)
	require.NoError(t, err)

	assert.Equal(t, schedule.ReportCatchUp, resp.Report.Kind)
	assert.Equal(t, 0, resp.Report.ExplicitMissed)
	assert.Equal(t, 3, resp.Report.ImplicitPastUnread)
	assert.Equal(t, 100, resp.Report.RemainingPages)
	assert.Equal(t, 7, resp.Report.RemainingDays)
	assert.Equal(t, 15, resp.Report.SuggestedPages)
}

func TestProgressService_TodayOverrideBeatsClock(t *testing.T) {
	planSvc, _, progressSvc := newServices(t, fixedClock(mar(4)))
	ctx := context.Background()

	_, err := planSvc.Create(ctx, createRequest())
	require.NoError(t, err)

	override := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	resp, err := progressSvc.Report(ctx, "HOB01", &override)
	require.NoError(t, err)
	assert.Equal(t, schedule.ReportOverdue, resp.Report.Kind)
	assert.Equal(t, 100, resp.Report.SuggestedPages)
}

func TestProgressService_ReadingAheadReportsOnTrack(t *testing.T) {
	planSvc, trackerSvc, progressSvc := newServices(t, fixedClock(mar(2)))
	ctx := context.Background()

	_, err := planSvc.Create(ctx, createRequest())
	require.NoError(t, err)

	_, err = trackerSvc.SetStatus(ctx, contract.MarkRequest{
		PlanRef: "HOB01", Date: mar(1), Status: domain.DayRead, ActualPages: intPtr(30),
	})
	require.NoError(t, err)

	resp, err := progressSvc.Report(ctx, "HOB01", nil)
	require.NoError(t, err)
	assert.Equal(t, schedule.ReportOnTrack, resp.Report.Kind)
	assert.Equal(t, 30, resp.Report.TotalPagesRead)
	assert.Equal(t, 0, resp.Report.SuggestedPages)
}

func TestProgressService_Overview_CoversAllPlans(t *testing.T) {
	planSvc, _, progressSvc := newServices(t, fixedClock(mar(1)))
	ctx := context.Background()

	_, err := planSvc.Create(ctx, createRequest())
	require.NoError(t, err)

	second := createRequest()
	second.Title = "Dune"
	second.ShortID = "DUN01"
	second.TotalPages = 412
	_, err = planSvc.Create(ctx, second)
	require.NoError(t, err)

	overviews, err := progressSvc.Overview(ctx, false, nil)
	require.NoError(t, err)
	require.Len(t, overviews, 2)
	for _, o := range overviews {
		assert.NotNil(t, o.Plan)
		assert.NotZero(t, o.Report.RemainingPages)
	}
}
