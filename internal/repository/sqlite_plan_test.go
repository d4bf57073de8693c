package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pacer/internal/domain"
	"github.com/alexanderramin/pacer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	plan := testutil.NewTestPlan("The Hobbit", testutil.WithTotalPages(310))
	require.NoError(t, repo.Create(ctx, plan))

	fetched, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, fetched.ID)
	assert.Equal(t, "The Hobbit", fetched.Title)
	assert.Equal(t, 310, fetched.TotalPages)
	assert.True(t, fetched.StartDate.Equal(plan.StartDate))
	assert.True(t, fetched.EndDate.Equal(plan.EndDate))
}

func TestPlanRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanRepo_GetByShortID(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	plan := testutil.NewTestPlan("Dune", testutil.WithShortID("DUN01"))
	require.NoError(t, repo.Create(ctx, plan))

	fetched, err := repo.GetByShortID(ctx, "DUN01")
	require.NoError(t, err)
	assert.Equal(t, plan.ID, fetched.ID)
}

func TestPlanRepo_ShortIDUnique(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestPlan("A", testutil.WithShortID("DUP01"))))
	err := repo.Create(ctx, testutil.NewTestPlan("B", testutil.WithShortID("DUP01")))
	assert.Error(t, err)
}

func TestPlanRepo_List_ExcludesArchivedByDefault(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	active := testutil.NewTestPlan("Active")
	archived := testutil.NewTestPlan("Archived")
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, archived))
	require.NoError(t, repo.Archive(ctx, archived.ID))

	list, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, active.ID, list[0].ID)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPlanRepo_Update(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	plan := testutil.NewTestPlan("Middlemarch", testutil.WithTotalPages(880))
	require.NoError(t, repo.Create(ctx, plan))

	plan.TotalPages = 900
	plan.Title = "Middlemarch (annotated)"
	require.NoError(t, repo.Update(ctx, plan))

	fetched, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 900, fetched.TotalPages)
	assert.Equal(t, "Middlemarch (annotated)", fetched.Title)
}

func TestPlanRepo_Update_NotFound(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))

	plan := testutil.NewTestPlan("Ghost")
	err := repo.Update(context.Background(), plan)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanRepo_BumpScheduleRev_Monotonic(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	plan := testutil.NewTestPlan("Emma")
	require.NoError(t, repo.Create(ctx, plan))

	rev1, err := repo.BumpScheduleRev(ctx, plan.ID)
	require.NoError(t, err)
	rev2, err := repo.BumpScheduleRev(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, rev1+1, rev2)

	fetched, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, rev2, fetched.ScheduleRev)
}

func TestPlanRepo_Delete_CascadesToDays(t *testing.T) {
	database := testutil.NewTestDB(t)
	planRepo := NewSQLitePlanRepo(database)
	dayRepo := NewSQLiteDayRepo(database)
	ctx := context.Background()

	plan := testutil.NewTestPlan("Cascade")
	require.NoError(t, planRepo.Create(ctx, plan))
	require.NoError(t, dayRepo.UpsertBatch(ctx, []domain.DaySession{
		testutil.NewTestDay(plan.ID, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 10),
		testutil.NewTestDay(plan.ID, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), 10),
	}))

	require.NoError(t, planRepo.Delete(ctx, plan.ID))

	days, err := dayRepo.ListByPlan(ctx, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, days)
}
