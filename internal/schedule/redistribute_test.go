package schedule

import (
	"testing"

	"github.com/alexanderramin/pacer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// applyTargets writes computed targets back into the day slice, the way the
// persistence layer would.
func applyTargets(days []domain.DaySession, targets []PageTarget) []domain.DaySession {
	for _, tg := range targets {
		found := false
		for i := range days {
			if SameDay(days[i].Date, tg.Date) {
				days[i].PlannedPages = tg.Pages
				found = true
				break
			}
		}
		if !found {
			days = append(days, domain.DaySession{
				Date:         tg.Date,
				Status:       domain.DayUnset,
				PlannedPages: tg.Pages,
			})
		}
	}
	return days
}

// plannedSum sums planned pages over unset days and effective pages over
// read days; missed days are excluded on both sides.
func plannedSum(days []domain.DaySession) int {
	sum := 0
	for _, d := range days {
		switch d.Status {
		case domain.DayUnset:
			sum += d.PlannedPages
		case domain.DayRead:
			sum += d.EffectivePages()
		}
	}
	return sum
}

func TestRedistribute_NoChangesIsNoOp(t *testing.T) {
	plan, days := testPlan(t, 100, 10)

	writes, warnings, err := Redistribute(plan, days)
	require.NoError(t, err)
	assert.Empty(t, writes, "freshly allocated schedule needs no rebalancing")
	assert.Empty(t, warnings)
}

func TestRedistribute_AfterRead_ShrinksOpenTargets(t *testing.T) {
	plan, days := testPlan(t, 100, 10)

	days, _, err := SetStatus(plan, days, day(2026, 3, 1), domain.DayRead, intPtr(20))
	require.NoError(t, err)
	writes, _, err := Redistribute(plan, days)
	require.NoError(t, err)
	days = applyTargets(days, writes)

	// 80 pages over 9 open days: base 8, remainder 8, so eight days get 9
	// and the last open day gets 8.
	for i, d := range days {
		if d.Status != domain.DayUnset {
			continue
		}
		if i < 9 {
			assert.Equal(t, 9, d.PlannedPages, "open day %d", i)
		} else {
			assert.Equal(t, 8, d.PlannedPages)
		}
	}
	assert.Equal(t, 100, plannedSum(days))
}

func TestRedistribute_UnmarkRestoresOriginalSplit(t *testing.T) {
	plan, days := testPlan(t, 100, 10)

	days, _, err := SetStatus(plan, days, day(2026, 3, 1), domain.DayRead, intPtr(20))
	require.NoError(t, err)
	writes, _, err := Redistribute(plan, days)
	require.NoError(t, err)
	days = applyTargets(days, writes)

	// Unmark: the 20 read pages return to the pool and every day goes back
	// to the even 10-a-day split.
	days, _, err = SetStatus(plan, days, day(2026, 3, 1), domain.DayUnset, nil)
	require.NoError(t, err)
	writes, _, err = Redistribute(plan, days)
	require.NoError(t, err)
	days = applyTargets(days, writes)

	for i, d := range days {
		assert.Equal(t, 10, d.PlannedPages, "day %d", i)
	}
}

func TestRedistribute_MissedDayIsNotRefunded(t *testing.T) {
	plan, days := testPlan(t, 100, 10)

	days, _, err := SetStatus(plan, days, day(2026, 3, 1), domain.DayMissed, nil)
	require.NoError(t, err)
	writes, _, err := Redistribute(plan, days)
	require.NoError(t, err)
	days = applyTargets(days, writes)

	// The full 100 pages spread over the 9 remaining open days (not 90):
	// base 11, remainder 1.
	open := 0
	sum := 0
	for _, d := range days {
		if d.Status == domain.DayUnset {
			open++
			sum += d.PlannedPages
			assert.Contains(t, []int{11, 12}, d.PlannedPages)
		}
	}
	assert.Equal(t, 9, open)
	assert.Equal(t, 100, sum)
}

func TestRedistribute_Idempotent(t *testing.T) {
	plan, days := testPlan(t, 100, 10)

	days, _, err := SetStatus(plan, days, day(2026, 3, 3), domain.DayRead, intPtr(37))
	require.NoError(t, err)
	writes, _, err := Redistribute(plan, days)
	require.NoError(t, err)
	days = applyTargets(days, writes)

	again, _, err := Redistribute(plan, days)
	require.NoError(t, err)
	assert.Empty(t, again, "second pass with no status change must write nothing")
}

func TestRedistribute_RemainingZero_OpenDaysGetZero(t *testing.T) {
	plan, days := testPlan(t, 100, 10)

	// One heroic day covers the whole book.
	days, _, err := SetStatus(plan, days, day(2026, 3, 1), domain.DayRead, intPtr(100))
	require.NoError(t, err)
	writes, _, err := Redistribute(plan, days)
	require.NoError(t, err)
	days = applyTargets(days, writes)

	for _, d := range days {
		if d.Status == domain.DayUnset {
			assert.Equal(t, 0, d.PlannedPages)
		}
	}
}

func TestRedistribute_OverreadClampsToZero(t *testing.T) {
	plan, days := testPlan(t, 100, 10)

	days, _, err := SetStatus(plan, days, day(2026, 3, 1), domain.DayRead, intPtr(150))
	require.NoError(t, err)
	writes, _, err := Redistribute(plan, days)
	require.NoError(t, err)
	days = applyTargets(days, writes)

	for _, d := range days {
		assert.GreaterOrEqual(t, d.PlannedPages, 0)
	}
}

func TestRedistribute_NoOpenDays_NoWrites(t *testing.T) {
	plan, days := testPlan(t, 100, 3)

	var err error
	for _, d := range []int{1, 2, 3} {
		days, _, err = SetStatus(plan, days, day(2026, 3, d), domain.DayMissed, nil)
		require.NoError(t, err)
	}
	writes, _, err := Redistribute(plan, days)
	require.NoError(t, err)
	assert.Empty(t, writes, "unallocated remainder is surfaced by Evaluate, not absorbed here")
}

func TestRedistribute_MissingRowsTreatedAsUnset(t *testing.T) {
	plan, _ := testPlan(t, 100, 10)

	// Only one persisted row; the other nine days exist implicitly.
	days := []domain.DaySession{
		{PlanID: plan.ID, Date: day(2026, 3, 1), Status: domain.DayRead, PlannedPages: 10},
	}
	writes, _, err := Redistribute(plan, days)
	require.NoError(t, err)
	require.Len(t, writes, 9, "every implicit day gets a fresh target")

	sum := 0
	for _, w := range writes {
		sum += w.Pages
	}
	assert.Equal(t, 90, sum)
}

func TestRedistribute_DropsOutOfRangeDaysWithWarning(t *testing.T) {
	plan, days := testPlan(t, 100, 10)
	days = append(days, domain.DaySession{
		PlanID:       plan.ID,
		Date:         day(2026, 5, 1),
		Status:       domain.DayRead,
		PlannedPages: 40,
	})

	writes, warnings, err := Redistribute(plan, days)
	require.NoError(t, err)
	assert.Empty(t, writes, "out-of-range read must not drain the pool")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "2026-05-01")
}

func TestRedistribute_RejectsInvalidPlan(t *testing.T) {
	plan, days := testPlan(t, 100, 10)

	plan.TotalPages = 0
	_, _, err := Redistribute(plan, days)
	assert.ErrorIs(t, err, ErrInvalidPages)

	plan.TotalPages = 100
	plan.EndDate = plan.StartDate.AddDate(0, 0, -1)
	_, _, err = Redistribute(plan, days)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

// TestRedistribute_Conservation_Scenario walks a mixed sequence of
// transitions and checks the conservation invariant after every step.
func TestRedistribute_Conservation_Scenario(t *testing.T) {
	plan, days := testPlan(t, 217, 14)

	steps := []struct {
		dayOfMonth int
		status     domain.DayStatus
		actual     *int
	}{
		{1, domain.DayRead, nil},
		{2, domain.DayRead, intPtr(40)},
		{3, domain.DayMissed, nil},
		{2, domain.DayUnset, nil},
		{5, domain.DayRead, intPtr(0)},
		{3, domain.DayRead, intPtr(12)},
		{1, domain.DayUnset, nil},
		{14, domain.DayMissed, nil},
	}

	for i, step := range steps {
		var err error
		days, _, err = SetStatus(plan, days, day(2026, 3, step.dayOfMonth), step.status, step.actual)
		require.NoError(t, err, "step %d", i)
		writes, _, err := Redistribute(plan, days)
		require.NoError(t, err, "step %d", i)
		days = applyTargets(days, writes)

		assert.Equal(t, plan.TotalPages, plannedSum(days),
			"step %d: open + read pages must equal total", i)
	}
}
