package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateShortID_Valid(t *testing.T) {
	cases := []string{"HOB01", "DUNE02", "ABC1234", "ABCDEF01", "XYZ99"}
	for _, id := range cases {
		p := &Plan{ShortID: id}
		assert.NoError(t, p.ValidateShortID(), "should accept %q", id)
	}
}

func TestValidateShortID_Empty(t *testing.T) {
	p := &Plan{ShortID: ""}
	err := p.ValidateShortID()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestValidateShortID_Lowercase(t *testing.T) {
	p := &Plan{ShortID: "hob01"}
	err := p.ValidateShortID()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uppercase")
}

func TestValidateShortID_NoDigits(t *testing.T) {
	p := &Plan{ShortID: "HOBBIT"}
	err := p.ValidateShortID()
	require.Error(t, err)
}

func TestPlanValidate_RejectsNonPositivePages(t *testing.T) {
	p := &Plan{TotalPages: 0, StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 10)}
	require.Error(t, p.Validate())

	p.TotalPages = -5
	require.Error(t, p.Validate())
}

func TestPlanValidate_RejectsInvertedRange(t *testing.T) {
	p := &Plan{TotalPages: 100, StartDate: date(2026, 3, 10), EndDate: date(2026, 3, 1)}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before start")
}

func TestPlanValidate_SingleDayRangeOK(t *testing.T) {
	p := &Plan{TotalPages: 40, StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 1)}
	assert.NoError(t, p.Validate())
}

func TestPlanContains_IgnoresTimeOfDay(t *testing.T) {
	p := &Plan{StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 10)}

	assert.True(t, p.Contains(time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2026, 3, 1, 0, 0, 1, 0, time.UTC)))
	assert.False(t, p.Contains(date(2026, 2, 28)))
	assert.False(t, p.Contains(date(2026, 3, 11)))
}

func TestDisplayID_WithShortID(t *testing.T) {
	p := &Plan{ID: "550e8400-e29b-41d4-a716-446655440000", ShortID: "HOB01"}
	assert.Equal(t, "HOB01", p.DisplayID())
}

func TestDisplayID_WithoutShortID(t *testing.T) {
	p := &Plan{ID: "550e8400-e29b-41d4-a716-446655440000", ShortID: ""}
	assert.Equal(t, "550e8400", p.DisplayID())
}

func TestEffectivePages_ActualOverridesPlanned(t *testing.T) {
	actual := 20
	d := &DaySession{PlannedPages: 10, ActualPages: &actual}
	assert.Equal(t, 20, d.EffectivePages())

	d.ActualPages = nil
	assert.Equal(t, 10, d.EffectivePages())
}

func TestDaySessionValidate(t *testing.T) {
	neg := -3
	cases := []struct {
		name string
		day  DaySession
		ok   bool
	}{
		{"valid unset", DaySession{Status: DayUnset, PlannedPages: 10}, true},
		{"valid read with actual", DaySession{Status: DayRead, PlannedPages: 10, ActualPages: intPtr(12)}, true},
		{"bad status", DaySession{Status: DayStatus("partial"), PlannedPages: 10}, false},
		{"negative planned", DaySession{Status: DayUnset, PlannedPages: -1}, false},
		{"negative actual", DaySession{Status: DayRead, PlannedPages: 10, ActualPages: &neg}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.day.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func intPtr(v int) *int { return &v }
