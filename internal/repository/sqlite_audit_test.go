package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pacer/internal/domain"
	"github.com/alexanderramin/pacer/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepo_AppendAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	planRepo := NewSQLitePlanRepo(database)
	auditRepo := NewSQLiteAuditRepo(database)
	ctx := context.Background()

	plan := testutil.NewTestPlan("Audited")
	require.NoError(t, planRepo.Create(ctx, plan))

	first := &domain.AuditEntry{
		ID:         uuid.New().String(),
		PlanID:     plan.ID,
		Date:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Action:     domain.AuditMarkedRead,
		PagesDelta: 12,
		CreatedAt:  time.Now().UTC().Add(-time.Minute),
	}
	second := &domain.AuditEntry{
		ID:         uuid.New().String(),
		PlanID:     plan.ID,
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Action:     domain.AuditMarkedMissed,
		PagesDelta: -11,
		Note:       "lost allocation",
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, auditRepo.Append(ctx, first))
	require.NoError(t, auditRepo.Append(ctx, second))

	entries, err := auditRepo.ListByPlan(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.AuditMarkedRead, entries[0].Action)
	assert.Equal(t, 12, entries[0].PagesDelta)
	assert.Equal(t, domain.AuditMarkedMissed, entries[1].Action)
	assert.Equal(t, -11, entries[1].PagesDelta)
	assert.Equal(t, "lost allocation", entries[1].Note)
}

func TestAuditRepo_ListByPlan_EmptyForUnknownPlan(t *testing.T) {
	database := testutil.NewTestDB(t)
	auditRepo := NewSQLiteAuditRepo(database)

	entries, err := auditRepo.ListByPlan(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
