package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pacer/internal/db"
	"github.com/alexanderramin/pacer/internal/domain"
)

// SQLiteAuditRepo implements AuditRepo over a DBTX.
type SQLiteAuditRepo struct {
	db db.DBTX
}

// NewSQLiteAuditRepo creates a new SQLiteAuditRepo.
func NewSQLiteAuditRepo(db db.DBTX) *SQLiteAuditRepo {
	return &SQLiteAuditRepo{db: db}
}

func (r *SQLiteAuditRepo) Append(ctx context.Context, e *domain.AuditEntry) error {
	query := `INSERT INTO schedule_audit (id, plan_id, date, action, pages_delta, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.PlanID,
		domain.DateOnly(e.Date).Format(dateLayout),
		string(e.Action),
		e.PagesDelta,
		e.Note,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting audit entry: %w", err)
	}
	return nil
}

func (r *SQLiteAuditRepo) ListByPlan(ctx context.Context, planID string) ([]domain.AuditEntry, error) {
	query := `SELECT id, plan_id, date, action, pages_delta, note, created_at
		FROM schedule_audit WHERE plan_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing audit entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var action, dateStr, createdStr string
		if err := rows.Scan(&e.ID, &e.PlanID, &dateStr, &action, &e.PagesDelta, &e.Note, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning audit row: %w", err)
		}
		e.Action = domain.AuditAction(action)

		var parseErr error
		e.Date, parseErr = time.Parse(dateLayout, dateStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing audit date: %w", parseErr)
		}
		e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing audit created_at: %w", parseErr)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating audit entries: %w", err)
	}
	return entries, nil
}
