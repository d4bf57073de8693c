package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/pacer/internal/db"
	"github.com/alexanderramin/pacer/internal/domain"
)

// dayColumns is the canonical SELECT column list for day_sessions.
const dayColumns = `plan_id, date, status, planned_pages, actual_pages, updated_at`

// SQLiteDayRepo implements DayRepo over a DBTX.
type SQLiteDayRepo struct {
	db db.DBTX
}

// NewSQLiteDayRepo creates a new SQLiteDayRepo.
func NewSQLiteDayRepo(db db.DBTX) *SQLiteDayRepo {
	return &SQLiteDayRepo{db: db}
}

func (r *SQLiteDayRepo) Get(ctx context.Context, planID string, date time.Time) (*domain.DaySession, error) {
	query := `SELECT ` + dayColumns + ` FROM day_sessions WHERE plan_id = ? AND date = ?`
	row := r.db.QueryRowContext(ctx, query, planID, domain.DateOnly(date).Format(dateLayout))

	d, err := scanDay(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("day session: %w", ErrNotFound)
		}
		return nil, err
	}
	return d, nil
}

func (r *SQLiteDayRepo) ListByPlan(ctx context.Context, planID string) ([]domain.DaySession, error) {
	query := `SELECT ` + dayColumns + ` FROM day_sessions WHERE plan_id = ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing day sessions: %w", err)
	}
	defer rows.Close()

	var days []domain.DaySession
	for rows.Next() {
		d, err := scanDay(rows.Scan)
		if err != nil {
			return nil, err
		}
		days = append(days, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating day sessions: %w", err)
	}
	return days, nil
}

// UpsertBatch writes every record in one pass. Callers wrap it in a
// transaction when the batch must land atomically with other writes.
func (r *SQLiteDayRepo) UpsertBatch(ctx context.Context, days []domain.DaySession) error {
	query := `INSERT INTO day_sessions (plan_id, date, status, planned_pages, actual_pages, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(plan_id, date) DO UPDATE SET
			status = excluded.status,
			planned_pages = excluded.planned_pages,
			actual_pages = excluded.actual_pages,
			updated_at = excluded.updated_at`
	for _, d := range days {
		_, err := r.db.ExecContext(ctx, query,
			d.PlanID,
			domain.DateOnly(d.Date).Format(dateLayout),
			string(d.Status),
			d.PlannedPages,
			nullableIntToValue(d.ActualPages),
			nowUTC(),
		)
		if err != nil {
			return fmt.Errorf("upserting day %s: %w", domain.DateOnly(d.Date).Format(dateLayout), err)
		}
	}
	return nil
}

func (r *SQLiteDayRepo) Delete(ctx context.Context, planID string, date time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM day_sessions WHERE plan_id = ? AND date = ?`,
		planID, domain.DateOnly(date).Format(dateLayout))
	if err != nil {
		return fmt.Errorf("deleting day session: %w", err)
	}
	return requireRowAffected(res, "day session")
}

// scanDay scans one day_sessions row via the given Scan function, shared
// by single-row and multi-row reads.
func scanDay(scan func(dest ...any) error) (*domain.DaySession, error) {
	var d domain.DaySession
	var status, dateStr, updatedStr string
	var actual sql.NullInt64

	if err := scan(&d.PlanID, &dateStr, &status, &d.PlannedPages, &actual, &updatedStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning day session: %w", err)
	}

	d.Status = domain.DayStatus(status)
	if actual.Valid {
		v := int(actual.Int64)
		d.ActualPages = &v
	}

	var parseErr error
	d.Date, parseErr = time.Parse(dateLayout, dateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing date: %w", parseErr)
	}
	d.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &d, nil
}
