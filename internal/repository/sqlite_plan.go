package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/pacer/internal/db"
	"github.com/alexanderramin/pacer/internal/domain"
)

// planColumns is the canonical SELECT column list for plans.
const planColumns = `id, short_id, title, total_pages, start_date, end_date,
		status, schedule_rev, archived_at, created_at, updated_at`

// SQLitePlanRepo implements PlanRepo over a DBTX, so the same code serves
// both plain connections and transactions.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.Plan) error {
	query := `INSERT INTO plans (id, short_id, title, total_pages, start_date, end_date, status, schedule_rev, archived_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ShortID,
		p.Title,
		p.TotalPages,
		p.StartDate.Format(dateLayout),
		p.EndDate.Format(dateLayout),
		string(p.Status),
		p.ScheduleRev,
		nullableTimeToString(p.ArchivedAt, time.RFC3339),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE id = ?`
	return r.scanPlan(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLitePlanRepo) GetByShortID(ctx context.Context, shortID string) (*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE short_id = ?`
	return r.scanPlan(r.db.QueryRowContext(ctx, query, shortID))
}

func (r *SQLitePlanRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans`
	if !includeArchived {
		query += ` WHERE status != 'archived'`
	}
	query += ` ORDER BY start_date, short_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.Plan
	for rows.Next() {
		p, err := r.scanPlanRow(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

func (r *SQLitePlanRepo) Update(ctx context.Context, p *domain.Plan) error {
	query := `UPDATE plans SET short_id = ?, title = ?, total_pages = ?, start_date = ?, end_date = ?,
		status = ?, archived_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.ShortID,
		p.Title,
		p.TotalPages,
		p.StartDate.Format(dateLayout),
		p.EndDate.Format(dateLayout),
		string(p.Status),
		nullableTimeToString(p.ArchivedAt, time.RFC3339),
		nowUTC(),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	return requireRowAffected(res, "plan")
}

func (r *SQLitePlanRepo) BumpScheduleRev(ctx context.Context, id string) (int64, error) {
	query := `UPDATE plans SET schedule_rev = schedule_rev + 1, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, nowUTC(), id)
	if err != nil {
		return 0, fmt.Errorf("bumping schedule rev: %w", err)
	}
	if err := requireRowAffected(res, "plan"); err != nil {
		return 0, err
	}

	var rev int64
	if err := r.db.QueryRowContext(ctx, `SELECT schedule_rev FROM plans WHERE id = ?`, id).Scan(&rev); err != nil {
		return 0, fmt.Errorf("reading schedule rev: %w", err)
	}
	return rev, nil
}

func (r *SQLitePlanRepo) Archive(ctx context.Context, id string) error {
	query := `UPDATE plans SET status = 'archived', archived_at = ?, updated_at = ? WHERE id = ?`
	now := nowUTC()
	res, err := r.db.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return fmt.Errorf("archiving plan: %w", err)
	}
	return requireRowAffected(res, "plan")
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return requireRowAffected(res, "plan")
}

// scanPlan scans a single plan from a *sql.Row.
func (r *SQLitePlanRepo) scanPlan(row *sql.Row) (*domain.Plan, error) {
	var p domain.Plan
	var status, startStr, endStr, createdStr, updatedStr string
	var archivedStr sql.NullString

	err := row.Scan(
		&p.ID, &p.ShortID, &p.Title, &p.TotalPages, &startStr, &endStr,
		&status, &p.ScheduleRev, &archivedStr, &createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	return r.populatePlan(&p, status, startStr, endStr, archivedStr, createdStr, updatedStr)
}

// scanPlanRow scans a single plan from *sql.Rows.
func (r *SQLitePlanRepo) scanPlanRow(rows *sql.Rows) (*domain.Plan, error) {
	var p domain.Plan
	var status, startStr, endStr, createdStr, updatedStr string
	var archivedStr sql.NullString

	err := rows.Scan(
		&p.ID, &p.ShortID, &p.Title, &p.TotalPages, &startStr, &endStr,
		&status, &p.ScheduleRev, &archivedStr, &createdStr, &updatedStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning plan row: %w", err)
	}

	return r.populatePlan(&p, status, startStr, endStr, archivedStr, createdStr, updatedStr)
}

// populatePlan fills in parsed fields on a Plan after scanning raw strings.
func (r *SQLitePlanRepo) populatePlan(p *domain.Plan, status, startStr, endStr string, archivedStr sql.NullString, createdStr, updatedStr string) (*domain.Plan, error) {
	p.Status = domain.PlanStatus(status)

	var parseErr error
	p.StartDate, parseErr = time.Parse(dateLayout, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	p.EndDate, parseErr = time.Parse(dateLayout, endStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing end_date: %w", parseErr)
	}
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	p.ArchivedAt = parseNullableTime(archivedStr, time.RFC3339)

	return p, nil
}

// requireRowAffected converts a zero-row UPDATE/DELETE into ErrNotFound.
func requireRowAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
