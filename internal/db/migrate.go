package db

import (
	"database/sql"
	"fmt"
)

// migrations run in order; every statement is idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id           TEXT PRIMARY KEY,
		short_id     TEXT NOT NULL UNIQUE,
		title        TEXT NOT NULL,
		total_pages  INTEGER NOT NULL,
		start_date   TEXT NOT NULL,
		end_date     TEXT NOT NULL,
		status       TEXT NOT NULL DEFAULT 'active'
		             CHECK(status IN ('active','finished','archived')),
		schedule_rev INTEGER NOT NULL DEFAULT 0,
		archived_at  TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS day_sessions (
		plan_id       TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		date          TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'unset'
		              CHECK(status IN ('unset','read','missed')),
		planned_pages INTEGER NOT NULL DEFAULT 0,
		actual_pages  INTEGER,
		updated_at    TEXT NOT NULL,
		PRIMARY KEY (plan_id, date)
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_audit (
		id          TEXT PRIMARY KEY,
		plan_id     TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		date        TEXT NOT NULL,
		action      TEXT NOT NULL,
		pages_delta INTEGER NOT NULL DEFAULT 0,
		note        TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_day_sessions_plan ON day_sessions(plan_id)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_audit_plan ON schedule_audit(plan_id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
