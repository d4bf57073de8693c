package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	uow := NewSQLiteUnitOfWork(database)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO plans (id, short_id, title, total_pages, start_date, end_date, status, created_at, updated_at)
			 VALUES ('p1', 'HOB01', 'The Hobbit', 310, '2026-03-01', '2026-03-31', 'active', '2026-02-28T00:00:00Z', '2026-02-28T00:00:00Z')`)
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM plans`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	boom := errors.New("boom")
	uow := NewSQLiteUnitOfWork(database)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		_, insErr := tx.ExecContext(ctx,
			`INSERT INTO plans (id, short_id, title, total_pages, start_date, end_date, status, created_at, updated_at)
			 VALUES ('p1', 'HOB01', 'The Hobbit', 310, '2026-03-01', '2026-03-31', 'active', '2026-02-28T00:00:00Z', '2026-02-28T00:00:00Z')`)
		require.NoError(t, insErr)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM plans`).Scan(&count))
	assert.Equal(t, 0, count, "insert must not survive the failed transaction")
}
