package testutil

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alexanderramin/pacer/internal/db"
)

// ErrInjectedFailure is the error every FailingUnitOfWork call returns.
var ErrInjectedFailure = errors.New("injected transaction failure")

// FailingUnitOfWork runs the callback inside a real transaction, then
// unconditionally rolls it back. Tests use it to prove a caller leaves no
// partial state behind a failed write.
type FailingUnitOfWork struct {
	db *sql.DB
}

func NewFailingUoW(database *sql.DB) *FailingUnitOfWork {
	return &FailingUnitOfWork{db: database}
}

func (u *FailingUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	_ = fn(ctx, tx)
	_ = tx.Rollback()
	return ErrInjectedFailure
}
