package db

import (
	"context"
	"database/sql"
)

// DBTX is what aura's repositories query through: the pool, or the *sql.Tx
// handed out by WithinTx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var _, _ DBTX = (*sql.DB)(nil), (*sql.Tx)(nil)
