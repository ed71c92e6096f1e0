package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is what repositories run statements on. *pgxpool.Pool, pgx.Tx
// and pgxmock all satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RowScanner is satisfied by both pgx.Row and pgx.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}
