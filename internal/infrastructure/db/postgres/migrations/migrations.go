// Package migrations embeds the schema of the users and account_types
// tables and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

const dir = "."

// Open returns a database/sql handle on the pgx driver; goose does not speak pgxpool.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open migrations db: %w", err)
	}
	return db, nil
}

func Up(ctx context.Context, db *sql.DB) error {
	return run(ctx, db, "up")
}

// Down rolls back the most recent migration only.
func Down(ctx context.Context, db *sql.DB) error {
	return run(ctx, db, "down")
}

// Status prints applied and pending migrations to stdout.
func Status(ctx context.Context, db *sql.DB) error {
	return run(ctx, db, "status")
}

func run(ctx context.Context, db *sql.DB, command string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	if err := setup(); err != nil {
		return err
	}
	if err := goose.RunContext(ctx, command, db, dir); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

func setup() error {
	goose.SetBaseFS(FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return nil
}
