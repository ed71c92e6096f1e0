package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner runs callbacks inside one transaction. Repositories built on the
// Querier passed to fn share that transaction.
type TxRunner struct {
	db Beginner
}

func NewTxRunner(db Beginner) *TxRunner {
	return &TxRunner{db: db}
}

// Run commits when fn returns nil and rolls back otherwise.
func (r *TxRunner) Run(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
