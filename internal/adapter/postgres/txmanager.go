package postgres

import (
	"context"
	"fmt"
)

// TxManager runs record store writes in one transaction carried on the
// context. Repositories pick it up through QuerierFromCtx.
type TxManager struct {
	db DB
}

func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx runs fn in a Read Committed transaction: commit when fn returns
// nil, roll back on error or panic. A call made inside another RunInTx joins
// the outer transaction, so an import that calls a helper which is itself
// transactional stays all-or-nothing.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if inTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return MapError(fmt.Errorf("begin transaction: %w", err), "transaction", "")
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return MapError(fmt.Errorf("commit transaction: %w", err), "transaction", "")
	}
	return nil
}
