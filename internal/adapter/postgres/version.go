package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
)

// StaleOrMissing explains why a versioned UPDATE matched no row: the row
// either does not exist (ErrNotFound) or was modified since it was read
// (ErrConflict).
func StaleOrMissing(ctx context.Context, db Querier, table, entity string, id uuid.UUID) error {
	q := Builder().Select().
		Column(squirrel.Expr("EXISTS (SELECT 1 FROM "+table+" WHERE id = ?)", id))

	exists, err := Get[bool](ctx, db, q)
	if err != nil {
		return MapError(err, entity, id)
	}
	if !exists {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return fmt.Errorf("%s %s: %w", entity, id, domain.ErrConflict)
}
