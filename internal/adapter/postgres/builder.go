package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Get runs q and scans exactly one row into T. pgx.ErrNoRows is returned
// unchanged when the query yields nothing.
func Get[T any](ctx context.Context, db Querier, q squirrel.Sqlizer) (T, error) {
	var dst T
	sql, args, err := q.ToSql()
	if err != nil {
		return dst, fmt.Errorf("build query: %w", err)
	}
	if err := pgxscan.Get(ctx, db, &dst, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return dst, pgx.ErrNoRows
		}
		return dst, err
	}
	return dst, nil
}

// Select runs q and scans all rows into a slice of T.
func Select[T any](ctx context.Context, db Querier, q squirrel.Sqlizer) ([]T, error) {
	var dst []T
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	if err := pgxscan.Select(ctx, db, &dst, sql, args...); err != nil {
		return nil, err
	}
	return dst, nil
}

// Exec runs a statement that returns no rows.
func Exec(ctx context.Context, db Querier, q squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return db.Exec(ctx, sql, args...)
}

// JSONB marshals v for a jsonb column. Nil slices are stored as [].
func JSONB[T any](v []T) ([]byte, error) {
	if v == nil {
		v = []T{}
	}
	return json.Marshal(v)
}

// FromJSONB decodes a jsonb column. Empty input yields a nil slice.
func FromJSONB[T any](data []byte) ([]T, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
