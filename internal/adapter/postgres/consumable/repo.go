// Package consumable implements the consumable record store on PostgreSQL.
package consumable

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/assetledger/internal/adapter/postgres"
	"github.com/heartmarshall/assetledger/internal/domain"
)

const (
	table  = "consumables"
	entity = "consumable"
)

var columns = []string{
	"id", "name", "category", "initial_quantity", "quantity",
	"issue_log", "audit_log", "version", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides consumable persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new consumable repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Consumable, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	row, err := postgres.Get[consumableRow](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return domain.Consumable{}, postgres.MapError(err, entity, id)
	}
	return row.toDomain()
}

func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Consumable, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("name", "id")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	if offset > 0 {
		q = q.Offset(uint64(offset))
	}

	rows, err := postgres.Select[consumableRow](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, "list")
	}
	out := make([]domain.Consumable, 0, len(rows))
	for _, row := range rows {
		c, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// CountLowStock returns how many consumables have at most threshold units left.
func (r *Repo) CountLowStock(ctx context.Context, threshold int) (int, error) {
	q := postgres.Builder().Select("count(*)").From(table).Where(squirrel.LtOrEq{"quantity": threshold})

	n, err := postgres.Get[int](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, entity, "low stock")
	}
	return n, nil
}

func (r *Repo) Create(ctx context.Context, c domain.Consumable) (domain.Consumable, error) {
	vals, err := insertValues(&c)
	if err != nil {
		return domain.Consumable{}, err
	}
	q := postgres.Builder().Insert(table).Columns(columns...).Values(vals...).Suffix(returning)

	row, err := postgres.Get[consumableRow](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return domain.Consumable{}, postgres.MapError(err, entity, c.ID)
	}
	return row.toDomain()
}

// BulkCreate inserts all consumables in one statement.
func (r *Repo) BulkCreate(ctx context.Context, items []domain.Consumable) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	q := postgres.Builder().Insert(table).Columns(columns...)
	for i := range items {
		vals, err := insertValues(&items[i])
		if err != nil {
			return 0, err
		}
		q = q.Values(vals...)
	}

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, entity, "bulk insert")
	}
	return int(tag.RowsAffected()), nil
}

// Update writes quantities and logs if the version still matches.
// Quantity and issue_log always travel together.
func (r *Repo) Update(ctx context.Context, c domain.Consumable) (domain.Consumable, error) {
	issues, err := postgres.JSONB(c.IssueLog)
	if err != nil {
		return domain.Consumable{}, fmt.Errorf("consumable %s marshal issue_log: %w", c.ID, err)
	}
	audit, err := postgres.JSONB(c.AuditLog)
	if err != nil {
		return domain.Consumable{}, fmt.Errorf("consumable %s marshal audit_log: %w", c.ID, err)
	}

	db := postgres.QuerierFromCtx(ctx, r.db)
	q := postgres.Builder().Update(table).
		Set("name", c.Name).
		Set("category", c.Category).
		Set("initial_quantity", c.InitialQuantity).
		Set("quantity", c.Quantity).
		Set("issue_log", issues).
		Set("audit_log", audit).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": c.ID, "version": c.Version}).
		Suffix(returning)

	row, err := postgres.Get[consumableRow](ctx, db, q)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Consumable{}, postgres.StaleOrMissing(ctx, db, table, entity, c.ID)
	}
	if err != nil {
		return domain.Consumable{}, postgres.MapError(err, entity, c.ID)
	}
	return row.toDomain()
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

type consumableRow struct {
	ID              uuid.UUID `db:"id"`
	Name            string    `db:"name"`
	Category        string    `db:"category"`
	InitialQuantity int       `db:"initial_quantity"`
	Quantity        int       `db:"quantity"`
	IssueLog        []byte    `db:"issue_log"`
	AuditLog        []byte    `db:"audit_log"`
	Version         int64     `db:"version"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (row consumableRow) toDomain() (domain.Consumable, error) {
	issues, err := postgres.FromJSONB[domain.IssueLogEntry](row.IssueLog)
	if err != nil {
		return domain.Consumable{}, fmt.Errorf("consumable %s unmarshal issue_log: %w", row.ID, err)
	}
	audit, err := postgres.FromJSONB[domain.LedgerEntry](row.AuditLog)
	if err != nil {
		return domain.Consumable{}, fmt.Errorf("consumable %s unmarshal audit_log: %w", row.ID, err)
	}
	return domain.Consumable{
		ID:              row.ID,
		Name:            row.Name,
		Category:        row.Category,
		InitialQuantity: row.InitialQuantity,
		Quantity:        row.Quantity,
		IssueLog:        issues,
		AuditLog:        audit,
		Version:         row.Version,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}, nil
}

func insertValues(c *domain.Consumable) ([]any, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	c.Version = 1

	issues, err := postgres.JSONB(c.IssueLog)
	if err != nil {
		return nil, fmt.Errorf("consumable %s marshal issue_log: %w", c.ID, err)
	}
	audit, err := postgres.JSONB(c.AuditLog)
	if err != nil {
		return nil, fmt.Errorf("consumable %s marshal audit_log: %w", c.ID, err)
	}
	return []any{
		c.ID, c.Name, c.Category, c.InitialQuantity, c.Quantity,
		issues, audit, c.Version, c.CreatedAt, c.UpdatedAt,
	}, nil
}
