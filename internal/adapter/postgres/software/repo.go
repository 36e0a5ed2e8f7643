// Package software implements the software license record store on PostgreSQL.
package software

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
	table  = "software"
	entity = "software"
)

var columns = []string{
	"id", "name", "vendor", "total_licenses", "assigned_to",
	"audit_log", "version", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides software persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new software repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Software, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	row, err := postgres.Get[softwareRow](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return domain.Software{}, postgres.MapError(err, entity, id)
	}
	return row.toDomain()
}

func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Software, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("name", "id")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	if offset > 0 {
		q = q.Offset(uint64(offset))
	}
	return r.selectSoftware(ctx, q)
}

// ListByHolder returns every product with a seat held by employeeID.
func (r *Repo) ListByHolder(ctx context.Context, employeeID uuid.UUID) ([]domain.Software, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Expr("? = ANY(assigned_to)", employeeID)).
		OrderBy("id")
	return r.selectSoftware(ctx, q)
}

func (r *Repo) Create(ctx context.Context, s domain.Software) (domain.Software, error) {
	vals, err := insertValues(&s)
	if err != nil {
		return domain.Software{}, err
	}
	q := postgres.Builder().Insert(table).Columns(columns...).Values(vals...).Suffix(returning)

	row, err := postgres.Get[softwareRow](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return domain.Software{}, postgres.MapError(err, entity, s.ID)
	}
	return row.toDomain()
}

// BulkCreate inserts all products in one statement.
func (r *Repo) BulkCreate(ctx context.Context, items []domain.Software) (int, error) {
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

// Update writes the record if its version still matches.
func (r *Repo) Update(ctx context.Context, s domain.Software) (domain.Software, error) {
	audit, err := postgres.JSONB(s.AuditLog)
	if err != nil {
		return domain.Software{}, fmt.Errorf("software %s marshal audit_log: %w", s.ID, err)
	}

	db := postgres.QuerierFromCtx(ctx, r.db)
	q := postgres.Builder().Update(table).
		Set("name", s.Name).
		Set("vendor", s.Vendor).
		Set("total_licenses", s.TotalLicenses).
		Set("assigned_to", holders(s.AssignedTo)).
		Set("audit_log", audit).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": s.ID, "version": s.Version}).
		Suffix(returning)

	row, err := postgres.Get[softwareRow](ctx, db, q)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Software{}, postgres.StaleOrMissing(ctx, db, table, entity, s.ID)
	}
	if err != nil {
		return domain.Software{}, postgres.MapError(err, entity, s.ID)
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

func (r *Repo) selectSoftware(ctx context.Context, q squirrel.SelectBuilder) ([]domain.Software, error) {
	rows, err := postgres.Select[softwareRow](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, "list")
	}
	out := make([]domain.Software, 0, len(rows))
	for _, row := range rows {
		s, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

type softwareRow struct {
	ID            uuid.UUID   `db:"id"`
	Name          string      `db:"name"`
	Vendor        string      `db:"vendor"`
	TotalLicenses int         `db:"total_licenses"`
	AssignedTo    []uuid.UUID `db:"assigned_to"`
	AuditLog      []byte      `db:"audit_log"`
	Version       int64       `db:"version"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at"`
}

func (row softwareRow) toDomain() (domain.Software, error) {
	audit, err := postgres.FromJSONB[domain.LedgerEntry](row.AuditLog)
	if err != nil {
		return domain.Software{}, fmt.Errorf("software %s unmarshal audit_log: %w", row.ID, err)
	}
	var assigned []uuid.UUID
	if len(row.AssignedTo) > 0 {
		assigned = row.AssignedTo
	}
	return domain.Software{
		ID:            row.ID,
		Name:          row.Name,
		Vendor:        row.Vendor,
		TotalLicenses: row.TotalLicenses,
		AssignedTo:    assigned,
		AuditLog:      audit,
		Version:       row.Version,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

func insertValues(s *domain.Software) ([]any, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = s.CreatedAt
	}
	s.Version = 1

	audit, err := postgres.JSONB(s.AuditLog)
	if err != nil {
		return nil, fmt.Errorf("software %s marshal audit_log: %w", s.ID, err)
	}
	return []any{
		s.ID, s.Name, s.Vendor, s.TotalLicenses, holders(s.AssignedTo),
		audit, s.Version, s.CreatedAt, s.UpdatedAt,
	}, nil
}

// holders keeps NOT NULL assigned_to satisfied for records with no seats taken.
func holders(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
