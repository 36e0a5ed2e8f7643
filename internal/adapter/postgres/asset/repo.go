// Package asset implements the asset record store on PostgreSQL.
package asset

import (
	"context"
	"encoding/json"
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
	table  = "assets"
	entity = "asset"
)

var columns = []string{
	"id", "name", "category", "serial_number", "location", "vendor",
	"status", "assigned_to", "comments", "audit_log", "version", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides asset persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new asset repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Asset, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	row, err := postgres.Get[assetRow](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return domain.Asset{}, postgres.MapError(err, entity, id)
	}
	return row.toDomain()
}

func (r *Repo) List(ctx context.Context, f domain.AssetFilter) ([]domain.Asset, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("created_at DESC", "id")
	if f.Status != nil {
		q = q.Where(squirrel.Eq{"status": string(*f.Status)})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}
	return r.selectAssets(ctx, q)
}

// ListByAssignee returns the assets currently assigned to employeeID.
func (r *Repo) ListByAssignee(ctx context.Context, employeeID uuid.UUID) ([]domain.Asset, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"assigned_to": employeeID}).
		OrderBy("created_at", "id")
	return r.selectAssets(ctx, q)
}

// ExistingSerials returns which of serials are already taken.
func (r *Repo) ExistingSerials(ctx context.Context, serials []string) ([]string, error) {
	if len(serials) == 0 {
		return nil, nil
	}
	q := postgres.Builder().Select("serial_number").From(table).
		Where(squirrel.Eq{"serial_number": serials})

	got, err := postgres.Select[string](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, "serials")
	}
	return got, nil
}

// CountByStatus returns the number of assets per status.
func (r *Repo) CountByStatus(ctx context.Context) (map[domain.AssetStatus]int, error) {
	q := postgres.Builder().Select("status", "count(*) AS n").From(table).GroupBy("status")

	rows, err := postgres.Select[statusCount](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, "counts")
	}
	out := make(map[domain.AssetStatus]int, len(rows))
	for _, row := range rows {
		out[domain.AssetStatus(row.Status)] = row.N
	}
	return out, nil
}

// RecentAssignments returns the newest assignment ledger entries that gave an
// asset a new holder, across all assets.
func (r *Repo) RecentAssignments(ctx context.Context, limit int) ([]domain.AssignmentEvent, error) {
	q := postgres.Builder().
		Select("a.id AS asset_id", "a.name AS asset_name", "e.entry AS entry").
		From("assets a CROSS JOIN LATERAL jsonb_array_elements(a.audit_log) AS e(entry)").
		Where("e.entry->'assignment'->'to' IS NOT NULL").
		OrderBy("(e.entry->>'date')::timestamptz DESC").
		Limit(uint64(limit))

	rows, err := postgres.Select[assignmentRow](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, "recent assignments")
	}

	events := make([]domain.AssignmentEvent, 0, len(rows))
	for _, row := range rows {
		ev, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new asset and returns it as stored.
func (r *Repo) Create(ctx context.Context, a domain.Asset) (domain.Asset, error) {
	vals, err := insertValues(&a)
	if err != nil {
		return domain.Asset{}, err
	}
	q := postgres.Builder().Insert(table).Columns(columns...).Values(vals...).Suffix(returning)

	row, err := postgres.Get[assetRow](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return domain.Asset{}, postgres.MapError(err, entity, a.ID)
	}
	return row.toDomain()
}

// BulkCreate inserts all assets in one statement; either all rows are
// written or none.
func (r *Repo) BulkCreate(ctx context.Context, assets []domain.Asset) (int, error) {
	if len(assets) == 0 {
		return 0, nil
	}
	q := postgres.Builder().Insert(table).Columns(columns...)
	for i := range assets {
		vals, err := insertValues(&assets[i])
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

// Update writes the full record if its version still matches, incrementing
// the version. A stale version yields domain.ErrConflict.
func (r *Repo) Update(ctx context.Context, a domain.Asset) (domain.Asset, error) {
	comments, err := postgres.JSONB(a.Comments)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("asset %s marshal comments: %w", a.ID, err)
	}
	audit, err := postgres.JSONB(a.AuditLog)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("asset %s marshal audit_log: %w", a.ID, err)
	}

	db := postgres.QuerierFromCtx(ctx, r.db)
	q := postgres.Builder().Update(table).
		Set("name", a.Name).
		Set("category", a.Category).
		Set("serial_number", a.SerialNumber).
		Set("location", a.Location).
		Set("vendor", a.Vendor).
		Set("status", string(a.State.Status())).
		Set("assigned_to", a.State.AssigneePtr()).
		Set("comments", comments).
		Set("audit_log", audit).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": a.ID, "version": a.Version}).
		Suffix(returning)

	row, err := postgres.Get[assetRow](ctx, db, q)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Asset{}, postgres.StaleOrMissing(ctx, db, table, entity, a.ID)
	}
	if err != nil {
		return domain.Asset{}, postgres.MapError(err, entity, a.ID)
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

func (r *Repo) selectAssets(ctx context.Context, q squirrel.SelectBuilder) ([]domain.Asset, error) {
	rows, err := postgres.Select[assetRow](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, "list")
	}
	out := make([]domain.Asset, 0, len(rows))
	for _, row := range rows {
		a, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type assetRow struct {
	ID           uuid.UUID  `db:"id"`
	Name         string     `db:"name"`
	Category     string     `db:"category"`
	SerialNumber string     `db:"serial_number"`
	Location     string     `db:"location"`
	Vendor       string     `db:"vendor"`
	Status       string     `db:"status"`
	AssignedTo   *uuid.UUID `db:"assigned_to"`
	Comments     []byte     `db:"comments"`
	AuditLog     []byte     `db:"audit_log"`
	Version      int64      `db:"version"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (row assetRow) toDomain() (domain.Asset, error) {
	state, err := domain.ParseAssetState(domain.AssetStatus(row.Status), row.AssignedTo)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("asset %s: %w", row.ID, err)
	}
	comments, err := postgres.FromJSONB[domain.Comment](row.Comments)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("asset %s unmarshal comments: %w", row.ID, err)
	}
	audit, err := postgres.FromJSONB[domain.LedgerEntry](row.AuditLog)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("asset %s unmarshal audit_log: %w", row.ID, err)
	}
	return domain.Asset{
		ID:           row.ID,
		Name:         row.Name,
		Category:     row.Category,
		SerialNumber: row.SerialNumber,
		Location:     row.Location,
		Vendor:       row.Vendor,
		State:        state,
		Comments:     comments,
		AuditLog:     audit,
		Version:      row.Version,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

// insertValues fills defaults on a and returns values in column order.
func insertValues(a *domain.Asset) ([]any, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}
	a.Version = 1

	comments, err := postgres.JSONB(a.Comments)
	if err != nil {
		return nil, fmt.Errorf("asset %s marshal comments: %w", a.ID, err)
	}
	audit, err := postgres.JSONB(a.AuditLog)
	if err != nil {
		return nil, fmt.Errorf("asset %s marshal audit_log: %w", a.ID, err)
	}
	return []any{
		a.ID, a.Name, a.Category, a.SerialNumber, a.Location, a.Vendor,
		string(a.State.Status()), a.State.AssigneePtr(), comments, audit, a.Version, a.CreatedAt, a.UpdatedAt,
	}, nil
}

type statusCount struct {
	Status string `db:"status"`
	N      int    `db:"n"`
}

type assignmentRow struct {
	AssetID   uuid.UUID `db:"asset_id"`
	AssetName string    `db:"asset_name"`
	Entry     []byte    `db:"entry"`
}

func (row assignmentRow) toDomain() (domain.AssignmentEvent, error) {
	var entry domain.LedgerEntry
	if err := json.Unmarshal(row.Entry, &entry); err != nil {
		return domain.AssignmentEvent{}, fmt.Errorf("asset %s unmarshal ledger entry: %w", row.AssetID, err)
	}
	return domain.AssignmentEvent{AssetID: row.AssetID, AssetName: row.AssetName, Entry: entry}, nil
}
