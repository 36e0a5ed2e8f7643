// Package cascaderun persists cascade run cursors so interrupted cascades can
// be resumed.
package cascaderun

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
	table  = "cascade_runs"
	entity = "cascade run"
)

var columns = []string{
	"id", "kind", "subject_id", "patch", "steps", "next_step",
	"status", "results", "version", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides cascade run persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new cascade run repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, run domain.CascadeRun) (domain.CascadeRun, error) {
	patch, steps, results, err := encode(run)
	if err != nil {
		return domain.CascadeRun{}, err
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
		run.UpdatedAt = run.CreatedAt
	}

	q := postgres.Builder().Insert(table).Columns(columns...).
		Values(run.ID, string(run.Kind), run.SubjectID, patch, steps, run.Cursor,
			string(run.Status), results, int64(1), run.CreatedAt, run.UpdatedAt).
		Suffix(returning)

	row, err := postgres.Get[runRow](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return domain.CascadeRun{}, postgres.MapError(err, entity, run.ID)
	}
	return row.toDomain()
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.CascadeRun, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	row, err := postgres.Get[runRow](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return domain.CascadeRun{}, postgres.MapError(err, entity, id)
	}
	return row.toDomain()
}

// Update saves cursor, status and results. It doubles as the claim used by
// resumers: a stale version means another process advanced the run.
func (r *Repo) Update(ctx context.Context, run domain.CascadeRun) (domain.CascadeRun, error) {
	_, _, results, err := encode(run)
	if err != nil {
		return domain.CascadeRun{}, err
	}

	db := postgres.QuerierFromCtx(ctx, r.db)
	q := postgres.Builder().Update(table).
		Set("next_step", run.Cursor).
		Set("status", string(run.Status)).
		Set("results", results).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": run.ID, "version": run.Version}).
		Suffix(returning)

	row, err := postgres.Get[runRow](ctx, db, q)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CascadeRun{}, postgres.StaleOrMissing(ctx, db, table, entity, run.ID)
	}
	if err != nil {
		return domain.CascadeRun{}, postgres.MapError(err, entity, run.ID)
	}
	return row.toDomain()
}

// ListUnfinished returns runs that are not completed and have not been
// touched since before, oldest first.
func (r *Repo) ListUnfinished(ctx context.Context, before time.Time, limit int) ([]domain.CascadeRun, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.NotEq{"status": string(domain.RunStatusCompleted)}).
		Where(squirrel.Lt{"updated_at": before}).
		OrderBy("updated_at", "id")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	rows, err := postgres.Select[runRow](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, "unfinished")
	}
	out := make([]domain.CascadeRun, 0, len(rows))
	for _, row := range rows {
		run, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, nil
}

type runRow struct {
	ID        uuid.UUID  `db:"id"`
	Kind      string     `db:"kind"`
	SubjectID *uuid.UUID `db:"subject_id"`
	Patch     []byte     `db:"patch"`
	Steps     []byte     `db:"steps"`
	NextStep  int        `db:"next_step"`
	Status    string     `db:"status"`
	Results   []byte     `db:"results"`
	Version   int64      `db:"version"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (row runRow) toDomain() (domain.CascadeRun, error) {
	steps, err := postgres.FromJSONB[domain.CascadeStep](row.Steps)
	if err != nil {
		return domain.CascadeRun{}, fmt.Errorf("cascade run %s unmarshal steps: %w", row.ID, err)
	}
	results, err := postgres.FromJSONB[domain.StepResult](row.Results)
	if err != nil {
		return domain.CascadeRun{}, fmt.Errorf("cascade run %s unmarshal results: %w", row.ID, err)
	}
	var patch *domain.AssetPatch
	if len(row.Patch) > 0 && string(row.Patch) != "null" {
		patch = &domain.AssetPatch{}
		if err := json.Unmarshal(row.Patch, patch); err != nil {
			return domain.CascadeRun{}, fmt.Errorf("cascade run %s unmarshal patch: %w", row.ID, err)
		}
	}
	if row.NextStep > len(steps) {
		return domain.CascadeRun{}, fmt.Errorf("cascade run %s: cursor %d beyond %d steps", row.ID, row.NextStep, len(steps))
	}
	return domain.CascadeRun{
		ID:        row.ID,
		Kind:      domain.CascadeKind(row.Kind),
		SubjectID: row.SubjectID,
		Patch:     patch,
		Steps:     steps,
		Cursor:    row.NextStep,
		Status:    domain.RunStatus(row.Status),
		Results:   results,
		Version:   row.Version,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func encode(run domain.CascadeRun) (patch, steps, results []byte, err error) {
	if run.Patch != nil {
		if patch, err = json.Marshal(run.Patch); err != nil {
			return nil, nil, nil, fmt.Errorf("cascade run %s marshal patch: %w", run.ID, err)
		}
	}
	if steps, err = postgres.JSONB(run.Steps); err != nil {
		return nil, nil, nil, fmt.Errorf("cascade run %s marshal steps: %w", run.ID, err)
	}
	if results, err = postgres.JSONB(run.Results); err != nil {
		return nil, nil, nil, fmt.Errorf("cascade run %s marshal results: %w", run.ID, err)
	}
	return patch, steps, results, nil
}
