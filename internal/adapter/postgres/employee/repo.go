// Package employee implements the employee record store on PostgreSQL.
package employee

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
	table  = "employees"
	entity = "employee"
)

var columns = []string{
	"id", "name", "email", "department", "status", "exit_date", "exit_reason",
	"comments", "audit_log", "version", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides employee persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new employee repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Employee, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	row, err := postgres.Get[employeeRow](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return domain.Employee{}, postgres.MapError(err, entity, id)
	}
	return row.toDomain()
}

// GetByIDs returns the employees that exist among ids, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": ids})
	return r.selectEmployees(ctx, q)
}

func (r *Repo) List(ctx context.Context, f domain.EmployeeFilter) ([]domain.Employee, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("name", "id")
	if f.Status != nil {
		q = q.Where(squirrel.Eq{"status": string(*f.Status)})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}
	return r.selectEmployees(ctx, q)
}

// CountByStatus returns the number of employees per status.
func (r *Repo) CountByStatus(ctx context.Context) (map[domain.EmployeeStatus]int, error) {
	q := postgres.Builder().Select("status", "count(*) AS n").From(table).GroupBy("status")

	rows, err := postgres.Select[statusCount](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, "counts")
	}
	out := make(map[domain.EmployeeStatus]int, len(rows))
	for _, row := range rows {
		out[domain.EmployeeStatus(row.Status)] = row.N
	}
	return out, nil
}

func (r *Repo) Create(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	vals, err := insertValues(&e)
	if err != nil {
		return domain.Employee{}, err
	}
	q := postgres.Builder().Insert(table).Columns(columns...).Values(vals...).Suffix(returning)

	row, err := postgres.Get[employeeRow](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return domain.Employee{}, postgres.MapError(err, entity, e.ID)
	}
	return row.toDomain()
}

// BulkCreate inserts all employees in one statement.
func (r *Repo) BulkCreate(ctx context.Context, employees []domain.Employee) (int, error) {
	if len(employees) == 0 {
		return 0, nil
	}
	q := postgres.Builder().Insert(table).Columns(columns...)
	for i := range employees {
		vals, err := insertValues(&employees[i])
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

// Update writes the full record if its version still matches.
func (r *Repo) Update(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	comments, err := postgres.JSONB(e.Comments)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("employee %s marshal comments: %w", e.ID, err)
	}
	audit, err := postgres.JSONB(e.AuditLog)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("employee %s marshal audit_log: %w", e.ID, err)
	}

	db := postgres.QuerierFromCtx(ctx, r.db)
	q := postgres.Builder().Update(table).
		Set("name", e.Name).
		Set("email", e.Email).
		Set("department", e.Department).
		Set("status", string(e.Status)).
		Set("exit_date", e.ExitDate).
		Set("exit_reason", e.ExitReason).
		Set("comments", comments).
		Set("audit_log", audit).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": e.ID, "version": e.Version}).
		Suffix(returning)

	row, err := postgres.Get[employeeRow](ctx, db, q)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Employee{}, postgres.StaleOrMissing(ctx, db, table, entity, e.ID)
	}
	if err != nil {
		return domain.Employee{}, postgres.MapError(err, entity, e.ID)
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

func (r *Repo) selectEmployees(ctx context.Context, q squirrel.SelectBuilder) ([]domain.Employee, error) {
	rows, err := postgres.Select[employeeRow](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, "list")
	}
	out := make([]domain.Employee, 0, len(rows))
	for _, row := range rows {
		e, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type employeeRow struct {
	ID         uuid.UUID  `db:"id"`
	Name       string     `db:"name"`
	Email      string     `db:"email"`
	Department string     `db:"department"`
	Status     string     `db:"status"`
	ExitDate   *time.Time `db:"exit_date"`
	ExitReason string     `db:"exit_reason"`
	Comments   []byte     `db:"comments"`
	AuditLog   []byte     `db:"audit_log"`
	Version    int64      `db:"version"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

func (row employeeRow) toDomain() (domain.Employee, error) {
	comments, err := postgres.FromJSONB[domain.Comment](row.Comments)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("employee %s unmarshal comments: %w", row.ID, err)
	}
	audit, err := postgres.FromJSONB[domain.LedgerEntry](row.AuditLog)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("employee %s unmarshal audit_log: %w", row.ID, err)
	}
	return domain.Employee{
		ID:         row.ID,
		Name:       row.Name,
		Email:      row.Email,
		Department: row.Department,
		Status:     domain.EmployeeStatus(row.Status),
		ExitDate:   row.ExitDate,
		ExitReason: row.ExitReason,
		Comments:   comments,
		AuditLog:   audit,
		Version:    row.Version,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}

func insertValues(e *domain.Employee) ([]any, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Status == "" {
		e.Status = domain.EmployeeStatusActive
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = e.CreatedAt
	}
	e.Version = 1

	comments, err := postgres.JSONB(e.Comments)
	if err != nil {
		return nil, fmt.Errorf("employee %s marshal comments: %w", e.ID, err)
	}
	audit, err := postgres.JSONB(e.AuditLog)
	if err != nil {
		return nil, fmt.Errorf("employee %s marshal audit_log: %w", e.ID, err)
	}
	return []any{
		e.ID, e.Name, e.Email, e.Department, string(e.Status), e.ExitDate, e.ExitReason,
		comments, audit, e.Version, e.CreatedAt, e.UpdatedAt,
	}, nil
}

type statusCount struct {
	Status string `db:"status"`
	N      int    `db:"n"`
}
