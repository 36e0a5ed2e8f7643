// Package licensing manages software seats held by employees.
package licensing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/internal/service/versioned"
	"github.com/heartmarshall/assetledger/pkg/retry"
)

type softwareRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Software, error)
	List(ctx context.Context, limit, offset int) ([]domain.Software, error)
	ListByHolder(ctx context.Context, employeeID uuid.UUID) ([]domain.Software, error)
	Create(ctx context.Context, s domain.Software) (domain.Software, error)
	BulkCreate(ctx context.Context, items []domain.Software) (int, error)
	Update(ctx context.Context, s domain.Software) (domain.Software, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type employeeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Employee, error)
}

type notifier interface {
	Notify(ctx context.Context, employeeID uuid.UUID, text string) domain.NotifyOutcome
}

// Service provides software seat operations.
type Service struct {
	software      softwareRepo
	employees     employeeRepo
	roster        notifier
	retry         retry.Config
	maxImportRows int
	log           *slog.Logger
	now           func() time.Time
}

// NewService creates a new licensing service.
func NewService(
	log *slog.Logger,
	software softwareRepo,
	employees employeeRepo,
	roster notifier,
	retryCfg retry.Config,
	maxImportRows int,
) *Service {
	return &Service{
		software:      software,
		employees:     employees,
		roster:        roster,
		retry:         retryCfg,
		maxImportRows: maxImportRows,
		log:           log.With("service", "licensing"),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Result is the committed software record plus the employee-side write that
// followed, if any.
type Result struct {
	Software    domain.Software
	Changed     bool
	SideEffects []domain.SideEffect
}

// CreateSoftwareInput holds the parameters for adding a software product.
type CreateSoftwareInput struct {
	Name          string `json:"name"`
	Vendor        string `json:"vendor"`
	TotalLicenses int    `json:"total_licenses"`
}

// Validate checks all fields and collects all errors.
func (i CreateSoftwareInput) Validate() error {
	var errs []domain.FieldError
	if domain.CleanText(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.TotalLicenses < 0 {
		errs = append(errs, domain.FieldError{Field: "total_licenses", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (s *Service) GetSoftware(ctx context.Context, id uuid.UUID) (domain.Software, error) {
	sw, err := s.software.GetByID(ctx, id)
	if err != nil {
		return domain.Software{}, fmt.Errorf("get software: %w", err)
	}
	return sw, nil
}

func (s *Service) ListSoftware(ctx context.Context, limit, offset int) ([]domain.Software, error) {
	items, err := s.software.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list software: %w", err)
	}
	return items, nil
}

// HeldBy lists the software in which employeeID holds a seat.
func (s *Service) HeldBy(ctx context.Context, employeeID uuid.UUID) ([]domain.Software, error) {
	items, err := s.software.ListByHolder(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list software by holder: %w", err)
	}
	return items, nil
}

func (s *Service) CreateSoftware(ctx context.Context, input CreateSoftwareInput) (domain.Software, error) {
	if err := input.Validate(); err != nil {
		return domain.Software{}, err
	}

	created, err := s.software.Create(ctx, newSoftware(input, domain.ActionCreated, s.now()))
	if err != nil {
		return domain.Software{}, fmt.Errorf("create software: %w", err)
	}

	s.log.InfoContext(ctx, "software created", slog.String("software_id", created.ID.String()))
	return created, nil
}

// ImportSoftware inserts all rows in one statement, or none of them.
func (s *Service) ImportSoftware(ctx context.Context, rows []CreateSoftwareInput) (int, error) {
	if len(rows) == 0 {
		return 0, domain.NewValidationError("rows", "at least one row is required")
	}
	if s.maxImportRows > 0 && len(rows) > s.maxImportRows {
		return 0, domain.NewValidationError("rows", fmt.Sprintf("max %d rows per import", s.maxImportRows))
	}

	var errs []domain.FieldError
	for n, row := range rows {
		var ve *domain.ValidationError
		if errors.As(row.Validate(), &ve) {
			for _, fe := range ve.Errors {
				errs = append(errs, domain.FieldError{Field: fmt.Sprintf("rows[%d].%s", n, fe.Field), Message: fe.Message})
			}
		}
	}
	if len(errs) > 0 {
		return 0, domain.NewValidationErrors(errs)
	}

	now := s.now()
	items := make([]domain.Software, len(rows))
	for i, row := range rows {
		items[i] = newSoftware(row, domain.ActionImported, now)
	}
	n, err := s.software.BulkCreate(ctx, items)
	if err != nil {
		return 0, fmt.Errorf("bulk create software: %w", err)
	}

	s.log.InfoContext(ctx, "software imported", slog.Int("count", n))
	return n, nil
}

func newSoftware(input CreateSoftwareInput, action string, now time.Time) domain.Software {
	sw := domain.Software{
		ID:            uuid.New(),
		Name:          domain.CleanText(input.Name),
		Vendor:        domain.CleanText(input.Vendor),
		TotalLicenses: input.TotalLicenses,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	sw.AuditLog, _ = domain.AppendEntry(nil, action, fmt.Sprintf("Licenses %d", input.TotalLicenses), now)
	return sw
}

func (s *Service) DeleteSoftware(ctx context.Context, id uuid.UUID) error {
	if err := s.software.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete software: %w", err)
	}
	s.log.InfoContext(ctx, "software deleted", slog.String("software_id", id.String()))
	return nil
}

// AssignSeat gives an active employee a seat. Assigning a seat the employee
// already holds changes nothing.
func (s *Service) AssignSeat(ctx context.Context, softwareID, employeeID uuid.UUID) (Result, error) {
	if softwareID == uuid.Nil || employeeID == uuid.Nil {
		return Result{}, domain.NewValidationError("id", "software_id and employee_id are required")
	}

	e, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return Result{}, fmt.Errorf("get employee: %w", err)
	}
	if !e.IsActive() {
		return Result{}, domain.NewValidationError("employee_id", "employee is not active")
	}

	var changed bool
	sw, err := versioned.Retry(ctx, s.retry, s.log, "licensing.assign", func(ctx context.Context) (domain.Software, error) {
		current, err := s.software.GetByID(ctx, softwareID)
		if err != nil {
			return domain.Software{}, fmt.Errorf("get software: %w", err)
		}
		var next domain.Software
		next, changed, err = Grant(current, *e.Ref(), s.now())
		if err != nil || !changed {
			return current, err
		}
		updated, err := s.software.Update(ctx, next)
		if err != nil {
			return domain.Software{}, fmt.Errorf("update software: %w", err)
		}
		return updated, nil
	})
	if err != nil {
		return Result{}, err
	}
	if !changed {
		return Result{Software: sw}, nil
	}

	text := "License assigned: " + sw.Name
	effect := domain.SideEffect{EmployeeID: employeeID, Text: text, Outcome: s.roster.Notify(ctx, employeeID, text)}

	s.log.InfoContext(ctx, "seat assigned",
		slog.String("software_id", softwareID.String()),
		slog.String("employee_id", employeeID.String()),
		slog.Int("seats_available", sw.SeatsAvailable()),
	)
	return Result{Software: sw, Changed: true, SideEffects: []domain.SideEffect{effect}}, nil
}

// ReleaseSeat takes an employee's seat back. Releasing a seat that is not
// held changes nothing.
func (s *Service) ReleaseSeat(ctx context.Context, softwareID, employeeID uuid.UUID) (Result, error) {
	if softwareID == uuid.Nil || employeeID == uuid.Nil {
		return Result{}, domain.NewValidationError("id", "software_id and employee_id are required")
	}

	holder := domain.EmployeeRef{ID: employeeID, Name: employeeID.String()}
	e, err := s.employees.GetByID(ctx, employeeID)
	switch {
	case err == nil:
		holder = *e.Ref()
	case !errors.Is(err, domain.ErrNotFound):
		return Result{}, fmt.Errorf("get employee: %w", err)
	}

	sw, changed, err := s.release(ctx, softwareID, holder, "")
	if err != nil || !changed {
		return Result{Software: sw}, err
	}

	text := "License released: " + sw.Name
	effect := domain.SideEffect{EmployeeID: employeeID, Text: text, Outcome: s.roster.Notify(ctx, employeeID, text)}
	return Result{Software: sw, Changed: true, SideEffects: []domain.SideEffect{effect}}, nil
}

// ReleaseHeld releases from's seat without telling the employee. It reports
// whether a write happened.
func (s *Service) ReleaseHeld(ctx context.Context, softwareID uuid.UUID, from domain.EmployeeRef, reason string) (bool, error) {
	_, changed, err := s.release(ctx, softwareID, from, reason)
	return changed, err
}

func (s *Service) release(ctx context.Context, softwareID uuid.UUID, holder domain.EmployeeRef, reason string) (domain.Software, bool, error) {
	var changed bool
	sw, err := versioned.Retry(ctx, s.retry, s.log, "licensing.release", func(ctx context.Context) (domain.Software, error) {
		current, err := s.software.GetByID(ctx, softwareID)
		if err != nil {
			return domain.Software{}, fmt.Errorf("get software: %w", err)
		}
		var next domain.Software
		next, changed = Release(current, holder, reason, s.now())
		if !changed {
			return current, nil
		}
		updated, err := s.software.Update(ctx, next)
		if err != nil {
			return domain.Software{}, fmt.Errorf("update software: %w", err)
		}
		return updated, nil
	})
	if err != nil {
		return domain.Software{}, false, err
	}
	if changed {
		s.log.InfoContext(ctx, "seat released",
			slog.String("software_id", softwareID.String()),
			slog.String("employee_id", holder.ID.String()),
		)
	}
	return sw, changed, nil
}
