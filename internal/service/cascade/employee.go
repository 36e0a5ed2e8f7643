package cascade

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/internal/service/versioned"
)

// ExitInput describes an employee leaving.
type ExitInput struct {
	EmployeeID uuid.UUID  `json:"-"`
	ExitDate   *time.Time `json:"exit_date,omitempty"`
	Reason     string     `json:"reason"`
}

func (i ExitInput) Validate() error {
	var errs []domain.FieldError
	if i.EmployeeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "employee_id", Message: "required"})
	}
	if len(domain.CleanText(i.Reason)) > 500 {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 500 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ProcessEmployeeExit marks the employee Inactive and then releases every
// asset and software seat they still hold. Marking an employee that is
// already Inactive writes nothing, but the release steps are planned again,
// so a repeated exit picks up anything a previous run left behind.
func (s *Service) ProcessEmployeeExit(ctx context.Context, input ExitInput) (domain.Report, error) {
	if err := input.Validate(); err != nil {
		return domain.Report{}, err
	}
	ctx = context.WithoutCancel(ctx)

	e, err := s.markExited(ctx, input)
	if err != nil {
		return domain.Report{}, err
	}

	steps, err := s.holdings(ctx, e.ID)
	if err != nil {
		return domain.Report{}, err
	}
	return s.start(ctx, domain.CascadeKindEmployeeExit, &e.ID, nil, steps)
}

func (s *Service) markExited(ctx context.Context, input ExitInput) (domain.Employee, error) {
	return versioned.Retry(ctx, s.cfg.Retry, s.log, "cascade.exit", func(ctx context.Context) (domain.Employee, error) {
		e, err := s.employees.GetByID(ctx, input.EmployeeID)
		if err != nil {
			return domain.Employee{}, fmt.Errorf("get employee: %w", err)
		}
		if !e.IsActive() {
			return e, nil
		}

		now := s.now()
		exitDate := now
		if input.ExitDate != nil {
			exitDate = input.ExitDate.UTC()
		}
		reason := domain.CleanText(input.Reason)

		e.Status = domain.EmployeeStatusInactive
		e.ExitDate = &exitDate
		e.ExitReason = reason
		e.AuditLog, _ = domain.AppendEntry(e.AuditLog, domain.ActionEmployeeExited,
			fmt.Sprintf("'status' from '%s' to '%s'", domain.EmployeeStatusActive, domain.EmployeeStatusInactive), now)
		e.Comments, _ = domain.AppendComment(e.Comments, exitComment(exitDate, reason), now)

		updated, err := s.employees.Update(ctx, e)
		if err != nil {
			return domain.Employee{}, fmt.Errorf("update employee: %w", err)
		}
		s.log.InfoContext(ctx, "employee exited", slog.String("employee_id", e.ID.String()))
		return updated, nil
	})
}

func exitComment(date time.Time, reason string) string {
	text := "Exited on " + date.Format(time.DateOnly)
	if reason != "" {
		text += ": " + reason
	}
	return text
}

// DeleteEmployee releases everything the employee holds and then deletes
// the employee record. The record is kept when any release step failed.
func (s *Service) DeleteEmployee(ctx context.Context, employeeID uuid.UUID) (domain.Report, error) {
	if employeeID == uuid.Nil {
		return domain.Report{}, domain.NewValidationError("employee_id", "required")
	}
	ctx = context.WithoutCancel(ctx)

	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return domain.Report{}, fmt.Errorf("get employee: %w", err)
	}

	steps, err := s.holdings(ctx, employeeID)
	if err != nil {
		return domain.Report{}, err
	}
	steps = append(steps, domain.CascadeStep{Target: domain.EntityTypeEmployee, TargetID: employeeID})
	return s.start(ctx, domain.CascadeKindEmployeeDelete, &employeeID, nil, steps)
}

// BulkDeleteEmployees runs DeleteEmployee for each id in order and merges
// the reports. An unreachable store stops the remaining deletions.
func (s *Service) BulkDeleteEmployees(ctx context.Context, ids []uuid.UUID) (domain.Report, error) {
	ids, err := distinct(ids, s.cfg.MaxBulkDelete, "employee_ids")
	if err != nil {
		return domain.Report{}, err
	}

	total := domain.Report{Kind: domain.CascadeKindEmployeeDelete}
	var cause error
	for n, id := range ids {
		rep, err := s.DeleteEmployee(ctx, id)
		var partial *domain.PartialCascadeError
		switch {
		case err == nil:
			total = total.Merge(rep)
		case errors.As(err, &partial):
			total = total.Merge(partial.Report)
			cause = partial.Cause
		default:
			total = total.Merge(failedReport(id, err, s.now()))
			if errors.Is(err, domain.ErrStoreUnavailable) {
				cause = err
			}
		}
		if cause != nil {
			total.Pending += len(ids) - n - 1
			total.Aborted = true
			break
		}
	}

	s.log.InfoContext(ctx, "bulk delete finished",
		slog.Int("employees", len(ids)),
		slog.Int("failed", total.Failed),
		slog.Int("pending", total.Pending),
	)
	if !total.Complete() {
		return total, &domain.PartialCascadeError{Report: total, Cause: cause}
	}
	return total, nil
}

// failedReport is the report of a deletion that could not start.
func failedReport(employeeID uuid.UUID, err error, at time.Time) domain.Report {
	return domain.Report{
		Kind:      domain.CascadeKindEmployeeDelete,
		Attempted: 1,
		Failed:    1,
		Items: []domain.StepResult{{
			Step:    domain.CascadeStep{Target: domain.EntityTypeEmployee, TargetID: employeeID},
			Outcome: domain.StepOutcomeFailed,
			Error:   err.Error(),
			At:      at,
		}},
	}
}

// holdings plans one step per asset and software seat held by employeeID.
func (s *Service) holdings(ctx context.Context, employeeID uuid.UUID) ([]domain.CascadeStep, error) {
	assets, err := s.assets.ListByAssignee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list assets by assignee: %w", err)
	}
	software, err := s.seatOps.HeldBy(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	steps := make([]domain.CascadeStep, 0, len(assets)+len(software))
	for _, a := range assets {
		steps = append(steps, domain.CascadeStep{Target: domain.EntityTypeAsset, TargetID: a.ID})
	}
	for _, sw := range software {
		steps = append(steps, domain.CascadeStep{Target: domain.EntityTypeSoftware, TargetID: sw.ID})
	}
	return steps, nil
}

func distinct(ids []uuid.UUID, limit int, field string) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, domain.NewValidationError(field, "at least one id is required")
	}
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return nil, domain.NewValidationError(field, "ids must not be empty")
		}
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	if limit > 0 && len(out) > limit {
		return nil, domain.NewValidationError(field, fmt.Sprintf("max %d ids per request", limit))
	}
	return out, nil
}
