package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/internal/observability/metrics"
	"github.com/heartmarshall/assetledger/internal/service/versioned"
)

// AppendComment adds a comment to the employee record, retrying on version
// conflicts.
func (s *Service) AppendComment(ctx context.Context, employeeID uuid.UUID, text string) (domain.Employee, error) {
	text = domain.CleanText(text)
	if employeeID == uuid.Nil {
		return domain.Employee{}, domain.NewValidationError("employee_id", "required")
	}
	if text == "" {
		return domain.Employee{}, domain.NewValidationError("text", "required")
	}

	return versioned.Retry(ctx, s.cfg.Retry, s.log, "roster.append_comment", func(ctx context.Context) (domain.Employee, error) {
		e, err := s.employees.GetByID(ctx, employeeID)
		if err != nil {
			return domain.Employee{}, fmt.Errorf("get employee: %w", err)
		}
		e.Comments, _ = domain.AppendComment(e.Comments, text, s.now())

		updated, err := s.employees.Update(ctx, e)
		if err != nil {
			return domain.Employee{}, fmt.Errorf("update employee: %w", err)
		}
		return updated, nil
	})
}

// Notify writes a comment best-effort. A failed write is queued for replay;
// a write for an employee that no longer exists is dropped. Notify never
// returns an error: the caller's primary write has already been committed.
func (s *Service) Notify(ctx context.Context, employeeID uuid.UUID, text string) domain.NotifyOutcome {
	_, err := s.AppendComment(ctx, employeeID, text)
	if err == nil {
		metrics.ObserveFollowup(string(domain.NotifyWritten))
		return domain.NotifyWritten
	}

	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
		s.log.WarnContext(ctx, "employee comment dropped",
			slog.String("employee_id", employeeID.String()),
			slog.String("error", err.Error()),
		)
		metrics.ObserveFollowup(string(domain.NotifyDropped))
		return domain.NotifyDropped
	}

	f := domain.Followup{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Text:       text,
		Attempts:   1,
		CreatedAt:  s.now(),
	}
	if qErr := s.queue.Push(ctx, f); qErr != nil {
		s.log.ErrorContext(ctx, "employee comment lost: queue unavailable",
			slog.String("employee_id", employeeID.String()),
			slog.String("text", text),
			slog.String("error", err.Error()),
			slog.String("queue_error", qErr.Error()),
		)
		metrics.ObserveFollowup(string(domain.NotifyDropped))
		return domain.NotifyDropped
	}

	s.log.WarnContext(ctx, "employee comment queued for retry",
		slog.String("employee_id", employeeID.String()),
		slog.String("followup_id", f.ID.String()),
		slog.String("error", err.Error()),
	)
	metrics.ObserveFollowup(string(domain.NotifyQueued))
	return domain.NotifyQueued
}
