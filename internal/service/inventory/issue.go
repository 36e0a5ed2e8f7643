package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/internal/observability/metrics"
	"github.com/heartmarshall/assetledger/internal/service/versioned"
)

// IssueResult is the committed consumable plus the employee-side write.
type IssueResult struct {
	Consumable  domain.Consumable
	Issue       domain.IssueLogEntry
	SideEffects []domain.SideEffect
}

// IssueConsumable takes stock out for an active employee. The consumable is
// written once with its quantity, issue log and audit log together; the
// employee comment follows best-effort.
func (s *Service) IssueConsumable(ctx context.Context, input IssueInput) (IssueResult, error) {
	if err := input.Validate(); err != nil {
		return IssueResult{}, err
	}

	employee, err := s.employees.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return IssueResult{}, fmt.Errorf("get employee: %w", err)
	}
	if !employee.IsActive() {
		return IssueResult{}, domain.NewValidationError("employee_id", "employee is not active")
	}

	var entry domain.IssueLogEntry
	c, err := versioned.Retry(ctx, s.retry, s.log, "inventory.issue", func(ctx context.Context) (domain.Consumable, error) {
		current, err := s.consumables.GetByID(ctx, input.ConsumableID)
		if err != nil {
			return domain.Consumable{}, fmt.Errorf("get consumable: %w", err)
		}
		next, e, err := Issue(current, IssueParams{
			EmployeeID:   employee.ID,
			EmployeeName: employee.Name,
			Quantity:     input.Quantity,
			Remarks:      input.Remarks,
		}, s.now())
		if err != nil {
			return domain.Consumable{}, err
		}
		entry = e
		updated, err := s.consumables.Update(ctx, next)
		if err != nil {
			return domain.Consumable{}, fmt.Errorf("update consumable: %w", err)
		}
		return updated, nil
	})
	if err != nil {
		return IssueResult{}, err
	}
	metrics.ObserveStockMovement("issued", entry.Quantity)

	text := fmt.Sprintf("Issued %d x %s", entry.Quantity, c.Name)
	effect := domain.SideEffect{EmployeeID: employee.ID, Text: text, Outcome: s.roster.Notify(ctx, employee.ID, text)}

	s.log.InfoContext(ctx, "consumable issued",
		slog.String("consumable_id", c.ID.String()),
		slog.String("issue_id", entry.ID.String()),
		slog.String("employee_id", employee.ID.String()),
		slog.Int("quantity", entry.Quantity),
		slog.Int("remaining", c.Quantity),
	)
	return IssueResult{Consumable: c, Issue: entry, SideEffects: []domain.SideEffect{effect}}, nil
}

// RevokeConsumableIssue reverses an active issue and credits its stock back.
func (s *Service) RevokeConsumableIssue(ctx context.Context, input RevokeInput) (IssueResult, error) {
	if err := input.Validate(); err != nil {
		return IssueResult{}, err
	}

	var entry domain.IssueLogEntry
	c, err := versioned.Retry(ctx, s.retry, s.log, "inventory.revoke", func(ctx context.Context) (domain.Consumable, error) {
		current, err := s.consumables.GetByID(ctx, input.ConsumableID)
		if err != nil {
			return domain.Consumable{}, fmt.Errorf("get consumable: %w", err)
		}
		next, e, err := Revoke(current, input.IssueID, s.now())
		if err != nil {
			return domain.Consumable{}, err
		}
		entry = e
		updated, err := s.consumables.Update(ctx, next)
		if err != nil {
			return domain.Consumable{}, fmt.Errorf("update consumable: %w", err)
		}
		return updated, nil
	})
	if err != nil {
		return IssueResult{}, err
	}
	metrics.ObserveStockMovement("returned", entry.Quantity)

	text := fmt.Sprintf("Returned %d x %s", entry.Quantity, c.Name)
	effect := domain.SideEffect{EmployeeID: entry.EmployeeID, Text: text, Outcome: s.roster.Notify(ctx, entry.EmployeeID, text)}

	s.log.InfoContext(ctx, "consumable issue revoked",
		slog.String("consumable_id", c.ID.String()),
		slog.String("issue_id", entry.ID.String()),
		slog.Int("quantity", entry.Quantity),
		slog.Int("remaining", c.Quantity),
	)
	return IssueResult{Consumable: c, Issue: entry, SideEffects: []domain.SideEffect{effect}}, nil
}

// RestockConsumable adds units to a consumable.
func (s *Service) RestockConsumable(ctx context.Context, id uuid.UUID, quantity int) (domain.Consumable, error) {
	if quantity < 1 {
		return domain.Consumable{}, domain.NewValidationError("quantity", "must be at least 1")
	}

	c, err := versioned.Retry(ctx, s.retry, s.log, "inventory.restock", func(ctx context.Context) (domain.Consumable, error) {
		current, err := s.consumables.GetByID(ctx, id)
		if err != nil {
			return domain.Consumable{}, fmt.Errorf("get consumable: %w", err)
		}
		next, err := Restock(current, quantity, s.now())
		if err != nil {
			return domain.Consumable{}, err
		}
		updated, err := s.consumables.Update(ctx, next)
		if err != nil {
			return domain.Consumable{}, fmt.Errorf("update consumable: %w", err)
		}
		return updated, nil
	})
	if err != nil {
		return domain.Consumable{}, err
	}
	metrics.ObserveStockMovement("restocked", quantity)

	s.log.InfoContext(ctx, "consumable restocked",
		slog.String("consumable_id", c.ID.String()),
		slog.Int("added", quantity),
		slog.Int("quantity", c.Quantity),
	)
	return c, nil
}
