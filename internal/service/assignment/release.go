package assignment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/internal/service/versioned"
)

// ReleaseHeld unassigns the asset if it is still held by from. It reports
// whether a write happened. An asset that was reassigned, unassigned or
// deleted in the meantime is left alone. The departing holder is not notified.
func (s *Service) ReleaseHeld(ctx context.Context, assetID uuid.UUID, from domain.EmployeeRef, reason string) (bool, error) {
	released, err := versioned.Retry(ctx, s.retry, s.log, "assignment.release", func(ctx context.Context) (bool, error) {
		current, err := s.assets.GetByID(ctx, assetID)
		if err != nil {
			return false, fmt.Errorf("get asset: %w", err)
		}
		if !current.State.IsAssignedTo(from.ID) {
			return false, nil
		}

		next := current
		next.State = Unassign(current.State)
		next.AuditLog, _ = domain.AppendUnassignment(current.AuditLog, &from, reason, s.now())
		if _, err := s.assets.Update(ctx, next); err != nil {
			return false, fmt.Errorf("update asset: %w", err)
		}
		return true, nil
	})
	if err != nil {
		return false, err
	}
	if released {
		s.log.InfoContext(ctx, "asset released",
			slog.String("asset_id", assetID.String()),
			slog.String("employee_id", from.ID.String()),
		)
	}
	return released, nil
}
