package assignment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
)

func (s *Service) GetAsset(ctx context.Context, id uuid.UUID) (domain.Asset, error) {
	a, err := s.assets.GetByID(ctx, id)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("get asset: %w", err)
	}
	return a, nil
}

func (s *Service) ListAssets(ctx context.Context, f domain.AssetFilter) ([]domain.Asset, error) {
	if f.Status != nil && !f.Status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown asset status")
	}
	items, err := s.assets.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return items, nil
}

// CreateAsset adds an asset, optionally already assigned to an active employee.
func (s *Service) CreateAsset(ctx context.Context, input CreateAssetInput) (Result, error) {
	if err := input.Validate(); err != nil {
		return Result{}, err
	}

	now := s.now()
	a := newAsset(input, domain.ActionCreated, now)
	if input.AssignTo != nil {
		holder, err := s.activeEmployee(ctx, *input.AssignTo)
		if err != nil {
			return Result{}, err
		}
		a.State = domain.StateAssigned(holder.ID)
		a.AuditLog, _ = domain.AppendAssignment(a.AuditLog, nil, holder.Ref(), now)
	}

	created, err := s.assets.Create(ctx, a)
	if err != nil {
		return Result{}, fmt.Errorf("create asset: %w", err)
	}

	var effects []domain.SideEffect
	if holder, ok := created.State.Assignee(); ok {
		effects = append(effects, s.notify(ctx, holder, "Assigned: "+created.Name))
	}

	s.log.InfoContext(ctx, "asset created",
		slog.String("asset_id", created.ID.String()),
		slog.String("status", created.State.Status().String()),
	)
	return Result{Asset: created, Changed: true, SideEffects: effects}, nil
}

// ImportAssets inserts all rows or none. Serial numbers must be unique within
// the batch and against existing assets.
func (s *Service) ImportAssets(ctx context.Context, rows []CreateAssetInput) (int, error) {
	if err := validateImport(rows, s.maxImportRows); err != nil {
		return 0, err
	}

	serials := make([]string, 0, len(rows))
	for _, row := range rows {
		if serial := domain.NormalizeSerial(row.SerialNumber); serial != "" {
			serials = append(serials, serial)
		}
	}
	if len(serials) > 0 {
		existing, err := s.assets.ExistingSerials(ctx, serials)
		if err != nil {
			return 0, fmt.Errorf("check serials: %w", err)
		}
		if err := duplicateSerials(rows, existing); err != nil {
			return 0, err
		}
	}

	now := s.now()
	assets := make([]domain.Asset, len(rows))
	for i, row := range rows {
		assets[i] = newAsset(row, domain.ActionImported, now)
	}

	var n int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		n, err = s.assets.BulkCreate(txCtx, assets)
		if err != nil {
			return fmt.Errorf("bulk create assets: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "assets imported", slog.Int("count", n))
	return n, nil
}

// DeleteAsset removes the asset. Its holder, if any, is told it was collected.
func (s *Service) DeleteAsset(ctx context.Context, id uuid.UUID) (Result, error) {
	a, err := s.assets.GetByID(ctx, id)
	if err != nil {
		return Result{}, fmt.Errorf("get asset: %w", err)
	}
	if err := s.assets.Delete(ctx, id); err != nil {
		return Result{}, fmt.Errorf("delete asset: %w", err)
	}

	var effects []domain.SideEffect
	if holder, ok := a.State.Assignee(); ok {
		effects = append(effects, s.notify(ctx, holder, "Collected: "+a.Name+" (asset deleted)"))
	}

	s.log.InfoContext(ctx, "asset deleted", slog.String("asset_id", id.String()))
	return Result{Asset: a, Changed: true, SideEffects: effects}, nil
}

func newAsset(input CreateAssetInput, action string, now time.Time) domain.Asset {
	a := domain.Asset{
		ID:           uuid.New(),
		Name:         domain.CleanText(input.Name),
		Category:     domain.CleanText(input.Category),
		SerialNumber: domain.NormalizeSerial(input.SerialNumber),
		Location:     domain.CleanText(input.Location),
		Vendor:       domain.CleanText(input.Vendor),
		State:        domain.StateAvailable(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	a.AuditLog, _ = domain.AppendEntry(nil, action, "", now)
	return a
}

func duplicateSerials(rows []CreateAssetInput, existing []string) error {
	if len(existing) == 0 {
		return nil
	}
	taken := make(map[string]bool, len(existing))
	for _, s := range existing {
		taken[s] = true
	}
	var errs []domain.FieldError
	for n, row := range rows {
		if taken[domain.NormalizeSerial(row.SerialNumber)] {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("rows[%d].serial_number", n), Message: "already exists"})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (s *Service) activeEmployee(ctx context.Context, id uuid.UUID) (domain.Employee, error) {
	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	if !e.IsActive() {
		return domain.Employee{}, domain.NewValidationError("assign_to", "employee is not active")
	}
	return e, nil
}

func (s *Service) notify(ctx context.Context, employeeID uuid.UUID, text string) domain.SideEffect {
	return domain.SideEffect{EmployeeID: employeeID, Text: text, Outcome: s.roster.Notify(ctx, employeeID, text)}
}
