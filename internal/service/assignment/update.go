package assignment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/internal/service/versioned"
)

func (s *Service) AssignAsset(ctx context.Context, assetID, employeeID uuid.UUID) (Result, error) {
	return s.UpdateAsset(ctx, UpdateAssetInput{AssetID: assetID, AssignTo: &employeeID})
}

func (s *Service) UnassignAsset(ctx context.Context, assetID uuid.UUID) (Result, error) {
	return s.UpdateAsset(ctx, UpdateAssetInput{AssetID: assetID, Unassign: true})
}

// SetAssetRetired marks the asset Donated or E-Waste. A holder is collected first.
func (s *Service) SetAssetRetired(ctx context.Context, assetID uuid.UUID, kind domain.AssetStatus) (Result, error) {
	return s.UpdateAsset(ctx, UpdateAssetInput{AssetID: assetID, Patch: domain.AssetPatch{Retire: &kind}})
}

func (s *Service) ReinstateAsset(ctx context.Context, assetID uuid.UUID) (Result, error) {
	return s.UpdateAsset(ctx, UpdateAssetInput{AssetID: assetID, Reinstate: true})
}

// UpdateAsset applies an edit to the current asset record and writes it
// once. When the holder changed, the previous holder gets a "Collected"
// comment and the new one an "Assigned" comment; those writes are
// best-effort and never undo the asset write. An edit that changes nothing
// is not written.
func (s *Service) UpdateAsset(ctx context.Context, input UpdateAssetInput) (Result, error) {
	if err := input.Validate(); err != nil {
		return Result{}, err
	}

	var holder *domain.Employee
	if input.AssignTo != nil {
		e, err := s.activeEmployee(ctx, *input.AssignTo)
		if err != nil {
			return Result{}, err
		}
		holder = &e
	}

	var (
		before  domain.Asset
		changed bool
	)
	a, err := versioned.Retry(ctx, s.retry, s.log, "assignment.update", func(ctx context.Context) (domain.Asset, error) {
		current, err := s.assets.GetByID(ctx, input.AssetID)
		if err != nil {
			return domain.Asset{}, fmt.Errorf("get asset: %w", err)
		}
		before = current

		next, err := apply(current, input)
		if err != nil {
			return domain.Asset{}, err
		}
		ref, err := s.refs(ctx, current, holder)
		if err != nil {
			return domain.Asset{}, err
		}

		entries := Diff(current, next, ref, s.now())
		if len(entries) == 0 {
			changed = false
			return current, nil
		}
		changed = true
		next.AuditLog = withEntries(current.AuditLog, entries)

		updated, err := s.assets.Update(ctx, next)
		if err != nil {
			return domain.Asset{}, fmt.Errorf("update asset: %w", err)
		}
		return updated, nil
	})
	if err != nil {
		return Result{}, err
	}
	if !changed {
		return Result{Asset: a}, nil
	}

	effects := s.holderChanged(ctx, before, a)

	s.log.InfoContext(ctx, "asset updated",
		slog.String("asset_id", a.ID.String()),
		slog.String("status", a.State.Status().String()),
		slog.Int("side_effects", len(effects)),
	)
	return Result{Asset: a, Changed: true, SideEffects: effects}, nil
}

// ApplyPatch applies the descriptive fields and retirement of p to a. It is
// the per-record step of a mass update.
func ApplyPatch(a domain.Asset, p domain.AssetPatch) (domain.Asset, error) {
	return apply(a, UpdateAssetInput{AssetID: a.ID, Patch: p})
}

func apply(a domain.Asset, input UpdateAssetInput) (domain.Asset, error) {
	next := a
	p := input.Patch
	if p.Name != nil {
		next.Name = domain.CleanText(*p.Name)
	}
	if p.Category != nil {
		next.Category = domain.CleanText(*p.Category)
	}
	if p.Location != nil {
		next.Location = domain.CleanText(*p.Location)
	}
	if p.Vendor != nil {
		next.Vendor = domain.CleanText(*p.Vendor)
	}
	if input.SerialNumber != nil {
		next.SerialNumber = domain.NormalizeSerial(*input.SerialNumber)
	}

	var err error
	switch {
	case input.AssignTo != nil:
		next.State, err = Assign(a.State, *input.AssignTo)
	case input.Unassign:
		next.State = Unassign(a.State)
	case input.Reinstate:
		next.State, err = Reinstate(a.State)
	case p.Retire != nil:
		next.State, err = Retire(a.State, *p.Retire)
	}
	if err != nil {
		return a, err
	}
	return next, nil
}

// refs builds the ledger reference lookup for the holders involved in an
// edit. A previous holder that no longer exists is referenced by ID only.
func (s *Service) refs(ctx context.Context, current domain.Asset, holder *domain.Employee) (RefFunc, error) {
	known := map[uuid.UUID]*domain.EmployeeRef{}
	if holder != nil {
		known[holder.ID] = holder.Ref()
	}
	if prev, ok := current.State.Assignee(); ok && known[prev] == nil {
		e, err := s.employees.GetByID(ctx, prev)
		switch {
		case err == nil:
			known[prev] = e.Ref()
		case errors.Is(err, domain.ErrNotFound):
			known[prev] = &domain.EmployeeRef{ID: prev, Name: prev.String()}
		default:
			return nil, fmt.Errorf("get previous holder: %w", err)
		}
	}
	return func(id uuid.UUID) *domain.EmployeeRef {
		if r, ok := known[id]; ok {
			return r
		}
		return &domain.EmployeeRef{ID: id, Name: id.String()}
	}, nil
}

func (s *Service) holderChanged(ctx context.Context, before, after domain.Asset) []domain.SideEffect {
	prev, had := before.State.Assignee()
	next, has := after.State.Assignee()
	if had == has && prev == next {
		return nil
	}

	var effects []domain.SideEffect
	if had {
		effects = append(effects, s.notify(ctx, prev, "Collected: "+after.Name))
	}
	if has {
		effects = append(effects, s.notify(ctx, next, "Assigned: "+after.Name))
	}
	return effects
}
