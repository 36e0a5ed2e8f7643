package cascade

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
)

// MassUpdateAssets applies patch to each asset in turn. Every asset is
// re-read before it is edited, so fields outside the patch keep whatever a
// concurrent writer put there.
func (s *Service) MassUpdateAssets(ctx context.Context, ids []uuid.UUID, patch domain.AssetPatch) (domain.Report, error) {
	if err := patch.Validate(); err != nil {
		return domain.Report{}, err
	}
	ids, err := distinct(ids, s.cfg.MaxMassUpdate, "asset_ids")
	if err != nil {
		return domain.Report{}, err
	}
	ctx = context.WithoutCancel(ctx)

	steps := make([]domain.CascadeStep, len(ids))
	for i, id := range ids {
		steps[i] = domain.CascadeStep{Target: domain.EntityTypeAsset, TargetID: id}
	}
	return s.start(ctx, domain.CascadeKindMassUpdate, nil, &patch, steps)
}
