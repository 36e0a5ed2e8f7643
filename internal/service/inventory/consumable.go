package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
)

func (s *Service) GetConsumable(ctx context.Context, id uuid.UUID) (domain.Consumable, error) {
	c, err := s.consumables.GetByID(ctx, id)
	if err != nil {
		return domain.Consumable{}, fmt.Errorf("get consumable: %w", err)
	}
	return c, nil
}

func (s *Service) ListConsumables(ctx context.Context, limit, offset int) ([]domain.Consumable, error) {
	items, err := s.consumables.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list consumables: %w", err)
	}
	return items, nil
}

// CreateConsumable adds a consumable with its full quantity in stock.
func (s *Service) CreateConsumable(ctx context.Context, input CreateConsumableInput) (domain.Consumable, error) {
	if err := input.Validate(); err != nil {
		return domain.Consumable{}, err
	}

	c := newConsumable(input, domain.ActionCreated, s.now())
	created, err := s.consumables.Create(ctx, c)
	if err != nil {
		return domain.Consumable{}, fmt.Errorf("create consumable: %w", err)
	}

	s.log.InfoContext(ctx, "consumable created",
		slog.String("consumable_id", created.ID.String()),
		slog.Int("quantity", created.Quantity),
	)
	return created, nil
}

// ImportConsumables inserts all rows or none.
func (s *Service) ImportConsumables(ctx context.Context, rows []CreateConsumableInput) (int, error) {
	if err := validateImport(rows, s.maxImportRows); err != nil {
		return 0, err
	}

	now := s.now()
	items := make([]domain.Consumable, len(rows))
	for i, row := range rows {
		items[i] = newConsumable(row, domain.ActionImported, now)
	}

	var n int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		n, err = s.consumables.BulkCreate(txCtx, items)
		if err != nil {
			return fmt.Errorf("bulk create consumables: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "consumables imported", slog.Int("count", n))
	return n, nil
}

// DeleteConsumable removes a consumable that has no active issues. Stock
// still held by employees must be revoked first.
func (s *Service) DeleteConsumable(ctx context.Context, id uuid.UUID) error {
	c, err := s.consumables.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get consumable: %w", err)
	}
	if n := c.ActiveIssued(); n > 0 {
		return fmt.Errorf("consumable %s has %d units issued: %w", id, n, domain.ErrConflict)
	}
	if err := s.consumables.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete consumable: %w", err)
	}

	s.log.InfoContext(ctx, "consumable deleted", slog.String("consumable_id", id.String()))
	return nil
}

func newConsumable(input CreateConsumableInput, action string, now time.Time) domain.Consumable {
	c := domain.Consumable{
		ID:              uuid.New(),
		Name:            domain.CleanText(input.Name),
		Category:        domain.CleanText(input.Category),
		InitialQuantity: input.Quantity,
		Quantity:        input.Quantity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	c.AuditLog, _ = domain.AppendEntry(nil, action, fmt.Sprintf("Stock %d", input.Quantity), now)
	return c
}
