// Package inventory keeps consumable stock consistent with its issue history.
// The pure operations in ledger.go compute the next state; Service loads,
// applies and persists them, then tells the employee's record.
package inventory

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/pkg/retry"
)

type consumableRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Consumable, error)
	List(ctx context.Context, limit, offset int) ([]domain.Consumable, error)
	Create(ctx context.Context, c domain.Consumable) (domain.Consumable, error)
	BulkCreate(ctx context.Context, items []domain.Consumable) (int, error)
	Update(ctx context.Context, c domain.Consumable) (domain.Consumable, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type employeeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Employee, error)
}

type notifier interface {
	Notify(ctx context.Context, employeeID uuid.UUID, text string) domain.NotifyOutcome
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides consumable stock operations.
type Service struct {
	consumables   consumableRepo
	employees     employeeRepo
	roster        notifier
	tx            txManager
	retry         retry.Config
	maxImportRows int
	log           *slog.Logger
	now           func() time.Time
}

// NewService creates a new inventory service.
func NewService(
	log *slog.Logger,
	consumables consumableRepo,
	employees employeeRepo,
	roster notifier,
	tx txManager,
	retryCfg retry.Config,
	maxImportRows int,
) *Service {
	return &Service{
		consumables:   consumables,
		employees:     employees,
		roster:        roster,
		tx:            tx,
		retry:         retryCfg,
		maxImportRows: maxImportRows,
		log:           log.With("service", "inventory"),
		now:           func() time.Time { return time.Now().UTC() },
	}
}
