// Package assignment owns asset state: which employee holds an asset and
// whether it has been retired. Every change is diffed into the asset's audit
// log; the employees involved are told best-effort after the asset is saved.
package assignment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/pkg/retry"
)

type assetRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Asset, error)
	List(ctx context.Context, f domain.AssetFilter) ([]domain.Asset, error)
	ExistingSerials(ctx context.Context, serials []string) ([]string, error)
	Create(ctx context.Context, a domain.Asset) (domain.Asset, error)
	BulkCreate(ctx context.Context, assets []domain.Asset) (int, error)
	Update(ctx context.Context, a domain.Asset) (domain.Asset, error)
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

// Service provides asset assignment and lifecycle operations.
type Service struct {
	assets        assetRepo
	employees     employeeRepo
	roster        notifier
	tx            txManager
	retry         retry.Config
	maxImportRows int
	log           *slog.Logger
	now           func() time.Time
}

// NewService creates a new assignment service.
func NewService(
	log *slog.Logger,
	assets assetRepo,
	employees employeeRepo,
	roster notifier,
	tx txManager,
	retryCfg retry.Config,
	maxImportRows int,
) *Service {
	return &Service{
		assets:        assets,
		employees:     employees,
		roster:        roster,
		tx:            tx,
		retry:         retryCfg,
		maxImportRows: maxImportRows,
		log:           log.With("service", "assignment"),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Result is the committed asset plus the employee-side writes that followed.
type Result struct {
	Asset       domain.Asset
	Changed     bool
	SideEffects []domain.SideEffect
}
