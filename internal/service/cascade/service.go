// Package cascade runs operations that touch many records one after another:
// employee exit, employee deletion and mass asset edits. Each step commits
// on its own; there is no rollback. A run's plan and cursor are persisted so
// that a run interrupted by a store outage or a crash can be resumed.
package cascade

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/internal/service/assignment"
	"github.com/heartmarshall/assetledger/pkg/retry"
)

type employeeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Employee, error)
	Update(ctx context.Context, e domain.Employee) (domain.Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type assetRepo interface {
	ListByAssignee(ctx context.Context, employeeID uuid.UUID) ([]domain.Asset, error)
}

type runRepo interface {
	Create(ctx context.Context, run domain.CascadeRun) (domain.CascadeRun, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.CascadeRun, error)
	Update(ctx context.Context, run domain.CascadeRun) (domain.CascadeRun, error)
	ListUnfinished(ctx context.Context, before time.Time, limit int) ([]domain.CascadeRun, error)
}

// assetWriter is the assignment service.
type assetWriter interface {
	ReleaseHeld(ctx context.Context, assetID uuid.UUID, from domain.EmployeeRef, reason string) (bool, error)
	UpdateAsset(ctx context.Context, input assignment.UpdateAssetInput) (assignment.Result, error)
}

// seatWriter is the licensing service.
type seatWriter interface {
	HeldBy(ctx context.Context, employeeID uuid.UUID) ([]domain.Software, error)
	ReleaseHeld(ctx context.Context, softwareID uuid.UUID, from domain.EmployeeRef, reason string) (bool, error)
}

// Config bounds cascade work.
type Config struct {
	Retry            retry.Config
	StepTimeout      time.Duration
	MaxBulkDelete    int
	MaxMassUpdate    int
	ResumeBatch      int
	ResumeStaleAfter time.Duration
}

// Service coordinates multi-record cascades.
type Service struct {
	employees employeeRepo
	assets    assetRepo
	runs      runRepo
	assetOps  assetWriter
	seatOps   seatWriter
	cfg       Config
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new cascade coordinator.
func NewService(
	log *slog.Logger,
	employees employeeRepo,
	assets assetRepo,
	runs runRepo,
	assetOps assetWriter,
	seatOps seatWriter,
	cfg Config,
) *Service {
	return &Service{
		employees: employees,
		assets:    assets,
		runs:      runs,
		assetOps:  assetOps,
		seatOps:   seatOps,
		cfg:       cfg,
		log:       log.With("service", "cascade"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}
