// Package feed serves the dashboard: who recently received which asset and
// headline counts across the inventory.
package feed

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
)

type assetRepo interface {
	RecentAssignments(ctx context.Context, limit int) ([]domain.AssignmentEvent, error)
	CountByStatus(ctx context.Context) (map[domain.AssetStatus]int, error)
}

type employeeRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Employee, error)
	CountByStatus(ctx context.Context) (map[domain.EmployeeStatus]int, error)
}

type consumableRepo interface {
	CountLowStock(ctx context.Context, threshold int) (int, error)
}

// Config holds dashboard defaults.
type Config struct {
	Limit             int
	LowStockThreshold int
}

// Service provides read-only dashboard queries.
type Service struct {
	assets      assetRepo
	employees   employeeRepo
	consumables consumableRepo
	cfg         Config
	log         *slog.Logger
}

// NewService creates a new feed service.
func NewService(log *slog.Logger, assets assetRepo, employees employeeRepo, consumables consumableRepo, cfg Config) *Service {
	if cfg.Limit <= 0 {
		cfg.Limit = 20
	}
	return &Service{
		assets:      assets,
		employees:   employees,
		consumables: consumables,
		cfg:         cfg,
		log:         log.With("service", "feed"),
	}
}
