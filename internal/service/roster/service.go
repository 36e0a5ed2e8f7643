// Package roster writes the employee-side view of changes made elsewhere:
// comments such as "Assigned: Laptop" on the employee's own record. These
// writes are secondary; when one fails it is queued for replay instead of
// failing the primary operation.
package roster

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/pkg/retry"
)

type employeeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Employee, error)
	List(ctx context.Context, f domain.EmployeeFilter) ([]domain.Employee, error)
	Create(ctx context.Context, e domain.Employee) (domain.Employee, error)
	BulkCreate(ctx context.Context, employees []domain.Employee) (int, error)
	Update(ctx context.Context, e domain.Employee) (domain.Employee, error)
}

type followupQueue interface {
	Push(ctx context.Context, f domain.Followup) error
	Pop(ctx context.Context) (domain.Followup, bool, error)
}

// Config tunes retries and replay.
type Config struct {
	Retry retry.Config
	// MaxAttempts bounds how many times a followup is tried before it is dropped.
	MaxAttempts int
	// MaxImportRows caps ImportEmployees.
	MaxImportRows int
}

// Service provides employee records and employee-side comment writes.
type Service struct {
	employees employeeRepo
	queue     followupQueue
	cfg       Config
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new roster service.
func NewService(log *slog.Logger, employees employeeRepo, queue followupQueue, cfg Config) *Service {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Service{
		employees: employees,
		queue:     queue,
		cfg:       cfg,
		log:       log.With("service", "roster"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}
