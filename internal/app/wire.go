package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/assetledger/internal/adapter/postgres"
	assetrepo "github.com/heartmarshall/assetledger/internal/adapter/postgres/asset"
	"github.com/heartmarshall/assetledger/internal/adapter/postgres/cascaderun"
	"github.com/heartmarshall/assetledger/internal/adapter/postgres/consumable"
	"github.com/heartmarshall/assetledger/internal/adapter/postgres/employee"
	"github.com/heartmarshall/assetledger/internal/adapter/postgres/software"
	"github.com/heartmarshall/assetledger/internal/adapter/redis"
	"github.com/heartmarshall/assetledger/internal/config"
	"github.com/heartmarshall/assetledger/internal/service/assignment"
	"github.com/heartmarshall/assetledger/internal/service/cascade"
	"github.com/heartmarshall/assetledger/internal/service/feed"
	"github.com/heartmarshall/assetledger/internal/service/inventory"
	"github.com/heartmarshall/assetledger/internal/service/licensing"
	"github.com/heartmarshall/assetledger/internal/service/roster"
)

// Infra holds the external connections shared by every process.
type Infra struct {
	Pool  *pgxpool.Pool
	Redis *goredis.Client
}

// Connect opens the record store pool and the followup queue client.
func Connect(ctx context.Context, cfg *config.Config) (*Infra, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	rdb, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &Infra{Pool: pool, Redis: rdb}, nil
}

func (i *Infra) Close() {
	_ = i.Redis.Close()
	i.Pool.Close()
}

// Services is the fully wired service layer.
type Services struct {
	Assets    *assignment.Service
	Inventory *inventory.Service
	Roster    *roster.Service
	Licensing *licensing.Service
	Cascades  *cascade.Service
	Feed      *feed.Service
}

// NewServices builds repositories and services over infra.
func NewServices(log *slog.Logger, cfg *config.Config, infra *Infra) *Services {
	retryPolicy := cfg.Retry.Policy()
	tx := postgres.NewTxManager(infra.Pool)

	assets := assetrepo.New(infra.Pool)
	employees := employee.New(infra.Pool)
	consumables := consumable.New(infra.Pool)
	seats := software.New(infra.Pool)
	runs := cascaderun.New(infra.Pool)

	rosterSvc := roster.NewService(log, employees, redis.NewFollowupQueue(infra.Redis, cfg.Redis.QueueKey), roster.Config{
		Retry:         retryPolicy,
		MaxAttempts:   cfg.Followup.MaxAttempts,
		MaxImportRows: cfg.Inventory.MaxImportRows,
	})
	assetSvc := assignment.NewService(log, assets, employees, rosterSvc, tx, retryPolicy, cfg.Inventory.MaxImportRows)
	licensingSvc := licensing.NewService(log, seats, employees, rosterSvc, retryPolicy, cfg.Inventory.MaxImportRows)

	return &Services{
		Assets:    assetSvc,
		Inventory: inventory.NewService(log, consumables, employees, rosterSvc, tx, retryPolicy, cfg.Inventory.MaxImportRows),
		Roster:    rosterSvc,
		Licensing: licensingSvc,
		Cascades: cascade.NewService(log, employees, assets, runs, assetSvc, licensingSvc, cascade.Config{
			Retry:            retryPolicy,
			StepTimeout:      cfg.Cascade.StepTimeout,
			MaxBulkDelete:    cfg.Cascade.MaxBulkDelete,
			MaxMassUpdate:    cfg.Cascade.MaxMassUpdate,
			ResumeBatch:      cfg.Cascade.ResumeBatch,
			ResumeStaleAfter: cfg.Cascade.ResumeStaleAfter,
		}),
		Feed: feed.NewService(log, assets, employees, consumables, feed.Config{
			Limit:             cfg.Inventory.FeedLimit,
			LowStockThreshold: cfg.Inventory.LowStockThreshold,
		}),
	}
}
