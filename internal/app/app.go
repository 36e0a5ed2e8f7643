package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/heartmarshall/assetledger/internal/config"
	"github.com/heartmarshall/assetledger/internal/observability/metrics"
	"github.com/heartmarshall/assetledger/internal/observability/tracing"
	"github.com/heartmarshall/assetledger/internal/transport/middleware"
	"github.com/heartmarshall/assetledger/internal/transport/rest"
	"github.com/heartmarshall/assetledger/internal/worker"
)

// Run is the API server entry point. It loads configuration, connects to the
// record store and the followup queue, starts the background workers and
// serves HTTP until SIGINT or SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, logger, cfg.Tracing, Version)
	if err != nil {
		return err
	}

	infra, err := Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer infra.Close()

	svcs := NewServices(logger, cfg, infra)

	workerCtx, stopWorkers := context.WithCancel(ctx)
	workers := worker.StartAll(workerCtx,
		worker.NewReplayWorker(logger, svcs.Roster, cfg.Followup.ReplayInterval, cfg.Followup.ReplayBatch),
		worker.NewResumeWorker(logger, svcs.Cascades, cfg.Cascade.ResumeInterval),
	)
	// Runs before infra.Close.
	defer func() {
		stopWorkers()
		workers.Wait()
	}()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      newHandler(logger, cfg, infra, svcs, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", slog.String("error", err.Error()))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
	return nil
}

func newHandler(logger *slog.Logger, cfg *config.Config, infra *Infra, svcs *Services, limiter *middleware.RateLimiter) http.Handler {
	health := rest.NewHealthHandler(map[string]rest.Pinger{
		"database": infra.Pool,
		"redis":    rest.PingerFunc(func(ctx context.Context) error { return infra.Redis.Ping(ctx).Err() }),
	}, BuildVersion())

	mux := rest.NewRouter(rest.Handlers{
		Health:      health,
		Assets:      rest.NewAssetHandler(svcs.Assets, logger),
		Consumables: rest.NewConsumableHandler(svcs.Inventory, logger),
		Employees:   rest.NewEmployeeHandler(svcs.Roster, svcs.Cascades, svcs.Licensing, logger),
		Software:    rest.NewSoftwareHandler(svcs.Licensing, logger),
		Cascades:    rest.NewCascadeHandler(svcs.Cascades, logger),
		Feed:        rest.NewFeedHandler(svcs.Feed, logger),
	}, rest.Limits{
		Cascade: limit(limiter, cfg.RateLimit.CascadePerMinute),
		Import:  limit(limiter, cfg.RateLimit.ImportPerMinute),
	})
	mux.Handle("GET "+cfg.Server.MetricsPath, promhttp.Handler())

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Actor,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		metrics.HTTPMetricsMiddleware,
	)
	return otelhttp.NewHandler(chain(mux), "assetledger")
}

func limit(rl *middleware.RateLimiter, perMinute int) middleware.Middleware {
	if perMinute <= 0 {
		return nil
	}
	return rl.Limit(perMinute)
}
