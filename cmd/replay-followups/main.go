// Command replay-followups drains the followup queue once: employee comments
// that could not be written when an asset, seat or stock change committed are
// retried. It is intended for an external scheduler; the server process runs
// the same replay on a ticker.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/assetledger/internal/adapter/redis"
	"github.com/heartmarshall/assetledger/internal/app"
	"github.com/heartmarshall/assetledger/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	infra, err := app.Connect(ctx, cfg)
	if err != nil {
		logger.Error("connect", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer infra.Close()

	svcs := app.NewServices(logger, cfg, infra)

	res, err := svcs.Roster.Replay(ctx, cfg.Followup.ReplayBatch)
	if err != nil {
		logger.Error("replay failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	attrs := []any{
		slog.Int("replayed", res.Replayed),
		slog.Int("requeued", res.Requeued),
		slog.Int("dropped", res.Dropped),
	}
	queue := redis.NewFollowupQueue(infra.Redis, cfg.Redis.QueueKey)
	if left, err := queue.Len(ctx); err == nil {
		attrs = append(attrs, slog.Int64("remaining", left))
	}
	if dead, err := queue.DeadLen(ctx); err == nil && dead > 0 {
		attrs = append(attrs, slog.Int64("dead_lettered", dead))
	}
	logger.Info("replay completed", attrs...)
}
