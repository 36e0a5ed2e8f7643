// Command resume-cascades finishes cascade runs abandoned by a crashed or
// aborted process. Runs are claimed through their version column, so it is
// safe to run alongside a server doing the same.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/assetledger/internal/app"
	"github.com/heartmarshall/assetledger/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	infra, err := app.Connect(ctx, cfg)
	if err != nil {
		logger.Error("connect", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer infra.Close()

	svcs := app.NewServices(logger, cfg, infra)

	res, err := svcs.Cascades.ResumeUnfinished(ctx)
	if err != nil {
		logger.Error("resume failed",
			slog.Int("resumed", res.Resumed),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	logger.Info("resume completed",
		slog.Int("resumed", res.Resumed),
		slog.Int("completed", res.Completed),
		slog.Int("partial", res.Partial),
	)
}
