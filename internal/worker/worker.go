// Package worker runs periodic background passes inside the server process:
// replay of queued employee comments and resumption of abandoned cascades.
package worker

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/assetledger/internal/service/cascade"
	"github.com/heartmarshall/assetledger/internal/service/roster"
)

type followupReplayer interface {
	Replay(ctx context.Context, limit int) (roster.ReplayResult, error)
}

type cascadeResumer interface {
	ResumeUnfinished(ctx context.Context) (cascade.ResumeResult, error)
}

// Starter is a worker whose Start blocks until its context is done.
type Starter interface {
	Start(ctx context.Context)
}

// Group tracks started workers.
type Group struct {
	g errgroup.Group
}

// StartAll runs each worker in its own goroutine.
func StartAll(ctx context.Context, workers ...Starter) *Group {
	grp := &Group{}
	for _, w := range workers {
		grp.g.Go(func() error {
			w.Start(ctx)
			return nil
		})
	}
	return grp
}

// Wait blocks until every worker has returned, including a pass that was
// in flight when the context was cancelled.
func (g *Group) Wait() {
	_ = g.g.Wait()
}

// loop calls pass every interval until ctx is done.
func loop(ctx context.Context, log *slog.Logger, interval time.Duration, pass func(context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("worker started", slog.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			log.Info("worker stopped")
			return
		case <-ticker.C:
			pass(ctx)
		}
	}
}

// ReplayWorker drains the followup queue periodically.
type ReplayWorker struct {
	roster   followupReplayer
	log      *slog.Logger
	interval time.Duration
	batch    int
}

func NewReplayWorker(log *slog.Logger, r followupReplayer, interval time.Duration, batch int) *ReplayWorker {
	return &ReplayWorker{
		roster:   r,
		log:      log.With("worker", "followup_replay"),
		interval: interval,
		batch:    batch,
	}
}

// Start blocks until ctx is cancelled.
func (w *ReplayWorker) Start(ctx context.Context) {
	loop(ctx, w.log, w.interval, func(ctx context.Context) { _, _ = w.RunOnce(ctx) })
}

// RunOnce performs a single replay pass.
func (w *ReplayWorker) RunOnce(ctx context.Context) (roster.ReplayResult, error) {
	res, err := w.roster.Replay(ctx, w.batch)
	if err != nil {
		w.log.ErrorContext(ctx, "followup replay failed", slog.String("error", err.Error()))
		return res, err
	}
	if res != (roster.ReplayResult{}) {
		w.log.InfoContext(ctx, "followups replayed",
			slog.Int("replayed", res.Replayed),
			slog.Int("requeued", res.Requeued),
			slog.Int("dropped", res.Dropped),
		)
	}
	return res, nil
}

// ResumeWorker picks up cascade runs abandoned by a crashed process or a
// store outage.
type ResumeWorker struct {
	cascades cascadeResumer
	log      *slog.Logger
	interval time.Duration
}

func NewResumeWorker(log *slog.Logger, c cascadeResumer, interval time.Duration) *ResumeWorker {
	return &ResumeWorker{
		cascades: c,
		log:      log.With("worker", "cascade_resume"),
		interval: interval,
	}
}

// Start blocks until ctx is cancelled.
func (w *ResumeWorker) Start(ctx context.Context) {
	loop(ctx, w.log, w.interval, func(ctx context.Context) { _, _ = w.RunOnce(ctx) })
}

// RunOnce performs a single resume pass.
func (w *ResumeWorker) RunOnce(ctx context.Context) (cascade.ResumeResult, error) {
	res, err := w.cascades.ResumeUnfinished(ctx)
	if err != nil {
		w.log.ErrorContext(ctx, "cascade resume failed", slog.String("error", err.Error()))
		return res, err
	}
	if res.Resumed > 0 {
		w.log.InfoContext(ctx, "cascades resumed",
			slog.Int("resumed", res.Resumed),
			slog.Int("completed", res.Completed),
			slog.Int("partial", res.Partial),
		)
	}
	return res, nil
}
