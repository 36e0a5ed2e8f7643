// Package versioned retries read-modify-write operations that lost an
// optimistic version check against a concurrent writer.
package versioned

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/internal/observability/metrics"
	"github.com/heartmarshall/assetledger/pkg/retry"
)

// Retry runs fn, re-running it from scratch while it fails with
// domain.ErrConflict. fn must re-read the record on every attempt.
func Retry[T any](ctx context.Context, cfg retry.Config, log *slog.Logger, op string, fn retry.Retryable[T]) (T, error) {
	return retry.Do(ctx, cfg, log, op, func(err error) bool {
		if errors.Is(err, domain.ErrConflict) {
			metrics.ObserveConflict(op)
			return true
		}
		return false
	}, fn)
}
