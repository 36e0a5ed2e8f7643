package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/internal/observability/metrics"
)

// ReplayResult counts what a replay pass did with each followup.
type ReplayResult struct {
	Replayed int
	Requeued int
	Dropped  int
}

// Replay drains up to limit followups from the queue. Followups that fail again
// are pushed back after the pass so one pass never sees the same item twice.
// A store outage stops the pass early.
func (s *Service) Replay(ctx context.Context, limit int) (ReplayResult, error) {
	var (
		res   ReplayResult
		again []domain.Followup
		err   error
	)

	for range limit {
		f, ok, popErr := s.queue.Pop(ctx)
		if errors.Is(popErr, domain.ErrMalformedFollowup) {
			res.Dropped++
			metrics.ObserveFollowup(string(domain.NotifyDropped))
			s.log.WarnContext(ctx, "followup dead-lettered", slog.String("error", popErr.Error()))
			continue
		}
		if popErr != nil {
			err = fmt.Errorf("pop followup: %w", popErr)
			break
		}
		if !ok {
			break
		}

		_, writeErr := s.AppendComment(ctx, f.EmployeeID, f.Text)
		switch {
		case writeErr == nil:
			res.Replayed++
			metrics.ObserveFollowup("replayed")
		case errors.Is(writeErr, domain.ErrNotFound), errors.Is(writeErr, domain.ErrValidation):
			res.Dropped++
			metrics.ObserveFollowup(string(domain.NotifyDropped))
			s.log.InfoContext(ctx, "followup dropped",
				slog.String("followup_id", f.ID.String()),
				slog.String("reason", writeErr.Error()),
			)
		default:
			f.Attempts++
			if f.Attempts > s.cfg.MaxAttempts {
				res.Dropped++
				metrics.ObserveFollowup(string(domain.NotifyDropped))
				s.log.ErrorContext(ctx, "followup exhausted attempts",
					slog.String("followup_id", f.ID.String()),
					slog.String("employee_id", f.EmployeeID.String()),
					slog.Int("attempts", f.Attempts-1),
					slog.String("error", writeErr.Error()),
				)
				continue
			}
			again = append(again, f)
		}

		if writeErr != nil && errors.Is(writeErr, domain.ErrStoreUnavailable) {
			break
		}
	}

	for _, f := range again {
		if pushErr := s.queue.Push(ctx, f); pushErr != nil {
			s.log.ErrorContext(ctx, "followup lost on requeue",
				slog.String("followup_id", f.ID.String()),
				slog.String("error", pushErr.Error()),
			)
			res.Dropped++
			continue
		}
		res.Requeued++
		metrics.ObserveFollowup("requeued")
	}

	if res.Replayed+res.Requeued+res.Dropped > 0 {
		s.log.InfoContext(ctx, "followups replayed",
			slog.Int("replayed", res.Replayed),
			slog.Int("requeued", res.Requeued),
			slog.Int("dropped", res.Dropped),
		)
	}
	return res, err
}
