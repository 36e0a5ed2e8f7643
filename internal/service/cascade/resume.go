package cascade

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
)

// ResumeRun continues a run from its cursor. A completed run is not
// re-executed; its stored report is returned.
func (s *Service) ResumeRun(ctx context.Context, runID uuid.UUID) (domain.Report, error) {
	ctx = context.WithoutCancel(ctx)

	run, err := s.runs.GetByID(ctx, runID)
	if err != nil {
		return domain.Report{}, fmt.Errorf("get cascade run: %w", err)
	}
	return s.resume(ctx, run)
}

func (s *Service) resume(ctx context.Context, run domain.CascadeRun) (domain.Report, error) {
	if run.Status.IsFinished() {
		report := run.Report()
		if report.Failed > 0 {
			return report, &domain.PartialCascadeError{Report: report}
		}
		return report, nil
	}

	// The versioned write is the claim: of two processes resuming the same
	// run, one gets ErrConflict here.
	run.Status = domain.RunStatusRunning
	claimed, err := s.runs.Update(ctx, run)
	if err != nil {
		return domain.Report{}, fmt.Errorf("claim cascade run: %w", err)
	}

	s.log.InfoContext(ctx, "cascade resumed",
		slog.String("run_id", run.ID.String()),
		slog.Int("cursor", run.Cursor),
		slog.Int("steps", len(run.Steps)),
	)
	return s.execute(ctx, claimed)
}

// ResumeResult counts what ResumeUnfinished did.
type ResumeResult struct {
	Resumed   int
	Completed int
	Partial   int
}

// ResumeUnfinished resumes runs that nobody has touched for longer than
// the configured staleness window, oldest first. It stops early when the
// store is unreachable.
func (s *Service) ResumeUnfinished(ctx context.Context) (ResumeResult, error) {
	ctx = context.WithoutCancel(ctx)

	runs, err := s.runs.ListUnfinished(ctx, s.now().Add(-s.cfg.ResumeStaleAfter), s.cfg.ResumeBatch)
	if err != nil {
		return ResumeResult{}, fmt.Errorf("list unfinished cascade runs: %w", err)
	}

	var res ResumeResult
	for _, run := range runs {
		_, err := s.resume(ctx, run)

		var partial *domain.PartialCascadeError
		switch {
		case err == nil:
			res.Resumed++
			res.Completed++
		case errors.As(err, &partial):
			res.Resumed++
			res.Partial++
			if errors.Is(partial.Cause, domain.ErrStoreUnavailable) {
				return res, partial.Cause
			}
		case errors.Is(err, domain.ErrConflict):
			// Claimed by another process.
		case errors.Is(err, domain.ErrStoreUnavailable):
			return res, err
		default:
			s.log.WarnContext(ctx, "resume cascade run",
				slog.String("run_id", run.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	return res, nil
}
