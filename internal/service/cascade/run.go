package cascade

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/internal/observability/metrics"
	"github.com/heartmarshall/assetledger/internal/service/assignment"
	"github.com/heartmarshall/assetledger/pkg/ctxutil"
)

var tracer = otel.Tracer("github.com/heartmarshall/assetledger/internal/service/cascade")

// errKept marks the employee step of a deletion whose release steps did not
// all succeed.
var errKept = errors.New("employee kept: earlier steps failed")

// start persists a new run and executes it.
func (s *Service) start(ctx context.Context, kind domain.CascadeKind, subject *uuid.UUID, patch *domain.AssetPatch, steps []domain.CascadeStep) (domain.Report, error) {
	run := domain.NewCascadeRun(kind, subject, steps, s.now())
	run.Patch = patch

	created, err := s.runs.Create(ctx, *run)
	if err != nil {
		return domain.Report{}, fmt.Errorf("create cascade run: %w", err)
	}
	return s.execute(ctx, created)
}

// execute runs the steps from the cursor on, strictly in order, saving the
// cursor after each one. A step that fails is recorded and the run goes on.
// An unreachable store or a step timeout stops the run and leaves it aborted
// for resumption.
func (s *Service) execute(ctx context.Context, run domain.CascadeRun) (domain.Report, error) {
	ctx = ctxutil.WithRunID(ctx, run.ID)
	ctx, span := tracer.Start(ctx, "cascade."+run.Kind.String(), trace.WithAttributes(
		attribute.String("cascade.run_id", run.ID.String()),
		attribute.Int("cascade.steps", len(run.Steps)),
		attribute.Int("cascade.cursor", run.Cursor),
	))
	defer span.End()
	started := time.Now()

	subject, cause := s.subject(ctx, run)
	for cause == nil {
		step, ok := run.Next()
		if !ok {
			break
		}

		res, err := s.step(ctx, &run, subject, step)
		if err != nil {
			cause = err
			break
		}
		run.Record(res)
		metrics.ObserveCascadeStep(run.Kind.String(), res.Outcome.String())
		span.AddEvent("step", trace.WithAttributes(
			attribute.String("target", step.Target.String()),
			attribute.String("target_id", step.TargetID.String()),
			attribute.String("outcome", res.Outcome.String()),
		))

		saved, err := s.runs.Update(ctx, run)
		if err != nil {
			cause = fmt.Errorf("save cascade run: %w", err)
			break
		}
		run = saved
	}

	switch {
	case cause == nil:
		run.Status = domain.RunStatusCompleted
		if saved, err := s.runs.Update(ctx, run); err != nil {
			cause = fmt.Errorf("save cascade run: %w", err)
		} else {
			run = saved
		}
	case !errors.Is(cause, domain.ErrConflict):
		// A conflict means another process owns the run now.
		run.Status = domain.RunStatusAborted
		if saved, err := s.runs.Update(ctx, run); err != nil {
			s.log.WarnContext(ctx, "save aborted cascade run",
				slog.String("run_id", run.ID.String()),
				slog.String("error", err.Error()),
			)
		} else {
			run = saved
		}
	}
	if cause != nil {
		run.Status = domain.RunStatusAborted
	}

	report := run.Report()
	result := "completed"
	switch {
	case cause != nil:
		result = "aborted"
		span.RecordError(cause)
		span.SetStatus(codes.Error, "cascade aborted")
	case report.Failed > 0:
		result = "partial"
		span.SetStatus(codes.Error, "cascade partially failed")
	}
	metrics.ObserveCascadeRun(run.Kind.String(), result, time.Since(started))

	s.log.InfoContext(ctx, "cascade finished",
		slog.String("run_id", run.ID.String()),
		slog.String("kind", run.Kind.String()),
		slog.String("result", result),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.Int("pending", report.Pending),
	)

	if cause != nil || report.Failed > 0 {
		return report, &domain.PartialCascadeError{Report: report, Cause: cause}
	}
	return report, nil
}

// subject resolves the employee a run is about. An employee that no longer
// exists is referenced by ID.
func (s *Service) subject(ctx context.Context, run domain.CascadeRun) (domain.EmployeeRef, error) {
	if run.SubjectID == nil {
		return domain.EmployeeRef{}, nil
	}
	e, err := s.employees.GetByID(ctx, *run.SubjectID)
	switch {
	case err == nil:
		return *e.Ref(), nil
	case errors.Is(err, domain.ErrNotFound):
		return domain.EmployeeRef{ID: *run.SubjectID, Name: run.SubjectID.String()}, nil
	default:
		return domain.EmployeeRef{}, fmt.Errorf("get employee: %w", err)
	}
}

// step executes one step. The returned error is set only when the run must
// stop; every other failure is part of the result.
func (s *Service) step(ctx context.Context, run *domain.CascadeRun, subject domain.EmployeeRef, step domain.CascadeStep) (domain.StepResult, error) {
	if s.cfg.StepTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.StepTimeout)
		defer cancel()
	}

	changed, err := s.apply(ctx, run, subject, step)
	res := domain.StepResult{Step: step, At: s.now()}
	switch {
	case errors.Is(err, domain.ErrStoreUnavailable):
		return res, err
	case errors.Is(err, context.DeadlineExceeded):
		return res, fmt.Errorf("%s %s: step timed out: %w", step.Target, step.TargetID, err)
	case errors.Is(err, errKept):
		res.Outcome = domain.StepOutcomeSkipped
		res.Error = err.Error()
	case errors.Is(err, domain.ErrNotFound) && run.Kind != domain.CascadeKindMassUpdate:
		// Deleted in the meantime: nothing left to release.
		res.Outcome = domain.StepOutcomeSkipped
	case err != nil:
		res.Outcome = domain.StepOutcomeFailed
		res.Error = err.Error()
	case changed:
		res.Outcome = domain.StepOutcomeSucceeded
	default:
		res.Outcome = domain.StepOutcomeSkipped
	}
	return res, nil
}

func (s *Service) apply(ctx context.Context, run *domain.CascadeRun, subject domain.EmployeeRef, step domain.CascadeStep) (bool, error) {
	switch step.Target {
	case domain.EntityTypeAsset:
		if run.Kind == domain.CascadeKindMassUpdate {
			if run.Patch == nil {
				return false, domain.NewValidationError("patch", "mass update run has no patch")
			}
			res, err := s.assetOps.UpdateAsset(ctx, assignment.UpdateAssetInput{AssetID: step.TargetID, Patch: *run.Patch})
			return res.Changed, err
		}
		return s.assetOps.ReleaseHeld(ctx, step.TargetID, subject, releaseReason(run.Kind))

	case domain.EntityTypeSoftware:
		return s.seatOps.ReleaseHeld(ctx, step.TargetID, subject, releaseReason(run.Kind))

	case domain.EntityTypeEmployee:
		if failed := run.Report().Failed; failed > 0 {
			return false, fmt.Errorf("%w (%d)", errKept, failed)
		}
		// The run may have been resumed long after planning.
		held, err := s.holdings(ctx, step.TargetID)
		if err != nil {
			return false, err
		}
		if len(held) > 0 {
			return false, fmt.Errorf("employee %s still holds %d records: %w", step.TargetID, len(held), domain.ErrConflict)
		}
		if err := s.employees.Delete(ctx, step.TargetID); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, fmt.Errorf("unsupported cascade target %q", step.Target)
}

func releaseReason(kind domain.CascadeKind) string {
	if kind == domain.CascadeKindEmployeeDelete {
		return "employee deleted"
	}
	return "employee exited"
}
