package domain

import (
	"time"

	"github.com/google/uuid"
)

// CascadeStep is one planned mutation of a single record.
type CascadeStep struct {
	Target   EntityType `json:"target"`
	TargetID uuid.UUID  `json:"target_id"`
}

// StepResult records how a step ended.
type StepResult struct {
	Step    CascadeStep `json:"step"`
	Outcome StepOutcome `json:"outcome"`
	Error   string      `json:"error,omitempty"`
	At      time.Time   `json:"at"`
}

// CascadeRun is the persisted cursor of a multi-record cascade. Steps are
// planned once; Cursor points at the next step to execute.
type CascadeRun struct {
	ID        uuid.UUID
	Kind      CascadeKind
	SubjectID *uuid.UUID
	Patch     *AssetPatch
	Steps     []CascadeStep
	Cursor    int
	Status    RunStatus
	Results   []StepResult
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCascadeRun plans a run in the running state.
func NewCascadeRun(kind CascadeKind, subjectID *uuid.UUID, steps []CascadeStep, at time.Time) *CascadeRun {
	return &CascadeRun{
		ID:        uuid.New(),
		Kind:      kind,
		SubjectID: subjectID,
		Steps:     steps,
		Status:    RunStatusRunning,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

// Next returns the step at the cursor.
func (r *CascadeRun) Next() (CascadeStep, bool) {
	if r.Cursor >= len(r.Steps) {
		return CascadeStep{}, false
	}
	return r.Steps[r.Cursor], true
}

// Record stores the result of the step at the cursor and advances it.
func (r *CascadeRun) Record(res StepResult) {
	r.Results = append(r.Results, res)
	r.Cursor++
	r.UpdatedAt = res.At
}

// Report summarizes the results recorded so far.
func (r *CascadeRun) Report() Report {
	rep := Report{
		RunID:   r.ID,
		Kind:    r.Kind,
		Pending: len(r.Steps) - r.Cursor,
		Aborted: r.Status == RunStatusAborted,
		Items:   append([]StepResult(nil), r.Results...),
	}
	for _, res := range r.Results {
		rep.Attempted++
		switch res.Outcome {
		case StepOutcomeSucceeded:
			rep.Succeeded++
		case StepOutcomeSkipped:
			rep.Skipped++
		case StepOutcomeFailed:
			rep.Failed++
		}
	}
	return rep
}

// Report is what a cascade returns to its caller: attempted versus succeeded
// sub-operations with a per-item result list.
type Report struct {
	RunID     uuid.UUID
	Kind      CascadeKind
	Attempted int
	Succeeded int
	Skipped   int
	Failed    int
	Pending   int
	Aborted   bool
	Items     []StepResult
}

// Complete reports whether every planned step ran without failure.
func (r Report) Complete() bool {
	return r.Failed == 0 && r.Pending == 0
}

// Merge folds another report into r, used for bulk operations.
func (r Report) Merge(o Report) Report {
	r.Attempted += o.Attempted
	r.Succeeded += o.Succeeded
	r.Skipped += o.Skipped
	r.Failed += o.Failed
	r.Pending += o.Pending
	r.Aborted = r.Aborted || o.Aborted
	r.Items = append(r.Items, o.Items...)
	return r
}
