package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrValidation        = errors.New("validation error")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrAlreadyReversed   = errors.New("issue already reversed")
	ErrStoreUnavailable  = errors.New("record store unavailable")
	ErrPartialCascade    = errors.New("partial cascade failure")
	ErrMalformedFollowup = errors.New("malformed followup")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// InsufficientStockError reports a rejected issue. The consumable is untouched.
type InsufficientStockError struct {
	ConsumableID uuid.UUID
	Requested    int
	Available    int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("consumable %s: requested %d, available %d", e.ConsumableID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// PartialCascadeError is returned when some, but not all, steps of a cascade
// succeeded. Committed steps stay committed. Cause is set when the run was
// aborted (for example by ErrStoreUnavailable).
type PartialCascadeError struct {
	Report Report
	Cause  error
}

func (e *PartialCascadeError) Error() string {
	msg := fmt.Sprintf("cascade %s %s: %d of %d steps failed",
		e.Report.Kind, e.Report.RunID, e.Report.Failed, e.Report.Attempted)
	if e.Cause != nil {
		msg += fmt.Sprintf(", %d pending: %v", e.Report.Pending, e.Cause)
	}
	return msg
}

func (e *PartialCascadeError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrPartialCascade, e.Cause}
	}
	return []error{ErrPartialCascade}
}
