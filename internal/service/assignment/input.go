package assignment

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
)

// CreateAssetInput holds the parameters for adding an asset.
type CreateAssetInput struct {
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	SerialNumber string     `json:"serial_number"`
	Location     string     `json:"location"`
	Vendor       string     `json:"vendor"`
	AssignTo     *uuid.UUID `json:"assign_to,omitempty"`
}

// Validate checks all fields and collects all errors.
func (i CreateAssetInput) Validate() error {
	if errs := i.fieldErrors(); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CreateAssetInput) fieldErrors() []domain.FieldError {
	var errs []domain.FieldError
	name := domain.CleanText(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if len(domain.NormalizeSerial(i.SerialNumber)) > 100 {
		errs = append(errs, domain.FieldError{Field: "serial_number", Message: "max 100 characters"})
	}
	if i.AssignTo != nil && *i.AssignTo == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "assign_to", Message: "must be a valid employee id"})
	}
	return errs
}

// UpdateAssetInput describes an edit of one asset. Descriptive fields and
// retirement come in Patch; at most one assignee operation may be set.
type UpdateAssetInput struct {
	AssetID      uuid.UUID         `json:"-"`
	Patch        domain.AssetPatch `json:"patch"`
	SerialNumber *string           `json:"serial_number,omitempty"`
	AssignTo     *uuid.UUID        `json:"assign_to,omitempty"`
	Unassign     bool              `json:"unassign,omitempty"`
	Reinstate    bool              `json:"reinstate,omitempty"`
}

// Validate checks all fields and collects all errors.
func (i UpdateAssetInput) Validate() error {
	var errs []domain.FieldError
	if i.AssetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "asset_id", Message: "required"})
	}

	stateOps := 0
	for _, set := range []bool{i.AssignTo != nil, i.Unassign, i.Reinstate, i.Patch.Retire != nil} {
		if set {
			stateOps++
		}
	}
	if stateOps > 1 {
		errs = append(errs, domain.FieldError{Field: "input", Message: "assign_to, unassign, reinstate and retire are mutually exclusive"})
	}
	if stateOps == 0 && i.Patch.IsEmpty() && i.SerialNumber == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one change is required"})
	}
	if !i.Patch.IsEmpty() {
		if err := i.Patch.Validate(); err != nil {
			if ve, ok := err.(*domain.ValidationError); ok {
				errs = append(errs, ve.Errors...)
			}
		}
	}
	if i.AssignTo != nil && *i.AssignTo == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "assign_to", Message: "must be a valid employee id"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validateImport checks every row, duplicate serials within the batch, and
// prefixes field names with the row index.
func validateImport(rows []CreateAssetInput, maxRows int) error {
	if len(rows) == 0 {
		return domain.NewValidationError("rows", "at least one row is required")
	}
	if maxRows > 0 && len(rows) > maxRows {
		return domain.NewValidationError("rows", fmt.Sprintf("max %d rows per import", maxRows))
	}

	var errs []domain.FieldError
	seen := make(map[string]int, len(rows))
	for n, row := range rows {
		for _, fe := range row.fieldErrors() {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("rows[%d].%s", n, fe.Field), Message: fe.Message})
		}
		if row.AssignTo != nil {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("rows[%d].assign_to", n), Message: "imported assets start unassigned"})
		}
		serial := domain.NormalizeSerial(row.SerialNumber)
		if serial == "" {
			continue
		}
		if first, dup := seen[serial]; dup {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("rows[%d].serial_number", n),
				Message: fmt.Sprintf("duplicates rows[%d]", first),
			})
			continue
		}
		seen[serial] = n
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
