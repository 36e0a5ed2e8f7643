package inventory

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
)

// CreateConsumableInput holds the parameters for adding a consumable.
type CreateConsumableInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// Validate checks all fields and collects all errors.
func (i CreateConsumableInput) Validate() error {
	var errs []domain.FieldError
	if domain.CleanText(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// IssueInput holds the parameters for issuing stock to an employee.
type IssueInput struct {
	ConsumableID uuid.UUID `json:"consumable_id"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	Quantity     int       `json:"quantity"`
	Remarks      string    `json:"remarks"`
}

// Validate checks all fields and collects all errors.
func (i IssueInput) Validate() error {
	var errs []domain.FieldError
	if i.ConsumableID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "consumable_id", Message: "required"})
	}
	if i.EmployeeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "employee_id", Message: "required"})
	}
	if i.Quantity < 1 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be at least 1"})
	}
	if len(i.Remarks) > 500 {
		errs = append(errs, domain.FieldError{Field: "remarks", Message: "max 500 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RevokeInput identifies the issue to reverse.
type RevokeInput struct {
	ConsumableID uuid.UUID `json:"consumable_id"`
	IssueID      uuid.UUID `json:"issue_id"`
}

// Validate checks all fields and collects all errors.
func (i RevokeInput) Validate() error {
	var errs []domain.FieldError
	if i.ConsumableID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "consumable_id", Message: "required"})
	}
	if i.IssueID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "issue_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validateImport checks every row and prefixes field names with the row index.
func validateImport(rows []CreateConsumableInput, maxRows int) error {
	if len(rows) == 0 {
		return domain.NewValidationError("rows", "at least one row is required")
	}
	if maxRows > 0 && len(rows) > maxRows {
		return domain.NewValidationError("rows", fmt.Sprintf("max %d rows per import", maxRows))
	}
	var errs []domain.FieldError
	for n, row := range rows {
		if err := row.Validate(); err != nil {
			if ve, ok := err.(*domain.ValidationError); ok {
				for _, fe := range ve.Errors {
					errs = append(errs, domain.FieldError{Field: fmt.Sprintf("rows[%d].%s", n, fe.Field), Message: fe.Message})
				}
			}
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
