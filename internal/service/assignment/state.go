package assignment

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
)

// Assign moves an Available or Assigned asset to employeeID. Retired assets
// cannot be assigned.
func Assign(s domain.AssetState, employeeID uuid.UUID) (domain.AssetState, error) {
	if employeeID == uuid.Nil {
		return s, domain.NewValidationError("employee_id", "required")
	}
	if s.IsRetired() {
		return s, domain.NewValidationError("status", "retired asset cannot be assigned; reinstate it first")
	}
	return domain.StateAssigned(employeeID), nil
}

// Unassign clears the assignee. It is a no-op for unassigned assets, so
// retired assets stay retired.
func Unassign(s domain.AssetState) domain.AssetState {
	if _, ok := s.Assignee(); ok {
		return domain.StateAvailable()
	}
	return s
}

// Retire moves the asset to Donated or E-Waste, dropping any assignee.
func Retire(s domain.AssetState, kind domain.AssetStatus) (domain.AssetState, error) {
	return domain.StateRetired(kind)
}

// Reinstate brings a retired asset back to Available.
func Reinstate(s domain.AssetState) (domain.AssetState, error) {
	if !s.IsRetired() {
		return s, domain.NewValidationError("status", "only retired assets can be reinstated")
	}
	return domain.StateAvailable(), nil
}
