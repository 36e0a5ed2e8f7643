package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssetState is the assignment/retirement state of an asset. It is a closed
// sum type: Available, Assigned(employee) or Retired(Donated|E-Waste).
// The zero value is Available.
type AssetState struct {
	status   AssetStatus
	assignee uuid.UUID
}

func StateAvailable() AssetState {
	return AssetState{status: AssetStatusAvailable}
}

func StateAssigned(employeeID uuid.UUID) AssetState {
	return AssetState{status: AssetStatusAssigned, assignee: employeeID}
}

// StateRetired returns a retired state. kind must be Donated or E-Waste.
func StateRetired(kind AssetStatus) (AssetState, error) {
	if !kind.IsRetired() {
		return AssetState{}, NewValidationError("status", "retirement kind must be Donated or E-Waste")
	}
	return AssetState{status: kind}, nil
}

// ParseAssetState decodes a persisted (status, assigned_to) pair, rejecting
// combinations the state type cannot represent.
func ParseAssetState(status AssetStatus, assignedTo *uuid.UUID) (AssetState, error) {
	switch {
	case !status.IsValid():
		return AssetState{}, NewValidationError("status", "unknown asset status "+string(status))
	case status == AssetStatusAssigned:
		if assignedTo == nil || *assignedTo == uuid.Nil {
			return AssetState{}, NewValidationError("assigned_to", "required when status is Assigned")
		}
		return StateAssigned(*assignedTo), nil
	case assignedTo != nil:
		return AssetState{}, NewValidationError("assigned_to", "must be empty when status is "+string(status))
	case status.IsRetired():
		return StateRetired(status)
	default:
		return StateAvailable(), nil
	}
}

// Status returns the externally visible status.
func (s AssetState) Status() AssetStatus {
	if s.status == "" {
		return AssetStatusAvailable
	}
	return s.status
}

// Assignee returns the holding employee, if any.
func (s AssetState) Assignee() (uuid.UUID, bool) {
	if s.status != AssetStatusAssigned {
		return uuid.Nil, false
	}
	return s.assignee, true
}

// AssigneePtr is Assignee in nullable form, for persistence and transport.
func (s AssetState) AssigneePtr() *uuid.UUID {
	id, ok := s.Assignee()
	if !ok {
		return nil
	}
	return &id
}

func (s AssetState) IsAssignedTo(employeeID uuid.UUID) bool {
	id, ok := s.Assignee()
	return ok && id == employeeID
}

func (s AssetState) IsRetired() bool { return s.status.IsRetired() }

// Asset is a tracked piece of equipment.
type Asset struct {
	ID           uuid.UUID
	Name         string
	Category     string
	SerialNumber string
	Location     string
	Vendor       string
	State        AssetState
	Comments     []Comment
	AuditLog     []LedgerEntry
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AssetPatch is a partial update of an asset's descriptive fields. Nil fields
// are left untouched. Retire, when set, moves the asset to a retired state.
type AssetPatch struct {
	Name     *string      `json:"name,omitempty"`
	Category *string      `json:"category,omitempty"`
	Location *string      `json:"location,omitempty"`
	Vendor   *string      `json:"vendor,omitempty"`
	Retire   *AssetStatus `json:"retire,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p AssetPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Location == nil && p.Vendor == nil && p.Retire == nil
}

// Validate checks the patch without touching any asset.
func (p AssetPatch) Validate() error {
	var errs []FieldError
	if p.IsEmpty() {
		errs = append(errs, FieldError{Field: "patch", Message: "at least one field is required"})
	}
	if p.Name != nil && CleanText(*p.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "must not be empty"})
	}
	if p.Retire != nil && !p.Retire.IsRetired() {
		errs = append(errs, FieldError{Field: "retire", Message: "must be Donated or E-Waste"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// AssignmentEvent is an assignment ledger entry together with the asset it
// was written to.
type AssignmentEvent struct {
	AssetID   uuid.UUID
	AssetName string
	Entry     LedgerEntry
}

// AssetFilter narrows asset listings. Zero values mean "no constraint".
type AssetFilter struct {
	Status *AssetStatus
	Limit  int
	Offset int
}
