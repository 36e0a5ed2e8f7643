package domain

// AssetStatus is the externally visible status of an asset.
type AssetStatus string

const (
	AssetStatusAvailable AssetStatus = "Available"
	AssetStatusAssigned  AssetStatus = "Assigned"
	AssetStatusDonated   AssetStatus = "Donated"
	AssetStatusEWaste    AssetStatus = "E-Waste"
)

func (s AssetStatus) String() string { return string(s) }

func (s AssetStatus) IsValid() bool {
	switch s {
	case AssetStatusAvailable, AssetStatusAssigned, AssetStatusDonated, AssetStatusEWaste:
		return true
	}
	return false
}

// IsRetired reports whether the status represents a retired asset.
func (s AssetStatus) IsRetired() bool {
	return s == AssetStatusDonated || s == AssetStatusEWaste
}

// EmployeeStatus is the lifecycle state of an employee.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "Active"
	EmployeeStatusInactive EmployeeStatus = "Inactive"
)

func (s EmployeeStatus) String() string { return string(s) }

func (s EmployeeStatus) IsValid() bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusInactive:
		return true
	}
	return false
}

// IssueStatus is the state of a single stock movement.
type IssueStatus string

const (
	IssueStatusActive   IssueStatus = "Active"
	IssueStatusReversed IssueStatus = "Reversed"
)

func (s IssueStatus) String() string { return string(s) }

func (s IssueStatus) IsValid() bool {
	switch s {
	case IssueStatusActive, IssueStatusReversed:
		return true
	}
	return false
}

// EntityType identifies the kind of record a followup or cascade step targets.
type EntityType string

const (
	EntityTypeAsset      EntityType = "asset"
	EntityTypeEmployee   EntityType = "employee"
	EntityTypeConsumable EntityType = "consumable"
	EntityTypeSoftware   EntityType = "software"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeAsset, EntityTypeEmployee, EntityTypeConsumable, EntityTypeSoftware:
		return true
	}
	return false
}

// CascadeKind names the user intent that started a cascade run.
type CascadeKind string

const (
	CascadeKindEmployeeExit   CascadeKind = "employee_exit"
	CascadeKindEmployeeDelete CascadeKind = "employee_delete"
	CascadeKindMassUpdate     CascadeKind = "mass_update"
)

func (k CascadeKind) String() string { return string(k) }

func (k CascadeKind) IsValid() bool {
	switch k {
	case CascadeKindEmployeeExit, CascadeKindEmployeeDelete, CascadeKindMassUpdate:
		return true
	}
	return false
}

// RunStatus is the state of a persisted cascade run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusAborted   RunStatus = "aborted"
)

func (s RunStatus) String() string { return string(s) }

func (s RunStatus) IsValid() bool {
	switch s {
	case RunStatusRunning, RunStatusCompleted, RunStatusAborted:
		return true
	}
	return false
}

// IsFinished reports whether a run has nothing left to execute.
func (s RunStatus) IsFinished() bool { return s == RunStatusCompleted }

// StepOutcome is the result of a single cascade step.
type StepOutcome string

const (
	StepOutcomeSucceeded StepOutcome = "succeeded"
	StepOutcomeSkipped   StepOutcome = "skipped"
	StepOutcomeFailed    StepOutcome = "failed"
)

func (o StepOutcome) String() string { return string(o) }

// Ledger actions written by the core.
const (
	ActionCreated           = "Created"
	ActionImported          = "Imported"
	ActionUpdated           = "Updated"
	ActionAssignmentChanged = "Assignment Changed"
	ActionUnassigned        = "Unassigned"
	ActionRetired           = "Retired"
	ActionReinstated        = "Reinstated"
	ActionIssued            = "Issued"
	ActionIssueRevoked      = "Issue Revoked"
	ActionRestocked         = "Restocked"
	ActionEmployeeExited    = "Employee Exited"
	ActionLicenseAssigned   = "License Assigned"
	ActionLicenseReleased   = "License Released"
)
