package domain

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a person assets and supplies are issued to.
type Employee struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Department string
	Status     EmployeeStatus
	ExitDate   *time.Time
	ExitReason string
	Comments   []Comment
	AuditLog   []LedgerEntry
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (e *Employee) IsActive() bool {
	return e.Status == EmployeeStatusActive
}

// Ref returns a snapshot reference for ledger entries.
func (e *Employee) Ref() *EmployeeRef {
	return &EmployeeRef{ID: e.ID, Name: e.Name}
}

// EmployeeFilter narrows employee listings. Zero values mean "no constraint".
type EmployeeFilter struct {
	Status *EmployeeStatus
	Limit  int
	Offset int
}
