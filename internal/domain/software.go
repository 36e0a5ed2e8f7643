package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Software is a licensed product whose seats are held by employees.
// len(AssignedTo) <= TotalLicenses is enforced on assignment only.
type Software struct {
	ID            uuid.UUID
	Name          string
	Vendor        string
	TotalLicenses int
	AssignedTo    []uuid.UUID
	AuditLog      []LedgerEntry
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (s *Software) Holds(employeeID uuid.UUID) bool {
	return slices.Contains(s.AssignedTo, employeeID)
}

// SeatsAvailable may be negative when the license count was lowered below
// the number of holders.
func (s *Software) SeatsAvailable() int {
	return s.TotalLicenses - len(s.AssignedTo)
}
