package licensing

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
)

// Grant gives holder a seat. It reports whether s changed: a holder that
// already has a seat is not granted a second one. The seat count is checked
// here and nowhere else.
func Grant(s domain.Software, holder domain.EmployeeRef, at time.Time) (domain.Software, bool, error) {
	if s.Holds(holder.ID) {
		return s, false, nil
	}
	if s.SeatsAvailable() <= 0 {
		return s, false, domain.NewValidationError("software_id",
			fmt.Sprintf("all %d licenses of %s are assigned", s.TotalLicenses, s.Name))
	}

	next := s
	next.AssignedTo = append(slices.Clone(s.AssignedTo), holder.ID)
	next.AuditLog, _ = domain.AppendEntry(s.AuditLog, domain.ActionLicenseAssigned,
		fmt.Sprintf("Seat assigned to %s (Employee ID: %s)", holder.Name, holder.ID), at)
	return next, true, nil
}

// Release takes holder's seat back. Releasing a seat that is not held is a
// no-op. reason, when set, is appended to the ledger text.
func Release(s domain.Software, holder domain.EmployeeRef, reason string, at time.Time) (domain.Software, bool) {
	if !s.Holds(holder.ID) {
		return s, false
	}

	details := fmt.Sprintf("Seat released from %s (Employee ID: %s)", holder.Name, holder.ID)
	if reason != "" {
		details += ": " + reason
	}

	next := s
	next.AssignedTo = slices.DeleteFunc(slices.Clone(s.AssignedTo), func(id uuid.UUID) bool { return id == holder.ID })
	next.AuditLog, _ = domain.AppendEntry(s.AuditLog, domain.ActionLicenseReleased, details, at)
	return next, true
}
