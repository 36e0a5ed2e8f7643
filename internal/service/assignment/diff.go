package assignment

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
)

// RefFunc resolves an employee ID to the reference written into the ledger.
type RefFunc func(id uuid.UUID) *domain.EmployeeRef

// Diff returns one ledger entry per logical change between prev and next,
// newest first, ready to be placed at the head of the audit log.
func Diff(prev, next domain.Asset, ref RefFunc, at time.Time) []domain.LedgerEntry {
	var log []domain.LedgerEntry

	fields := []struct {
		name     string
		old, new string
	}{
		{"name", prev.Name, next.Name},
		{"category", prev.Category, next.Category},
		{"serialNumber", prev.SerialNumber, next.SerialNumber},
		{"location", prev.Location, next.Location},
		{"vendor", prev.Vendor, next.Vendor},
	}
	for _, f := range fields {
		if f.old != f.new {
			log, _ = domain.AppendEntry(log, domain.ActionUpdated,
				fmt.Sprintf("'%s' from '%s' to '%s'", f.name, f.old, f.new), at)
		}
	}

	prevID, hadAssignee := prev.State.Assignee()
	nextID, hasAssignee := next.State.Assignee()
	if hadAssignee != hasAssignee || prevID != nextID {
		var from, to *domain.EmployeeRef
		if hadAssignee {
			from = ref(prevID)
		}
		if hasAssignee {
			to = ref(nextID)
		}
		log, _ = domain.AppendAssignment(log, from, to, at)
	}

	prevStatus, nextStatus := prev.State.Status(), next.State.Status()
	switch {
	case !prevStatus.IsRetired() && nextStatus.IsRetired(),
		prevStatus.IsRetired() && nextStatus.IsRetired() && prevStatus != nextStatus:
		log, _ = domain.AppendEntry(log, domain.ActionRetired,
			fmt.Sprintf("'status' from '%s' to '%s'", prevStatus, nextStatus), at)
	case prevStatus.IsRetired() && !nextStatus.IsRetired():
		log, _ = domain.AppendEntry(log, domain.ActionReinstated,
			fmt.Sprintf("'status' from '%s' to '%s'", prevStatus, nextStatus), at)
	}

	return log
}

// withEntries places entries at the head of log without touching either slice.
func withEntries(log, entries []domain.LedgerEntry) []domain.LedgerEntry {
	return append(slices.Clone(entries), log...)
}
