package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
)

// IssueParams describes one stock movement out of a consumable.
type IssueParams struct {
	EmployeeID   uuid.UUID
	EmployeeName string
	Quantity     int
	Remarks      string
}

// Validate checks all fields and collects all errors.
func (p IssueParams) Validate() error {
	var errs []domain.FieldError
	if p.EmployeeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "employee_id", Message: "required"})
	}
	if p.Quantity < 1 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be at least 1"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Issue takes quantity units out of c for an employee. On any error c is
// returned untouched.
func Issue(c domain.Consumable, p IssueParams, at time.Time) (domain.Consumable, domain.IssueLogEntry, error) {
	if err := p.Validate(); err != nil {
		return c, domain.IssueLogEntry{}, err
	}
	if p.Quantity > c.Quantity {
		return c, domain.IssueLogEntry{}, &domain.InsufficientStockError{
			ConsumableID: c.ID,
			Requested:    p.Quantity,
			Available:    c.Quantity,
		}
	}

	entry := domain.IssueLogEntry{
		ID:           uuid.New(),
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		Quantity:     p.Quantity,
		Remarks:      domain.CleanText(p.Remarks),
		IssueDate:    at,
		Status:       domain.IssueStatusActive,
	}

	out := c.Clone()
	out.Quantity -= p.Quantity
	out.IssueLog = append([]domain.IssueLogEntry{entry}, out.IssueLog...)
	out.AuditLog, _ = domain.AppendEntry(out.AuditLog, domain.ActionIssued,
		fmt.Sprintf("Issued %d to %s", p.Quantity, recipient(p.EmployeeName, p.EmployeeID)), at)
	return out, entry, nil
}

// Revoke returns the stock of an active issue. The entry is matched by ID and
// marked Reversed; revoking it again fails with ErrAlreadyReversed.
func Revoke(c domain.Consumable, entryID uuid.UUID, at time.Time) (domain.Consumable, domain.IssueLogEntry, error) {
	i, ok := c.FindIssue(entryID)
	if !ok {
		return c, domain.IssueLogEntry{}, fmt.Errorf("issue %s on consumable %s: %w", entryID, c.ID, domain.ErrNotFound)
	}
	if c.IssueLog[i].Status != domain.IssueStatusActive {
		return c, domain.IssueLogEntry{}, fmt.Errorf("issue %s on consumable %s: %w", entryID, c.ID, domain.ErrAlreadyReversed)
	}

	out := c.Clone()
	entry := out.IssueLog[i]
	entry.Status = domain.IssueStatusReversed
	entry.ReversedAt = &at
	out.IssueLog[i] = entry
	out.Quantity += entry.Quantity
	out.AuditLog, _ = domain.AppendEntry(out.AuditLog, domain.ActionIssueRevoked,
		fmt.Sprintf("Revoked issue of %d from %s", entry.Quantity, recipient(entry.EmployeeName, entry.EmployeeID)), at)
	return out, entry, nil
}

// Restock adds quantity units. InitialQuantity moves with Quantity so the
// stock invariant keeps holding.
func Restock(c domain.Consumable, quantity int, at time.Time) (domain.Consumable, error) {
	if quantity < 1 {
		return c, domain.NewValidationError("quantity", "must be at least 1")
	}

	out := c.Clone()
	out.InitialQuantity += quantity
	out.Quantity += quantity
	out.AuditLog, _ = domain.AppendEntry(out.AuditLog, domain.ActionRestocked,
		fmt.Sprintf("Restocked %d (stock %d -> %d)", quantity, c.Quantity, out.Quantity), at)
	return out, nil
}

func recipient(name string, id uuid.UUID) string {
	if name != "" {
		return name
	}
	return id.String()
}
