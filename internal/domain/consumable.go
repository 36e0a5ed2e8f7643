package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Consumable is a stocked supply item. Quantity is the current stock and must
// equal InitialQuantity minus the sum of active issues.
type Consumable struct {
	ID              uuid.UUID
	Name            string
	Category        string
	InitialQuantity int
	Quantity        int
	IssueLog        []IssueLogEntry
	AuditLog        []LedgerEntry
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IssueLogEntry is the permanent record of one stock movement.
type IssueLogEntry struct {
	ID           uuid.UUID   `json:"id"`
	EmployeeID   uuid.UUID   `json:"employee_id"`
	EmployeeName string      `json:"employee_name"`
	Quantity     int         `json:"quantity"`
	Remarks      string      `json:"remarks,omitempty"`
	IssueDate    time.Time   `json:"issue_date"`
	Status       IssueStatus `json:"status"`
	ReversedAt   *time.Time  `json:"reversed_at,omitempty"`
}

// ActiveIssued sums the quantity of all active issues.
func (c *Consumable) ActiveIssued() int {
	n := 0
	for _, e := range c.IssueLog {
		if e.Status == IssueStatusActive {
			n += e.Quantity
		}
	}
	return n
}

// FindIssue returns the index of the issue entry with the given id.
func (c *Consumable) FindIssue(id uuid.UUID) (int, bool) {
	for i, e := range c.IssueLog {
		if e.ID == id {
			return i, true
		}
	}
	return -1, false
}

// CheckInvariant verifies the stock bookkeeping of c.
func (c *Consumable) CheckInvariant() error {
	if c.Quantity < 0 {
		return fmt.Errorf("consumable %s: negative quantity %d", c.ID, c.Quantity)
	}
	if want := c.InitialQuantity - c.ActiveIssued(); c.Quantity != want {
		return fmt.Errorf("consumable %s: quantity %d, expected %d", c.ID, c.Quantity, want)
	}
	return nil
}

// Clone returns a copy whose slices can be mutated without affecting c.
func (c Consumable) Clone() Consumable {
	c.IssueLog = append([]IssueLogEntry(nil), c.IssueLog...)
	c.AuditLog = append([]LedgerEntry(nil), c.AuditLog...)
	return c
}
