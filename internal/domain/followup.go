package domain

import (
	"time"

	"github.com/google/uuid"
)

// Followup is an employee-side comment whose write failed and is waiting to
// be replayed.
type Followup struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	Text       string    `json:"text"`
	Attempts   int       `json:"attempts"`
	CreatedAt  time.Time `json:"created_at"`
}

// NotifyOutcome says what happened to a best-effort employee-side write.
type NotifyOutcome string

const (
	NotifyWritten NotifyOutcome = "written"
	NotifyQueued  NotifyOutcome = "queued"
	NotifyDropped NotifyOutcome = "dropped"
)

// SideEffect reports a secondary write attempted after a primary record was
// committed. Its failure never undoes the primary write.
type SideEffect struct {
	EmployeeID uuid.UUID     `json:"employee_id"`
	Text       string        `json:"text"`
	Outcome    NotifyOutcome `json:"outcome"`
}
