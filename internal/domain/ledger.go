package domain

import (
	"fmt"
	"html"
	"slices"
	"time"

	"github.com/google/uuid"
)

// EmployeeRef identifies an employee as it was at the time an entry was written.
type EmployeeRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AssignmentChange is the structured payload of an assignee transition.
// Nil From/To means "nobody".
type AssignmentChange struct {
	From *EmployeeRef `json:"from,omitempty"`
	To   *EmployeeRef `json:"to,omitempty"`
}

// LedgerEntry is one immutable audit record appended to an entity's history.
type LedgerEntry struct {
	ID         uuid.UUID         `json:"id"`
	Action     string            `json:"action"`
	Date       time.Time         `json:"date"`
	Details    string            `json:"details,omitempty"`
	Assignment *AssignmentChange `json:"assignment,omitempty"`
}

// Text renders the entry for display. Assignment entries are rendered from
// their structured payload.
func (e LedgerEntry) Text() string {
	if e.Assignment == nil {
		return e.Details
	}
	employeeID := "null"
	if e.Assignment.To != nil {
		employeeID = e.Assignment.To.ID.String()
	}
	text := fmt.Sprintf("'assignedTo' from '%s' to '%s' (Employee ID: %s)",
		refName(e.Assignment.From), refName(e.Assignment.To), employeeID)
	if e.Details != "" {
		text += ": " + e.Details
	}
	return text
}

// HTML renders the entry as markup-safe text.
func (e LedgerEntry) HTML() string {
	return html.EscapeString(e.Text())
}

func refName(r *EmployeeRef) string {
	if r == nil {
		return "None"
	}
	return r.Name
}

// Comment is a user-authored note. Same append-only discipline as LedgerEntry.
type Comment struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

// HTML renders the comment as markup-safe text.
func (c Comment) HTML() string {
	return html.EscapeString(c.Text)
}

// AppendEntry returns a new log with an entry inserted at the head
// (most recent first). The input slice is not modified.
func AppendEntry(log []LedgerEntry, action, details string, at time.Time) ([]LedgerEntry, LedgerEntry) {
	entry := LedgerEntry{
		ID:      uuid.New(),
		Action:  action,
		Date:    at,
		Details: details,
	}
	return prepend(log, entry), entry
}

// AppendAssignment appends a structured assignee transition.
func AppendAssignment(log []LedgerEntry, from, to *EmployeeRef, at time.Time) ([]LedgerEntry, LedgerEntry) {
	entry := LedgerEntry{
		ID:         uuid.New(),
		Action:     ActionAssignmentChanged,
		Date:       at,
		Assignment: &AssignmentChange{From: from, To: to},
	}
	return prepend(log, entry), entry
}

// AppendUnassignment records an assignee being cleared by a cascade rather
// than by an edit. reason ends up in Details.
func AppendUnassignment(log []LedgerEntry, from *EmployeeRef, reason string, at time.Time) ([]LedgerEntry, LedgerEntry) {
	entry := LedgerEntry{
		ID:         uuid.New(),
		Action:     ActionUnassigned,
		Date:       at,
		Details:    reason,
		Assignment: &AssignmentChange{From: from},
	}
	return prepend(log, entry), entry
}

// AppendComment returns a new comment list with text inserted at the head.
func AppendComment(comments []Comment, text string, at time.Time) ([]Comment, Comment) {
	c := Comment{
		ID:   uuid.New(),
		Text: text,
		Date: at,
	}
	return prepend(comments, c), c
}

// SortEntriesByDateDesc returns a copy of entries ordered newest first.
// Entries with equal dates keep their relative order.
func SortEntriesByDateDesc(entries []LedgerEntry) []LedgerEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b LedgerEntry) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

// CountActions returns how many entries carry the given action.
func CountActions(entries []LedgerEntry, action string) int {
	n := 0
	for _, e := range entries {
		if e.Action == action {
			n++
		}
	}
	return n
}

func prepend[T any](s []T, v T) []T {
	out := make([]T, 0, len(s)+1)
	out = append(out, v)
	return append(out, s...)
}
