package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
)

// AssetDTO is the wire form of domain.Asset.
type AssetDTO struct {
	ID           uuid.UUID            `json:"id"`
	Name         string               `json:"name"`
	Category     string               `json:"category"`
	SerialNumber string               `json:"serial_number,omitempty"`
	Location     string               `json:"location,omitempty"`
	Vendor       string               `json:"vendor,omitempty"`
	Status       domain.AssetStatus   `json:"status"`
	AssignedTo   *uuid.UUID           `json:"assigned_to"`
	Comments     []domain.Comment     `json:"comments"`
	AuditLog     []domain.LedgerEntry `json:"audit_log"`
	Version      int64                `json:"version"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func newAssetDTO(a domain.Asset) AssetDTO {
	return AssetDTO{
		ID:           a.ID,
		Name:         a.Name,
		Category:     a.Category,
		SerialNumber: a.SerialNumber,
		Location:     a.Location,
		Vendor:       a.Vendor,
		Status:       a.State.Status(),
		AssignedTo:   a.State.AssigneePtr(),
		Comments:     nonNil(a.Comments),
		AuditLog:     nonNil(a.AuditLog),
		Version:      a.Version,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// AssetResult carries an asset write together with the employee-side
// writes it triggered.
type AssetResult struct {
	Asset       AssetDTO            `json:"asset"`
	Changed     bool                `json:"changed"`
	SideEffects []domain.SideEffect `json:"side_effects"`
}

type EmployeeDTO struct {
	ID         uuid.UUID             `json:"id"`
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	Department string                `json:"department,omitempty"`
	Status     domain.EmployeeStatus `json:"status"`
	ExitDate   *time.Time            `json:"exit_date,omitempty"`
	ExitReason string                `json:"exit_reason,omitempty"`
	Comments   []domain.Comment      `json:"comments"`
	AuditLog   []domain.LedgerEntry  `json:"audit_log"`
	Version    int64                 `json:"version"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

func newEmployeeDTO(e domain.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		Status:     e.Status,
		ExitDate:   e.ExitDate,
		ExitReason: e.ExitReason,
		Comments:   nonNil(e.Comments),
		AuditLog:   nonNil(e.AuditLog),
		Version:    e.Version,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

type ConsumableDTO struct {
	ID              uuid.UUID              `json:"id"`
	Name            string                 `json:"name"`
	Category        string                 `json:"category,omitempty"`
	InitialQuantity int                    `json:"initial_quantity"`
	Quantity        int                    `json:"quantity"`
	IssueLog        []domain.IssueLogEntry `json:"issue_log"`
	AuditLog        []domain.LedgerEntry   `json:"audit_log"`
	Version         int64                  `json:"version"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func newConsumableDTO(c domain.Consumable) ConsumableDTO {
	return ConsumableDTO{
		ID:              c.ID,
		Name:            c.Name,
		Category:        c.Category,
		InitialQuantity: c.InitialQuantity,
		Quantity:        c.Quantity,
		IssueLog:        nonNil(c.IssueLog),
		AuditLog:        nonNil(c.AuditLog),
		Version:         c.Version,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// IssueResultDTO is the answer to an issue or revoke.
type IssueResultDTO struct {
	Consumable  ConsumableDTO        `json:"consumable"`
	Issue       domain.IssueLogEntry `json:"issue"`
	SideEffects []domain.SideEffect  `json:"side_effects"`
}

type SoftwareDTO struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Vendor         string               `json:"vendor,omitempty"`
	TotalLicenses  int                  `json:"total_licenses"`
	AssignedTo     []uuid.UUID          `json:"assigned_to"`
	AvailableSeats int                  `json:"available_seats"`
	AuditLog       []domain.LedgerEntry `json:"audit_log"`
	Version        int64                `json:"version"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func newSoftwareDTO(s domain.Software) SoftwareDTO {
	return SoftwareDTO{
		ID:             s.ID,
		Name:           s.Name,
		Vendor:         s.Vendor,
		TotalLicenses:  s.TotalLicenses,
		AssignedTo:     nonNil(s.AssignedTo),
		AvailableSeats: s.SeatsAvailable(),
		AuditLog:       nonNil(s.AuditLog),
		Version:        s.Version,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

type SoftwareResult struct {
	Software    SoftwareDTO         `json:"software"`
	Changed     bool                `json:"changed"`
	SideEffects []domain.SideEffect `json:"side_effects"`
}

// ReportDTO is a cascade report. Status 207 responses carry it as well.
type ReportDTO struct {
	RunID     uuid.UUID           `json:"run_id"`
	Kind      domain.CascadeKind  `json:"kind"`
	Complete  bool                `json:"complete"`
	Aborted   bool                `json:"aborted"`
	Attempted int                 `json:"attempted"`
	Succeeded int                 `json:"succeeded"`
	Skipped   int                 `json:"skipped"`
	Failed    int                 `json:"failed"`
	Pending   int                 `json:"pending"`
	Items     []domain.StepResult `json:"items"`
}

func newReportDTO(r domain.Report) ReportDTO {
	return ReportDTO{
		RunID:     r.RunID,
		Kind:      r.Kind,
		Complete:  r.Complete(),
		Aborted:   r.Aborted,
		Attempted: r.Attempted,
		Succeeded: r.Succeeded,
		Skipped:   r.Skipped,
		Failed:    r.Failed,
		Pending:   r.Pending,
		Items:     nonNil(r.Items),
	}
}

type importResponse struct {
	Imported int `json:"imported"`
}

type listResponse[T any] struct {
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func mapSlice[S, T any](in []S, f func(S) T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
