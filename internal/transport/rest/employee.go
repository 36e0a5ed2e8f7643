package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/internal/service/cascade"
	"github.com/heartmarshall/assetledger/internal/service/roster"
)

type employeeService interface {
	GetEmployee(ctx context.Context, id uuid.UUID) (domain.Employee, error)
	ListEmployees(ctx context.Context, f domain.EmployeeFilter) ([]domain.Employee, error)
	CreateEmployee(ctx context.Context, input roster.CreateEmployeeInput) (domain.Employee, error)
	ImportEmployees(ctx context.Context, rows []roster.CreateEmployeeInput) (int, error)
	AppendComment(ctx context.Context, employeeID uuid.UUID, text string) (domain.Employee, error)
}

type employeeCascades interface {
	ProcessEmployeeExit(ctx context.Context, input cascade.ExitInput) (domain.Report, error)
	DeleteEmployee(ctx context.Context, employeeID uuid.UUID) (domain.Report, error)
	BulkDeleteEmployees(ctx context.Context, ids []uuid.UUID) (domain.Report, error)
}

type heldSoftware interface {
	HeldBy(ctx context.Context, employeeID uuid.UUID) ([]domain.Software, error)
}

// EmployeeHandler serves /employees. Exit and deletion run as cascades and
// answer 207 with the report when some steps did not succeed.
type EmployeeHandler struct {
	roster   employeeService
	cascades employeeCascades
	software heldSoftware
	log      *slog.Logger
}

func NewEmployeeHandler(roster employeeService, cascades employeeCascades, software heldSoftware, log *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{roster: roster, cascades: cascades, software: software, log: log.With("handler", "employee")}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r, defaultPageSize)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	f := domain.EmployeeFilter{Limit: limit, Offset: offset}
	if v := r.URL.Query().Get("status"); v != "" {
		st := domain.EmployeeStatus(v)
		f.Status = &st
	}

	items, err := h.roster.ListEmployees(r.Context(), f)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[EmployeeDTO]{Items: mapSlice(items, newEmployeeDTO), Limit: limit, Offset: offset})
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	e, err := h.roster.GetEmployee(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newEmployeeDTO(e))
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input roster.CreateEmployeeInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	e, err := h.roster.CreateEmployee(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, newEmployeeDTO(e))
}

func (h *EmployeeHandler) Import(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Rows []roster.CreateEmployeeInput `json:"rows"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	n, err := h.roster.ImportEmployees(r.Context(), body.Rows)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, importResponse{Imported: n})
}

func (h *EmployeeHandler) Comment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var body struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	e, err := h.roster.AppendComment(r.Context(), id, body.Text)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, newEmployeeDTO(e))
}

func (h *EmployeeHandler) Software(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	items, err := h.software.HeldBy(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, newSoftwareDTO))
}

func (h *EmployeeHandler) Exit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var input cascade.ExitInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	input.EmployeeID = id

	h.report(w, r)(h.cascades.ProcessEmployeeExit(r.Context(), input))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	h.report(w, r)(h.cascades.DeleteEmployee(r.Context(), id))
}

func (h *EmployeeHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs []uuid.UUID `json:"ids"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	h.report(w, r)(h.cascades.BulkDeleteEmployees(r.Context(), body.IDs))
}

func (h *EmployeeHandler) report(w http.ResponseWriter, r *http.Request) func(domain.Report, error) {
	return func(rep domain.Report, err error) {
		if err != nil {
			writeError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, newReportDTO(rep))
	}
}
