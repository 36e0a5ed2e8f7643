package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/internal/service/licensing"
)

type softwareService interface {
	GetSoftware(ctx context.Context, id uuid.UUID) (domain.Software, error)
	ListSoftware(ctx context.Context, limit, offset int) ([]domain.Software, error)
	CreateSoftware(ctx context.Context, input licensing.CreateSoftwareInput) (domain.Software, error)
	ImportSoftware(ctx context.Context, rows []licensing.CreateSoftwareInput) (int, error)
	DeleteSoftware(ctx context.Context, id uuid.UUID) error
	AssignSeat(ctx context.Context, softwareID, employeeID uuid.UUID) (licensing.Result, error)
	ReleaseSeat(ctx context.Context, softwareID, employeeID uuid.UUID) (licensing.Result, error)
}

// SoftwareHandler serves /software and its seats.
type SoftwareHandler struct {
	svc softwareService
	log *slog.Logger
}

func NewSoftwareHandler(svc softwareService, log *slog.Logger) *SoftwareHandler {
	return &SoftwareHandler{svc: svc, log: log.With("handler", "software")}
}

func (h *SoftwareHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r, defaultPageSize)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	items, err := h.svc.ListSoftware(r.Context(), limit, offset)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[SoftwareDTO]{Items: mapSlice(items, newSoftwareDTO), Limit: limit, Offset: offset})
}

func (h *SoftwareHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	s, err := h.svc.GetSoftware(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newSoftwareDTO(s))
}

func (h *SoftwareHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input licensing.CreateSoftwareInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	s, err := h.svc.CreateSoftware(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, newSoftwareDTO(s))
}

func (h *SoftwareHandler) Import(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Rows []licensing.CreateSoftwareInput `json:"rows"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	n, err := h.svc.ImportSoftware(r.Context(), body.Rows)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, importResponse{Imported: n})
}

func (h *SoftwareHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteSoftware(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SoftwareHandler) AssignSeat(w http.ResponseWriter, r *http.Request) {
	h.seat(w, r, h.svc.AssignSeat)
}

func (h *SoftwareHandler) ReleaseSeat(w http.ResponseWriter, r *http.Request) {
	h.seat(w, r, h.svc.ReleaseSeat)
}

func (h *SoftwareHandler) seat(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID, uuid.UUID) (licensing.Result, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	employeeID, err := pathID(r, "employeeID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := op(r.Context(), id, employeeID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, SoftwareResult{
		Software:    newSoftwareDTO(res.Software),
		Changed:     res.Changed,
		SideEffects: nonNil(res.SideEffects),
	})
}
