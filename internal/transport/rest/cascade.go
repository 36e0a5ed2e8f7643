package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
)

type cascadeService interface {
	MassUpdateAssets(ctx context.Context, ids []uuid.UUID, patch domain.AssetPatch) (domain.Report, error)
	ResumeRun(ctx context.Context, runID uuid.UUID) (domain.Report, error)
}

// CascadeHandler serves mass asset edits and manual resumption of runs.
type CascadeHandler struct {
	svc cascadeService
	log *slog.Logger
}

func NewCascadeHandler(svc cascadeService, log *slog.Logger) *CascadeHandler {
	return &CascadeHandler{svc: svc, log: log.With("handler", "cascade")}
}

func (h *CascadeHandler) MassUpdate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs   []uuid.UUID       `json:"ids"`
		Patch domain.AssetPatch `json:"patch"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	rep, err := h.svc.MassUpdateAssets(r.Context(), body.IDs, body.Patch)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newReportDTO(rep))
}

func (h *CascadeHandler) Resume(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	rep, err := h.svc.ResumeRun(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newReportDTO(rep))
}
