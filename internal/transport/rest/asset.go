package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/internal/service/assignment"
)

type assetService interface {
	GetAsset(ctx context.Context, id uuid.UUID) (domain.Asset, error)
	ListAssets(ctx context.Context, f domain.AssetFilter) ([]domain.Asset, error)
	CreateAsset(ctx context.Context, input assignment.CreateAssetInput) (assignment.Result, error)
	ImportAssets(ctx context.Context, rows []assignment.CreateAssetInput) (int, error)
	UpdateAsset(ctx context.Context, input assignment.UpdateAssetInput) (assignment.Result, error)
	DeleteAsset(ctx context.Context, id uuid.UUID) (assignment.Result, error)
	AssignAsset(ctx context.Context, assetID, employeeID uuid.UUID) (assignment.Result, error)
	UnassignAsset(ctx context.Context, assetID uuid.UUID) (assignment.Result, error)
	SetAssetRetired(ctx context.Context, assetID uuid.UUID, kind domain.AssetStatus) (assignment.Result, error)
	ReinstateAsset(ctx context.Context, assetID uuid.UUID) (assignment.Result, error)
}

// AssetHandler serves /assets.
type AssetHandler struct {
	svc assetService
	log *slog.Logger
}

func NewAssetHandler(svc assetService, log *slog.Logger) *AssetHandler {
	return &AssetHandler{svc: svc, log: log.With("handler", "asset")}
}

func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r, defaultPageSize)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	f := domain.AssetFilter{Limit: limit, Offset: offset}
	if v := r.URL.Query().Get("status"); v != "" {
		st := domain.AssetStatus(v)
		f.Status = &st
	}

	assets, err := h.svc.ListAssets(r.Context(), f)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[AssetDTO]{Items: mapSlice(assets, newAssetDTO), Limit: limit, Offset: offset})
}

func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	a, err := h.svc.GetAsset(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newAssetDTO(a))
}

func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input assignment.CreateAssetInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	res, err := h.svc.CreateAsset(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, assetResult(res))
}

func (h *AssetHandler) Import(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Rows []assignment.CreateAssetInput `json:"rows"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	n, err := h.svc.ImportAssets(r.Context(), body.Rows)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, importResponse{Imported: n})
}

// Update applies a PATCH document: descriptive fields under "patch" plus at
// most one of assign_to, unassign, reinstate or patch.retire.
func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var input assignment.UpdateAssetInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	input.AssetID = id

	h.respond(w, r)(h.svc.UpdateAsset(r.Context(), input))
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	h.respond(w, r)(h.svc.DeleteAsset(r.Context(), id))
}

func (h *AssetHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var body struct {
		EmployeeID uuid.UUID `json:"employee_id"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	h.respond(w, r)(h.svc.AssignAsset(r.Context(), id, body.EmployeeID))
}

func (h *AssetHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	h.respond(w, r)(h.svc.UnassignAsset(r.Context(), id))
}

func (h *AssetHandler) Retire(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var body struct {
		Kind domain.AssetStatus `json:"kind"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	h.respond(w, r)(h.svc.SetAssetRetired(r.Context(), id, body.Kind))
}

func (h *AssetHandler) Reinstate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	h.respond(w, r)(h.svc.ReinstateAsset(r.Context(), id))
}

func (h *AssetHandler) respond(w http.ResponseWriter, r *http.Request) func(assignment.Result, error) {
	return func(res assignment.Result, err error) {
		if err != nil {
			writeError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, assetResult(res))
	}
}

func assetResult(res assignment.Result) AssetResult {
	return AssetResult{
		Asset:       newAssetDTO(res.Asset),
		Changed:     res.Changed,
		SideEffects: nonNil(res.SideEffects),
	}
}
