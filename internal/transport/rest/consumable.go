package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/internal/service/inventory"
)

type consumableService interface {
	GetConsumable(ctx context.Context, id uuid.UUID) (domain.Consumable, error)
	ListConsumables(ctx context.Context, limit, offset int) ([]domain.Consumable, error)
	CreateConsumable(ctx context.Context, input inventory.CreateConsumableInput) (domain.Consumable, error)
	ImportConsumables(ctx context.Context, rows []inventory.CreateConsumableInput) (int, error)
	IssueConsumable(ctx context.Context, input inventory.IssueInput) (inventory.IssueResult, error)
	RevokeConsumableIssue(ctx context.Context, input inventory.RevokeInput) (inventory.IssueResult, error)
	RestockConsumable(ctx context.Context, id uuid.UUID, quantity int) (domain.Consumable, error)
	DeleteConsumable(ctx context.Context, id uuid.UUID) error
}

// ConsumableHandler serves /consumables.
type ConsumableHandler struct {
	svc consumableService
	log *slog.Logger
}

func NewConsumableHandler(svc consumableService, log *slog.Logger) *ConsumableHandler {
	return &ConsumableHandler{svc: svc, log: log.With("handler", "consumable")}
}

func (h *ConsumableHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r, defaultPageSize)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	items, err := h.svc.ListConsumables(r.Context(), limit, offset)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[ConsumableDTO]{Items: mapSlice(items, newConsumableDTO), Limit: limit, Offset: offset})
}

func (h *ConsumableHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	c, err := h.svc.GetConsumable(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newConsumableDTO(c))
}

func (h *ConsumableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input inventory.CreateConsumableInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	c, err := h.svc.CreateConsumable(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, newConsumableDTO(c))
}

func (h *ConsumableHandler) Import(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Rows []inventory.CreateConsumableInput `json:"rows"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	n, err := h.svc.ImportConsumables(r.Context(), body.Rows)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, importResponse{Imported: n})
}

func (h *ConsumableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteConsumable(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ConsumableHandler) Issue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var input inventory.IssueInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	input.ConsumableID = id

	res, err := h.svc.IssueConsumable(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, issueResult(res))
}

func (h *ConsumableHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	issueID, err := pathID(r, "issueID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.svc.RevokeConsumableIssue(r.Context(), inventory.RevokeInput{ConsumableID: id, IssueID: issueID})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, issueResult(res))
}

func (h *ConsumableHandler) Restock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	c, err := h.svc.RestockConsumable(r.Context(), id, body.Quantity)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newConsumableDTO(c))
}

func issueResult(res inventory.IssueResult) IssueResultDTO {
	return IssueResultDTO{
		Consumable:  newConsumableDTO(res.Consumable),
		Issue:       res.Issue,
		SideEffects: nonNil(res.SideEffects),
	}
}
