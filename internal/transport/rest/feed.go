package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/assetledger/internal/domain"
	"github.com/heartmarshall/assetledger/internal/service/feed"
)

type feedService interface {
	RecentlyAssigned(ctx context.Context, limit int) ([]feed.Assignment, error)
	Summary(ctx context.Context) (feed.Summary, error)
}

// FeedHandler serves the dashboard.
type FeedHandler struct {
	svc feedService
	log *slog.Logger
}

func NewFeedHandler(svc feedService, log *slog.Logger) *FeedHandler {
	return &FeedHandler{svc: svc, log: log.With("handler", "feed")}
}

// Recent lists recent assignments. Without ?limit the service default applies.
func (h *FeedHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			writeError(w, r, h.log, domain.NewValidationError("limit", "must be between 1 and 100"))
			return
		}
		limit = n
	}

	items, err := h.svc.RecentlyAssigned(r.Context(), limit)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(items))
}

func (h *FeedHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
