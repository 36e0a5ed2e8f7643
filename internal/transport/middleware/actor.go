package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/pkg/ctxutil"
)

// ActorHeader names the employee or operator performing the request. It is
// recorded in logs only; requests are not authenticated.
const ActorHeader = "X-Actor-Id"

// Actor stores the X-Actor-Id header in the context. A malformed header is
// rejected with 400.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(ActorHeader)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid "+ActorHeader+" header", http.StatusBadRequest)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctxutil.WithActorID(r.Context(), id)))
	})
}
