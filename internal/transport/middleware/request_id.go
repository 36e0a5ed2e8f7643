package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/pkg/ctxutil"
)

const (
	RequestIDHeader = "X-Request-Id"

	maxRequestIDLen = 64
)

// RequestID returns middleware that propagates the caller's X-Request-Id, or
// generates a UUID when the header is missing or not a safe token. The ID is
// echoed in the response and stored in the context for logging.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if !validRequestID(id) {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}

// validRequestID accepts short tokens of letters, digits, '-', '_' and '.'.
// Anything else would end up verbatim in log lines.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
