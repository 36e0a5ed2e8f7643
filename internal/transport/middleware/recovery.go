package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// panicBody matches the JSON error envelope of the REST handlers.
const panicBody = `{"error":{"code":"INTERNAL","message":"internal error"}}`

// Recovery returns middleware that turns a handler panic into a 500 with the
// standard JSON error body. http.ErrAbortHandler is re-raised so net/http can
// abort the connection as usual.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(panicBody))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
