package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/assetledger/internal/config"
	"github.com/heartmarshall/assetledger/pkg/ctxutil"
)

// NewLogger creates a *slog.Logger based on the provided LogConfig
// and sets it as the default logger via slog.SetDefault.
//
// Format "json" produces structured JSON output (production).
// Format "text" produces human-readable output with source info (development).
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
// Request, actor and cascade run IDs found in the context are attached to
// every record logged with a *Context method.
// Output is always os.Stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(contextHandler{Handler: handler})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type contextHandler struct {
	slog.Handler
}

// Handle adds context IDs unless the record already carries them.
func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	present := make(map[string]bool, 3)
	r.Attrs(func(a slog.Attr) bool {
		present[a.Key] = true
		return true
	})

	if id := ctxutil.RequestIDFromCtx(ctx); id != "" && !present["request_id"] {
		r.AddAttrs(slog.String("request_id", id))
	}
	if id, ok := ctxutil.ActorIDFromCtx(ctx); ok && !present["actor_id"] {
		r.AddAttrs(slog.String("actor_id", id.String()))
	}
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok && !present["run_id"] {
		r.AddAttrs(slog.String("run_id", id.String()))
	}
	return h.Handler.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{Handler: h.Handler.WithGroup(name)}
}
