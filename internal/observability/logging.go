// Package observability provides logging, metrics, and tracing.
package observability

import (
	"context"
	"log/slog"
	"os"
)

// Logger is the global structured logger instance used throughout the application.
var Logger *slog.Logger

type contextKey string

const (
	RunIDKey     contextKey = "run_id"
	KeywordIDKey contextKey = "keyword_id"
	UserIDKey    contextKey = "user_id"
)

// ctxHandler is a slog.Handler that adds context values to the log record.
type ctxHandler struct {
	slog.Handler
}

// Handle adds context values to the record before passing it to the underlying handler.
func (h *ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	if rid, ok := ctx.Value(RunIDKey).(string); ok {
		r.AddAttrs(slog.String("run_id", rid))
	}
	if kid, ok := ctx.Value(KeywordIDKey).(uint); ok {
		r.AddAttrs(slog.Uint64("keyword_id", uint64(kid)))
	}
	if uid, ok := ctx.Value(UserIDKey).(uint); ok {
		r.AddAttrs(slog.Uint64("user_id", uint64(uid)))
	}
	return h.Handler.Handle(ctx, r)
}

func init() {
	InitLogger(slog.LevelInfo)
}

// InitLogger sets up the global JSON logger at the given level.
func InitLogger(level slog.Level) {
	base := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	Logger = slog.New(&ctxHandler{Handler: base})
	slog.SetDefault(Logger)
}

// WithRunID returns a context carrying the analysis run ID for log correlation.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// WithKeywordID returns a context carrying the keyword under analysis.
func WithKeywordID(ctx context.Context, keywordID uint) context.Context {
	return context.WithValue(ctx, KeywordIDKey, keywordID)
}
