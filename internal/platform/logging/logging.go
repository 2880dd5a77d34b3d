// Package logging builds the process logger and carries request-scoped
// loggers through context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "project added",
//	    slog.String("project_id", p.ID),
//	)
//
// Errors are logged with the operation name, the entity ids involved, and
// slog.Any("error", err) so the whole wrap chain is kept.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New returns a logger writing to w.
//
// level is one of "debug", "info", "warn" or "error" (case-insensitive);
// anything else falls back to info. format "text" selects the text handler,
// every other value JSON. Debug loggers also record the call site.
// Attributes pass through the redaction in redact.go before they are written.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactAttr(),
	}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a configured level name onto slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With stores a child of the context logger enriched with attrs and returns
// both the new context and the child.
func With(ctx context.Context, attrs ...any) (context.Context, *slog.Logger) {
	child := FromContext(ctx).With(attrs...)
	return WithLogger(ctx, child), child
}
