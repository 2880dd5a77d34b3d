package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/projectboard/internal/platform/logging"
)

const redacted = "[REDACTED]"

// Logging stores a request-scoped child logger (request_id, correlation_id)
// in the context and logs each request's outcome. Health probes are logged
// at debug so polling does not drown the board's own traffic; server errors
// are logged at error.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := logging.WithLogger(r.Context(), logger)
			ctx, child := logging.With(ctx,
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)

			child.DebugContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("headers", headerValue(r.Header)),
			)

			sr := record(w)
			next.ServeHTTP(sr, r.WithContext(ctx))

			status := statusOrOK(sr)
			child.Log(ctx, completionLevel(r, status), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", status),
				slog.Int64("bytes", sr.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func completionLevel(r *http.Request, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case strings.HasPrefix(r.URL.Path, "/health/"):
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// headerValue renders request headers as a sorted slog group with
// credentials masked. It is a LogValuer so the work is skipped unless the
// debug line is actually written.
type headerValue http.Header

func (h headerValue) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(h))
	for _, name := range slices.Sorted(maps.Keys(h)) {
		value := strings.Join(h[name], ",")
		if logging.IsSensitiveHeader(name) {
			value = redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return slog.GroupValue(attrs...)
}

var _ slog.LogValuer = headerValue(nil)
