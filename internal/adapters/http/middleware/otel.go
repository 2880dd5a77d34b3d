package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/projectboard/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/projectboard/internal/adapters/http/middleware"

// OpenTelemetry returns middleware that opens a server span per request and
// records the server request instruments. Incoming W3C trace context is
// honoured so that a projectctl call and the board request share one trace.
//
// The span starts under the raw path and is renamed to the chi route pattern
// once routing is done, which keeps project IDs out of span names and metric
// labels. A nil metrics skips the instruments.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx, span := startServerSpan(r)
			defer span.End()

			sr := record(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(sr, r)

			route := routePattern(r)
			status := statusOrOK(sr)
			finishServerSpan(span, r.Method, route, status)
			recordServerMetrics(ctx, metrics, r.Method, route, status, time.Since(start))
		})
	}
}

func startServerSpan(r *http.Request) (context.Context, trace.Span) {
	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	return otel.Tracer(tracerName).Start(ctx, spanName(r.Method, r.URL.Path),
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.method", r.Method),
			attribute.String("http.url", r.URL.String()),
		),
	)
}

func finishServerSpan(span trace.Span, method, route string, status int) {
	span.SetName(spanName(method, route))
	span.SetAttributes(
		attribute.Int("http.status_code", status),
		attribute.String("http.route", route),
	)
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	}
}

func spanName(method, path string) string {
	return "HTTP " + method + " " + path
}

func recordServerMetrics(ctx context.Context, metrics *telemetry.Metrics, method, route string, status int, elapsed time.Duration) {
	if metrics == nil {
		return
	}

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)

	metrics.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}

// routePattern returns the matched chi route pattern, or the raw path when
// chi did not route the request.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
