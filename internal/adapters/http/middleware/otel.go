package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/agecalc/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/agecalc/internal/adapters/http/middleware"

// OpenTelemetry opens a server span per request, continuing any W3C trace
// context the caller sent, and records the request duration and count.
// Spans start under the raw path and are renamed to the chi route pattern
// once it is known. nil metrics records spans only.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			ctx, span := otel.Tracer(tracerName).Start(ctx, spanName(r.Method, r.URL.Path),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					telemetry.AttrHTTPMethod.String(r.Method),
					attribute.String("http.target", r.URL.RequestURI()),
				),
			)
			defer span.End()

			rw := recordStatus(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			status := rw.status()
			attrs := []attribute.KeyValue{
				telemetry.AttrHTTPMethod.String(r.Method),
				telemetry.AttrHTTPStatus.Int(status),
			}
			if route := routePattern(r); route != "" {
				span.SetName(spanName(r.Method, route))
				attrs = append(attrs, telemetry.AttrHTTPRoute.String(route))
			}
			span.SetAttributes(attrs...)
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			if metrics == nil {
				return
			}
			result := telemetry.ResultSuccess
			if status >= http.StatusBadRequest {
				result = telemetry.ResultError
			}
			opt := metric.WithAttributes(append(attrs, telemetry.AttrResult.String(result))...)
			metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), opt)
			metrics.ServerRequestTotal.Add(ctx, 1, opt)
		})
	}
}

func spanName(method, path string) string {
	return "HTTP " + method + " " + path
}

// routePattern is the chi route that matched r, or "" when r did not go
// through a chi router or matched nothing.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
