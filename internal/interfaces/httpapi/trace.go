package httpapi

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var apiTracer = otel.Tracer("cricket-scorer-api/internal/interfaces/httpapi")

// startHandlerSpan opens "httpapi.Handler.<op>" under the otelhttp request span. Requests the
// tracing middleware skipped (health, metrics) carry no parent and get a no-op span.
func startHandlerSpan(r *http.Request, op string) (context.Context, trace.Span) {
	ctx := r.Context()
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return apiTracer.Start(ctx, handlerSpanPrefix+op, trace.WithAttributes(
		attribute.String("http.route", r.Pattern),
	))
}
