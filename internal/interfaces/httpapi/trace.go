package httpapi

import (
	"context"
	"strings"

	"github.com/riskibarqy/team-roster/internal/platform/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("team-roster/internal/interfaces/httpapi")

// startSpan only opens spans for handlers; middleware and response helpers
// run inside the otelhttp request span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, trace.SpanFromContext(context.Background())
	}
	return tracing.StartChild(ctx, apiTracer, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
