package httpapi

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("citrus-league/internal/interfaces/httpapi")

// Path values copied onto handler spans when the matched route declares them.
var spanPathValues = []struct {
	name string
	key  attribute.Key
}{
	{"leagueID", "league.id"},
	{"teamID", "team.id"},
	{"playerID", "player.id"},
}

// handlerSpan starts a child of the otelhttp server span. Requests filtered
// out of tracing, such as /healthz, carry no parent and get a no-op span.
func handlerSpan(r *http.Request, name string) (ctx context.Context, span trace.Span) {
	ctx = r.Context()
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, trace.SpanFromContext(ctx)
	}
	return apiTracer.Start(ctx, "httpapi.Handler."+name, trace.WithAttributes(spanAttributes(r)...))
}

func spanAttributes(r *http.Request) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(spanPathValues)+1)
	if r.Pattern != "" {
		attrs = append(attrs, attribute.String("http.route", r.Pattern))
	}
	for _, pv := range spanPathValues {
		if v := r.PathValue(pv.name); v != "" {
			attrs = append(attrs, pv.key.String(v))
		}
	}
	return attrs
}
