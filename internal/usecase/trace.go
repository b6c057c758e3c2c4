package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("citrus-league/internal/usecase")

// startSpan opens "usecase.<name>" under an existing span. Background work
// without a parent, such as a bare cron tick, is not traced.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return usecaseTracer.Start(ctx, "usecase."+name, trace.WithAttributes(attrs...))
}

func leagueAttr(leagueID string) attribute.KeyValue {
	return attribute.String("league.id", leagueID)
}

func teamAttr(teamID string) attribute.KeyValue {
	return attribute.String("team.id", teamID)
}
