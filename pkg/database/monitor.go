package database

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/event"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// commandState tracks an in-flight command between the started and
// succeeded/failed callbacks, keyed by the driver's request ID.
type commandState struct {
	span  trace.Span
	start time.Time
	name  string
}

// NewCommandMonitor returns a CommandMonitor that creates an OpenTelemetry
// span per database command and logs commands slower than threshold.
func NewCommandMonitor(service string, threshold time.Duration, logger *slog.Logger) *event.CommandMonitor {
	tracer := otel.Tracer("github.com/utafrali/CampgroundsGo/pkg/database")
	var inflight sync.Map

	finish := func(ctx context.Context, requestID int64, duration time.Duration, failure string) {
		v, ok := inflight.LoadAndDelete(requestID)
		if !ok {
			return
		}
		state := v.(*commandState)

		if failure != "" {
			state.span.SetStatus(codes.Error, failure)
		}
		state.span.SetAttributes(attribute.Int64("db.duration_ms", duration.Milliseconds()))
		state.span.End()

		if threshold > 0 && duration >= threshold {
			logger.WarnContext(ctx, "slow database command",
				slog.String("command", state.name),
				slog.Duration("duration", duration),
				slog.Duration("threshold", threshold),
			)
		}
	}

	return &event.CommandMonitor{
		Started: func(ctx context.Context, evt *event.CommandStartedEvent) {
			_, span := tracer.Start(ctx, "mongo."+evt.CommandName,
				trace.WithSpanKind(trace.SpanKindClient),
				trace.WithAttributes(
					attribute.String("db.system", "mongodb"),
					attribute.String("db.name", evt.DatabaseName),
					attribute.String("db.operation", evt.CommandName),
					attribute.String("service", service),
				),
			)
			inflight.Store(evt.RequestID, &commandState{
				span:  span,
				start: time.Now(),
				name:  evt.CommandName,
			})
		},
		Succeeded: func(ctx context.Context, evt *event.CommandSucceededEvent) {
			finish(ctx, evt.RequestID, evt.Duration, "")
		},
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			finish(ctx, evt.RequestID, evt.Duration, evt.Failure)
		},
	}
}
