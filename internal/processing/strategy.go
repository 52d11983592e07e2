// Package processing implements the application pipeline: the verification
// gate, per-product strategy dispatch, the ordered external calls with their
// partial-failure semantics, and domain event emission.
package processing

import (
	"context"
	"log/slog"

	"onboard/internal/events"
	"onboard/internal/processing/metrics"
	"onboard/internal/processing/models"
	"onboard/internal/processing/validation"
)

// Strategy runs the per-product sequence of administrator calls for one
// application.
type Strategy interface {
	Process(ctx context.Context, app models.Application) models.ProcessingResult
}

// firstViolationError maps the first violation (in rule-declaration order) to
// the canonical pipeline error. Callers get a single deterministic error, not
// a list.
func firstViolationError(violations []validation.Violation) models.Error {
	first := violations[0]
	return models.NewError(first.Code, first.Message)
}

// publish sends an event and logs failures without escalating them: the
// external side effect already happened and the result returned to the caller
// must not flip because the bus hiccuped.
func publish(ctx context.Context, bus events.Bus, logger *slog.Logger, m *metrics.Metrics, event events.Event) {
	if err := bus.Publish(ctx, event); err != nil {
		if m != nil {
			m.IncrementPublishFailures()
		}
		if logger != nil {
			logger.ErrorContext(ctx, "event publish failed",
				"event", event.EventName(),
				"aggregate_key", event.AggregateKey(),
				"error", err,
			)
		}
	}
}
