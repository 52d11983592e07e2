package processing

import (
	"context"
	"log/slog"
	"time"

	"onboard/internal/events"
	"onboard/internal/kyc"
	"onboard/internal/processing/metrics"
	"onboard/internal/processing/models"
	"onboard/pkg/requestcontext"
)

// Processor is the single entry point of the pipeline. It holds no state
// across calls and is safe for concurrent invocation with distinct
// applications, provided its collaborators are.
type Processor struct {
	checker  kyc.Checker
	selector *Selector
	bus      events.Bus
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// Option configures optional collaborators on the Processor.
type Option func(*Processor)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Processor) {
		p.metrics = m
	}
}

// NewProcessor constructs a Processor.
func NewProcessor(checker kyc.Checker, selector *Selector, bus events.Bus, opts ...Option) *Processor {
	p := &Processor{checker: checker, selector: selector, bus: bus}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs the pipeline for one application: verification gate, then the
// product strategy, then the completion event. The first failure anywhere in
// the sequence terminates processing and is returned unchanged.
func (p *Processor) Process(ctx context.Context, app models.Application) models.ProcessingResult {
	started := time.Now()
	result := p.process(ctx, app)
	p.observe(app, result, time.Since(started))
	return result
}

func (p *Processor) process(ctx context.Context, app models.Application) models.ProcessingResult {
	kycResult, err := p.checker.PerformCheck(ctx, app.Applicant)
	if err != nil {
		if p.logger != nil {
			p.logger.ErrorContext(ctx, "kyc check failed",
				"application_id", app.ID.String(),
				"error", err,
			)
		}
		return models.Fail(models.NewError(models.CodeKycCheckFailed, models.DescriptionKycCheckFailed))
	}

	if !kycResult.IsVerified() {
		publish(ctx, p.bus, p.logger, p.metrics, events.VerificationFailed{
			At:            requestcontext.Now(ctx),
			ApplicationID: app.ID,
			ApplicantID:   app.Applicant.ID,
			ReportID:      kycResult.ReportID,
		})
		return models.Fail(models.NewError(models.CodeKycNotVerified, models.DescriptionKycNotVerified))
	}

	// Cancellation is honored at step boundaries only; calls already issued
	// are never undone.
	if err := ctx.Err(); err != nil {
		return models.Fail(models.NewError(models.CodeProcessingCancelled, models.DescriptionProcessingCancelled))
	}

	result := p.selector.Strategy(app.ProductCode).Process(ctx, app)
	if result.IsSuccess() {
		publish(ctx, p.bus, p.logger, p.metrics, events.ApplicationCompleted{
			At:            requestcontext.Now(ctx),
			ApplicationID: app.ID,
		})
	}
	return result
}

func (p *Processor) observe(app models.Application, result models.ProcessingResult, elapsed time.Duration) {
	if p.metrics == nil {
		return
	}
	outcome := "success"
	if !result.IsSuccess() {
		outcome = result.Error.Code
	}
	p.metrics.ObserveProcessed(app.ProductCode.String(), outcome, elapsed)
}
