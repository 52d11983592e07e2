package processing

import (
	"context"
	"log/slog"

	"onboard/internal/administrator/one"
	"onboard/internal/events"
	"onboard/internal/processing/metrics"
	"onboard/internal/processing/models"
	"onboard/internal/processing/validation"
	"onboard/pkg/requestcontext"
)

// ProductOneStrategy onboards through the first administrator: one
// synchronous call creates investor and account together, so there is no
// partial-failure window.
type ProductOneStrategy struct {
	admin     one.Service
	validator validation.Validator
	bus       events.Bus
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

func NewProductOneStrategy(admin one.Service, validator validation.Validator, bus events.Bus, opts ...StrategyOption) *ProductOneStrategy {
	cfg := applyStrategyOptions(opts)
	return &ProductOneStrategy{
		admin:     admin,
		validator: validator,
		bus:       bus,
		logger:    cfg.logger,
		metrics:   cfg.metrics,
	}
}

func (s *ProductOneStrategy) Process(ctx context.Context, app models.Application) models.ProcessingResult {
	if violations := s.validator.Validate(ctx, app); len(violations) > 0 {
		return models.Fail(firstViolationError(violations))
	}

	resp, err := s.admin.CreateInvestor(ctx, one.CreateInvestorRequest{
		ApplicantID: app.Applicant.ID,
		FullName:    app.Applicant.FullName,
		DateOfBirth: app.Applicant.DateOfBirth,
		ProductCode: app.ProductCode,
		Payment:     app.Payment,
	})
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "administrator one create investor failed",
				"application_id", app.ID.String(),
				"error", err,
			)
		}
		return models.Fail(models.NewError(models.CodeAdministratorCreateFailed, models.DescriptionAdministratorCreateFailed))
	}

	now := requestcontext.Now(ctx)
	publish(ctx, s.bus, s.logger, s.metrics, events.InvestorCreated{
		At:            now,
		ApplicationID: app.ID,
		ApplicantID:   app.Applicant.ID,
		InvestorID:    resp.InvestorID,
	})
	publish(ctx, s.bus, s.logger, s.metrics, events.AccountCreated{
		At:            now,
		ApplicationID: app.ID,
		InvestorID:    resp.InvestorID,
		ProductCode:   app.ProductCode,
		AccountID:     resp.AccountID,
	})

	return models.Succeed(models.InvestorAccount{Administrator: models.AdministratorOne})
}
