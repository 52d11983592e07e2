package processing

import (
	"context"
	"log/slog"

	"onboard/internal/administrator/two"
	"onboard/internal/events"
	"onboard/internal/processing/metrics"
	"onboard/internal/processing/models"
	"onboard/internal/processing/validation"
	"onboard/pkg/requestcontext"
)

// ProductTwoStrategy onboards through the second administrator: three
// fallible calls in sequence. There is no compensation when a later call
// fails after an earlier one created external state; the events already
// published are the durable record downstream consumers reconcile from, so an
// InvestorCreated followed by a failed result is an accepted inconsistency
// window, not a bug.
type ProductTwoStrategy struct {
	admin     two.Service
	validator validation.Validator
	bus       events.Bus
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

func NewProductTwoStrategy(admin two.Service, validator validation.Validator, bus events.Bus, opts ...StrategyOption) *ProductTwoStrategy {
	cfg := applyStrategyOptions(opts)
	return &ProductTwoStrategy{
		admin:     admin,
		validator: validator,
		bus:       bus,
		logger:    cfg.logger,
		metrics:   cfg.metrics,
	}
}

func (s *ProductTwoStrategy) Process(ctx context.Context, app models.Application) models.ProcessingResult {
	if violations := s.validator.Validate(ctx, app); len(violations) > 0 {
		return models.Fail(firstViolationError(violations))
	}

	// Nothing external exists yet, so a failure here emits no events.
	investorID, err := s.admin.CreateInvestor(ctx, app.Applicant)
	if err != nil {
		s.logStepFailure(ctx, app, "create investor", err)
		return models.Fail(models.NewError(models.CodeCreateInvestorFailed, models.DescriptionCreateInvestorFailed))
	}

	now := requestcontext.Now(ctx)
	publish(ctx, s.bus, s.logger, s.metrics, events.InvestorCreated{
		At:            now,
		ApplicationID: app.ID,
		ApplicantID:   app.Applicant.ID,
		InvestorID:    investorID,
	})

	if err := ctx.Err(); err != nil {
		return models.Fail(models.NewError(models.CodeProcessingCancelled, models.DescriptionProcessingCancelled))
	}

	accountID, err := s.admin.CreateAccount(ctx, investorID, app.ProductCode)
	if err != nil {
		// The investor now exists externally with no account. InvestorCreated
		// is already on the bus; that is the reconciliation record.
		s.logStepFailure(ctx, app, "create account", err)
		return models.Fail(models.NewError(models.CodeCreateAccountFailed, models.DescriptionCreateAccountFailed))
	}

	publish(ctx, s.bus, s.logger, s.metrics, events.AccountCreated{
		At:            now,
		ApplicationID: app.ID,
		InvestorID:    investorID,
		ProductCode:   app.ProductCode,
		AccountID:     accountID,
	})

	if err := ctx.Err(); err != nil {
		return models.Fail(models.NewError(models.CodeProcessingCancelled, models.DescriptionProcessingCancelled))
	}

	if _, err := s.admin.ProcessPayment(ctx, accountID, app.Payment); err != nil {
		// Account and investor stand; AccountCreated is not retracted.
		s.logStepFailure(ctx, app, "process payment", err)
		return models.Fail(models.NewError(models.CodePaymentFailed, models.DescriptionPaymentFailed))
	}

	return models.Succeed(models.InvestorAccount{Administrator: models.AdministratorTwo})
}

func (s *ProductTwoStrategy) logStepFailure(ctx context.Context, app models.Application, step string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.ErrorContext(ctx, "administrator two step failed",
		"application_id", app.ID.String(),
		"step", step,
		"error", err,
	)
}
