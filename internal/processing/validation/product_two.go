package validation

import (
	"context"

	"onboard/internal/processing/models"
	"onboard/pkg/requestcontext"
)

// minimumPaymentMinorUnits is £0.99 in minor units.
const minimumPaymentMinorUnits = 99

// ProductTwoValidator enforces the second product's rule set: applicant at
// least 18 (no upper bound) and a payment of at least £0.99. The age rule is
// declared first, so it wins when both fail.
type ProductTwoValidator struct{}

func NewProductTwoValidator() ProductTwoValidator {
	return ProductTwoValidator{}
}

func (ProductTwoValidator) Validate(ctx context.Context, app models.Application) []Violation {
	var violations []Violation

	age := ageAt(app.Applicant.DateOfBirth, requestcontext.Now(ctx))
	if age < minimumAge {
		violations = append(violations, Violation{
			Code:    models.CodeApplicantAgeInvalid,
			Message: models.DescriptionApplicantAgeInvalid,
		})
	}

	if app.Payment.Amount.MinorUnits < minimumPaymentMinorUnits {
		violations = append(violations, Violation{
			Code:    models.CodePaymentAmountInvalid,
			Message: models.DescriptionPaymentAmountInvalid,
		})
	}

	return violations
}
