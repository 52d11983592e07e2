package validation

import (
	"context"

	"onboard/internal/processing/models"
	"onboard/pkg/requestcontext"
)

const (
	minimumAge    = 18
	maximumAgeOne = 36
)

// ProductOneValidator enforces the first product's rule set: applicant age
// within [18, 36] inclusive.
type ProductOneValidator struct{}

func NewProductOneValidator() ProductOneValidator {
	return ProductOneValidator{}
}

func (ProductOneValidator) Validate(ctx context.Context, app models.Application) []Violation {
	var violations []Violation

	age := ageAt(app.Applicant.DateOfBirth, requestcontext.Now(ctx))
	if age < minimumAge || age > maximumAgeOne {
		violations = append(violations, Violation{
			Code:    models.CodeApplicantAgeInvalid,
			Message: models.DescriptionApplicantAgeInvalid,
		})
	}

	return violations
}
