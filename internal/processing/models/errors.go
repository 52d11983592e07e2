package models

// SystemName tags every pipeline error so downstream systems can attribute it.
const SystemName = "onboarding"

// Stable error codes and descriptions. Callers and downstream systems match
// on these strings; do not reword without a contract change.
const (
	CodeKycNotVerified        = "Kyc.NotVerified"
	DescriptionKycNotVerified = "Only users that have been verified can be processed."

	CodeKycCheckFailed        = "Kyc.CheckFailed"
	DescriptionKycCheckFailed = "The identity verification service could not complete the check."

	CodeApplicantAgeInvalid = "Applicant.AgeInvalid"
	// The description is shared across products even though the second
	// product has no upper bound. Contractual; see the message catalog note
	// in DESIGN.md before changing it.
	DescriptionApplicantAgeInvalid = "Applicant's age must be between 18 and 36 years."

	CodePaymentAmountInvalid        = "Payment.AmountInvalid"
	DescriptionPaymentAmountInvalid = "The minimum payment is £0.99."

	CodeAdministratorCreateFailed        = "Administrator.CreateFailed"
	DescriptionAdministratorCreateFailed = "The administrator could not create the investor and account."

	CodeCreateInvestorFailed        = "Administrator.CreateInvestorFailed"
	DescriptionCreateInvestorFailed = "The administrator could not create the investor."

	CodeCreateAccountFailed        = "Administrator.CreateAccountFailed"
	DescriptionCreateAccountFailed = "The administrator could not create the account."

	CodePaymentFailed        = "Administrator.PaymentFailed"
	DescriptionPaymentFailed = "The administrator could not process the payment."

	CodeProcessingCancelled        = "Processing.Cancelled"
	DescriptionProcessingCancelled = "Processing was cancelled before completion."
)

// NewError builds a pipeline Error carrying the service's system tag.
func NewError(code, description string) Error {
	return Error{System: SystemName, Code: code, Description: description}
}
