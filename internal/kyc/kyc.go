// Package kyc is the verification gate in front of the onboarding pipeline.
// No administrator back-end may be called for an applicant that has not
// passed the identity check.
package kyc

import (
	"context"

	"onboard/pkg/domain"
	dErrors "onboard/pkg/domain-errors"
)

// Status is the outcome of an identity check.
type Status string

const (
	StatusVerified    Status = "verified"
	StatusNotVerified Status = "not_verified"
)

// Result pairs a status with the provider's report id.
// Invariant: ReportID is present if and only if the status is NotVerified.
type Result struct {
	Status   Status          `json:"status"`
	ReportID domain.ReportID `json:"report_id,omitzero"`
}

// Verified constructs a passing result.
func Verified() Result {
	return Result{Status: StatusVerified}
}

// NotVerified constructs a failing result correlated to a provider report.
func NotVerified(reportID domain.ReportID) Result {
	return Result{Status: StatusNotVerified, ReportID: reportID}
}

// IsVerified reports whether the applicant passed the check.
func (r Result) IsVerified() bool {
	return r.Status == StatusVerified
}

// Validate enforces the report-id invariant. Providers and caches call it
// before handing a result to the pipeline.
func (r Result) Validate() error {
	switch r.Status {
	case StatusVerified:
		if !r.ReportID.IsZero() {
			return dErrors.New(dErrors.CodeInvariantViolation, "verified result must not carry a report id")
		}
	case StatusNotVerified:
		if r.ReportID.IsZero() {
			return dErrors.New(dErrors.CodeInvariantViolation, "not-verified result must carry a report id")
		}
	default:
		return dErrors.New(dErrors.CodeInvariantViolation, "unknown verification status")
	}
	return nil
}

// Checker performs the identity check against the external provider.
type Checker interface {
	PerformCheck(ctx context.Context, applicant domain.Applicant) (Result, error)
}
