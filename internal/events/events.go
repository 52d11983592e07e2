// Package events defines the domain events the onboarding pipeline publishes
// and the Bus they are published through. Events are immutable facts recorded
// after an external side effect has happened; downstream consumers use them to
// reconcile state in the administrator back-ends, so they are never retracted.
package events

import (
	"time"

	"onboard/pkg/domain"
)

// Event is the common shape of every domain event.
type Event interface {
	// EventName is the stable, dot-separated event identifier.
	EventName() string
	// OccurredAt is when the underlying side effect happened.
	OccurredAt() time.Time
	// AggregateKey groups related events for partitioning and lookup.
	AggregateKey() string
}

// VerificationFailed is published when the identity check rejects an
// applicant. ReportID correlates with the verification provider's case file.
type VerificationFailed struct {
	At            time.Time            `json:"at"`
	ApplicationID domain.ApplicationID `json:"application_id"`
	ApplicantID   domain.ApplicantID   `json:"applicant_id"`
	ReportID      domain.ReportID      `json:"report_id"`
}

func (e VerificationFailed) EventName() string     { return "application.verification_failed" }
func (e VerificationFailed) OccurredAt() time.Time { return e.At }
func (e VerificationFailed) AggregateKey() string  { return e.ApplicationID.String() }

// InvestorCreated is published once an administrator back-end has durably
// created the investor. It is the record downstream consumers reconcile
// against when a later step fails.
type InvestorCreated struct {
	At            time.Time            `json:"at"`
	ApplicationID domain.ApplicationID `json:"application_id"`
	ApplicantID   domain.ApplicantID   `json:"applicant_id"`
	InvestorID    domain.InvestorID    `json:"investor_id"`
}

func (e InvestorCreated) EventName() string     { return "investor.created" }
func (e InvestorCreated) OccurredAt() time.Time { return e.At }
func (e InvestorCreated) AggregateKey() string  { return e.ApplicationID.String() }

// AccountCreated is published once an account exists for the investor.
type AccountCreated struct {
	At            time.Time            `json:"at"`
	ApplicationID domain.ApplicationID `json:"application_id"`
	InvestorID    domain.InvestorID    `json:"investor_id"`
	ProductCode   domain.ProductCode   `json:"product_code"`
	AccountID     domain.AccountID     `json:"account_id"`
}

func (e AccountCreated) EventName() string     { return "account.created" }
func (e AccountCreated) OccurredAt() time.Time { return e.At }
func (e AccountCreated) AggregateKey() string  { return e.ApplicationID.String() }

// ApplicationCompleted is published when the whole pipeline succeeded.
type ApplicationCompleted struct {
	At            time.Time            `json:"at"`
	ApplicationID domain.ApplicationID `json:"application_id"`
}

func (e ApplicationCompleted) EventName() string     { return "application.completed" }
func (e ApplicationCompleted) OccurredAt() time.Time { return e.At }
func (e ApplicationCompleted) AggregateKey() string  { return e.ApplicationID.String() }
