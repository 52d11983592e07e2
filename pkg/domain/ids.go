package domain

import (
	"github.com/google/uuid"

	dErrors "onboard/pkg/domain-errors"
)

// Typed UUID wrappers keep the many identifiers flowing through the pipeline
// from being swapped by accident. Construct via the Parse functions at trust
// boundaries; direct casting bypasses validation.
type (
	// ApplicationID identifies one onboarding attempt.
	ApplicationID uuid.UUID

	// ApplicantID identifies the person applying.
	ApplicantID uuid.UUID

	// InvestorID identifies an investor created in an administrator back-end.
	InvestorID uuid.UUID

	// AccountID identifies an account created in an administrator back-end.
	AccountID uuid.UUID

	// ReportID correlates a failed verification with the provider's case file.
	ReportID uuid.UUID
)

func parseUUID(raw, what string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, what+" cannot be empty")
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, what+" must be a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, what+" cannot be the nil UUID")
	}
	return u, nil
}

func ParseApplicationID(raw string) (ApplicationID, error) {
	u, err := parseUUID(raw, "application id")
	return ApplicationID(u), err
}

func ParseApplicantID(raw string) (ApplicantID, error) {
	u, err := parseUUID(raw, "applicant id")
	return ApplicantID(u), err
}

func ParseInvestorID(raw string) (InvestorID, error) {
	u, err := parseUUID(raw, "investor id")
	return InvestorID(u), err
}

func ParseAccountID(raw string) (AccountID, error) {
	u, err := parseUUID(raw, "account id")
	return AccountID(u), err
}

func (id ApplicationID) String() string { return uuid.UUID(id).String() }
func (id ApplicantID) String() string   { return uuid.UUID(id).String() }
func (id InvestorID) String() string    { return uuid.UUID(id).String() }
func (id AccountID) String() string     { return uuid.UUID(id).String() }
func (id ReportID) String() string      { return uuid.UUID(id).String() }

func (id ApplicationID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }
func (id ApplicantID) IsZero() bool   { return uuid.UUID(id) == uuid.Nil }
func (id InvestorID) IsZero() bool    { return uuid.UUID(id) == uuid.Nil }
func (id AccountID) IsZero() bool     { return uuid.UUID(id) == uuid.Nil }
func (id ReportID) IsZero() bool      { return uuid.UUID(id) == uuid.Nil }

// MarshalText/UnmarshalText keep the wrappers JSON-friendly: events and API
// payloads carry the canonical UUID string, not a byte array.

func (id ApplicationID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id ApplicantID) MarshalText() ([]byte, error)   { return []byte(id.String()), nil }
func (id InvestorID) MarshalText() ([]byte, error)    { return []byte(id.String()), nil }
func (id AccountID) MarshalText() ([]byte, error)     { return []byte(id.String()), nil }
func (id ReportID) MarshalText() ([]byte, error)      { return []byte(id.String()), nil }

func (id *ApplicationID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	*id = ApplicationID(u)
	return err
}

func (id *ApplicantID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	*id = ApplicantID(u)
	return err
}

func (id *InvestorID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	*id = InvestorID(u)
	return err
}

func (id *AccountID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	*id = AccountID(u)
	return err
}

func (id *ReportID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	*id = ReportID(u)
	return err
}
