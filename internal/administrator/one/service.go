// Package one is the client surface for the first administrator back-end,
// which exposes a single synchronous call that creates the investor and the
// account together.
package one

import (
	"context"
	"time"

	"github.com/google/uuid"

	"onboard/pkg/domain"
)

// CreateInvestorRequest carries the applicant and funding details the
// back-end needs to open an investor record with an account.
type CreateInvestorRequest struct {
	ApplicantID domain.ApplicantID
	FullName    string
	DateOfBirth time.Time
	ProductCode domain.ProductCode
	Payment     domain.Payment
}

// CreateInvestorResponse returns the identifiers minted by the back-end.
type CreateInvestorResponse struct {
	InvestorID domain.InvestorID
	AccountID  domain.AccountID
	Reference  string
}

// Service is the administrator contract the strategy depends on.
type Service interface {
	CreateInvestor(ctx context.Context, req CreateInvestorRequest) (CreateInvestorResponse, error)
}

// MockService returns deterministic responses after a configurable latency,
// mimicking real-world call timing. Used for local wiring until the real
// back-end client lands.
type MockService struct {
	Latency time.Duration
}

func (s MockService) CreateInvestor(ctx context.Context, req CreateInvestorRequest) (CreateInvestorResponse, error) {
	select {
	case <-ctx.Done():
		return CreateInvestorResponse{}, ctx.Err()
	case <-time.After(s.Latency):
	}
	return CreateInvestorResponse{
		InvestorID: domain.InvestorID(uuid.New()),
		AccountID:  domain.AccountID(uuid.New()),
		Reference:  "ADM1-" + req.ApplicantID.String()[:8],
	}, nil
}
