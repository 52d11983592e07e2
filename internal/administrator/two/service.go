// Package two is the client surface for the second administrator back-end.
// Unlike the first, it splits onboarding into three fallible calls: investor,
// then account, then payment.
package two

import (
	"context"
	"time"

	"github.com/google/uuid"

	"onboard/pkg/domain"
)

// PaymentReceipt acknowledges a processed payment.
type PaymentReceipt struct {
	PaymentRef  string
	ProcessedAt time.Time
}

// Service is the administrator contract the strategy depends on. Each call
// can fail independently; the caller owns the partial-failure semantics.
type Service interface {
	CreateInvestor(ctx context.Context, applicant domain.Applicant) (domain.InvestorID, error)
	CreateAccount(ctx context.Context, investorID domain.InvestorID, productCode domain.ProductCode) (domain.AccountID, error)
	ProcessPayment(ctx context.Context, accountID domain.AccountID, payment domain.Payment) (PaymentReceipt, error)
}

// MockService returns deterministic responses after a configurable latency,
// mimicking real-world call timing. Used for local wiring until the real
// back-end client lands.
type MockService struct {
	Latency time.Duration
}

func (s MockService) CreateInvestor(ctx context.Context, _ domain.Applicant) (domain.InvestorID, error) {
	if err := s.wait(ctx); err != nil {
		return domain.InvestorID{}, err
	}
	return domain.InvestorID(uuid.New()), nil
}

func (s MockService) CreateAccount(ctx context.Context, _ domain.InvestorID, _ domain.ProductCode) (domain.AccountID, error) {
	if err := s.wait(ctx); err != nil {
		return domain.AccountID{}, err
	}
	return domain.AccountID(uuid.New()), nil
}

func (s MockService) ProcessPayment(ctx context.Context, accountID domain.AccountID, _ domain.Payment) (PaymentReceipt, error) {
	if err := s.wait(ctx); err != nil {
		return PaymentReceipt{}, err
	}
	return PaymentReceipt{
		PaymentRef:  "PAY-" + accountID.String()[:8],
		ProcessedAt: time.Now(),
	}, nil
}

func (s MockService) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.Latency):
		return nil
	}
}
