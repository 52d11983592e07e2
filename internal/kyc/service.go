package kyc

import (
	"context"
	"time"

	"onboard/pkg/domain"
)

// Service is the default identity-check provider. The real provider sits
// behind an external API; this implementation verifies everyone after a
// configurable latency so local runs still exercise realistic call timing.
type Service struct {
	Latency time.Duration
}

func NewService(latency time.Duration) *Service {
	return &Service{Latency: latency}
}

func (s *Service) PerformCheck(ctx context.Context, _ domain.Applicant) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-time.After(s.Latency):
	}
	return Verified(), nil
}
