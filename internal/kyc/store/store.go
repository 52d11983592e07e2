// Package store provides caches for verification results keyed by applicant.
// Entries expire after a TTL; verification outcomes go stale and must be
// re-checked.
package store

import (
	"context"
	"errors"

	"onboard/pkg/domain"
)

// ErrNotFound is returned when no fresh entry exists for an applicant.
var ErrNotFound = errors.New("not found")

// Cache stores encoded verification results.
type Cache interface {
	Find(ctx context.Context, applicantID domain.ApplicantID) ([]byte, error)
	Save(ctx context.Context, applicantID domain.ApplicantID, payload []byte) error
}
