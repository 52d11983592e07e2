package kyc

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"onboard/internal/kyc/store"
	"onboard/pkg/domain"
)

// CachedChecker wraps a Checker with a result cache so repeated submissions
// for the same applicant do not hammer the verification provider. Cache
// failures degrade to a direct provider call; they never block the pipeline.
type CachedChecker struct {
	next   Checker
	cache  store.Cache
	logger *slog.Logger
}

func NewCachedChecker(next Checker, cache store.Cache, logger *slog.Logger) *CachedChecker {
	return &CachedChecker{next: next, cache: cache, logger: logger}
}

func (c *CachedChecker) PerformCheck(ctx context.Context, applicant domain.Applicant) (Result, error) {
	payload, err := c.cache.Find(ctx, applicant.ID)
	if err == nil {
		var result Result
		if decodeErr := json.Unmarshal(payload, &result); decodeErr == nil && result.Validate() == nil {
			return result, nil
		}
		// A corrupt entry falls through to the provider and gets overwritten.
	} else if !errors.Is(err, store.ErrNotFound) {
		c.warn(ctx, "kyc cache lookup failed", applicant.ID, err)
	}

	result, err := c.next.PerformCheck(ctx, applicant)
	if err != nil {
		return Result{}, err
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return result, nil
	}
	if saveErr := c.cache.Save(ctx, applicant.ID, encoded); saveErr != nil {
		c.warn(ctx, "kyc cache save failed", applicant.ID, saveErr)
	}
	return result, nil
}

func (c *CachedChecker) warn(ctx context.Context, msg string, applicantID domain.ApplicantID, err error) {
	if c.logger == nil {
		return
	}
	c.logger.WarnContext(ctx, msg,
		"applicant_id", applicantID.String(),
		"error", err,
	)
}
