package store

import (
	"context"
	"sync"
	"time"

	"onboard/pkg/domain"
)

type cachedResult struct {
	payload  []byte
	storedAt time.Time
}

// InMemoryCache provides an in-memory cache for verification results with TTL
// expiration.
type InMemoryCache struct {
	mu       sync.RWMutex
	results  map[domain.ApplicantID]cachedResult
	cacheTTL time.Duration
}

// NewInMemoryCache creates a new in-memory cache with the specified TTL.
func NewInMemoryCache(cacheTTL time.Duration) *InMemoryCache {
	return &InMemoryCache{
		results:  make(map[domain.ApplicantID]cachedResult),
		cacheTTL: cacheTTL,
	}
}

// Find retrieves a cached result by applicant id.
// Returns ErrNotFound if the entry does not exist or has expired past the TTL.
func (c *InMemoryCache) Find(_ context.Context, applicantID domain.ApplicantID) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if cached, ok := c.results[applicantID]; ok {
		if time.Since(cached.storedAt) < c.cacheTTL {
			return cached.payload, nil
		}
	}
	return nil, ErrNotFound
}

// Save stores an encoded result, keyed by applicant id.
func (c *InMemoryCache) Save(_ context.Context, applicantID domain.ApplicantID, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[applicantID] = cachedResult{payload: payload, storedAt: time.Now()}
	return nil
}
