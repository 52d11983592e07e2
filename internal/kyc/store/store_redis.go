package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"onboard/pkg/domain"
)

// RedisCache stores verification results in Redis with a TTL, so every
// instance of the service shares one cache.
type RedisCache struct {
	client   *redis.Client
	cacheTTL time.Duration
}

func NewRedisCache(client *redis.Client, cacheTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, cacheTTL: cacheTTL}
}

func cacheKey(applicantID domain.ApplicantID) string {
	return "kyc:result:" + applicantID.String()
}

func (c *RedisCache) Find(ctx context.Context, applicantID domain.ApplicantID) ([]byte, error) {
	payload, err := c.client.Get(ctx, cacheKey(applicantID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find kyc result: %w", err)
	}
	return payload, nil
}

func (c *RedisCache) Save(ctx context.Context, applicantID domain.ApplicantID, payload []byte) error {
	if err := c.client.Set(ctx, cacheKey(applicantID), payload, c.cacheTTL).Err(); err != nil {
		return fmt.Errorf("save kyc result: %w", err)
	}
	return nil
}
