package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// QuoteCache implements ports.QuoteCache. Keys are stored as given
// (domain.QuoteCacheKey already namespaces them) and expire with Redis TTLs,
// so a quote past its lifetime is simply absent.
type QuoteCache struct {
	client goredis.UniversalClient
}

// NewQuoteCache creates a Redis-backed quote cache.
func NewQuoteCache(client goredis.UniversalClient) *QuoteCache {
	return &QuoteCache{client: client}
}

// Get returns the stored value, or nil, nil when the key is absent or expired.
func (c *QuoteCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis quote get: %w", err)
	}
	return val, nil
}

// Set stores value under key for ttl. A non-positive ttl is refused so a
// quote can never be stored without an expiry.
func (c *QuoteCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("redis quote set: ttl must be positive, got %s", ttl)
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis quote set: %w", err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (c *QuoteCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis quote delete: %w", err)
	}
	return nil
}
