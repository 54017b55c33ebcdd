package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"marketplace-ads/internal/core/domain"
)

// SignalCache is a Redis-backed implementation of port.SignalCache. Entries
// are JSON-encoded ProductSignals under tenant-scoped keys and expire after
// the configured TTL. It replaces the ad-hoc in-process TTL maps of earlier
// revisions with an explicit, injectable component.
type SignalCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSignalCache creates a cache with the given TTL. A non-positive TTL
// falls back to five minutes.
func NewSignalCache(client *redis.Client, ttl time.Duration) *SignalCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SignalCache{client: client, ttl: ttl}
}

func signalKey(tenantID, productID string) string {
	return fmt.Sprintf("signals:%s:%s", tenantID, productID)
}

// Get returns the cached signals and true on a hit. A missing key is a plain
// miss, not an error; corrupt payloads are dropped and reported as a miss.
func (c *SignalCache) Get(ctx context.Context, tenantID, productID string) (*domain.ProductSignals, bool, error) {
	raw, err := c.client.Get(ctx, signalKey(tenantID, productID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var sig domain.ProductSignals
	if err := json.Unmarshal([]byte(raw), &sig); err != nil {
		_ = c.client.Del(ctx, signalKey(tenantID, productID)).Err()
		return nil, false, nil
	}
	return &sig, true, nil
}

// Set stores signals under the cache TTL.
func (c *SignalCache) Set(ctx context.Context, sig domain.ProductSignals) error {
	raw, err := json.Marshal(sig)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, signalKey(sig.TenantID, sig.ProductID), raw, c.ttl).Err()
}

// Invalidate drops the cached entry, e.g. after a product's reviews change.
func (c *SignalCache) Invalidate(ctx context.Context, tenantID, productID string) error {
	return c.client.Del(ctx, signalKey(tenantID, productID)).Err()
}
