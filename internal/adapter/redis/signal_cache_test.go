package redisadapter

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"marketplace-ads/internal/core/domain"
)

func newTestCache(t *testing.T) (*SignalCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSignalCache(client, time.Minute), mr
}

func TestSignalCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	sig := domain.ProductSignals{
		ProductID:    "FSIN-1",
		TenantID:     "t1",
		Rating:       4.5,
		TotalReviews: 120,
	}
	require.NoError(t, cache.Set(ctx, sig))

	got, ok, err := cache.Get(ctx, "t1", "FSIN-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, sig, *got)
}

func TestSignalCacheMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	got, ok, err := cache.Get(context.Background(), "t1", "missing")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, got)
}

func TestSignalCacheTenantScoping(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, domain.ProductSignals{ProductID: "FSIN-1", TenantID: "t1", Rating: 5}))

	_, ok, err := cache.Get(ctx, "t2", "FSIN-1")
	require.NoError(t, err)
	require.False(t, ok, "tenant t2 must not see tenant t1 entries")
}

func TestSignalCacheInvalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, domain.ProductSignals{ProductID: "FSIN-1", TenantID: "t1", Rating: 3}))
	require.NoError(t, cache.Invalidate(ctx, "t1", "FSIN-1"))

	_, ok, err := cache.Get(ctx, "t1", "FSIN-1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSignalCacheExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, domain.ProductSignals{ProductID: "FSIN-1", TenantID: "t1", Rating: 4}))
	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, "t1", "FSIN-1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSignalCacheCorruptPayload(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(signalKey("t1", "FSIN-1"), "{not json"))

	got, ok, err := cache.Get(ctx, "t1", "FSIN-1")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, got)
}
