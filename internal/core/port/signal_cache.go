package port

import (
	"context"

	"marketplace-ads/internal/core/domain"
)

// SignalCache is an injectable read-through cache for landing-page signals.
// Entries expire by TTL (configured on the implementation) and can be
// invalidated explicitly when a product's reviews change. Cache errors must
// never fail an auction; callers fall back to the repository on any miss or
// error. Only present signals are cached — absence is not a cacheable result,
// so a product that gains its first reviews is picked up on the next fetch.
type SignalCache interface {
	// Get returns the cached signals and true on a hit; (nil, false) on a
	// miss.
	Get(ctx context.Context, tenantID, productID string) (*domain.ProductSignals, bool, error)
	// Set stores signals under the implementation's TTL.
	Set(ctx context.Context, sig domain.ProductSignals) error
	// Invalidate drops the cached entry for a product.
	Invalidate(ctx context.Context, tenantID, productID string) error
}
