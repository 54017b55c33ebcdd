package port

import (
	"context"

	"marketplace-ads/internal/core/domain"
)

// Default slot counts per auction surface.
const (
	DefaultSearchSlots  = 3
	DefaultDisplaySlots = 2
)

// AuctionUseCase defines the business operations of the sponsored-placement
// engine. This is the primary port into the application domain; mock
// implementations can be generated from it for testing.
type AuctionUseCase interface {
	// RunSearchAuction selects up to numSlots winners among search-sponsored
	// bids matching the query context and prices each winner with the
	// generalized second-price rule. numSlots <= 0 selects the default. An
	// empty winner list is the normal "no ads to show" outcome, not an error.
	RunSearchAuction(ctx context.Context, actx domain.AuctionContext, numSlots int) ([]AuctionWinner, error)

	// RunProductDisplayAuction is RunSearchAuction for the product-detail
	// surface: it auctions product-display bids against the viewed product
	// and its category.
	RunProductDisplayAuction(ctx context.Context, actx domain.AuctionContext, numSlots int) ([]AuctionWinner, error)

	// RecordImpression persists an impression event for a served winner.
	RecordImpression(ctx context.Context, tenantID, bidID, campaignID string) error

	// RecordClick persists a click event and charges the owning campaign
	// actualCPC. Budget exhaustion surfaces as ErrInsufficientBudget;
	// persistence failures propagate, never swallowed.
	RecordClick(ctx context.Context, tenantID, bidID, campaignID string, actualCPC float64) error

	// RecordConversion persists a conversion event with the attributed order
	// value. Conversions do not charge.
	RecordConversion(ctx context.Context, tenantID, bidID, campaignID string, orderValue float64) error

	// Stats returns aggregated event counts for the period.
	Stats(ctx context.Context, req StatsReq) (*StatsResp, error)
}
