package port

import (
	"context"
	"errors"
	"time"

	"marketplace-ads/internal/core/domain"
)

// ErrInsufficientBudget is returned by ChargeClick when the campaign's daily
// budget is already exhausted at charge time.
var ErrInsufficientBudget = errors.New("insufficient budget")

// AuctionRepository defines the persistence layer consumed by the auction
// engine. It is an outbound port in hexagonal architecture. Implementations
// must be concurrency-safe; the spend increment in ChargeClick must be a
// single atomic counter operation so that concurrent clicks cannot race a
// campaign past its daily budget. Every method is tenant-scoped.
type AuctionRepository interface {
	// EligibleCampaigns returns the tenant's campaigns of the given type that
	// are active and have daily budget remaining. Results are a fresh read;
	// implementations must not cache spent_today across calls.
	EligibleCampaigns(ctx context.Context, tenantID string, campaignType domain.CampaignType) ([]domain.Campaign, error)
	// CampaignBids returns all bids of a campaign within the tenant scope.
	CampaignBids(ctx context.Context, campaignID, tenantID string) ([]domain.Bid, error)
	// BidStats returns the aggregate counters for a bid. Bids without history
	// yield a zero-valued BidStats, not an error.
	BidStats(ctx context.Context, tenantID, bidID string) (domain.BidStats, error)
	// LandingPageSignals returns rating and review volume for a product, or
	// nil when no signal data exists.
	LandingPageSignals(ctx context.Context, tenantID, productID string) (*domain.ProductSignals, error)

	// RecordImpression appends an impression event and increments the bid's
	// impression counter.
	RecordImpression(ctx context.Context, ev domain.AdEvent) error
	// ChargeClick appends a click event, increments the bid's click counter
	// and spend, and increments the owning campaign's spent_today by
	// ev.Amount in one transaction. Returns ErrInsufficientBudget when the
	// campaign has no budget left.
	ChargeClick(ctx context.Context, ev domain.AdEvent) error
	// RecordConversion appends a conversion event carrying the attributed
	// order value and increments the bid's conversion counter. It never
	// charges the campaign.
	RecordConversion(ctx context.Context, ev domain.AdEvent) error

	// Stats returns aggregated event counts and click spend for a period.
	Stats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// AuctionCandidate pairs a bid with its owning campaign and the scores
// computed for one auction invocation. It exists only for the duration of a
// single auction call and is never persisted.
type AuctionCandidate struct {
	Bid          domain.Bid
	Campaign     domain.Campaign
	Relevance    float64
	QualityScore float64
	AdRank       float64
}

// AuctionWinner is one slot of an auction result. ActualCPC is the cleared
// second price: it may be less than, but never more than, the bid's MaxCPC.
type AuctionWinner struct {
	BidID        string  `json:"bid_id"`
	CampaignID   string  `json:"campaign_id"`
	ProductID    string  `json:"product_id"`
	Position     int     `json:"position"`
	ActualCPC    float64 `json:"actual_cpc"`
	QualityScore float64 `json:"quality_score"`
	AdRank       float64 `json:"ad_rank"`
}

// StatsReq selects the aggregation window. TenantID is mandatory; CampaignID
// narrows the aggregation to one campaign when set.
type StatsReq struct {
	TenantID   string
	From       time.Time
	To         time.Time
	CampaignID *string
}

// StatsResp contains aggregated event counts and total click spend in
// currency units.
type StatsResp struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Spend       float64 `json:"spend"`
}
