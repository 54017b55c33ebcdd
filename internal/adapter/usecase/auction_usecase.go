package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"marketplace-ads/internal/core/domain"
	"marketplace-ads/internal/core/port"
)

var (
	errMissingTenant = errors.New("tenant id is required")
	errMissingBid    = errors.New("bid id and campaign id are required")
	errNegativeCPC   = errors.New("actual cpc must not be negative")
)

// AuctionUseCase implements the sponsored-placement auction engine. The
// auction computation is pure over a snapshot fetched per call: eligibility,
// matching, scoring, ranking and pricing hold no shared mutable state. All
// persistence is delegated to the injected repository; the optional signal
// cache fronts landing-page lookups and degrades to the repository on any
// miss or error.
type AuctionUseCase struct {
	repo    port.AuctionRepository
	signals port.SignalCache
}

// NewAuctionUseCase creates the engine. signals may be nil, in which case
// landing-page lookups always hit the repository.
func NewAuctionUseCase(repo port.AuctionRepository, signals port.SignalCache) *AuctionUseCase {
	return &AuctionUseCase{repo: repo, signals: signals}
}

// RunSearchAuction auctions search-sponsored bids against a query context.
func (u *AuctionUseCase) RunSearchAuction(ctx context.Context, actx domain.AuctionContext, numSlots int) ([]port.AuctionWinner, error) {
	if numSlots <= 0 {
		numSlots = port.DefaultSearchSlots
	}
	return u.runAuction(ctx, actx, domain.CampaignTypeSearch, numSlots)
}

// RunProductDisplayAuction auctions product-display bids on a product-detail
// view.
func (u *AuctionUseCase) RunProductDisplayAuction(ctx context.Context, actx domain.AuctionContext, numSlots int) ([]port.AuctionWinner, error) {
	if numSlots <= 0 {
		numSlots = port.DefaultDisplaySlots
	}
	return u.runAuction(ctx, actx, domain.CampaignTypeProductDisplay, numSlots)
}

// runAuction is the shared pipeline: eligibility filter -> target matcher ->
// quality scorer -> ranker -> second-price calculator. An empty winner list
// is the normal "no ads" outcome; only repository failures are errors.
func (u *AuctionUseCase) runAuction(ctx context.Context, actx domain.AuctionContext, campaignType domain.CampaignType, numSlots int) ([]port.AuctionWinner, error) {
	if actx.TenantID == "" {
		return nil, errMissingTenant
	}
	campaigns, err := u.repo.EligibleCampaigns(ctx, actx.TenantID, campaignType)
	if err != nil {
		return nil, err
	}
	campaigns = filterEligible(campaigns)

	var candidates []port.AuctionCandidate
	for _, camp := range campaigns {
		bids, err := u.repo.CampaignBids(ctx, camp.ID, actx.TenantID)
		if err != nil {
			return nil, err
		}
		for _, bid := range bids {
			if bid.Status != domain.BidStatusActive {
				continue
			}
			eligible, relevance := matchTarget(bid, actx)
			if !eligible {
				continue
			}
			stats, err := u.repo.BidStats(ctx, actx.TenantID, bid.ID)
			if err != nil {
				return nil, err
			}
			sig, err := u.landingSignals(ctx, actx.TenantID, bid.ProductID)
			if err != nil {
				return nil, err
			}
			quality := qualityScore(ctrScore(stats), relevance, landingPageScore(sig))
			candidates = append(candidates, port.AuctionCandidate{
				Bid:          bid,
				Campaign:     camp,
				Relevance:    relevance,
				QualityScore: quality,
				AdRank:       bid.MaxCPC * quality,
			})
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	rankCandidates(candidates)
	return priceWinners(candidates, numSlots), nil
}

// filterEligible keeps campaigns that are active and under their daily
// budget. Pure, no side effects.
func filterEligible(campaigns []domain.Campaign) []domain.Campaign {
	out := campaigns[:0]
	for _, c := range campaigns {
		if c.Status == domain.CampaignStatusActive && c.HasBudget() {
			out = append(out, c)
		}
	}
	return out
}

// landingSignals resolves product signals through the cache when one is
// configured. Cache errors fall back to the repository; repository errors
// propagate. A nil result means no signal data exists, which the scorer
// treats as neutral.
func (u *AuctionUseCase) landingSignals(ctx context.Context, tenantID, productID string) (*domain.ProductSignals, error) {
	if productID == "" {
		return nil, nil
	}
	if u.signals != nil {
		if sig, ok, err := u.signals.Get(ctx, tenantID, productID); err == nil && ok {
			return sig, nil
		}
	}
	sig, err := u.repo.LandingPageSignals(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	if sig != nil && u.signals != nil {
		// best effort: a failed cache write never fails the auction
		_ = u.signals.Set(ctx, *sig)
	}
	return sig, nil
}

// RecordImpression appends an impression event and bumps the bid's counter.
func (u *AuctionUseCase) RecordImpression(ctx context.Context, tenantID, bidID, campaignID string) error {
	ev, err := newEvent(tenantID, bidID, campaignID, domain.EventTypeImpression, 0)
	if err != nil {
		return err
	}
	return u.repo.RecordImpression(ctx, ev)
}

// RecordClick appends a click event and charges the owning campaign
// actualCPC. The repository performs the charge as one atomic increment; a
// campaign at its budget limit surfaces port.ErrInsufficientBudget.
func (u *AuctionUseCase) RecordClick(ctx context.Context, tenantID, bidID, campaignID string, actualCPC float64) error {
	if actualCPC < 0 {
		return errNegativeCPC
	}
	ev, err := newEvent(tenantID, bidID, campaignID, domain.EventTypeClick, actualCPC)
	if err != nil {
		return err
	}
	return u.repo.ChargeClick(ctx, ev)
}

// RecordConversion appends a conversion event with the attributed order
// value. Conversions never charge the campaign.
func (u *AuctionUseCase) RecordConversion(ctx context.Context, tenantID, bidID, campaignID string, orderValue float64) error {
	ev, err := newEvent(tenantID, bidID, campaignID, domain.EventTypeConversion, orderValue)
	if err != nil {
		return err
	}
	return u.repo.RecordConversion(ctx, ev)
}

// Stats returns aggregated event counts for the period.
func (u *AuctionUseCase) Stats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	if req.TenantID == "" {
		return nil, errMissingTenant
	}
	return u.repo.Stats(ctx, req)
}

func newEvent(tenantID, bidID, campaignID string, evType domain.EventType, amount float64) (domain.AdEvent, error) {
	if tenantID == "" {
		return domain.AdEvent{}, errMissingTenant
	}
	if bidID == "" || campaignID == "" {
		return domain.AdEvent{}, errMissingBid
	}
	return domain.AdEvent{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		BidID:      bidID,
		CampaignID: campaignID,
		Type:       evType,
		Amount:     amount,
	}, nil
}
