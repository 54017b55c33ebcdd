package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"marketplace-ads/internal/core/port"
)

// monetaryPrecision is the number of decimal places of one minor currency
// unit. All cleared prices are rounded to this precision.
const monetaryPrecision = 2

// priceIncrement is the epsilon added on top of the minimum rank-preserving
// price in the generalized second-price rule.
const priceIncrement = 0.01

// rankCandidates orders candidates by Ad Rank descending. The sort is stable:
// candidates with equal Ad Rank keep their input order. That tie-break is
// deterministic but carries no business meaning.
func rankCandidates(candidates []port.AuctionCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].AdRank > candidates[j].AdRank
	})
}

// priceWinners applies the generalized second-price rule to ranked
// candidates and returns up to numSlots winners. Winner i pays the minimum
// price that preserves its rank over candidate i+1, plus one increment,
// capped at its own MaxCPC; the last candidate overall has no competitor and
// pays its full bid. Fewer eligible candidates than slots yield fewer
// winners, never padding.
func priceWinners(candidates []port.AuctionCandidate, numSlots int) []port.AuctionWinner {
	n := numSlots
	if n > len(candidates) {
		n = len(candidates)
	}
	winners := make([]port.AuctionWinner, 0, n)
	for i := 0; i < n; i++ {
		c := candidates[i]
		price := c.Bid.MaxCPC
		if i+1 < len(candidates) {
			next := candidates[i+1]
			price = next.AdRank/c.QualityScore + priceIncrement
		}
		winners = append(winners, port.AuctionWinner{
			BidID:        c.Bid.ID,
			CampaignID:   c.Campaign.ID,
			ProductID:    c.Bid.ProductID,
			Position:     i + 1,
			ActualCPC:    clampPrice(price, c.Bid.MaxCPC),
			QualityScore: c.QualityScore,
			AdRank:       c.AdRank,
		})
	}
	return winners
}

// clampPrice rounds a raw price to monetary precision and clamps it into
// [0, maxBid]. Decimal arithmetic avoids float drift at the money boundary.
func clampPrice(price, maxBid float64) float64 {
	d := decimal.NewFromFloat(price).Round(monetaryPrecision)
	ceiling := decimal.NewFromFloat(maxBid).Round(monetaryPrecision)
	if d.GreaterThan(ceiling) {
		d = ceiling
	}
	if d.IsNegative() {
		d = decimal.Zero
	}
	f, _ := d.Float64()
	return f
}
