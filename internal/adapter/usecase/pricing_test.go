package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-ads/internal/core/domain"
	"marketplace-ads/internal/core/port"
)

func candidate(bidID string, maxCPC, quality float64) port.AuctionCandidate {
	return port.AuctionCandidate{
		Bid:          domain.Bid{ID: bidID, MaxCPC: maxCPC, ProductID: "FSIN-" + bidID},
		Campaign:     domain.Campaign{ID: "c-" + bidID},
		QualityScore: quality,
		AdRank:       maxCPC * quality,
	}
}

// Two exact-match bids on "drill": A max=2.00 quality=8 (rank 16),
// B max=3.00 quality=4 (rank 12). A wins slot 1 and pays
// min(2.00, 12/8 + 0.01) = 1.51.
func TestSecondPriceTwoBidders(t *testing.T) {
	cands := []port.AuctionCandidate{
		candidate("a", 2.00, 8),
		candidate("b", 3.00, 4),
	}
	rankCandidates(cands)
	winners := priceWinners(cands, 1)

	require.Len(t, winners, 1)
	assert.Equal(t, "a", winners[0].BidID)
	assert.Equal(t, 1, winners[0].Position)
	assert.InDelta(t, 1.51, winners[0].ActualCPC, 1e-9)
}

func TestSecondPriceLastSlotPaysOwnBid(t *testing.T) {
	cands := []port.AuctionCandidate{
		candidate("a", 2.00, 8),
		candidate("b", 3.00, 4),
	}
	rankCandidates(cands)
	winners := priceWinners(cands, 3)

	require.Len(t, winners, 2, "never padded with losers")
	assert.InDelta(t, 1.51, winners[0].ActualCPC, 1e-9)
	// b has no next-ranked competitor and pays its full max bid
	assert.Equal(t, "b", winners[1].BidID)
	assert.InDelta(t, 3.00, winners[1].ActualCPC, 1e-9)
}

func TestSecondPriceSingleWinner(t *testing.T) {
	cands := []port.AuctionCandidate{candidate("solo", 1.25, 5)}
	rankCandidates(cands)
	winners := priceWinners(cands, 3)

	require.Len(t, winners, 1)
	assert.InDelta(t, 1.25, winners[0].ActualCPC, 1e-9)
}

func TestSecondPriceNeverExceedsMaxBid(t *testing.T) {
	// next rank is so close that rank-preserving price would exceed the
	// winner's ceiling; the charge clamps at MaxCPC
	cands := []port.AuctionCandidate{
		candidate("a", 1.00, 5.0), // rank 5.0
		candidate("b", 4.99, 1.0), // rank 4.99
	}
	rankCandidates(cands)
	winners := priceWinners(cands, 2)

	require.Len(t, winners, 2)
	assert.Equal(t, "a", winners[0].BidID)
	assert.LessOrEqual(t, winners[0].ActualCPC, 1.00)
	assert.InDelta(t, 1.00, winners[0].ActualCPC, 1e-9)
}

// For every winner except the last, the charge is the minimal price
// preserving its rank over the next candidate, within the 0.01 rounding.
func TestSecondPriceMinimality(t *testing.T) {
	cands := []port.AuctionCandidate{
		candidate("a", 5.00, 9), // rank 45
		candidate("b", 4.00, 7), // rank 28
		candidate("c", 3.00, 6), // rank 18
	}
	rankCandidates(cands)
	winners := priceWinners(cands, 2)
	require.Len(t, winners, 2)

	for i, w := range winners {
		next := cands[i+1]
		assert.LessOrEqual(t, w.ActualCPC, cands[i].Bid.MaxCPC)
		// charged price times own quality still beats the next rank
		assert.GreaterOrEqual(t, w.ActualCPC*w.QualityScore, next.AdRank)
		// and not by more than the rounding increment
		assert.LessOrEqual(t, w.ActualCPC*w.QualityScore, next.AdRank+(priceIncrement+0.005)*w.QualityScore)
	}
}

func TestRankingStableTieBreak(t *testing.T) {
	// equal ad ranks keep input order; deterministic but not meaningful
	cands := []port.AuctionCandidate{
		candidate("first", 2.00, 5),
		candidate("second", 5.00, 2),
		candidate("third", 10.00, 1),
	}
	rankCandidates(cands)

	assert.Equal(t, "first", cands[0].Bid.ID)
	assert.Equal(t, "second", cands[1].Bid.ID)
	assert.Equal(t, "third", cands[2].Bid.ID)
}

func TestRankingDeterminism(t *testing.T) {
	build := func() []port.AuctionCandidate {
		return []port.AuctionCandidate{
			candidate("a", 2.50, 4),
			candidate("b", 1.00, 9),
			candidate("c", 3.00, 3),
			candidate("d", 0.40, 8),
		}
	}
	first := build()
	rankCandidates(first)
	w1 := priceWinners(first, 3)

	second := build()
	rankCandidates(second)
	w2 := priceWinners(second, 3)

	assert.Equal(t, w1, w2, "identical inputs must produce identical output")
}

func TestClampPrice(t *testing.T) {
	assert.InDelta(t, 1.51, clampPrice(1.5100000001, 2.00), 1e-9)
	assert.InDelta(t, 1.46, clampPrice(1.456, 2.00), 1e-9)
	assert.InDelta(t, 2.00, clampPrice(2.75, 2.00), 1e-9)
	assert.InDelta(t, 0.00, clampPrice(-0.30, 2.00), 1e-9)
}
