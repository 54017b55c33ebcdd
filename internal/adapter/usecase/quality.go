package usecase

import (
	"marketplace-ads/internal/core/domain"
)

const (
	// defaultCTR is the assumed click-through rate for bids whose impression
	// history is statistically insignificant. Intentional cold-start
	// assumption, not a placeholder.
	defaultCTR = 0.05
	// minImpressionsForCTR is the history size below which defaultCTR is
	// substituted for the empirical rate.
	minImpressionsForCTR = 100

	// neutralRelevance stands in when a candidate carries no computed
	// relevance (broad fallback).
	neutralRelevance = 0.5
	// neutralLandingPage is the contribution used when no signal data exists
	// for the advertised product.
	neutralLandingPage = 0.5

	qualityFloor = 0.1
	qualityCeil  = 10.0
)

// ctrScore converts click history into a 0-10 sub-score. The empirical rate
// is used only above minImpressionsForCTR impressions; the linear scale maps
// 0.5% CTR to ~1.0 and 5% CTR to ~10.0.
func ctrScore(stats domain.BidStats) float64 {
	ctr := defaultCTR
	if stats.Impressions > minImpressionsForCTR {
		ctr = float64(stats.Clicks) / float64(stats.Impressions)
	}
	return clamp(ctr*200, 0, 10)
}

// landingPageScore derives a [0,1] quality signal from the advertised
// product's star rating (70%) and review-volume confidence (30%). Missing
// signals yield the neutral default rather than failing the auction.
func landingPageScore(sig *domain.ProductSignals) float64 {
	if sig == nil {
		return neutralLandingPage
	}
	rating := clamp(sig.Rating/5, 0, 1)
	confidence := minFloat(float64(sig.TotalReviews)/100, 1)
	return 0.7*rating + 0.3*confidence
}

// qualityScore combines the three normalized sub-scores into the final
// [0.1, 10] quality score. The floor guarantees every eligible candidate has
// a nonzero Ad Rank, which keeps the pricing division well-defined.
func qualityScore(ctr, relevance, landingPage float64) float64 {
	if relevance <= 0 {
		relevance = neutralRelevance
	}
	s := 0.5*ctr + 0.3*(relevance*10) + 0.2*(landingPage*10)
	return clamp(s, qualityFloor, qualityCeil)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
