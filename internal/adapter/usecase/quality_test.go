package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marketplace-ads/internal/core/domain"
)

func TestCTRScoreColdStart(t *testing.T) {
	// below the significance threshold the default 5% CTR applies,
	// regardless of the observed ratio
	cold := domain.BidStats{Impressions: 100, Clicks: 100}
	assert.InDelta(t, 10.0, ctrScore(cold), 1e-9)

	fresh := domain.BidStats{}
	assert.InDelta(t, 10.0, ctrScore(fresh), 1e-9, "0.05*200 = 10")
}

func TestCTRScoreEmpirical(t *testing.T) {
	// 0.5% CTR maps to ~1.0
	low := domain.BidStats{Impressions: 10000, Clicks: 50}
	assert.InDelta(t, 1.0, ctrScore(low), 1e-9)

	// 5% CTR maps to ~10.0
	high := domain.BidStats{Impressions: 10000, Clicks: 500}
	assert.InDelta(t, 10.0, ctrScore(high), 1e-9)

	// anything above 5% clamps at 10
	extreme := domain.BidStats{Impressions: 10000, Clicks: 2000}
	assert.InDelta(t, 10.0, ctrScore(extreme), 1e-9)

	// zero clicks with real history floors at 0
	dead := domain.BidStats{Impressions: 10000}
	assert.InDelta(t, 0.0, ctrScore(dead), 1e-9)
}

func TestLandingPageScore(t *testing.T) {
	assert.InDelta(t, 0.5, landingPageScore(nil), 1e-9, "missing signals are neutral")

	perfect := &domain.ProductSignals{Rating: 5, TotalReviews: 100}
	assert.InDelta(t, 1.0, landingPageScore(perfect), 1e-9)

	// rating weighted 70%, review confidence 30%, confidence capped at 1
	popular := &domain.ProductSignals{Rating: 4, TotalReviews: 1000}
	assert.InDelta(t, 0.7*0.8+0.3, landingPageScore(popular), 1e-9)

	unreviewed := &domain.ProductSignals{Rating: 5, TotalReviews: 0}
	assert.InDelta(t, 0.7, landingPageScore(unreviewed), 1e-9)

	// malformed ratings are clamped, not propagated
	malformed := &domain.ProductSignals{Rating: 12, TotalReviews: 50}
	assert.InDelta(t, 0.7+0.3*0.5, landingPageScore(malformed), 1e-9)
}

func TestQualityScoreWeights(t *testing.T) {
	// 0.5*ctr + 0.3*(rel*10) + 0.2*(lp*10)
	got := qualityScore(10, 1.0, 1.0)
	assert.InDelta(t, 10.0, got, 1e-9)

	got = qualityScore(4, 0.75, 0.5)
	assert.InDelta(t, 0.5*4+0.3*7.5+0.2*5, got, 1e-9)
}

func TestQualityScoreBounds(t *testing.T) {
	assert.InDelta(t, qualityFloor, qualityScore(0, 0.01, 0), 1e-9,
		"score floor keeps every candidate's ad rank nonzero")
	assert.LessOrEqual(t, qualityScore(1000, 1, 1), qualityCeil)
}

func TestQualityScoreNeutralRelevanceFallback(t *testing.T) {
	withFallback := qualityScore(4, 0, 0.5)
	explicit := qualityScore(4, neutralRelevance, 0.5)
	assert.InDelta(t, explicit, withFallback, 1e-9)
}
