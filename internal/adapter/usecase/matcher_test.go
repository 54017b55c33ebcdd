package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-ads/internal/core/domain"
)

func TestMatchKeywordStatistics(t *testing.T) {
	tests := []struct {
		name     string
		keyword  string
		query    string
		exact    bool
		includes bool
		overlap  float64
	}{
		{"full equality", "drill", "drill", true, true, 1},
		{"case insensitive", "Drill", "dRiLL", true, true, 1},
		{"substring", "drill", "cordless drill 18v", false, true, 1.0 / 3},
		{"partial word overlap", "pipe wrench", "wrench set", false, false, 0.5},
		{"no overlap", "hammer", "paint roller", false, false, 0},
		{"empty query", "drill", "", false, false, 0},
		{"empty keyword", "", "drill", false, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := matchKeyword(tt.keyword, tt.query)
			assert.Equal(t, tt.exact, m.exact)
			assert.Equal(t, tt.includes, m.includes)
			assert.InDelta(t, tt.overlap, m.overlapRatio, 1e-9)
		})
	}
}

// Eligibility must widen monotonically: an exact-eligible pair is eligible
// under phrase, and a phrase-eligible pair is eligible under broad.
func TestMatchTypeEligibilityImplication(t *testing.T) {
	pairs := []struct{ keyword, query string }{
		{"drill", "drill"},
		{"drill", "cordless drill"},
		{"pipe wrench", "wrench set"},
		{"hammer", "paint roller"},
		{"power drill", "power drill"},
	}
	for _, p := range pairs {
		m := matchKeyword(p.keyword, p.query)
		exactOK := keywordEligible(domain.MatchTypeExact, m)
		phraseOK := keywordEligible(domain.MatchTypePhrase, m)
		broadOK := keywordEligible(domain.MatchTypeBroad, m)
		if exactOK {
			assert.True(t, phraseOK, "%q/%q: exact eligibility must imply phrase", p.keyword, p.query)
		}
		if phraseOK {
			assert.True(t, broadOK, "%q/%q: phrase eligibility must imply broad", p.keyword, p.query)
		}
	}
}

func TestKeywordRelevanceTiers(t *testing.T) {
	exactMatch := matchKeyword("drill", "drill")
	assert.InDelta(t, 1.0, keywordRelevance(domain.MatchTypeExact, exactMatch), 1e-9)
	assert.InDelta(t, 1.0, keywordRelevance(domain.MatchTypePhrase, exactMatch), 1e-9)
	assert.InDelta(t, 1.0, keywordRelevance(domain.MatchTypeBroad, exactMatch), 1e-9)

	contained := matchKeyword("drill", "cordless drill 18v")
	assert.InDelta(t, 0.9, keywordRelevance(domain.MatchTypePhrase, contained), 1e-9)
	// broad containment: min(0.9, 0.6 + (1/3)*0.3) = 0.7
	assert.InDelta(t, 0.7, keywordRelevance(domain.MatchTypeBroad, contained), 1e-9)

	// "pipe wrench" vs "wrench set": one of two keyword words present
	partial := matchKeyword("pipe wrench", "wrench set")
	require.False(t, keywordEligible(domain.MatchTypeExact, partial))
	require.False(t, keywordEligible(domain.MatchTypePhrase, partial))
	require.True(t, keywordEligible(domain.MatchTypeBroad, partial))
	assert.InDelta(t, 0.75, keywordRelevance(domain.MatchTypeBroad, partial), 1e-9)
	// ineligible phrase still computes its tier: min(0.8, 0.5*0.8)
	assert.InDelta(t, 0.4, keywordRelevance(domain.MatchTypePhrase, partial), 1e-9)
}

func TestMatchTargetKeyword(t *testing.T) {
	bid := domain.Bid{TargetType: domain.TargetTypeKeyword, TargetValue: "drill", MatchType: domain.MatchTypeExact}

	ok, rel := matchTarget(bid, domain.AuctionContext{TenantID: "t1", Query: "drill"})
	require.True(t, ok)
	assert.InDelta(t, 1.0, rel, 1e-9)

	ok, _ = matchTarget(bid, domain.AuctionContext{TenantID: "t1", Query: "drill bits"})
	assert.False(t, ok, "exact match type requires full equality")

	ok, _ = matchTarget(bid, domain.AuctionContext{TenantID: "t1"})
	assert.False(t, ok, "keyword bids need a query")
}

func TestMatchTargetDefaultsToBroad(t *testing.T) {
	bid := domain.Bid{TargetType: domain.TargetTypeKeyword, TargetValue: "pipe wrench"}

	ok, rel := matchTarget(bid, domain.AuctionContext{TenantID: "t1", Query: "wrench set"})
	require.True(t, ok, "missing match type must behave as broad")
	assert.InDelta(t, 0.75, rel, 1e-9)
}

func TestMatchTargetIdentifiers(t *testing.T) {
	catBid := domain.Bid{TargetType: domain.TargetTypeCategory, TargetValue: "cat-7"}
	prodBid := domain.Bid{TargetType: domain.TargetTypeProduct, TargetValue: "FSIN-42"}

	ok, rel := matchTarget(catBid, domain.AuctionContext{TenantID: "t1", CategoryID: "cat-7"})
	require.True(t, ok)
	assert.InDelta(t, 1.0, rel, 1e-9)

	ok, _ = matchTarget(catBid, domain.AuctionContext{TenantID: "t1", CategoryID: "cat-70"})
	assert.False(t, ok, "no partial matching for identifiers")

	ok, rel = matchTarget(prodBid, domain.AuctionContext{TenantID: "t1", ProductID: "FSIN-42"})
	require.True(t, ok)
	assert.InDelta(t, 1.0, rel, 1e-9)

	ok, _ = matchTarget(prodBid, domain.AuctionContext{TenantID: "t1", ProductID: "FSIN-421"})
	assert.False(t, ok)
}
