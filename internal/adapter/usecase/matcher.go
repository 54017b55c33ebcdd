package usecase

import (
	"strings"

	"marketplace-ads/internal/core/domain"
)

// relevance assigned to category/product bids that match their context
// identifier exactly.
const exactTargetRelevance = 1.0

// keywordMatch holds the three word-overlap statistics computed between a
// bid's keyword phrase and the search query.
type keywordMatch struct {
	exact    bool // case-insensitive full string equality
	includes bool // query contains the keyword as a substring
	// overlapRatio is the number of keyword words also present in the query,
	// normalized by the larger of the two word counts.
	overlapRatio float64
}

// matchKeyword computes the match statistics for a keyword phrase against a
// query. Both sides are lowercased and whitespace-tokenized.
func matchKeyword(keyword, query string) keywordMatch {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	q := strings.ToLower(strings.TrimSpace(query))

	var m keywordMatch
	if kw == "" || q == "" {
		return m
	}
	m.exact = kw == q
	m.includes = strings.Contains(q, kw)

	kwWords := strings.Fields(kw)
	qWords := strings.Fields(q)
	if len(kwWords) == 0 || len(qWords) == 0 {
		return m
	}
	querySet := make(map[string]struct{}, len(qWords))
	for _, w := range qWords {
		querySet[w] = struct{}{}
	}
	shared := 0
	for _, w := range kwWords {
		if _, ok := querySet[w]; ok {
			shared++
		}
	}
	larger := len(kwWords)
	if len(qWords) > larger {
		larger = len(qWords)
	}
	m.overlapRatio = float64(shared) / float64(larger)
	return m
}

// keywordEligible applies match-type semantics to the computed statistics.
// Eligibility widens monotonically: exact implies phrase implies broad.
func keywordEligible(mt domain.MatchType, m keywordMatch) bool {
	switch mt {
	case domain.MatchTypeExact:
		return m.exact
	case domain.MatchTypePhrase:
		return m.exact || m.includes
	default: // broad
		return m.exact || m.includes || m.overlapRatio > 0
	}
}

// keywordRelevance returns the match-type-aware relevance in [0,1]. Tighter
// match types earn higher relevance at equal overlap, reflecting their
// narrower targeting.
func keywordRelevance(mt domain.MatchType, m keywordMatch) float64 {
	switch mt {
	case domain.MatchTypeExact:
		if m.exact {
			return 1.0
		}
		return 0
	case domain.MatchTypePhrase:
		switch {
		case m.exact:
			return 1.0
		case m.includes:
			return 0.9
		default:
			return minFloat(0.8, m.overlapRatio*0.8)
		}
	default: // broad
		switch {
		case m.exact:
			return 1.0
		case m.includes || m.overlapRatio > 0:
			// partial broad matches share the containment tier, scaled by
			// overlap: 0.6 + overlap*0.3, capped below the phrase tier
			return minFloat(0.9, 0.6+m.overlapRatio*0.3)
		default:
			return m.overlapRatio
		}
	}
}

// matchTarget decides whether a bid is eligible for the auction context and
// returns its relevance. Category and product targets only ever match on
// exact identifier equality; keyword targets apply match-type semantics.
func matchTarget(bid domain.Bid, actx domain.AuctionContext) (bool, float64) {
	switch bid.TargetType {
	case domain.TargetTypeKeyword:
		if actx.Query == "" {
			return false, 0
		}
		m := matchKeyword(bid.TargetValue, actx.Query)
		mt := bid.EffectiveMatchType()
		if !keywordEligible(mt, m) {
			return false, 0
		}
		return true, keywordRelevance(mt, m)
	case domain.TargetTypeCategory:
		if actx.CategoryID != "" && bid.TargetValue == actx.CategoryID {
			return true, exactTargetRelevance
		}
		return false, 0
	case domain.TargetTypeProduct:
		if actx.ProductID != "" && bid.TargetValue == actx.ProductID {
			return true, exactTargetRelevance
		}
		return false, 0
	default:
		return false, 0
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
