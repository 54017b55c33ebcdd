package domain

import "time"

// TargetType is the kind of context a bid targets.
type TargetType string

const (
	TargetTypeKeyword  TargetType = "keyword"
	TargetTypeCategory TargetType = "category"
	TargetTypeProduct  TargetType = "product"
)

// MatchType controls how strictly a keyword bid must match the search query.
// It is ignored for category and product targets, which only ever match on
// exact identifier equality.
type MatchType string

const (
	MatchTypeExact  MatchType = "exact"
	MatchTypePhrase MatchType = "phrase"
	MatchTypeBroad  MatchType = "broad"
)

// BidStatus is the lifecycle state of a bid.
type BidStatus string

const (
	BidStatusActive BidStatus = "active"
	BidStatusPaused BidStatus = "paused"
)

// Bid is a targeting rule owned by a campaign. MaxCPC is the hard ceiling on
// what the campaign can ever be charged for one click on this bid. ProductID
// is the FSIN of the advertised product.
type Bid struct {
	ID          string
	CampaignID  string
	TenantID    string
	TargetType  TargetType
	TargetValue string
	MatchType   MatchType
	MaxCPC      float64
	ProductID   string
	Status      BidStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EffectiveMatchType returns the bid's match type, defaulting to broad when
// unset or unknown.
func (b Bid) EffectiveMatchType() MatchType {
	switch b.MatchType {
	case MatchTypeExact, MatchTypePhrase, MatchTypeBroad:
		return b.MatchType
	default:
		return MatchTypeBroad
	}
}
