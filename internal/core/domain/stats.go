package domain

// BidStats is the aggregate event counter document for one bid. A zero value
// (all counters zero) is what the repository returns for bids with no history
// yet.
type BidStats struct {
	BidID       string
	TenantID    string
	Impressions int64
	Clicks      int64
	Conversions int64
	Spend       float64
}

// ProductSignals carries the landing-page quality inputs of an advertised
// product: its star rating (0-5) and review volume.
type ProductSignals struct {
	ProductID    string  `json:"product_id"`
	TenantID     string  `json:"tenant_id"`
	Rating       float64 `json:"rating"`
	TotalReviews int64   `json:"total_reviews"`
}
