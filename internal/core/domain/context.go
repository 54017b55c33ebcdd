package domain

// AuctionContext describes one sponsored-placement request. It is constructed
// per call by the inbound adapter and never persisted. Query is set for search
// auctions, ProductID for product-display auctions; CategoryID may accompany
// either. UserSignals are short-term browsing hints (recently viewed
// categories etc.) and are currently advisory only.
type AuctionContext struct {
	TenantID    string
	Query       string
	CategoryID  string
	ProductID   string
	UserSignals []string
}
