package domain

import "time"

// CampaignType distinguishes the placement surface a campaign bids on.
type CampaignType string

const (
	CampaignTypeSearch         CampaignType = "search_sponsored"
	CampaignTypeBrand          CampaignType = "brand_sponsored"
	CampaignTypeProductDisplay CampaignType = "product_display"
)

// CampaignStatus is the lifecycle state of a campaign. Transitions are owned
// by the external campaign-management service; the auction engine only reads
// the status.
type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "active"
	CampaignStatusPaused CampaignStatus = "paused"
	CampaignStatusEnded  CampaignStatus = "ended"
)

// Campaign is an advertiser's budget envelope, scoped to one tenant.
// Monetary amounts are in currency units with two-decimal granularity.
// SpentToday never exceeds DailyBudget after a successful charge; the
// counter is reset externally at the day boundary.
type Campaign struct {
	ID          string
	TenantID    string
	SellerID    string
	Type        CampaignType
	Status      CampaignStatus
	DailyBudget float64
	SpentToday  float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasBudget reports whether the campaign can still be charged today.
func (c Campaign) HasBudget() bool {
	return c.SpentToday < c.DailyBudget
}
