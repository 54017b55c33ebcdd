package domain

import "time"

// EventType is the kind of ad interaction being recorded.
type EventType string

const (
	EventTypeImpression EventType = "impression"
	EventTypeClick      EventType = "click"
	EventTypeConversion EventType = "conversion"
)

// AdEvent is one immutable, tenant-scoped interaction record. For clicks,
// Amount is the cleared CPC actually charged; for conversions it is the
// attributed order value (conversions never charge); for impressions it is
// zero.
type AdEvent struct {
	ID         string
	TenantID   string
	BidID      string
	CampaignID string
	Type       EventType
	Amount     float64
	CreatedAt  time.Time
}
