package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AuctionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auctions_run_total",
			Help: "Total number of auctions run per surface",
		},
		[]string{"surface"},
	)

	AuctionWinners = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_winners_total",
			Help: "Total number of ad slots filled per surface",
		},
		[]string{"surface"},
	)

	AuctionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "auction_duration_seconds",
			Help: "Duration of auction computation in seconds",
		},
		[]string{"surface"},
	)

	ClicksCharged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clicks_charged_total",
			Help: "Total number of billable clicks recorded",
		},
	)

	SpendTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ad_spend_total",
			Help: "Cumulative CPC spend charged across all campaigns",
		},
	)
)
