package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"marketplace-ads/internal/core/port"
)

// handleStatsOverview returns aggregated event statistics over a period. It
// accepts optional `from`, `to` (RFC3339 timestamps) and `campaign_id` query
// parameters; the period defaults to the last 24 hours. Invalid parameters
// result in HTTP 400, internal errors in 500.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(r)
	if tenant == "" {
		http.Error(w, "missing X-Tenant-ID", http.StatusBadRequest)
		return
	}

	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     = port.StatsReq{TenantID: tenant}
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.From = time.Now().Add(-24 * time.Hour)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.To = time.Now()
	}

	if cid := q.Get("campaign_id"); cid != "" {
		req.CampaignID = &cid
	}

	stats, err := h.svc.Stats(r.Context(), req)
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(stats); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
