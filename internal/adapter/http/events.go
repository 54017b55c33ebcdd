package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"marketplace-ads/internal/core/port"
	"marketplace-ads/internal/metrics"
)

// eventRequest is the JSON body shared by the event endpoints. ActualCPC is
// required for clicks, OrderValue for conversions; both are ignored
// elsewhere.
type eventRequest struct {
	BidID      string  `json:"bid_id"`
	CampaignID string  `json:"campaign_id"`
	ActualCPC  float64 `json:"actual_cpc,omitempty"`
	OrderValue float64 `json:"order_value,omitempty"`
}

func (h *Handler) decodeEvent(w http.ResponseWriter, r *http.Request) (string, *eventRequest) {
	tenant := tenantID(r)
	if tenant == "" {
		http.Error(w, "missing X-Tenant-ID", http.StatusBadRequest)
		return "", nil
	}
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return "", nil
	}
	if req.BidID == "" || req.CampaignID == "" {
		http.Error(w, "bid_id and campaign_id are required", http.StatusBadRequest)
		return "", nil
	}
	return tenant, &req
}

// handleImpression records that a winner was shown.
func (h *Handler) handleImpression(w http.ResponseWriter, r *http.Request) {
	tenant, req := h.decodeEvent(w, r)
	if req == nil {
		return
	}
	if err := h.svc.RecordImpression(r.Context(), tenant, req.BidID, req.CampaignID); err != nil {
		h.logger.Error("record impression error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// handleClick records a click and charges the campaign the cleared CPC.
// A campaign that has exhausted its budget in the meantime answers 409; the
// click is not silently dropped, the caller must not redirect as sponsored.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	tenant, req := h.decodeEvent(w, r)
	if req == nil {
		return
	}
	err := h.svc.RecordClick(r.Context(), tenant, req.BidID, req.CampaignID, req.ActualCPC)
	if errors.Is(err, port.ErrInsufficientBudget) {
		http.Error(w, "campaign budget exhausted", http.StatusConflict)
		return
	}
	if err != nil {
		h.logger.Error("record click error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	metrics.ClicksCharged.Inc()
	metrics.SpendTotal.Add(req.ActualCPC)
	w.WriteHeader(http.StatusAccepted)
}

// handleConversion records downstream revenue attribution. Never charges.
func (h *Handler) handleConversion(w http.ResponseWriter, r *http.Request) {
	tenant, req := h.decodeEvent(w, r)
	if req == nil {
		return
	}
	if err := h.svc.RecordConversion(r.Context(), tenant, req.BidID, req.CampaignID, req.OrderValue); err != nil {
		h.logger.Error("record conversion error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
