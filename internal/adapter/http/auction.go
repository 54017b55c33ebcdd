package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"marketplace-ads/internal/core/domain"
	"marketplace-ads/internal/core/port"
	"marketplace-ads/internal/metrics"
)

// auctionRequest is the JSON body of both auction endpoints. Slots <= 0
// selects the surface default (3 for search, 2 for display).
type auctionRequest struct {
	Query       string   `json:"query,omitempty"`
	CategoryID  string   `json:"category_id,omitempty"`
	ProductID   string   `json:"product_id,omitempty"`
	UserSignals []string `json:"user_signals,omitempty"`
	Slots       int      `json:"slots,omitempty"`
}

// handleSearchAuction runs the sponsored-search auction for a query context.
// It returns the ordered winner list as JSON, or HTTP 204 when no ads are
// available — a normal outcome, not an error. Parsing errors produce 400,
// internal failures 500.
func (h *Handler) handleSearchAuction(w http.ResponseWriter, r *http.Request) {
	h.runAuction(w, r, "search", func(actx domain.AuctionContext, slots int) ([]port.AuctionWinner, error) {
		return h.svc.RunSearchAuction(r.Context(), actx, slots)
	})
}

// handleDisplayAuction runs the product-display auction for a product-detail
// view.
func (h *Handler) handleDisplayAuction(w http.ResponseWriter, r *http.Request) {
	h.runAuction(w, r, "display", func(actx domain.AuctionContext, slots int) ([]port.AuctionWinner, error) {
		return h.svc.RunProductDisplayAuction(r.Context(), actx, slots)
	})
}

func (h *Handler) runAuction(w http.ResponseWriter, r *http.Request, surface string, run func(domain.AuctionContext, int) ([]port.AuctionWinner, error)) {
	tenant := tenantID(r)
	if tenant == "" {
		http.Error(w, "missing X-Tenant-ID", http.StatusBadRequest)
		return
	}
	var req auctionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	actx := domain.AuctionContext{
		TenantID:    tenant,
		Query:       req.Query,
		CategoryID:  req.CategoryID,
		ProductID:   req.ProductID,
		UserSignals: req.UserSignals,
	}

	start := time.Now()
	winners, err := run(actx, req.Slots)
	metrics.AuctionDuration.WithLabelValues(surface).Observe(time.Since(start).Seconds())
	metrics.AuctionsTotal.WithLabelValues(surface).Inc()
	if err != nil {
		h.logger.Error("auction error", slog.String("surface", surface), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	metrics.AuctionWinners.WithLabelValues(surface).Add(float64(len(winners)))
	if len(winners) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(winners); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
