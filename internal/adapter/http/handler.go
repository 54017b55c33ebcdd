package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"marketplace-ads/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter:
// it holds the auction usecase, a structured logger, and a chi.Router with
// all endpoints registered.
type Handler struct {
	svc    port.AuctionUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.AuctionUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auctions/search", h.handleSearchAuction)
		r.Post("/auctions/display", h.handleDisplayAuction)
		r.Post("/events/impression", h.handleImpression)
		r.Post("/events/click", h.handleClick)
		r.Post("/events/conversion", h.handleConversion)
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	r.Handle("/metrics", promhttp.Handler())
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// tenantID extracts the mandatory tenant scope from the request. Every
// engine operation is tenant-scoped; requests without the header are
// rejected before reaching the usecase.
func tenantID(r *http.Request) string {
	return r.Header.Get("X-Tenant-ID")
}
