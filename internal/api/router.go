package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dinotradez/backend/internal/aggregator"
	"github.com/dinotradez/backend/internal/api/handlers"
	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/pkg/config"
	"github.com/dinotradez/backend/pkg/logger"
	"github.com/dinotradez/backend/pkg/metrics"
)

// Deps are the services the router exposes
type Deps struct {
	Aggregator *aggregator.Aggregator
	Provider   contracts.Provider
	Metrics    *metrics.Metrics // nil disables /metrics
	RateLimit  config.RateLimitConfig
	Logger     *logger.Logger
}

// NewRouter creates and configures the HTTP router
// ⭐ SSOT: routing is configured in this function only
func NewRouter(deps Deps) http.Handler {
	log := deps.Logger
	h := handlers.New(deps.Aggregator, deps.Provider, log)

	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics.Handler()).Methods("GET")
	}

	api := r.PathPrefix("/api").Subrouter()

	// Market data passthroughs
	api.HandleFunc("/quotes", h.GetQuotes).Methods("GET")
	api.HandleFunc("/market-movers", h.GetMarketMovers).Methods("GET")
	api.HandleFunc("/stock-screener", h.GetStockScreener).Methods("GET")
	api.HandleFunc("/insider-trades", h.GetInsiderTrades).Methods("GET")
	api.HandleFunc("/news", h.GetNews).Methods("GET")
	api.HandleFunc("/market-overview", h.GetMarketOverview).Methods("GET")

	// Analytics features
	api.HandleFunc("/sec-filings", h.GetSECFilings).Methods("GET")
	api.HandleFunc("/dark-pool", h.GetDarkPool).Methods("GET")
	api.HandleFunc("/lotto-picks", h.GetLottoPicks).Methods("GET")
	api.HandleFunc("/watchlists/bullish", h.GetBullishWatchlist).Methods("GET")
	api.HandleFunc("/watchlists/bearish", h.GetBearishWatchlist).Methods("GET")

	limiter := newIPLimiter(deps.RateLimit.Requests, deps.RateLimit.Window)
	api.Use(rateLimitMiddleware(limiter, log))

	// Apply middleware
	r.Use(requestIDMiddleware(log))
	r.Use(loggingMiddleware(log))
	r.Use(metricsMiddleware(deps.Metrics))
	r.Use(recoveryMiddleware(log))

	return r
}

// healthCheckHandler returns server health status
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"service":   "dinotradez-api",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
