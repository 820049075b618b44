package handlers

import (
	"net/http"

	"github.com/dinotradez/backend/internal/contracts"
)

type quotesRequest struct {
	Symbols string `schema:"symbols" validate:"required"`
}

type moversRequest struct {
	Type string `schema:"type" default:"gainers" validate:"oneof=gainers losers actives"`
}

type screenerRequest struct {
	MarketCap string  `schema:"marketCap"`
	PriceGt   float64 `schema:"priceGt" validate:"gte=0"`
	PriceLt   float64 `schema:"priceLt" validate:"gte=0"`
	Sector    string  `schema:"sector"`
	Industry  string  `schema:"industry"`
}

type insiderRequest struct {
	Symbol string `schema:"symbol" validate:"required"`
}

type newsRequest struct {
	Symbol string `schema:"symbol"`
}

// GetQuotes returns quotes for a comma separated symbol list
// GET /api/quotes?symbols=AAPL,MSFT
func (h *Handler) GetQuotes(w http.ResponseWriter, r *http.Request) {
	var req quotesRequest
	if err := bindQuery(r, &req); err != nil {
		h.respondFeatureError(w, r, err)
		return
	}

	symbols := splitSymbols(req.Symbols)
	if len(symbols) == 0 {
		respondError(w, http.StatusBadRequest, "symbols parameter is required")
		return
	}

	quotes, err := h.provider.GetQuotes(r.Context(), symbols)
	if err != nil {
		h.respondUpstreamError(w, r, contracts.ResourceQuotes, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"quotes": quotes,
	})
}

// GetMarketMovers returns gainers, losers or most actives
// GET /api/market-movers?type=gainers
func (h *Handler) GetMarketMovers(w http.ResponseWriter, r *http.Request) {
	var req moversRequest
	if err := bindQuery(r, &req); err != nil {
		h.respondFeatureError(w, r, err)
		return
	}

	kind := contracts.MoverKind(req.Type)
	movers, err := h.provider.GetMovers(r.Context(), kind)
	if err != nil {
		h.respondUpstreamError(w, r, contracts.ResourceMovers, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"type":   kind,
		"movers": movers,
	})
}

// GetStockScreener runs the provider screener
// GET /api/stock-screener?marketCap=100M,2B&priceGt=1&priceLt=50
func (h *Handler) GetStockScreener(w http.ResponseWriter, r *http.Request) {
	var req screenerRequest
	if err := bindQuery(r, &req); err != nil {
		h.respondFeatureError(w, r, err)
		return
	}

	results, err := h.provider.GetScreenerResults(r.Context(), contracts.ScreenerFilters{
		MarketCapRange: req.MarketCap,
		PriceMin:       req.PriceGt,
		PriceMax:       req.PriceLt,
		Sector:         req.Sector,
		Industry:       req.Industry,
	})
	if err != nil {
		h.respondUpstreamError(w, r, contracts.ResourceScreener, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
	})
}

// GetInsiderTrades returns the insider history for one symbol
// GET /api/insider-trades?symbol=AAPL
func (h *Handler) GetInsiderTrades(w http.ResponseWriter, r *http.Request) {
	var req insiderRequest
	if err := bindQuery(r, &req); err != nil {
		h.respondFeatureError(w, r, err)
		return
	}

	symbols := splitSymbols(req.Symbol)
	if len(symbols) != 1 {
		respondError(w, http.StatusBadRequest, "exactly one symbol is required")
		return
	}

	signal, err := h.provider.GetInsiderTrades(r.Context(), symbols[0])
	if err != nil {
		h.respondUpstreamError(w, r, contracts.ResourceInsider, err)
		return
	}

	respondJSON(w, http.StatusOK, signal)
}

// GetNews returns headlines with trending words
// GET /api/news[?symbol=AAPL]
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	var req newsRequest
	if err := bindQuery(r, &req); err != nil {
		h.respondFeatureError(w, r, err)
		return
	}

	result, err := h.agg.MarketNews(r.Context(), req.Symbol)
	if err != nil {
		h.respondFeatureError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetMarketOverview returns the raw market summary
// GET /api/market-overview
func (h *Handler) GetMarketOverview(w http.ResponseWriter, r *http.Request) {
	summary, err := h.provider.GetMarketSummary(r.Context())
	if err != nil {
		h.respondUpstreamError(w, r, "market overview", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(summary)
}
