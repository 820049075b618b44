package handlers

import (
	"net/http"
	"time"

	"github.com/dinotradez/backend/internal/contracts"
)

type filingsRequest struct {
	Form  string `schema:"form" default:"S-3" validate:"required,max=16"`
	Limit int    `schema:"limit" default:"20" validate:"gte=1"`
}

type darkPoolRequest struct {
	Symbols string `schema:"symbols"`
}

// GetSECFilings returns deduplicated EDGAR filings from the last 90 days
// GET /api/sec-filings?form=S-3&limit=20
func (h *Handler) GetSECFilings(w http.ResponseWriter, r *http.Request) {
	var req filingsRequest
	if err := bindQuery(r, &req); err != nil {
		h.respondFeatureError(w, r, err)
		return
	}

	query := contracts.NewFilingQuery(req.Form, req.Limit, time.Now())
	result, err := h.agg.Filings(r.Context(), query)
	if err != nil {
		h.respondFeatureError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetDarkPool returns dark-pool estimates; without symbols the default set is scanned
// GET /api/dark-pool[?symbols=AAPL,TSLA]
func (h *Handler) GetDarkPool(w http.ResponseWriter, r *http.Request) {
	var req darkPoolRequest
	if err := bindQuery(r, &req); err != nil {
		h.respondFeatureError(w, r, err)
		return
	}

	var symbols []string
	if _, given := r.URL.Query()["symbols"]; given {
		symbols = splitSymbols(req.Symbols)
	} else {
		symbols = h.agg.DefaultSymbols(r.Context(), contracts.SymbolSetDarkPool)
	}

	result, err := h.agg.DarkPool(r.Context(), symbols)
	if err != nil {
		h.respondFeatureError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetLottoPicks returns the ranked speculative picks
// GET /api/lotto-picks
func (h *Handler) GetLottoPicks(w http.ResponseWriter, r *http.Request) {
	result, err := h.agg.LottoPicks(r.Context())
	if err != nil {
		h.respondFeatureError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetBullishWatchlist returns quotes passing the bullish rules
// GET /api/watchlists/bullish
func (h *Handler) GetBullishWatchlist(w http.ResponseWriter, r *http.Request) {
	result, err := h.agg.BullishWatchlist(r.Context())
	if err != nil {
		h.respondFeatureError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"bullishWatchlist": result.Quotes,
		"scanned":          result.Scanned,
		"missing":          result.Missing,
	})
}

// GetBearishWatchlist returns quotes passing the bearish rules
// GET /api/watchlists/bearish
func (h *Handler) GetBearishWatchlist(w http.ResponseWriter, r *http.Request) {
	result, err := h.agg.BearishWatchlist(r.Context())
	if err != nil {
		h.respondFeatureError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"bearishWatchlist": result.Quotes,
		"scanned":          result.Scanned,
		"missing":          result.Missing,
	})
}
