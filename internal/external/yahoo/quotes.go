package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dinotradez/backend/internal/contracts"
)

// GetQuotes fetches one quote batch for the given symbols
func (c *Client) GetQuotes(ctx context.Context, symbols []string) ([]contracts.QuoteRecord, error) {
	if len(symbols) == 0 {
		return []contracts.QuoteRecord{}, nil
	}

	var resp quoteResponse
	params := url.Values{"symbols": {strings.Join(symbols, ",")}}
	if err := c.getJSON(ctx, "/api/v1/markets/quote", params, &resp); err != nil {
		return nil, fmt.Errorf("quotes: %w", err)
	}

	quotes := toRecords(pick(resp.QuoteResponse.Result, resp.Body))

	c.logger.WithFields(map[string]interface{}{
		"requested": len(symbols),
		"received":  len(quotes),
	}).Debug("Fetched quotes from RapidAPI")

	return quotes, nil
}

// GetMovers fetches the gainers, losers or most-active list
func (c *Client) GetMovers(ctx context.Context, kind contracts.MoverKind) ([]contracts.QuoteRecord, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown mover kind: %s", kind)
	}

	var resp moversResponse
	if err := c.getJSON(ctx, "/api/v1/markets/movers", url.Values{"type": {string(kind)}}, &resp); err != nil {
		return nil, fmt.Errorf("movers %s: %w", kind, err)
	}

	movers := toRecords(pick(resp.Finance.Result, resp.Body))

	c.logger.WithFields(map[string]interface{}{
		"kind":  kind,
		"count": len(movers),
	}).Debug("Fetched movers from RapidAPI")

	return movers, nil
}

// GetScreenerResults runs the stock screener
func (c *Client) GetScreenerResults(ctx context.Context, filters contracts.ScreenerFilters) ([]contracts.QuoteRecord, error) {
	params := url.Values{}
	params.Set("marketCap", filters.MarketCapRange)
	params.Set("sector", filters.Sector)
	params.Set("industry", filters.Industry)
	params.Set("priceGt", formatPrice(filters.PriceMin))
	params.Set("priceLt", formatPrice(filters.PriceMax))

	var resp screenerResponse
	if err := c.getJSON(ctx, "/api/v1/markets/screener", params, &resp); err != nil {
		return nil, fmt.Errorf("screener: %w", err)
	}

	return toRecords(pick(resp.Result, resp.Body)), nil
}

// formatPrice renders 0 as "no bound"
func formatPrice(v float64) string {
	if v <= 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
