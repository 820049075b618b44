package yahoo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dinotradez/backend/internal/contracts"
)

// GetInsiderTrades fetches the insider transaction history for one symbol
func (c *Client) GetInsiderTrades(ctx context.Context, symbol string) (*contracts.InsiderSignal, error) {
	var resp insiderResponse
	if err := c.getJSON(ctx, "/api/v1/insider-trades", url.Values{"symbol": {symbol}}, &resp); err != nil {
		return nil, fmt.Errorf("insider trades %s: %w", symbol, err)
	}

	signal := &contracts.InsiderSignal{
		Symbol: symbol,
		Trades: make([]contracts.InsiderTrade, 0, len(resp.InsiderTraders)),
	}
	for _, t := range resp.InsiderTraders {
		signal.Trades = append(signal.Trades, contracts.InsiderTrade{
			Insider:     t.Name,
			Relation:    t.Relation,
			Transaction: t.TransactionText,
			Shares:      int64(t.Shares),
			Value:       t.Value,
			Date:        t.Date,
		})
	}

	return signal, nil
}
