package aggregator

import (
	"context"
	"time"

	"github.com/dinotradez/backend/internal/contracts"
)

// BullishWatchlist returns the quotes of the bullish symbol set that pass the bullish rules
func (a *Aggregator) BullishWatchlist(ctx context.Context) (*WatchlistResult, error) {
	return a.watchlist(ctx, FeatureBullish, contracts.SymbolSetBullish, a.classifier.FilterBullish)
}

// BearishWatchlist returns the quotes of the bearish symbol set that pass the bearish rules
func (a *Aggregator) BearishWatchlist(ctx context.Context) (*WatchlistResult, error) {
	return a.watchlist(ctx, FeatureBearish, contracts.SymbolSetBearish, a.classifier.FilterBearish)
}

func (a *Aggregator) watchlist(
	ctx context.Context,
	feature string,
	set contracts.SymbolSetName,
	keep func([]contracts.QuoteRecord) []contracts.QuoteRecord,
) (result *WatchlistResult, err error) {
	started := time.Now()
	defer func() { a.observe(feature, started, err) }()

	symbols := NormalizeSymbols(a.DefaultSymbols(ctx, set))
	if len(symbols) == 0 {
		return nil, contracts.InvalidInput("symbol set %q is empty", set)
	}

	callCtx, cancel := a.callCtx(ctx)
	quotes, err := a.provider.GetQuotes(callCtx, symbols)
	cancel()
	if err != nil {
		return nil, required(feature, contracts.ResourceQuotes, err)
	}

	index := contracts.IndexBySymbol(quotes)
	missing := []string{}
	for _, s := range symbols {
		if _, ok := index[s]; !ok {
			missing = append(missing, s)
		}
	}

	return &WatchlistResult{
		Quotes:  keep(quotes),
		Scanned: len(quotes),
		Missing: missing,
	}, nil
}
