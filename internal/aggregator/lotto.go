package aggregator

import (
	"context"
	"sync"
	"time"

	"github.com/dinotradez/backend/internal/contracts"
)

// LottoPicks ranks speculative candidates from gainers, most-actives and the small-cap screener.
// All three lists are required.
func (a *Aggregator) LottoPicks(ctx context.Context) (result *LottoResult, err error) {
	started := time.Now()
	defer func() { a.observe(FeatureLotto, started, err) }()

	filters := contracts.ScreenerFilters{
		MarketCapRange: a.scoring.Screener.MarketCap,
		PriceMin:       a.scoring.Screener.PriceMin,
		PriceMax:       a.scoring.Screener.PriceMax,
	}

	var (
		gainers, actives, screener     []contracts.QuoteRecord
		gainersErr, activesErr, scrErr error
		wg                             sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		callCtx, cancel := a.callCtx(ctx)
		defer cancel()
		gainers, gainersErr = a.provider.GetMovers(callCtx, contracts.MoversGainers)
	}()
	go func() {
		defer wg.Done()
		callCtx, cancel := a.callCtx(ctx)
		defer cancel()
		actives, activesErr = a.provider.GetMovers(callCtx, contracts.MoversActives)
	}()
	go func() {
		defer wg.Done()
		callCtx, cancel := a.callCtx(ctx)
		defer cancel()
		screener, scrErr = a.provider.GetScreenerResults(callCtx, filters)
	}()
	wg.Wait()

	switch {
	case gainersErr != nil:
		return nil, required(FeatureLotto, contracts.ResourceMovers, gainersErr)
	case activesErr != nil:
		return nil, required(FeatureLotto, contracts.ResourceMovers, activesErr)
	case scrErr != nil:
		return nil, required(FeatureLotto, contracts.ResourceScreener, scrErr)
	}

	return &LottoResult{Picks: a.ranker.Rank(gainers, actives, screener)}, nil
}
