package aggregator

import (
	"context"
	"time"

	"github.com/dinotradez/backend/internal/contracts"
)

// DarkPool estimates dark-pool activity for symbols, in request order.
// Symbols absent from the quote batch are listed in Missing; failed insider lookups in Omitted.
func (a *Aggregator) DarkPool(ctx context.Context, symbols []string) (result *DarkPoolResult, err error) {
	started := time.Now()
	defer func() { a.observe(FeatureDarkPool, started, err) }()

	symbols = NormalizeSymbols(symbols)
	if len(symbols) == 0 {
		return nil, contracts.InvalidInput("at least one symbol is required")
	}

	quoteCtx, cancel := a.callCtx(ctx)
	quotes, err := a.provider.GetQuotes(quoteCtx, symbols)
	cancel()
	if err != nil {
		return nil, required(FeatureDarkPool, contracts.ResourceQuotes, err)
	}

	index := contracts.IndexBySymbol(quotes)
	present := make([]string, 0, len(symbols))
	missing := []string{}
	for _, s := range symbols {
		if _, ok := index[s]; ok {
			present = append(present, s)
		} else {
			missing = append(missing, s)
		}
	}

	signals, omitted := a.fetchInsider(ctx, FeatureDarkPool, present)

	estimates := make([]contracts.DarkPoolEstimate, 0, len(present))
	for i, s := range present {
		estimates = append(estimates, a.estimator.Estimate(index[s], signals[i]))
	}

	result = &DarkPoolResult{
		Estimates:       estimates,
		UnusualActivity: a.estimator.UnusualActivity(estimates),
		Omitted:         omitted,
		Missing:         missing,
		LastUpdated:     a.now().UTC(),
	}

	a.logger.WithFields(map[string]interface{}{
		"requested": len(symbols),
		"estimated": len(estimates),
		"unusual":   len(result.UnusualActivity),
		"missing":   len(missing),
		"omitted":   len(omitted),
	}).Info("Dark pool estimates computed")

	return result, nil
}
