package aggregator

import (
	"context"
	"strings"
	"time"

	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/internal/intelligence"
)

// MarketNews returns headlines (market-wide when symbol is empty) with trending words
func (a *Aggregator) MarketNews(ctx context.Context, symbol string) (result *NewsResult, err error) {
	started := time.Now()
	defer func() { a.observe(FeatureNews, started, err) }()

	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	callCtx, cancel := a.callCtx(ctx)
	items, err := a.provider.GetNews(callCtx, symbol)
	cancel()
	if err != nil {
		return nil, required(FeatureNews, contracts.ResourceNews, err)
	}
	if items == nil {
		items = []contracts.NewsItem{}
	}

	return &NewsResult{
		Items:          items,
		TrendingTopics: intelligence.TrendingTopics(items, intelligence.DefaultTopicLimit),
	}, nil
}
