package provider

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/pkg/logger"
	"github.com/dinotradez/backend/pkg/redis"
)

// MarketSource supplies quotes, movers, screener results, news and the market summary
type MarketSource interface {
	GetQuotes(ctx context.Context, symbols []string) ([]contracts.QuoteRecord, error)
	GetMovers(ctx context.Context, kind contracts.MoverKind) ([]contracts.QuoteRecord, error)
	GetScreenerResults(ctx context.Context, filters contracts.ScreenerFilters) ([]contracts.QuoteRecord, error)
	GetNews(ctx context.Context, symbol string) ([]contracts.NewsItem, error)
	GetMarketSummary(ctx context.Context) (json.RawMessage, error)
}

// QuoteSource supplies quotes only
type QuoteSource interface {
	GetQuotes(ctx context.Context, symbols []string) ([]contracts.QuoteRecord, error)
}

// InsiderSource supplies insider trade history
type InsiderSource interface {
	GetInsiderTrades(ctx context.Context, symbol string) (*contracts.InsiderSignal, error)
}

// FilingSource runs SEC full-text searches
type FilingSource interface {
	SearchFilings(ctx context.Context, query contracts.FilingQuery) (*contracts.FilingSearchResult, error)
}

// Composite combines the upstream sources into one contracts.Provider,
// with optional fallbacks and a Redis response cache in front.
// ⭐ SSOT: fallback order and cache TTLs are decided here only
type Composite struct {
	market          MarketSource
	insider         InsiderSource
	filings         FilingSource
	quoteFallback   QuoteSource
	insiderFallback InsiderSource
	cache           *redis.Cache
	logger          *logger.Logger
}

var _ contracts.Provider = (*Composite)(nil)

// Option configures a Composite
type Option func(*Composite)

// WithQuoteFallback sets the source used when the primary quote call fails
func WithQuoteFallback(src QuoteSource) Option {
	return func(c *Composite) { c.quoteFallback = src }
}

// WithInsiderFallback sets the source used when the primary insider call fails
func WithInsiderFallback(src InsiderSource) Option {
	return func(c *Composite) { c.insiderFallback = src }
}

// WithCache puts a response cache in front of every upstream call
func WithCache(cache *redis.Cache) Option {
	return func(c *Composite) { c.cache = cache }
}

// New creates a composite provider
func New(market MarketSource, insider InsiderSource, filings FilingSource, log *logger.Logger, opts ...Option) *Composite {
	c := &Composite{
		market:  market,
		insider: insider,
		filings: filings,
		cache:   redis.NewCache(redis.Disabled(), "dinotradez"),
		logger:  log.WithField("module", "provider"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetQuotes returns quotes, falling back to the secondary source on failure
func (c *Composite) GetQuotes(ctx context.Context, symbols []string) ([]contracts.QuoteRecord, error) {
	var out []contracts.QuoteRecord
	err := c.cache.GetOrSet(ctx, redis.QuotesKey(symbols), &out, redis.TTLQuotes, func() (interface{}, error) {
		quotes, err := c.market.GetQuotes(ctx, symbols)
		if err == nil || c.quoteFallback == nil {
			return quotes, err
		}

		c.logger.WithError(err).WithField("symbols", len(symbols)).Warn("Primary quotes failed, using fallback")
		fallback, fbErr := c.quoteFallback.GetQuotes(ctx, symbols)
		if fbErr != nil {
			return nil, fmt.Errorf("%w (fallback: %v)", err, fbErr)
		}
		return fallback, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetMovers returns one mover list
func (c *Composite) GetMovers(ctx context.Context, kind contracts.MoverKind) ([]contracts.QuoteRecord, error) {
	var out []contracts.QuoteRecord
	err := c.cache.GetOrSet(ctx, redis.MoversKey(string(kind)), &out, redis.TTLQuotes, func() (interface{}, error) {
		return c.market.GetMovers(ctx, kind)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetScreenerResults runs the screener
func (c *Composite) GetScreenerResults(ctx context.Context, filters contracts.ScreenerFilters) ([]contracts.QuoteRecord, error) {
	key := redis.ScreenerKey(filters.MarketCapRange, filters.PriceMin, filters.PriceMax)
	if filters.Sector != "" || filters.Industry != "" {
		key = fmt.Sprintf("%s:%s:%s", key, filters.Sector, filters.Industry)
	}

	var out []contracts.QuoteRecord
	err := c.cache.GetOrSet(ctx, key, &out, redis.TTLQuotes, func() (interface{}, error) {
		return c.market.GetScreenerResults(ctx, filters)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetInsiderTrades returns insider history, falling back to the secondary source on failure
func (c *Composite) GetInsiderTrades(ctx context.Context, symbol string) (*contracts.InsiderSignal, error) {
	var out contracts.InsiderSignal
	err := c.cache.GetOrSet(ctx, redis.InsiderKey(symbol), &out, redis.TTLInsider, func() (interface{}, error) {
		signal, err := c.insider.GetInsiderTrades(ctx, symbol)
		if err == nil || c.insiderFallback == nil {
			return signal, err
		}

		c.logger.WithError(err).WithField("symbol", symbol).Warn("Primary insider lookup failed, using fallback")
		fallback, fbErr := c.insiderFallback.GetInsiderTrades(ctx, symbol)
		if fbErr != nil {
			return nil, fmt.Errorf("%w (fallback: %v)", err, fbErr)
		}
		return fallback, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchFilings runs an EDGAR full-text search
func (c *Composite) SearchFilings(ctx context.Context, query contracts.FilingQuery) (*contracts.FilingSearchResult, error) {
	key := redis.FilingsKey(query.Form, query.Start.Format("2006-01-02"), query.End.Format("2006-01-02"), query.Limit)

	var out contracts.FilingSearchResult
	err := c.cache.GetOrSet(ctx, key, &out, redis.TTLFilings, func() (interface{}, error) {
		return c.filings.SearchFilings(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetNews returns headlines, market-wide when symbol is empty
func (c *Composite) GetNews(ctx context.Context, symbol string) ([]contracts.NewsItem, error) {
	var out []contracts.NewsItem
	err := c.cache.GetOrSet(ctx, "news:"+symbol, &out, redis.TTLOverview, func() (interface{}, error) {
		return c.market.GetNews(ctx, symbol)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetMarketSummary returns the raw market overview
func (c *Composite) GetMarketSummary(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.cache.GetOrSet(ctx, "overview", &out, redis.TTLOverview, func() (interface{}, error) {
		return c.market.GetMarketSummary(ctx)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
