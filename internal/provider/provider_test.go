package provider

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/pkg/logger"
)

type fakeMarket struct {
	quotes    []contracts.QuoteRecord
	quotesErr error
	calls     map[string]int
}

func newFakeMarket() *fakeMarket {
	return &fakeMarket{calls: map[string]int{}}
}

func (f *fakeMarket) GetQuotes(ctx context.Context, symbols []string) ([]contracts.QuoteRecord, error) {
	f.calls["quotes"]++
	return f.quotes, f.quotesErr
}

func (f *fakeMarket) GetMovers(ctx context.Context, kind contracts.MoverKind) ([]contracts.QuoteRecord, error) {
	f.calls["movers:"+string(kind)]++
	return []contracts.QuoteRecord{{Symbol: "UP", ChangePercent: 25}}, nil
}

func (f *fakeMarket) GetScreenerResults(ctx context.Context, filters contracts.ScreenerFilters) ([]contracts.QuoteRecord, error) {
	f.calls["screener"]++
	return []contracts.QuoteRecord{{Symbol: "SCR"}}, nil
}

func (f *fakeMarket) GetNews(ctx context.Context, symbol string) ([]contracts.NewsItem, error) {
	f.calls["news"]++
	return []contracts.NewsItem{{Title: "Markets rally"}}, nil
}

func (f *fakeMarket) GetMarketSummary(ctx context.Context) (json.RawMessage, error) {
	f.calls["summary"]++
	return json.RawMessage(`{"marketSummaryResponse":{"result":[]}}`), nil
}

type fakeQuotes struct {
	quotes []contracts.QuoteRecord
	err    error
	calls  int
}

func (f *fakeQuotes) GetQuotes(ctx context.Context, symbols []string) ([]contracts.QuoteRecord, error) {
	f.calls++
	return f.quotes, f.err
}

type fakeInsider struct {
	signal *contracts.InsiderSignal
	err    error
	calls  int
}

func (f *fakeInsider) GetInsiderTrades(ctx context.Context, symbol string) (*contracts.InsiderSignal, error) {
	f.calls++
	return f.signal, f.err
}

type fakeFilings struct {
	query contracts.FilingQuery
}

func (f *fakeFilings) SearchFilings(ctx context.Context, query contracts.FilingQuery) (*contracts.FilingSearchResult, error) {
	f.query = query
	return &contracts.FilingSearchResult{
		Hits:  []contracts.SearchHit{{ID: "1", Source: contracts.SearchHitSource{Adsh: "A"}}},
		Total: 7,
	}, nil
}

func TestGetQuotes_Primary(t *testing.T) {
	market := newFakeMarket()
	market.quotes = []contracts.QuoteRecord{{Symbol: "AAPL", Price: 100}}
	fallback := &fakeQuotes{}

	p := New(market, &fakeInsider{}, &fakeFilings{}, logger.Nop(), WithQuoteFallback(fallback))

	quotes, err := p.GetQuotes(context.Background(), []string{"AAPL"})
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, 100.0, quotes[0].Price)
	assert.Equal(t, 0, fallback.calls)
}

func TestGetQuotes_Fallback(t *testing.T) {
	market := newFakeMarket()
	market.quotesErr = errors.New("unexpected status code: 503")
	fallback := &fakeQuotes{quotes: []contracts.QuoteRecord{{Symbol: "AAPL", Price: 99}}}

	p := New(market, &fakeInsider{}, &fakeFilings{}, logger.Nop(), WithQuoteFallback(fallback))

	quotes, err := p.GetQuotes(context.Background(), []string{"AAPL"})
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, 99.0, quotes[0].Price)
	assert.Equal(t, 1, fallback.calls)
}

func TestGetQuotes_BothFail(t *testing.T) {
	primaryErr := errors.New("primary down")
	market := newFakeMarket()
	market.quotesErr = primaryErr
	fallback := &fakeQuotes{err: errors.New("fallback down")}

	p := New(market, &fakeInsider{}, &fakeFilings{}, logger.Nop(), WithQuoteFallback(fallback))

	_, err := p.GetQuotes(context.Background(), []string{"AAPL"})
	require.Error(t, err)
	assert.ErrorIs(t, err, primaryErr)
	assert.Contains(t, err.Error(), "fallback down")
}

func TestGetQuotes_NoFallback(t *testing.T) {
	market := newFakeMarket()
	market.quotesErr = errors.New("primary down")

	p := New(market, &fakeInsider{}, &fakeFilings{}, logger.Nop())

	_, err := p.GetQuotes(context.Background(), []string{"AAPL"})
	require.Error(t, err)
}

func TestGetInsiderTrades(t *testing.T) {
	tests := []struct {
		name         string
		primary      *fakeInsider
		fallback     *fakeInsider
		wantErr      bool
		wantActivity bool
	}{
		{
			name:         "primary success",
			primary:      &fakeInsider{signal: &contracts.InsiderSignal{Symbol: "XYZ", Trades: []contracts.InsiderTrade{{Insider: "Doe"}}}},
			wantActivity: true,
		},
		{
			name:    "primary failure without fallback",
			primary: &fakeInsider{err: errors.New("timeout")},
			wantErr: true,
		},
		{
			name:         "fallback used",
			primary:      &fakeInsider{err: errors.New("timeout")},
			fallback:     &fakeInsider{signal: &contracts.InsiderSignal{Symbol: "XYZ", Trades: []contracts.InsiderTrade{{Insider: "Roe"}}}},
			wantActivity: true,
		},
		{
			name:     "fallback failure",
			primary:  &fakeInsider{err: errors.New("timeout")},
			fallback: &fakeInsider{err: errors.New("blocked")},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.fallback != nil {
				opts = append(opts, WithInsiderFallback(tt.fallback))
			}
			p := New(newFakeMarket(), tt.primary, &fakeFilings{}, logger.Nop(), opts...)

			signal, err := p.GetInsiderTrades(context.Background(), "XYZ")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantActivity, signal.HasActivity())
		})
	}
}

func TestPassthroughs(t *testing.T) {
	market := newFakeMarket()
	filings := &fakeFilings{}
	p := New(market, &fakeInsider{}, filings, logger.Nop())
	ctx := context.Background()

	movers, err := p.GetMovers(ctx, contracts.MoversGainers)
	require.NoError(t, err)
	assert.Equal(t, "UP", movers[0].Symbol)
	assert.Equal(t, 1, market.calls["movers:gainers"])

	screener, err := p.GetScreenerResults(ctx, contracts.ScreenerFilters{MarketCapRange: "100M,2B", PriceMin: 1, PriceMax: 50})
	require.NoError(t, err)
	assert.Equal(t, "SCR", screener[0].Symbol)

	news, err := p.GetNews(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Markets rally", news[0].Title)

	summary, err := p.GetMarketSummary(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"marketSummaryResponse":{"result":[]}}`, string(summary))

	query := contracts.NewFilingQuery("S-1", 10, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))
	result, err := p.SearchFilings(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, 7, result.Total)
	assert.Equal(t, "A", result.Hits[0].Source.Adsh)
	assert.Equal(t, "S-1", filings.query.Form)
}
