package contracts

import (
	"context"
	"encoding/json"
)

// Provider supplies raw market data to the analytics features
// ⭐ SSOT: the only upstream data interface the core depends on
type Provider interface {
	GetQuotes(ctx context.Context, symbols []string) ([]QuoteRecord, error)
	GetMovers(ctx context.Context, kind MoverKind) ([]QuoteRecord, error)
	GetScreenerResults(ctx context.Context, filters ScreenerFilters) ([]QuoteRecord, error)
	GetInsiderTrades(ctx context.Context, symbol string) (*InsiderSignal, error)
	SearchFilings(ctx context.Context, query FilingQuery) (*FilingSearchResult, error)
	GetNews(ctx context.Context, symbol string) ([]NewsItem, error)
	GetMarketSummary(ctx context.Context) (json.RawMessage, error)
}

// SymbolSetName names a default symbol list
type SymbolSetName string

const (
	SymbolSetDarkPool SymbolSetName = "darkpool"
	SymbolSetBullish  SymbolSetName = "bullish"
	SymbolSetBearish  SymbolSetName = "bearish"
)

// SymbolSetStore resolves the symbol list a feature scans by default
type SymbolSetStore interface {
	Symbols(ctx context.Context, name SymbolSetName) ([]string, error)
}
