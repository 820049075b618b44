package aggregator

import (
	"time"

	"github.com/dinotradez/backend/internal/contracts"
)

// DarkPoolResult is the dark-pool feature output
type DarkPoolResult struct {
	Estimates       []contracts.DarkPoolEstimate `json:"darkPoolData"`
	UnusualActivity []contracts.DarkPoolEstimate `json:"unusualActivity"`
	Omitted         []contracts.SubFetchFailure  `json:"omitted"`
	Missing         []string                     `json:"missing"`
	LastUpdated     time.Time                    `json:"lastUpdated"`
}

// LottoResult is the lotto feature output
type LottoResult struct {
	Picks []contracts.LottoCandidate `json:"lottoPicks"`
}

// WatchlistResult holds the quotes that passed one watchlist rule set
type WatchlistResult struct {
	Quotes  []contracts.QuoteRecord `json:"quotes"`
	Scanned int                     `json:"scanned"`
	Missing []string                `json:"missing"`
}

// FilingsResult is the deduplicated filing list plus the upstream hit count
type FilingsResult struct {
	Filings []contracts.FilingRecord `json:"filings"`
	Total   int                      `json:"total"`
}

// NewsResult is the headline feed plus repeated headline words
type NewsResult struct {
	Items          []contracts.NewsItem      `json:"items"`
	TrendingTopics []contracts.TrendingTopic `json:"trendingTopics"`
}
