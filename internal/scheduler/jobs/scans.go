package jobs

import (
	"context"
	"fmt"

	"github.com/dinotradez/backend/internal/aggregator"
	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/pkg/logger"
)

// US equity session, New York time, Monday to Friday
const marketTZ = "CRON_TZ=America/New_York "

// Scanner is the part of the aggregator the scan jobs drive
type Scanner interface {
	DefaultSymbols(ctx context.Context, name contracts.SymbolSetName) []string
	DarkPool(ctx context.Context, symbols []string) (*aggregator.DarkPoolResult, error)
	LottoPicks(ctx context.Context) (*aggregator.LottoResult, error)
	BullishWatchlist(ctx context.Context) (*aggregator.WatchlistResult, error)
	BearishWatchlist(ctx context.Context) (*aggregator.WatchlistResult, error)
	Filings(ctx context.Context, query contracts.FilingQuery) (*aggregator.FilingsResult, error)
}

// DarkPoolScanJob estimates the default dark-pool set every 15 minutes in session
// ⭐ SSOT: the periodic dark-pool scan lives in this job only
type DarkPoolScanJob struct {
	scanner Scanner
	logger  *logger.Logger
}

// NewDarkPoolScanJob creates a new dark-pool scan job
func NewDarkPoolScanJob(scanner Scanner, log *logger.Logger) *DarkPoolScanJob {
	return &DarkPoolScanJob{scanner: scanner, logger: log}
}

// Name returns the job name
func (j *DarkPoolScanJob) Name() string {
	return "darkpool_scan"
}

// Schedule returns the cron schedule (every 15 minutes, 9:30-16:00 ET covered by 9-15h)
func (j *DarkPoolScanJob) Schedule() string {
	return marketTZ + "0 */15 9-15 * * 1-5"
}

// Run executes the scan
func (j *DarkPoolScanJob) Run(ctx context.Context) error {
	symbols := j.scanner.DefaultSymbols(ctx, contracts.SymbolSetDarkPool)

	result, err := j.scanner.DarkPool(ctx, symbols)
	if err != nil {
		return fmt.Errorf("dark pool scan: %w", err)
	}

	unusual := make([]string, 0, len(result.UnusualActivity))
	for _, est := range result.UnusualActivity {
		unusual = append(unusual, est.Symbol)
	}

	j.logger.WithFields(map[string]interface{}{
		"scanned": len(result.Estimates),
		"unusual": unusual,
		"missing": len(result.Missing),
		"omitted": len(result.Omitted),
	}).Info("Dark pool scan completed")

	return nil
}

// LottoScanJob ranks lotto picks every hour in session
type LottoScanJob struct {
	scanner Scanner
	logger  *logger.Logger
}

// NewLottoScanJob creates a new lotto scan job
func NewLottoScanJob(scanner Scanner, log *logger.Logger) *LottoScanJob {
	return &LottoScanJob{scanner: scanner, logger: log}
}

// Name returns the job name
func (j *LottoScanJob) Name() string {
	return "lotto_scan"
}

// Schedule returns the cron schedule (half past each hour, 10:30-15:30 ET)
func (j *LottoScanJob) Schedule() string {
	return marketTZ + "0 30 10-15 * * 1-5"
}

// Run executes the scan
func (j *LottoScanJob) Run(ctx context.Context) error {
	result, err := j.scanner.LottoPicks(ctx)
	if err != nil {
		return fmt.Errorf("lotto scan: %w", err)
	}

	fields := map[string]interface{}{"picks": len(result.Picks)}
	if len(result.Picks) > 0 {
		fields["top_symbol"] = result.Picks[0].Symbol
		fields["top_score"] = result.Picks[0].LottoScore
	}
	j.logger.WithFields(fields).Info("Lotto scan completed")

	return nil
}

// WatchlistScanJob classifies both watchlists once after the close
type WatchlistScanJob struct {
	scanner Scanner
	logger  *logger.Logger
}

// NewWatchlistScanJob creates a new watchlist scan job
func NewWatchlistScanJob(scanner Scanner, log *logger.Logger) *WatchlistScanJob {
	return &WatchlistScanJob{scanner: scanner, logger: log}
}

// Name returns the job name
func (j *WatchlistScanJob) Name() string {
	return "watchlist_scan"
}

// Schedule returns the cron schedule (16:15 ET on weekdays)
func (j *WatchlistScanJob) Schedule() string {
	return marketTZ + "0 15 16 * * 1-5"
}

// Run executes both watchlists; either failing fails the run
func (j *WatchlistScanJob) Run(ctx context.Context) error {
	bullish, err := j.scanner.BullishWatchlist(ctx)
	if err != nil {
		return fmt.Errorf("bullish watchlist: %w", err)
	}

	bearish, err := j.scanner.BearishWatchlist(ctx)
	if err != nil {
		return fmt.Errorf("bearish watchlist: %w", err)
	}

	j.logger.WithFields(map[string]interface{}{
		"bullish": symbolsOf(bullish.Quotes),
		"bearish": symbolsOf(bearish.Quotes),
	}).Info("Watchlist scan completed")

	return nil
}

func symbolsOf(quotes []contracts.QuoteRecord) []string {
	out := make([]string, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, q.Symbol)
	}
	return out
}
