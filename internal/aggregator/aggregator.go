package aggregator

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/internal/darkpool"
	"github.com/dinotradez/backend/internal/lotto"
	"github.com/dinotradez/backend/internal/scoringconfig"
	"github.com/dinotradez/backend/internal/watchlist"
	"github.com/dinotradez/backend/pkg/logger"
	"github.com/dinotradez/backend/pkg/metrics"
)

// Feature names used in errors, logs and metrics
const (
	FeatureDarkPool = "darkpool"
	FeatureLotto    = "lotto"
	FeatureBullish  = "bullish_watchlist"
	FeatureBearish  = "bearish_watchlist"
	FeatureFilings  = "filings"
	FeatureNews     = "news"
)

// Config holds orchestration limits
type Config struct {
	Workers int           // concurrent insider lookups
	Timeout time.Duration // per sub-fetch
}

// Aggregator runs each analytics feature: fetch, transform, package
// ⭐ SSOT: feature orchestration lives here only; transforms stay pure
type Aggregator struct {
	provider   contracts.Provider
	symbols    contracts.SymbolSetStore
	scoring    *scoringconfig.Config
	estimator  *darkpool.Estimator
	ranker     *lotto.Ranker
	classifier *watchlist.Classifier
	metrics    *metrics.Metrics
	cfg        Config
	logger     *logger.Logger
	now        func() time.Time
}

// Option configures an Aggregator
type Option func(*Aggregator)

// WithSymbolStore resolves default symbol sets from a store before the built-in lists
func WithSymbolStore(store contracts.SymbolSetStore) Option {
	return func(a *Aggregator) { a.symbols = store }
}

// WithMetrics records feature outcomes
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Aggregator) { a.metrics = m }
}

// WithEstimator replaces the dark-pool estimator (e.g. with a seeded random source)
func WithEstimator(e *darkpool.Estimator) Option {
	return func(a *Aggregator) { a.estimator = e }
}

// WithClock overrides the result timestamp source
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// New creates an aggregator
func New(provider contracts.Provider, scoring *scoringconfig.Config, cfg Config, log *logger.Logger, opts ...Option) *Aggregator {
	if scoring == nil {
		scoring = scoringconfig.Default()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	log = log.WithField("module", "aggregator")
	a := &Aggregator{
		provider:   provider,
		scoring:    scoring,
		estimator:  darkpool.New(scoring.DarkPool),
		ranker:     lotto.NewRanker(scoring.Lotto, log),
		classifier: watchlist.New(scoring.Watchlist.MinFactors),
		cfg:        cfg,
		logger:     log,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// DefaultSymbols returns the named symbol set: store first, built-in list otherwise
func (a *Aggregator) DefaultSymbols(ctx context.Context, name contracts.SymbolSetName) []string {
	if a.symbols != nil {
		symbols, err := a.symbols.Symbols(ctx, name)
		if err == nil && len(symbols) > 0 {
			return symbols
		}
		if err != nil {
			a.logger.WithError(err).WithField("set", string(name)).Warn("Symbol store unavailable, using built-in list")
		}
	}

	var builtin []string
	switch name {
	case contracts.SymbolSetDarkPool:
		builtin = a.scoring.Symbols.DarkPool
	case contracts.SymbolSetBullish:
		builtin = a.scoring.Symbols.Bullish
	case contracts.SymbolSetBearish:
		builtin = a.scoring.Symbols.Bearish
	}
	return append([]string(nil), builtin...)
}

// NormalizeSymbols trims, uppercases and drops empty entries. Order and duplicates are kept.
func NormalizeSymbols(symbols []string) []string {
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// callCtx bounds one sub-fetch
func (a *Aggregator) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.cfg.Timeout)
}

// observe records the feature outcome from its returned error
func (a *Aggregator) observe(feature string, started time.Time, err error) {
	outcome := metrics.OutcomeSuccess
	switch {
	case errors.Is(err, contracts.ErrInvalidInput):
		outcome = metrics.OutcomeInvalidInput
	case err != nil:
		outcome = metrics.OutcomeUpstream
	}
	a.metrics.ObserveFeature(feature, outcome, started)

	if err != nil {
		a.logger.WithError(err).WithField("feature", feature).Warn("Feature failed")
	}
}

// required wraps a required sub-resource failure
func required(feature, resource string, err error) error {
	return &contracts.FeatureError{Feature: feature, Resource: resource, Cause: err}
}
