package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/dinotradez/backend/internal/aggregator"
	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/internal/external/edgar"
	"github.com/dinotradez/backend/internal/external/openinsider"
	"github.com/dinotradez/backend/internal/external/yahoo"
	"github.com/dinotradez/backend/internal/external/yfin"
	"github.com/dinotradez/backend/internal/provider"
	"github.com/dinotradez/backend/internal/scoringconfig"
	"github.com/dinotradez/backend/internal/universe"
	"github.com/dinotradez/backend/pkg/config"
	"github.com/dinotradez/backend/pkg/database"
	"github.com/dinotradez/backend/pkg/httputil"
	"github.com/dinotradez/backend/pkg/logger"
	"github.com/dinotradez/backend/pkg/metrics"
	"github.com/dinotradez/backend/pkg/redis"
)

// app holds the wired dependencies shared by every command
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	redis    *redis.Client
	db       *database.DB // nil when DATABASE_URL is empty
	repo     *universe.Repository
	scoring  *scoringconfig.Config
	provider *provider.Composite
	agg      *aggregator.Aggregator
	metrics  *metrics.Metrics
}

// loadConfig loads env config and applies the global flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if scoringFile != "" {
		cfg.ScoringConfigPath = scoringFile
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// bootstrap wires config, logger, redis, database, upstream clients, provider and aggregator
func bootstrap(ctx context.Context) (*app, error) {
	// 1. Load config
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	a := &app{cfg: cfg, log: log}

	// 3. Connect to redis (no-op client when disabled)
	a.redis, err = redis.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	// 4. Connect to database (optional)
	a.db, err = database.New(ctx, cfg)
	switch {
	case errors.Is(err, database.ErrNotConfigured):
		log.Info("DATABASE_URL not set, using built-in symbol sets")
	case err != nil:
		a.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	default:
		a.repo = universe.NewRepository(a.db.Pool)
		if err := a.repo.EnsureSchema(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("ensure universe schema: %w", err)
		}
		log.Info("Connected to database")
	}

	// 5. Load scoring thresholds
	a.scoring, err = scoringconfig.Load(cfg.ScoringConfigPath)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("load scoring config: %w", err)
	}

	// 6. Metrics
	if cfg.MetricsEnabled {
		a.metrics = metrics.New()
	}

	// 7. Create upstream clients
	a.provider = newProvider(cfg, log, a.redis)

	// 8. Create aggregator
	opts := []aggregator.Option{aggregator.WithSymbolStore(a.symbolStore())}
	if a.metrics != nil {
		opts = append(opts, aggregator.WithMetrics(a.metrics))
	}
	a.agg = aggregator.New(a.provider, a.scoring, aggregator.Config{
		Workers: cfg.Provider.InsiderWorkers,
		Timeout: cfg.Provider.Timeout,
	}, log, opts...)

	return a, nil
}

// newProvider builds the composite provider with its fallbacks, limiters and cache
func newProvider(cfg *config.Config, log *logger.Logger, rdb *redis.Client) *provider.Composite {
	limiter := redis.NewRateLimiter(rdb, "dinotradez")

	rapidHTTP := httputil.New(cfg, log).
		WithRateLimiter(limiter, redis.RapidAPIRateLimit).
		WithCircuitBreaker(httputil.DefaultBreakerConfig("rapidapi"))
	yahooClient := yahoo.NewClient(rapidHTTP, cfg.Provider, log)

	edgarClient := edgar.NewClient(cfg.EDGAR, cfg.Provider.Timeout, log).WithRateLimiter(limiter)

	opts := []provider.Option{provider.WithCache(redis.NewCache(rdb, "dinotradez"))}
	if cfg.Provider.QuoteFallbackEnabled {
		opts = append(opts, provider.WithQuoteFallback(yfin.NewClient(log)))
	}
	if cfg.Provider.InsiderFallbackEnabled {
		scrapeHTTP := httputil.New(cfg, log).
			WithRateLimiter(limiter, redis.OpenInsiderRateLimit).
			WithCircuitBreaker(httputil.DefaultBreakerConfig("openinsider"))
		opts = append(opts, provider.WithInsiderFallback(
			openinsider.NewClient(scrapeHTTP, cfg.Provider.OpenInsiderBaseURL, log)))
	}

	return provider.New(yahooClient, yahooClient, edgarClient, log, opts...)
}

// symbolStore prefers the database repository over the YAML symbol lists
func (a *app) symbolStore() contracts.SymbolSetStore {
	if a.repo != nil {
		return a.repo
	}
	return universe.NewStaticStore(a.scoring.Symbols)
}

// Close releases the database pool and redis connection
func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.WithError(err).Warn("Failed to close redis")
		}
	}
}
