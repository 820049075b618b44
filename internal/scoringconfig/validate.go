package scoringconfig

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError is a config constraint violation
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks all required constraints
func Validate(cfg *Config) error {
	// === Dark pool ===
	if err := validateRange(cfg.DarkPool.InsiderMultiplier, "dark_pool.insider_multiplier"); err != nil {
		return err
	}
	if err := validateRange(cfg.DarkPool.BaselineMultiplier, "dark_pool.baseline_multiplier"); err != nil {
		return err
	}
	if cfg.DarkPool.UnusualVolumeRatio <= 0 {
		return ValidationError{"dark_pool.unusual_volume_ratio", "must be > 0"}
	}
	if cfg.DarkPool.UnusualMinPercent < 0 || cfg.DarkPool.UnusualMinPercent > 100 {
		return ValidationError{"dark_pool.unusual_min_percent", "must be in [0, 100]"}
	}

	// === Lotto ===
	l := cfg.Lotto
	if l.MinPrice < 0 || l.MinPrice >= l.MaxPrice {
		return ValidationError{"lotto.min_price", "must be >= 0 and < max_price"}
	}
	if l.MinVolume < 0 {
		return ValidationError{"lotto.min_volume", "must be >= 0"}
	}
	if l.VolatilityDivisor <= 0 || l.VolumeDivisor <= 0 {
		return ValidationError{"lotto", "divisors must be > 0"}
	}
	if l.VolumeFactorCap <= 0 {
		return ValidationError{"lotto.volume_factor_cap", "must be > 0"}
	}
	if l.VolatilityWeight < 0 || l.VolumeWeight < 0 {
		return ValidationError{"lotto", "weights must be >= 0"}
	}
	if math.Abs(l.VolatilityWeight+l.VolumeWeight-1.0) > 1e-6 {
		return ValidationError{"lotto", fmt.Sprintf("weights must sum to 1.0, got %.4f", l.VolatilityWeight+l.VolumeWeight)}
	}
	if l.NegativeMomentum > 0 {
		return ValidationError{"lotto.negative_momentum", "must be <= 0"}
	}
	if l.Limit < 1 {
		return ValidationError{"lotto.limit", "must be >= 1"}
	}

	// === Screener ===
	if strings.TrimSpace(cfg.Screener.MarketCap) == "" {
		return ValidationError{"screener.market_cap", "required"}
	}
	if cfg.Screener.PriceMin < 0 || cfg.Screener.PriceMin >= cfg.Screener.PriceMax {
		return ValidationError{"screener.price_min", "must be >= 0 and < price_max"}
	}

	// === Watchlist ===
	if cfg.Watchlist.MinFactors < 1 || cfg.Watchlist.MinFactors > 4 {
		return ValidationError{"watchlist.min_factors", "must be in [1, 4]"}
	}

	// === Symbols ===
	if err := validateSymbols(cfg.Symbols.DarkPool, "symbols.dark_pool"); err != nil {
		return err
	}
	if err := validateSymbols(cfg.Symbols.Bullish, "symbols.bullish"); err != nil {
		return err
	}
	if err := validateSymbols(cfg.Symbols.Bearish, "symbols.bearish"); err != nil {
		return err
	}

	return nil
}

func validateRange(r Range, field string) error {
	if r.Min < 0 || r.Max > 1 {
		return ValidationError{field, "must stay within [0, 1]"}
	}
	if r.Min >= r.Max {
		return ValidationError{field, "min must be < max"}
	}
	return nil
}

func validateSymbols(symbols []string, field string) error {
	if len(symbols) == 0 {
		return ValidationError{field, "must not be empty"}
	}
	for _, s := range symbols {
		if strings.TrimSpace(s) == "" {
			return ValidationError{field, "contains an empty symbol"}
		}
	}
	return nil
}
