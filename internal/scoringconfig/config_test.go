package scoringconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRepositoryFile(t *testing.T) {
	path := "../../config/scoring/default.yaml"
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("config file not found")
	}

	cfg, err := Load(path)
	require.NoError(t, err)

	// The shipped file restates the defaults, so hashes must match
	h1, err := Hash(cfg)
	require.NoError(t, err)
	h2, err := Hash(Default())
	require.NoError(t, err)
	assert.Equal(t, h2, h1)
	assert.Len(t, h1, 64)
}

func TestParseOverridesKeepDefaults(t *testing.T) {
	cfg, err := Parse([]byte("lotto:\n  limit: 5\n"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Lotto.Limit)
	assert.Equal(t, 2.5, cfg.Lotto.MinChangePercent)
	assert.Len(t, cfg.Symbols.Bullish, 30)
}

func TestParseUnknownFieldFails(t *testing.T) {
	_, err := Parse([]byte("lotto:\n  limt: 5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limt")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{
			name:   "inverted insider range",
			mutate: func(c *Config) { c.DarkPool.InsiderMultiplier = Range{Min: 0.7, Max: 0.3} },
			field:  "dark_pool.insider_multiplier",
		},
		{
			name:   "baseline range above one",
			mutate: func(c *Config) { c.DarkPool.BaselineMultiplier = Range{Min: 0.2, Max: 1.5} },
			field:  "dark_pool.baseline_multiplier",
		},
		{
			name:   "zero unusual ratio",
			mutate: func(c *Config) { c.DarkPool.UnusualVolumeRatio = 0 },
			field:  "dark_pool.unusual_volume_ratio",
		},
		{
			name:   "weights not summing to one",
			mutate: func(c *Config) { c.Lotto.VolumeWeight = 0.5 },
			field:  "lotto",
		},
		{
			name:   "price band inverted",
			mutate: func(c *Config) { c.Lotto.MinPrice = 60 },
			field:  "lotto.min_price",
		},
		{
			name:   "positive negative momentum",
			mutate: func(c *Config) { c.Lotto.NegativeMomentum = 0.5 },
			field:  "lotto.negative_momentum",
		},
		{
			name:   "zero limit",
			mutate: func(c *Config) { c.Lotto.Limit = 0 },
			field:  "lotto.limit",
		},
		{
			name:   "empty market cap",
			mutate: func(c *Config) { c.Screener.MarketCap = " " },
			field:  "screener.market_cap",
		},
		{
			name:   "min factors out of range",
			mutate: func(c *Config) { c.Watchlist.MinFactors = 5 },
			field:  "watchlist.min_factors",
		},
		{
			name:   "empty bullish set",
			mutate: func(c *Config) { c.Symbols.Bullish = nil },
			field:  "symbols.bullish",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			require.Error(t, err)

			var ve ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestHashDeterministic(t *testing.T) {
	h1, err := Hash(Default())
	require.NoError(t, err)

	cfg := Default()
	cfg.Lotto.Limit = 9
	h2, err := Hash(cfg)
	require.NoError(t, err)

	h3, _ := Hash(Default())
	assert.Equal(t, h1, h3)
	assert.NotEqual(t, h1, h2)
}
