package scoringconfig

// Config holds every tunable threshold of the analytics features
type Config struct {
	Meta      Meta      `yaml:"meta" json:"meta"`
	DarkPool  DarkPool  `yaml:"dark_pool" json:"dark_pool"`
	Lotto     Lotto     `yaml:"lotto" json:"lotto"`
	Screener  Screener  `yaml:"screener" json:"screener"`
	Watchlist Watchlist `yaml:"watchlist" json:"watchlist"`
	Symbols   Symbols   `yaml:"symbols" json:"symbols"`
}

// Meta identifies the config revision
type Meta struct {
	ConfigID string `yaml:"config_id" json:"config_id"`
	Version  string `yaml:"version" json:"version"`
}

// Range is a half-open [Min, Max) interval
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Width returns Max - Min
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// DarkPool drives the dark-pool estimator
type DarkPool struct {
	InsiderMultiplier  Range   `yaml:"insider_multiplier" json:"insider_multiplier"`   // with insider activity
	BaselineMultiplier Range   `yaml:"baseline_multiplier" json:"baseline_multiplier"` // without
	UnusualVolumeRatio float64 `yaml:"unusual_volume_ratio" json:"unusual_volume_ratio"`
	UnusualMinPercent  float64 `yaml:"unusual_min_percent" json:"unusual_min_percent"` // unusual-activity feed cut
}

// Lotto drives the lotto ranker gates and score weights
type Lotto struct {
	MinChangePercent  float64 `yaml:"min_change_percent" json:"min_change_percent"`
	MinPrice          float64 `yaml:"min_price" json:"min_price"`
	MaxPrice          float64 `yaml:"max_price" json:"max_price"`
	MinVolume         int64   `yaml:"min_volume" json:"min_volume"`
	VolatilityDivisor float64 `yaml:"volatility_divisor" json:"volatility_divisor"`
	VolumeDivisor     float64 `yaml:"volume_divisor" json:"volume_divisor"`
	VolumeFactorCap   float64 `yaml:"volume_factor_cap" json:"volume_factor_cap"`
	VolatilityWeight  float64 `yaml:"volatility_weight" json:"volatility_weight"` // volatility + volume = 1.0
	VolumeWeight      float64 `yaml:"volume_weight" json:"volume_weight"`
	NegativeMomentum  float64 `yaml:"negative_momentum" json:"negative_momentum"`
	Limit             int     `yaml:"limit" json:"limit"`
}

// Screener is the lotto screener query
type Screener struct {
	MarketCap string  `yaml:"market_cap" json:"market_cap"`
	PriceMin  float64 `yaml:"price_min" json:"price_min"`
	PriceMax  float64 `yaml:"price_max" json:"price_max"`
}

// Watchlist sets how many of the four technical predicates must hold
type Watchlist struct {
	MinFactors int `yaml:"min_factors" json:"min_factors"`
}

// Symbols are the built-in default symbol sets
type Symbols struct {
	DarkPool []string `yaml:"dark_pool" json:"dark_pool"`
	Bullish  []string `yaml:"bullish" json:"bullish"`
	Bearish  []string `yaml:"bearish" json:"bearish"`
}

// Default returns the production thresholds
func Default() *Config {
	return &Config{
		Meta: Meta{
			ConfigID: "dinotradez_default",
			Version:  "1.0.0",
		},
		DarkPool: DarkPool{
			InsiderMultiplier:  Range{Min: 0.3, Max: 0.7},
			BaselineMultiplier: Range{Min: 0.2, Max: 0.5},
			UnusualVolumeRatio: 1.5,
			UnusualMinPercent:  30,
		},
		Lotto: Lotto{
			MinChangePercent:  2.5,
			MinPrice:          0.5,
			MaxPrice:          50,
			MinVolume:         500_000,
			VolatilityDivisor: 5,
			VolumeDivisor:     5_000_000,
			VolumeFactorCap:   3,
			VolatilityWeight:  0.7,
			VolumeWeight:      0.3,
			NegativeMomentum:  -0.5,
			Limit:             10,
		},
		Screener: Screener{
			MarketCap: "100M,2B",
			PriceMin:  1,
			PriceMax:  50,
		},
		Watchlist: Watchlist{
			MinFactors: 3,
		},
		Symbols: Symbols{
			DarkPool: []string{
				"SPY", "QQQ", "AAPL", "MSFT", "AMZN", "TSLA", "NVDA", "AMD", "META", "GOOG",
				"NFLX", "INTC", "BA", "XOM", "JPM", "GS", "MS", "C", "BAC", "WFC",
			},
			Bullish: []string{
				"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "AMD", "TSLA", "META", "NFLX", "DIS",
				"PYPL", "SQ", "ROKU", "SHOP", "CRWD", "DDOG", "SNOW", "NET", "PLTR", "U",
				"CRM", "ADBE", "NOW", "INTU", "AMAT", "KLAC", "ASML", "CDNS", "SNPS", "FTNT",
			},
			Bearish: []string{
				"F", "GE", "T", "INTC", "BA", "XOM", "VZ", "MO", "CVX", "IBM",
				"WFC", "C", "PFE", "KO", "CSCO", "GM", "HPQ", "BBY", "GPS", "KSS",
				"CAT", "DE", "MMM", "DOW", "DD", "LYB", "FCX", "X", "CLF", "NUE",
			},
		},
	}
}
