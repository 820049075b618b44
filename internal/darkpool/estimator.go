// Package darkpool simulates dark-pool activity from public volume and insider signals.
//
// The estimate is a heuristic: a random share of the day's volume is attributed to
// off-exchange venues, with a higher band when insiders have been trading.
// Every estimate is flagged IsEstimate so consumers label it as approximate.
package darkpool

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/internal/scoringconfig"
	"github.com/dinotradez/backend/pkg/numeric"
)

// RandomSource yields uniform draws in [0, 1)
type RandomSource interface {
	Float64() float64
}

// globalRand uses the goroutine-safe top-level generator
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Estimator converts quotes into dark-pool estimates
type Estimator struct {
	cfg   scoringconfig.DarkPool
	rng   RandomSource
	clock func() time.Time
}

// Option configures an Estimator
type Option func(*Estimator)

// WithRandomSource pins the multiplier draws (tests)
func WithRandomSource(r RandomSource) Option {
	return func(e *Estimator) { e.rng = r }
}

// WithClock replaces time.Now for lastUpdated
func WithClock(clock func() time.Time) Option {
	return func(e *Estimator) { e.clock = clock }
}

// New creates an Estimator
func New(cfg scoringconfig.DarkPool, opts ...Option) *Estimator {
	e := &Estimator{
		cfg:   cfg,
		rng:   globalRand{},
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate derives one estimate. insider may be nil (lookup failed or skipped).
func (e *Estimator) Estimate(quote contracts.QuoteRecord, insider *contracts.InsiderSignal) contracts.DarkPoolEstimate {
	hasInsider := insider.HasActivity()

	volume := quote.Volume
	if volume < 0 {
		volume = 0
	}
	avgVolume := quote.AvgVolume
	if avgVolume <= 0 {
		avgVolume = 1
	}

	band := e.cfg.BaselineMultiplier
	if hasInsider {
		band = e.cfg.InsiderMultiplier
	}
	multiplier := band.Min + e.rng.Float64()*band.Width()

	est := contracts.DarkPoolEstimate{
		Symbol:             quote.Symbol,
		Name:               quote.Name,
		Price:              quote.Price,
		Change:             quote.Change,
		ChangePercent:      quote.ChangePercent,
		Volume:             volume,
		AvgVolume:          avgVolume,
		VolumeRatio:        numeric.Round(float64(volume)/float64(avgVolume), 2),
		DarkPoolVolume:     int64(math.Floor(float64(volume) * multiplier)),
		IsUnusual:          float64(volume) > float64(avgVolume)*e.cfg.UnusualVolumeRatio || hasInsider,
		HasInsiderActivity: hasInsider,
		IsEstimate:         true,
		DataAvailable:      volume > 0,
		LastUpdated:        e.clock().UTC(),
	}

	if volume > 0 {
		pct := numeric.Round(float64(est.DarkPoolVolume)/float64(volume)*100, 2)
		est.DarkPoolPercent = &pct
	}

	return est
}

// UnusualActivity keeps unusual estimates whose dark-pool share exceeds the configured cut.
// Input order is preserved; estimates without data never qualify.
func (e *Estimator) UnusualActivity(estimates []contracts.DarkPoolEstimate) []contracts.DarkPoolEstimate {
	out := make([]contracts.DarkPoolEstimate, 0)
	for _, est := range estimates {
		if est.IsUnusual && est.DarkPoolPercent != nil && *est.DarkPoolPercent > e.cfg.UnusualMinPercent {
			out = append(out, est)
		}
	}
	return out
}
