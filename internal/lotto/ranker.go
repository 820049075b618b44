// Package lotto ranks high-volatility speculative candidates.
package lotto

import (
	"fmt"
	"sort"

	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/internal/scoringconfig"
	"github.com/dinotradez/backend/pkg/logger"
	"github.com/dinotradez/backend/pkg/numeric"
)

// Score bounds
const (
	MinScore = 0.0
	MaxScore = 10.0
)

// Ranker scores and ranks lotto candidates
// ⭐ SSOT: lotto gates, score formula and buckets live only here
type Ranker struct {
	cfg    scoringconfig.Lotto
	logger *logger.Logger
}

// NewRanker creates a new ranker
func NewRanker(cfg scoringconfig.Lotto, log *logger.Logger) *Ranker {
	return &Ranker{
		cfg:    cfg,
		logger: log,
	}
}

// Rank concatenates gainers, actives and screener results (no dedup by symbol),
// gates, scores, and returns at most Limit candidates sorted by score descending.
// Ties keep source order.
func (r *Ranker) Rank(gainers, actives, screener []contracts.QuoteRecord) []contracts.LottoCandidate {
	pool := make([]contracts.QuoteRecord, 0, len(gainers)+len(actives)+len(screener))
	pool = append(pool, gainers...)
	pool = append(pool, actives...)
	pool = append(pool, screener...)

	candidates := make([]contracts.LottoCandidate, 0, len(pool))
	for _, q := range pool {
		if !r.Passes(q) {
			continue
		}

		score, ok := r.Score(q)
		if !ok {
			r.logger.WithField("symbol", q.Symbol).Warn("Dropping non-finite lotto score")
			continue
		}

		candidates = append(candidates, r.candidate(q, score))
	}

	// Stable: equal scores keep concatenation order
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].LottoScore > candidates[j].LottoScore
	})

	if len(candidates) > r.cfg.Limit {
		candidates = candidates[:r.cfg.Limit]
	}

	r.logger.WithFields(map[string]interface{}{
		"pool":       len(pool),
		"candidates": len(candidates),
	}).Debug("Lotto ranking completed")

	return candidates
}

// Passes applies the liquidity, price and volatility gates
func (r *Ranker) Passes(q contracts.QuoteRecord) bool {
	return q.ChangePercent > r.cfg.MinChangePercent &&
		q.Price > r.cfg.MinPrice &&
		q.Price < r.cfg.MaxPrice &&
		q.Volume > r.cfg.MinVolume
}

// Score returns the published score: clamp((raw+10)/2, 0, 10) rounded to one decimal.
// ok is false when the score is not finite.
func (r *Ranker) Score(q contracts.QuoteRecord) (float64, bool) {
	volatility := q.ChangePercent / r.cfg.VolatilityDivisor
	volumeFactor := float64(q.Volume) / r.cfg.VolumeDivisor
	if volumeFactor > r.cfg.VolumeFactorCap {
		volumeFactor = r.cfg.VolumeFactorCap
	}

	momentum := 1.0
	if q.ChangePercent <= 0 {
		momentum = r.cfg.NegativeMomentum
	}

	raw := (r.cfg.VolatilityWeight*volatility + r.cfg.VolumeWeight*volumeFactor) * momentum
	if !numeric.IsFinite(raw) {
		return 0, false
	}

	return numeric.Round(numeric.Clamp((raw+10)/2, MinScore, MaxScore), 1), true
}

func (r *Ranker) candidate(q contracts.QuoteRecord, score float64) contracts.LottoCandidate {
	return contracts.LottoCandidate{
		Symbol:          q.Symbol,
		Name:            q.Name,
		Price:           q.Price,
		Change:          q.Change,
		ChangePercent:   q.ChangePercent,
		Volume:          q.Volume,
		LottoScore:      score,
		RiskLevel:       RiskLevelFor(score),
		PotentialReturn: PotentialReturn(score),
		Recommendation:  RecommendationFor(score),
	}
}

// RiskLevelFor buckets a published score: High > 7, Medium > 4, else Low
func RiskLevelFor(score float64) contracts.RiskLevel {
	switch {
	case score > 7:
		return contracts.RiskHigh
	case score > 4:
		return contracts.RiskMedium
	default:
		return contracts.RiskLow
	}
}

// RecommendationFor buckets a published score: Strong Buy > 6, Buy > 4, else Watch
func RecommendationFor(score float64) contracts.Recommendation {
	switch {
	case score > 6:
		return contracts.RecommendStrongBuy
	case score > 4:
		return contracts.RecommendBuy
	default:
		return contracts.RecommendWatch
	}
}

// PotentialReturn formats round(score*10) as a percent string
func PotentialReturn(score float64) string {
	return fmt.Sprintf("%d%%", int(numeric.Round(score*10, 0)))
}
