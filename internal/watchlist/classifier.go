// Package watchlist classifies quotes against bullish and bearish technical rule sets.
package watchlist

import (
	"github.com/dinotradez/backend/internal/contracts"
)

// DefaultMinFactors is how many of the four predicates must hold
const DefaultMinFactors = 3

// Classifier evaluates both rule sets. It holds no state besides the threshold.
type Classifier struct {
	minFactors int
}

// New creates a Classifier; minFactors < 1 falls back to DefaultMinFactors
func New(minFactors int) *Classifier {
	if minFactors < 1 {
		minFactors = DefaultMinFactors
	}
	return &Classifier{minFactors: minFactors}
}

// BullishFactors counts price > 50d avg, price > 200d avg, 50d avg trend > 0, change > 0.
// A missing (nil or zero) average contributes false.
func BullishFactors(q contracts.QuoteRecord) int {
	return count(
		q.HasFiftyDayAverage() && q.Price > *q.FiftyDayAverage,
		q.HasTwoHundredDayAverage() && q.Price > *q.TwoHundredDayAverage,
		q.FiftyDayAverageChangePercent > 0,
		q.ChangePercent > 0,
	)
}

// BearishFactors mirrors BullishFactors with inverted comparisons
func BearishFactors(q contracts.QuoteRecord) int {
	return count(
		q.HasFiftyDayAverage() && q.Price < *q.FiftyDayAverage,
		q.HasTwoHundredDayAverage() && q.Price < *q.TwoHundredDayAverage,
		q.FiftyDayAverageChangePercent < 0,
		q.ChangePercent < 0,
	)
}

// IsBullish reports whether enough bullish predicates hold
func (c *Classifier) IsBullish(q contracts.QuoteRecord) bool {
	return BullishFactors(q) >= c.minFactors
}

// IsBearish reports whether enough bearish predicates hold
func (c *Classifier) IsBearish(q contracts.QuoteRecord) bool {
	return BearishFactors(q) >= c.minFactors
}

// Classify evaluates both rule sets independently; no precedence is applied
func (c *Classifier) Classify(q contracts.QuoteRecord) contracts.WatchlistMembership {
	return contracts.WatchlistMembership{
		Bullish: c.IsBullish(q),
		Bearish: c.IsBearish(q),
	}
}

// FilterBullish keeps bullish quotes in input order
func (c *Classifier) FilterBullish(quotes []contracts.QuoteRecord) []contracts.QuoteRecord {
	return filter(quotes, c.IsBullish)
}

// FilterBearish keeps bearish quotes in input order
func (c *Classifier) FilterBearish(quotes []contracts.QuoteRecord) []contracts.QuoteRecord {
	return filter(quotes, c.IsBearish)
}

func filter(quotes []contracts.QuoteRecord, keep func(contracts.QuoteRecord) bool) []contracts.QuoteRecord {
	out := make([]contracts.QuoteRecord, 0, len(quotes))
	for _, q := range quotes {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}

func count(predicates ...bool) int {
	n := 0
	for _, p := range predicates {
		if p {
			n++
		}
	}
	return n
}
