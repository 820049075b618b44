package contracts

import "time"

// DarkPoolEstimate is a simulated dark-pool reading for one symbol.
// Values are heuristic approximations, never measured venue data.
type DarkPoolEstimate struct {
	Symbol             string    `json:"symbol"`
	Name               string    `json:"name"`
	Price              float64   `json:"price"`
	Change             float64   `json:"change"`
	ChangePercent      float64   `json:"changePercent"`
	Volume             int64     `json:"volume"`
	AvgVolume          int64     `json:"avgVolume"`
	VolumeRatio        float64   `json:"volumeRatio"`
	DarkPoolVolume     int64     `json:"darkPoolVolume"`
	DarkPoolPercent    *float64  `json:"darkPoolPercent"` // nil when volume is zero
	IsUnusual          bool      `json:"isUnusual"`
	HasInsiderActivity bool      `json:"hasInsiderActivity"`
	IsEstimate         bool      `json:"isEstimate"`
	DataAvailable      bool      `json:"dataAvailable"`
	LastUpdated        time.Time `json:"lastUpdated"`
}

// RiskLevel buckets a lotto score
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Recommendation buckets a lotto score
type Recommendation string

const (
	RecommendWatch     Recommendation = "Watch"
	RecommendBuy       Recommendation = "Buy"
	RecommendStrongBuy Recommendation = "Strong Buy"
)

// LottoCandidate is a ranked speculative pick
type LottoCandidate struct {
	Symbol          string         `json:"symbol"`
	Name            string         `json:"name"`
	Price           float64        `json:"price"`
	Change          float64        `json:"change"`
	ChangePercent   float64        `json:"changePercent"`
	Volume          int64          `json:"volume"`
	LottoScore      float64        `json:"lottoScore"` // 0-10, one decimal
	RiskLevel       RiskLevel      `json:"riskLevel"`
	PotentialReturn string         `json:"potentialReturn"` // e.g. "68%"
	Recommendation  Recommendation `json:"recommendation"`
}

// WatchlistMembership is the outcome of both technical rule sets for one quote
type WatchlistMembership struct {
	Bullish bool `json:"bullish"`
	Bearish bool `json:"bearish"`
}

// Label names the membership; "both" is possible for pathological inputs
func (m WatchlistMembership) Label() string {
	switch {
	case m.Bullish && m.Bearish:
		return "both"
	case m.Bullish:
		return "bullish"
	case m.Bearish:
		return "bearish"
	default:
		return "neither"
	}
}
