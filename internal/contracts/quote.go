package contracts

// QuoteRecord is one provider quote snapshot
// ⭐ SSOT: every scoring component reads quotes through this type, read-only
type QuoteRecord struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"` // shortName, else longName
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Volume        int64   `json:"volume"`
	AvgVolume     int64   `json:"avgVolume"` // 3-month average daily volume

	FiftyDayAverage              *float64 `json:"fiftyDayAverage"`
	TwoHundredDayAverage         *float64 `json:"twoHundredDayAverage"`
	FiftyDayAverageChangePercent float64  `json:"fiftyDayAverageChangePercent"`
}

// HasFiftyDayAverage reports whether a non-zero 50-day average was provided
func (q *QuoteRecord) HasFiftyDayAverage() bool {
	return q.FiftyDayAverage != nil && *q.FiftyDayAverage != 0
}

// HasTwoHundredDayAverage reports whether a non-zero 200-day average was provided
func (q *QuoteRecord) HasTwoHundredDayAverage() bool {
	return q.TwoHundredDayAverage != nil && *q.TwoHundredDayAverage != 0
}

// IndexBySymbol maps symbol to quote. The first record wins on duplicates.
func IndexBySymbol(quotes []QuoteRecord) map[string]QuoteRecord {
	idx := make(map[string]QuoteRecord, len(quotes))
	for _, q := range quotes {
		if _, ok := idx[q.Symbol]; !ok {
			idx[q.Symbol] = q
		}
	}
	return idx
}

// Float returns a pointer to v, for optional quote fields
func Float(v float64) *float64 {
	return &v
}

// MoverKind selects a provider mover list
type MoverKind string

const (
	MoversGainers MoverKind = "gainers"
	MoversLosers  MoverKind = "losers"
	MoversActives MoverKind = "actives"
)

// IsValid checks the mover kind against the supported lists
func (k MoverKind) IsValid() bool {
	switch k {
	case MoversGainers, MoversLosers, MoversActives:
		return true
	}
	return false
}

// ScreenerFilters narrows the provider stock screener
type ScreenerFilters struct {
	MarketCapRange string  `json:"marketCap"` // e.g. "100M,2B"
	PriceMin       float64 `json:"priceGt"`
	PriceMax       float64 `json:"priceLt"`
	Sector         string  `json:"sector,omitempty"`
	Industry       string  `json:"industry,omitempty"`
}
