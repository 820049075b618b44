package contracts

// InsiderTrade is one reported insider transaction
type InsiderTrade struct {
	Insider     string  `json:"insider"`
	Relation    string  `json:"relation,omitempty"`
	Transaction string  `json:"transaction,omitempty"`
	Shares      int64   `json:"shares,omitempty"`
	Value       float64 `json:"value,omitempty"`
	Date        string  `json:"date,omitempty"`
}

// InsiderSignal holds the insider history for one symbol.
// A nil signal means the lookup failed and is treated as "no signal".
type InsiderSignal struct {
	Symbol string         `json:"symbol"`
	Trades []InsiderTrade `json:"trades"`
}

// HasActivity reports whether at least one insider trade was returned
func (s *InsiderSignal) HasActivity() bool {
	return s != nil && len(s.Trades) > 0
}
