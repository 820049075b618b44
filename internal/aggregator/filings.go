package aggregator

import (
	"context"
	"regexp"
	"time"

	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/internal/filings"
)

// formPattern accepts EDGAR form codes such as S-3, 10-K, 8-K/A, DEF 14A
var formPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9 /-]{0,15}$`)

// Filings searches EDGAR and returns one record per accession number
func (a *Aggregator) Filings(ctx context.Context, query contracts.FilingQuery) (result *FilingsResult, err error) {
	started := time.Now()
	defer func() { a.observe(FeatureFilings, started, err) }()

	if !formPattern.MatchString(query.Form) {
		return nil, contracts.InvalidInput("unsupported form type %q", query.Form)
	}
	if query.Limit < 1 || query.Limit > contracts.MaxFilingLimit {
		return nil, contracts.InvalidInput("limit must be between 1 and %d", contracts.MaxFilingLimit)
	}
	if query.End.Before(query.Start) {
		return nil, contracts.InvalidInput("date range end precedes start")
	}

	callCtx, cancel := a.callCtx(ctx)
	search, err := a.provider.SearchFilings(callCtx, query)
	cancel()
	if err != nil {
		return nil, required(FeatureFilings, contracts.ResourceFilings, err)
	}

	return &FilingsResult{
		Filings: filings.Normalize(search.Hits, query.Form),
		Total:   search.Total,
	}, nil
}
