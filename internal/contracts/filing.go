package contracts

import "time"

// SearchHit is one raw EDGAR full-text search hit
type SearchHit struct {
	ID     string          `json:"_id"`
	Source SearchHitSource `json:"_source"`
}

// SearchHitSource carries the indexed filing fields
type SearchHitSource struct {
	Adsh         string   `json:"adsh"` // accession number
	DisplayNames []string `json:"display_names"`
	FileDate     string   `json:"file_date"`
	Form         string   `json:"form"`
	RootForms    []string `json:"root_forms"`
	CIKs         []string `json:"ciks"`
}

// FilingQuery selects filings by form type and filing date window
type FilingQuery struct {
	Form  string
	Start time.Time
	End   time.Time
	Limit int
}

// Filing query defaults
const (
	DefaultFilingForm  = "S-3"
	DefaultFilingLimit = 20
	MaxFilingLimit     = 40
	FilingWindowDays   = 90
)

// NewFilingQuery applies form/limit defaults and the trailing 90-day window ending at now
func NewFilingQuery(form string, limit int, now time.Time) FilingQuery {
	if form == "" {
		form = DefaultFilingForm
	}
	if limit <= 0 {
		limit = DefaultFilingLimit
	}
	if limit > MaxFilingLimit {
		limit = MaxFilingLimit
	}
	end := now.UTC()
	return FilingQuery{
		Form:  form,
		Start: end.AddDate(0, 0, -FilingWindowDays),
		End:   end,
		Limit: limit,
	}
}

// FilingSearchResult is the provider response for one filing search
type FilingSearchResult struct {
	Hits  []SearchHit `json:"hits"`
	Total int         `json:"total"`
}

// FilingRecord is a normalized, deduplicated filing
type FilingRecord struct {
	AccessionNumber string  `json:"accessionNumber"`
	CompanyName     string  `json:"companyName"`
	Ticker          *string `json:"ticker"`
	CIK             string  `json:"cik,omitempty"`
	FiledDate       *string `json:"filedDate"`
	FormType        string  `json:"formType"`
	FilingURL       *string `json:"filingUrl"`
}
