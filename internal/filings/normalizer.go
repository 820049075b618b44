// Package filings turns raw EDGAR search hits into deduplicated filing records.
package filings

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/dinotradez/backend/internal/contracts"
)

// tickerPattern matches a 1-5 letter uppercase ticker in parentheses, e.g. "Acme Corp  (ACME)  (CIK 0000123)"
var tickerPattern = regexp.MustCompile(`\(([A-Z]{1,5})\)`)

const browseURL = "https://www.sec.gov/cgi-bin/browse-edgar"

// Normalize converts hits in provider order. The first hit per accession number wins;
// later duplicates are dropped without merging. requestedForm is the last formType fallback.
func Normalize(hits []contracts.SearchHit, requestedForm string) []contracts.FilingRecord {
	seen := make(map[string]struct{}, len(hits))
	records := make([]contracts.FilingRecord, 0, len(hits))

	for _, hit := range hits {
		src := hit.Source
		if _, dup := seen[src.Adsh]; dup {
			continue
		}
		seen[src.Adsh] = struct{}{}

		records = append(records, normalizeHit(src, requestedForm))
	}

	return records
}

func normalizeHit(src contracts.SearchHitSource, requestedForm string) contracts.FilingRecord {
	displayName := ""
	if len(src.DisplayNames) > 0 {
		displayName = src.DisplayNames[0]
	}

	company, ticker := ParseDisplayName(displayName)
	formType := FormType(src, requestedForm)
	cik := NormalizeCIK(src.CIKs)

	rec := contracts.FilingRecord{
		AccessionNumber: src.Adsh,
		CompanyName:     company,
		Ticker:          ticker,
		CIK:             cik,
		FormType:        formType,
	}

	if src.FileDate != "" {
		date := src.FileDate
		rec.FiledDate = &date
	}

	if cik != "" && src.Adsh != "" {
		link := FilingURL(cik, formType)
		rec.FilingURL = &link
	}

	return rec
}

// ParseDisplayName extracts the company name and ticker. Without a ticker the
// full display name is the company name.
func ParseDisplayName(displayName string) (string, *string) {
	m := tickerPattern.FindStringSubmatch(displayName)
	if m == nil {
		return displayName, nil
	}

	ticker := m[1]
	company := strings.TrimSpace(strings.SplitN(displayName, "(", 2)[0])
	return company, &ticker
}

// FormType prefers form, then the first root form, then the requested form
func FormType(src contracts.SearchHitSource, requestedForm string) string {
	if src.Form != "" {
		return src.Form
	}
	if len(src.RootForms) > 0 && src.RootForms[0] != "" {
		return src.RootForms[0]
	}
	return requestedForm
}

// NormalizeCIK takes the first CIK with leading zeros stripped
func NormalizeCIK(ciks []string) string {
	if len(ciks) == 0 {
		return ""
	}
	return strings.TrimLeft(ciks[0], "0")
}

// FilingURL builds the EDGAR company browse link for a CIK and form type
func FilingURL(cik, formType string) string {
	return fmt.Sprintf("%s?action=getcompany&CIK=%s&type=%s&dateb=&owner=include&count=10",
		browseURL, url.QueryEscape(cik), url.QueryEscape(formType))
}
