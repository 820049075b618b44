package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/pkg/logger"
)

// FilingsScanJob polls EDGAR for dilution filings and reports accession numbers not seen before
type FilingsScanJob struct {
	scanner Scanner
	forms   []string
	logger  *logger.Logger
	now     func() time.Time

	mu   sync.Mutex
	seen map[string]bool
}

// NewFilingsScanJob creates a filings scan job; forms defaults to S-3 only
func NewFilingsScanJob(scanner Scanner, forms []string, log *logger.Logger) *FilingsScanJob {
	if len(forms) == 0 {
		forms = []string{contracts.DefaultFilingForm}
	}
	return &FilingsScanJob{
		scanner: scanner,
		forms:   forms,
		logger:  log,
		now:     time.Now,
		seen:    make(map[string]bool),
	}
}

// Name returns the job name
func (j *FilingsScanJob) Name() string {
	return "filings_scan"
}

// Schedule returns the cron schedule (every 30 minutes, 6:00-21:30 ET, EDGAR hours)
func (j *FilingsScanJob) Schedule() string {
	return marketTZ + "0 */30 6-21 * * 1-5"
}

// Run searches each form and returns the first failure after trying all of them
func (j *FilingsScanJob) Run(ctx context.Context) error {
	var firstErr error

	for _, form := range j.forms {
		query := contracts.NewFilingQuery(form, contracts.MaxFilingLimit, j.now())
		result, err := j.scanner.Filings(ctx, query)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("filings scan %s: %w", form, err)
			}
			continue
		}

		fresh := j.markNew(result.Filings)
		j.logger.WithFields(map[string]interface{}{
			"form":  form,
			"total": result.Total,
			"new":   len(fresh),
		}).Info("Filings scan completed")

		for _, f := range fresh {
			ticker := ""
			if f.Ticker != nil {
				ticker = *f.Ticker
			}
			j.logger.WithFields(map[string]interface{}{
				"form":      f.FormType,
				"company":   f.CompanyName,
				"ticker":    ticker,
				"accession": f.AccessionNumber,
			}).Info("New filing")
		}
	}

	return firstErr
}

// markNew records accession numbers and returns the filings not seen in earlier runs
func (j *FilingsScanJob) markNew(filings []contracts.FilingRecord) []contracts.FilingRecord {
	j.mu.Lock()
	defer j.mu.Unlock()

	fresh := make([]contracts.FilingRecord, 0)
	for _, f := range filings {
		if j.seen[f.AccessionNumber] {
			continue
		}
		j.seen[f.AccessionNumber] = true
		fresh = append(fresh, f)
	}
	return fresh
}
