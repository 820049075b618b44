package aggregator

import (
	"context"
	"sync"

	"github.com/dinotradez/backend/internal/contracts"
)

// insiderResult is one insider lookup outcome, tagged with its request position
type insiderResult struct {
	index  int
	signal *contracts.InsiderSignal
	err    error
}

// fetchInsider looks up insider history for every symbol on a bounded worker pool.
// Signals are returned in request order; a failed lookup leaves a nil signal and a failure entry.
func (a *Aggregator) fetchInsider(ctx context.Context, feature string, symbols []string) ([]*contracts.InsiderSignal, []contracts.SubFetchFailure) {
	signals := make([]*contracts.InsiderSignal, len(symbols))
	failures := []contracts.SubFetchFailure{}
	if len(symbols) == 0 {
		return signals, failures
	}

	workers := a.cfg.Workers
	if workers > len(symbols) {
		workers = len(symbols)
	}

	jobCh := make(chan int, len(symbols))
	resultCh := make(chan insiderResult, len(symbols))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.insiderWorker(ctx, symbols, jobCh, resultCh)
		}()
	}

	for i := range symbols {
		jobCh <- i
	}
	close(jobCh)

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	errs := make([]error, len(symbols))
	for result := range resultCh {
		signals[result.index] = result.signal
		errs[result.index] = result.err
	}

	for i, err := range errs {
		if err == nil {
			continue
		}
		failures = append(failures, contracts.SubFetchFailure{
			Symbol:   symbols[i],
			Resource: contracts.ResourceInsider,
			Error:    err.Error(),
		})
		a.metrics.SubFetchFailed(contracts.ResourceInsider)
		a.logger.WithError(err).WithFields(map[string]interface{}{
			"feature": feature,
			"symbol":  symbols[i],
		}).Warn("Insider lookup failed, treating as no signal")
	}

	a.logger.WithFields(map[string]interface{}{
		"feature": feature,
		"symbols": len(symbols),
		"failed":  len(failures),
		"workers": workers,
	}).Debug("Insider lookups completed")

	return signals, failures
}

// insiderWorker processes insider lookups until the job channel closes
func (a *Aggregator) insiderWorker(ctx context.Context, symbols []string, jobCh <-chan int, resultCh chan<- insiderResult) {
	for idx := range jobCh {
		if err := ctx.Err(); err != nil {
			resultCh <- insiderResult{index: idx, err: err}
			continue
		}

		callCtx, cancel := a.callCtx(ctx)
		signal, err := a.provider.GetInsiderTrades(callCtx, symbols[idx])
		cancel()

		resultCh <- insiderResult{index: idx, signal: signal, err: err}
	}
}
