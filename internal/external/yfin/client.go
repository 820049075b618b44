package yfin

import (
	"context"
	"fmt"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/quote"

	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/pkg/logger"
)

// ListFunc fetches a batch of quotes; quote.List in production
type ListFunc func(symbols []string) ([]*finance.Quote, error)

// Client is the fallback quote source on the public Yahoo endpoints
// ⭐ SSOT: finance-go calls go through this client only
type Client struct {
	list   ListFunc
	logger *logger.Logger
}

// NewClient creates a new finance-go backed client
func NewClient(log *logger.Logger) *Client {
	return &Client{list: listQuotes, logger: log}
}

// NewClientWithLister creates a client around a custom batch fetcher
func NewClientWithLister(list ListFunc, log *logger.Logger) *Client {
	return &Client{list: list, logger: log}
}

// GetQuotes returns quotes for symbols. finance-go has no context support,
// so the call runs in a goroutine and ctx only bounds how long we wait.
func (c *Client) GetQuotes(ctx context.Context, symbols []string) ([]contracts.QuoteRecord, error) {
	if len(symbols) == 0 {
		return []contracts.QuoteRecord{}, nil
	}

	type result struct {
		quotes []*finance.Quote
		err    error
	}
	done := make(chan result, 1)

	go func() {
		quotes, err := c.list(symbols)
		done <- result{quotes: quotes, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("finance-go quotes: %w", ctx.Err())
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("finance-go quotes: %w", r.err)
		}

		records := make([]contracts.QuoteRecord, 0, len(r.quotes))
		for _, q := range r.quotes {
			if q == nil || q.Symbol == "" {
				continue
			}
			records = append(records, toRecord(q))
		}

		c.logger.WithFields(map[string]interface{}{
			"requested": len(symbols),
			"returned":  len(records),
		}).Debug("Fetched fallback quotes")

		return records, nil
	}
}

func listQuotes(symbols []string) ([]*finance.Quote, error) {
	iter := quote.List(symbols)
	var out []*finance.Quote
	for iter.Next() {
		out = append(out, iter.Quote())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// toRecord maps a finance-go quote; zero averages are reported as absent
func toRecord(q *finance.Quote) contracts.QuoteRecord {
	record := contracts.QuoteRecord{
		Symbol:                       q.Symbol,
		Name:                         q.ShortName,
		Price:                        q.RegularMarketPrice,
		Change:                       q.RegularMarketChange,
		ChangePercent:                q.RegularMarketChangePercent,
		Volume:                       int64(q.RegularMarketVolume),
		AvgVolume:                    int64(q.AverageDailyVolume3Month),
		FiftyDayAverageChangePercent: q.FiftyDayAverageChangePercent,
	}
	if q.FiftyDayAverage != 0 {
		record.FiftyDayAverage = contracts.Float(q.FiftyDayAverage)
	}
	if q.TwoHundredDayAverage != 0 {
		record.TwoHundredDayAverage = contracts.Float(q.TwoHundredDayAverage)
	}
	return record
}
