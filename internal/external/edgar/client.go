package edgar

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/pkg/config"
	"github.com/dinotradez/backend/pkg/logger"
	"github.com/dinotradez/backend/pkg/redis"
)

// Client handles SEC EDGAR full-text search
// ⭐ SSOT: EDGAR calls go through this client only
type Client struct {
	http        *resty.Client
	logger      *logger.Logger
	rateLimiter *redis.RateLimiter
}

// searchResponse is the EFTS search-index response
type searchResponse struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []contracts.SearchHit `json:"hits"`
	} `json:"hits"`
}

// NewClient creates a new EDGAR client. SEC requires a descriptive User-Agent.
func NewClient(cfg config.EDGARConfig, timeout time.Duration, log *logger.Logger) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return isRetryableError(err)
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= 500
		})

	return &Client{
		http:   client,
		logger: log,
	}
}

// WithRateLimiter applies the shared EDGAR request budget
func (c *Client) WithRateLimiter(limiter *redis.RateLimiter) *Client {
	c.rateLimiter = limiter
	return c
}

// SearchFilings runs one full-text search for the query's form type and date window
func (c *Client) SearchFilings(ctx context.Context, query contracts.FilingQuery) (*contracts.FilingSearchResult, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx, redis.EDGARRateLimit); err != nil {
			return nil, fmt.Errorf("rate limit wait failed: %w", err)
		}
	}

	var out searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":         fmt.Sprintf("%q", query.Form),
			"forms":     query.Form,
			"dateRange": "custom",
			"startdt":   query.Start.Format("2006-01-02"),
			"enddt":     query.End.Format("2006-01-02"),
			"from":      "0",
			"size":      strconv.Itoa(query.Limit),
		}).
		SetResult(&out).
		Get("/search-index")
	if err != nil {
		return nil, fmt.Errorf("edgar search: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("edgar search: unexpected status code: %d", resp.StatusCode())
	}

	c.logger.WithFields(map[string]interface{}{
		"form":  query.Form,
		"hits":  len(out.Hits.Hits),
		"total": out.Hits.Total.Value,
	}).Debug("Fetched EDGAR filings")

	hits := out.Hits.Hits
	if hits == nil {
		hits = []contracts.SearchHit{}
	}

	return &contracts.FilingSearchResult{
		Hits:  hits,
		Total: out.Hits.Total.Value,
	}, nil
}

// isRetryableError checks if a transport error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	retryablePatterns := []string{
		"connection reset by peer",
		"eof",
		"connection refused",
		"network unreachable",
		"timeout",
		"i/o timeout",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}
