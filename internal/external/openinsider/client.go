package openinsider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/pkg/httputil"
	"github.com/dinotradez/backend/pkg/logger"
)

// DefaultRowCount is how many recent filings one lookup asks for
const DefaultRowCount = 40

// Client scrapes the openinsider.com screener table
// ⭐ SSOT: openinsider.com requests go through this client only
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// NewClient creates a new openinsider client
func NewClient(httpClient *httputil.Client, baseURL string, log *logger.Logger) *Client {
	if baseURL == "" {
		baseURL = "http://openinsider.com"
	}
	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// GetInsiderTrades returns the recent insider transactions for one symbol
func (c *Client) GetInsiderTrades(ctx context.Context, symbol string) (*contracts.InsiderSignal, error) {
	params := url.Values{
		"s":   {symbol},
		"cnt": {strconv.Itoa(DefaultRowCount)},
	}

	html, err := c.fetchHTML(ctx, "/screener", params)
	if err != nil {
		return nil, fmt.Errorf("openinsider %s: %w", symbol, err)
	}

	trades, err := parseScreenerHTML(html)
	if err != nil {
		return nil, fmt.Errorf("openinsider %s: %w", symbol, err)
	}

	c.logger.WithFields(map[string]interface{}{
		"symbol": symbol,
		"count":  len(trades),
	}).Debug("Fetched openinsider trades")

	return &contracts.InsiderSignal{Symbol: symbol, Trades: trades}, nil
}

// fetchHTML fetches one page body
func (c *Client) fetchHTML(ctx context.Context, path string, params url.Values) (string, error) {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL = fmt.Sprintf("%s?%s", fullURL, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body failed: %w", err)
	}

	return string(body), nil
}

// parseScreenerHTML reads the "tinytable" result grid.
// Columns are located by header text so layout changes that keep the labels still parse.
func parseScreenerHTML(html string) ([]contracts.InsiderTrade, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	trades := []contracts.InsiderTrade{}

	table := doc.Find("table.tinytable").First()
	if table.Length() == 0 {
		return trades, nil
	}

	columns := map[string]int{}
	table.Find("thead th").Each(func(i int, th *goquery.Selection) {
		label := normalizeHeader(th.Text())
		if _, exists := columns[label]; !exists {
			columns[label] = i
		}
	})

	cell := func(cells *goquery.Selection, label string) string {
		idx, ok := columns[label]
		if !ok || idx >= cells.Length() {
			return ""
		}
		return strings.TrimSpace(cells.Eq(idx).Text())
	}

	table.Find("tbody tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}

		name := cell(cells, "insider name")
		if name == "" {
			return
		}

		trades = append(trades, contracts.InsiderTrade{
			Insider:     name,
			Relation:    cell(cells, "title"),
			Transaction: cell(cells, "trade type"),
			Shares:      absInt(parseNum(cell(cells, "qty"))),
			Value:       float64(absInt(parseNum(cell(cells, "value")))),
			Date:        cell(cells, "trade date"),
		})
	})

	return trades, nil
}

// normalizeHeader lowercases and collapses non-breaking spaces in a header label
func normalizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// parseNum parses "+1,234" / "-$56,789" style numbers; blanks are 0
func parseNum(s string) int64 {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer(",", "", "$", "", "+", "").Replace(s)
	if s == "" || s == "-" {
		return 0
	}
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func absInt(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
