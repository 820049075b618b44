package yahoo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dinotradez/backend/internal/contracts"
)

// GetNews fetches general market news, or symbol news when symbol is set
func (c *Client) GetNews(ctx context.Context, symbol string) ([]contracts.NewsItem, error) {
	path := "/api/v1/news/list"
	var params url.Values
	if symbol != "" {
		path = "/api/v1/markets/stock/modules"
		params = url.Values{"symbol": {symbol}, "module": {"news"}}
	}

	var resp newsResponse
	if err := c.getJSON(ctx, path, params, &resp); err != nil {
		return nil, fmt.Errorf("news: %w", err)
	}

	raw := pick(resp.Items, resp.Body)
	items := make([]contracts.NewsItem, 0, len(raw))
	for _, n := range raw {
		items = append(items, contracts.NewsItem{
			Title:     n.Title,
			Link:      n.Link,
			Source:    n.Source,
			Published: n.PubDate,
		})
	}

	return items, nil
}
