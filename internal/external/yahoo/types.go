package yahoo

import (
	"github.com/dinotradez/backend/internal/contracts"
)

// rawQuote is a Yahoo quote as returned by the quote, movers and screener endpoints
type rawQuote struct {
	Symbol                       string   `json:"symbol"`
	ShortName                    string   `json:"shortName"`
	LongName                     string   `json:"longName"`
	RegularMarketPrice           float64  `json:"regularMarketPrice"`
	RegularMarketChange          float64  `json:"regularMarketChange"`
	RegularMarketChangePercent   float64  `json:"regularMarketChangePercent"`
	RegularMarketVolume          float64  `json:"regularMarketVolume"`
	AverageDailyVolume3Month     float64  `json:"averageDailyVolume3Month"`
	FiftyDayAverage              *float64 `json:"fiftyDayAverage"`
	TwoHundredDayAverage         *float64 `json:"twoHundredDayAverage"`
	FiftyDayAverageChangePercent float64  `json:"fiftyDayAverageChangePercent"`
}

func (q rawQuote) toRecord() contracts.QuoteRecord {
	name := q.ShortName
	if name == "" {
		name = q.LongName
	}
	return contracts.QuoteRecord{
		Symbol:                       q.Symbol,
		Name:                         name,
		Price:                        q.RegularMarketPrice,
		Change:                       q.RegularMarketChange,
		ChangePercent:                q.RegularMarketChangePercent,
		Volume:                       int64(q.RegularMarketVolume),
		AvgVolume:                    int64(q.AverageDailyVolume3Month),
		FiftyDayAverage:              q.FiftyDayAverage,
		TwoHundredDayAverage:         q.TwoHundredDayAverage,
		FiftyDayAverageChangePercent: q.FiftyDayAverageChangePercent,
	}
}

func toRecords(raw []rawQuote) []contracts.QuoteRecord {
	out := make([]contracts.QuoteRecord, 0, len(raw))
	for _, q := range raw {
		if q.Symbol == "" {
			continue
		}
		out = append(out, q.toRecord())
	}
	return out
}

// quoteResponse: /api/v1/markets/quote
type quoteResponse struct {
	QuoteResponse struct {
		Result []rawQuote `json:"result"`
	} `json:"quoteResponse"`
	Body []rawQuote `json:"body"`
}

// moversResponse: /api/v1/markets/movers
type moversResponse struct {
	Finance struct {
		Result []rawQuote `json:"result"`
	} `json:"finance"`
	Body []rawQuote `json:"body"`
}

// screenerResponse: /api/v1/markets/screener
type screenerResponse struct {
	Result []rawQuote `json:"result"`
	Body   []rawQuote `json:"body"`
}

// insiderResponse: /api/v1/insider-trades
type insiderResponse struct {
	InsiderTraders []rawInsiderTrade `json:"insiderTraders"`
}

type rawInsiderTrade struct {
	Name            string  `json:"name"`
	Relation        string  `json:"relation"`
	TransactionText string  `json:"transactionText"`
	Shares          float64 `json:"shares"`
	Value           float64 `json:"value"`
	Date            string  `json:"latestTransDate"`
}

// newsResponse: /api/v1/news/list and stock/modules?module=news
type newsResponse struct {
	Items []rawNewsItem `json:"items"`
	Body  []rawNewsItem `json:"body"`
}

type rawNewsItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Source  string `json:"source"`
	PubDate string `json:"pubDate"`
}

// pick returns primary unless it is empty
func pick[T any](primary, fallback []T) []T {
	if len(primary) > 0 {
		return primary
	}
	return fallback
}
