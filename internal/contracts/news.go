package contracts

// NewsItem is one headline from the provider news feed
type NewsItem struct {
	Title     string `json:"title"`
	Link      string `json:"link,omitempty"`
	Source    string `json:"source,omitempty"`
	Published string `json:"pubDate,omitempty"`
}

// TrendingTopic is a repeated headline word with its count
type TrendingTopic struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}
