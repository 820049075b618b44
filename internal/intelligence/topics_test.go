package intelligence

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinotradez/backend/internal/contracts"
)

func news(titles ...string) []contracts.NewsItem {
	items := make([]contracts.NewsItem, 0, len(titles))
	for _, t := range titles {
		items = append(items, contracts.NewsItem{Title: t})
	}
	return items
}

func TestTrendingTopics(t *testing.T) {
	items := news(
		"Nvidia earnings beat, stocks rally",
		"Stocks slide as Nvidia guidance disappoints",
		"Nvidia: what earnings mean for stocks",
		"Fed holds rates steady",
	)

	got := TrendingTopics(items, 10)

	require.Len(t, got, 3)
	assert.Equal(t, contracts.TrendingTopic{Word: "Nvidia", Count: 3}, got[0])
	// "earnings," and "earnings" collapse after stripping punctuation
	assert.Equal(t, contracts.TrendingTopic{Word: "earnings", Count: 2}, got[1])
	assert.Equal(t, contracts.TrendingTopic{Word: "stocks", Count: 2}, got[2])
}

func TestTrendingTopics_LengthMeasuredBeforeStripping(t *testing.T) {
	// "AI's" is 4 chars and skipped; "(AMD)" is 5 chars and counted as "AMD"
	got := TrendingTopics(news("AI's (AMD) surge", "AI's (AMD) slump"), 10)

	require.Len(t, got, 1)
	assert.Equal(t, "AMD", got[0].Word)
	assert.Equal(t, 2, got[0].Count)
}

func TestTrendingTopics_CaseSensitiveAndDigitsDropped(t *testing.T) {
	got := TrendingTopics(news("Market 2026: market record", "Market 2026: new highs"), 10)

	require.Len(t, got, 1)
	assert.Equal(t, "Market", got[0].Word)
}

func TestTrendingTopics_Limit(t *testing.T) {
	var titles []string
	for i := 0; i < 15; i++ {
		w := fmt.Sprintf("topic%c", 'a'+i)
		titles = append(titles, w, w)
	}

	got := TrendingTopics(news(titles...), 0)
	assert.Len(t, got, DefaultTopicLimit)
	assert.Equal(t, "topica", got[0].Word)
}

func TestTrendingTopics_Empty(t *testing.T) {
	got := TrendingTopics(nil, 10)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
