// Package intelligence derives market-intelligence summaries from provider news.
package intelligence

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dinotradez/backend/internal/contracts"
)

// DefaultTopicLimit caps the trending list
const DefaultTopicLimit = 10

var nonLetters = regexp.MustCompile(`[^a-zA-Z]`)

// TrendingTopics counts headline words longer than four characters (measured before
// stripping non-letters), keeps words seen more than once, and returns the most
// frequent first. Ties keep first-seen order. Matching is case-sensitive.
func TrendingTopics(items []contracts.NewsItem, limit int) []contracts.TrendingTopic {
	if limit <= 0 {
		limit = DefaultTopicLimit
	}

	counts := make(map[string]int)
	order := make([]string, 0)

	for _, item := range items {
		for _, raw := range strings.Split(item.Title, " ") {
			if utf8.RuneCountInString(raw) <= 4 {
				continue
			}
			word := nonLetters.ReplaceAllString(raw, "")
			if word == "" {
				continue
			}
			if _, ok := counts[word]; !ok {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	topics := make([]contracts.TrendingTopic, 0, len(order))
	for _, word := range order {
		if counts[word] > 1 {
			topics = append(topics, contracts.TrendingTopic{Word: word, Count: counts[word]})
		}
	}

	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].Count > topics[j].Count
	})

	if len(topics) > limit {
		topics = topics[:limit]
	}
	return topics
}
