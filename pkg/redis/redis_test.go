package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinotradez/backend/pkg/config"
)

func TestNewClient_Disabled(t *testing.T) {
	cfg := &config.Config{
		Redis: config.RedisConfig{
			Enabled: false,
		},
	}

	client, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.False(t, client.Enabled())
	assert.NoError(t, client.Close())
}

func TestNilClientIsDisabled(t *testing.T) {
	var client *Client
	assert.False(t, client.Enabled())
}

func TestRateLimiter_Disabled(t *testing.T) {
	limiter := NewRateLimiter(Disabled(), "test")

	// When Redis is disabled, all requests should be allowed
	allowed, remaining, err := limiter.Allow(context.Background(), RapidAPIRateLimit)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, RapidAPIRateLimit.Limit, remaining)

	assert.NoError(t, limiter.Wait(context.Background(), EDGARRateLimit))
}

func TestCache_Disabled(t *testing.T) {
	cache := NewCache(Disabled(), "test")
	ctx := context.Background()

	var result string
	found, err := cache.Get(ctx, "key", &result)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, cache.Set(ctx, "key", "value", TTLQuotes))
	assert.NoError(t, cache.Delete(ctx, "key"))
}

func TestCache_GetOrSetDisabledCallsFn(t *testing.T) {
	cache := NewCache(Disabled(), "test")

	type payload struct {
		Symbol string  `json:"symbol"`
		Price  float64 `json:"price"`
	}

	calls := 0
	var got payload
	err := cache.GetOrSet(context.Background(), QuotesKey([]string{"AAPL"}), &got, TTLQuotes, func() (interface{}, error) {
		calls++
		return payload{Symbol: "AAPL", Price: 190.5}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, payload{Symbol: "AAPL", Price: 190.5}, got)
}

func TestCache_GetOrSetPropagatesFnError(t *testing.T) {
	cache := NewCache(Disabled(), "test")
	upstream := errors.New("upstream down")

	var got []string
	err := cache.GetOrSet(context.Background(), "k", &got, TTLQuotes, func() (interface{}, error) {
		return nil, upstream
	})
	assert.ErrorIs(t, err, upstream)
	assert.Nil(t, got)
}

func TestCacheKeys(t *testing.T) {
	tests := []struct {
		name     string
		fn       func() string
		expected string
	}{
		{
			name:     "QuotesKey",
			fn:       func() string { return QuotesKey([]string{"AAPL", "MSFT"}) },
			expected: "quotes:AAPL,MSFT",
		},
		{
			name:     "MoversKey",
			fn:       func() string { return MoversKey("gainers") },
			expected: "movers:gainers",
		},
		{
			name:     "ScreenerKey",
			fn:       func() string { return ScreenerKey("100M,2B", 1, 50) },
			expected: "screener:100M,2B:1:50",
		},
		{
			name:     "InsiderKey",
			fn:       func() string { return InsiderKey("TSLA") },
			expected: "insider:TSLA",
		},
		{
			name:     "FilingsKey",
			fn:       func() string { return FilingsKey("S-3", "2026-07-21", "2026-10-19", 20) },
			expected: "filings:S-3:2026-07-21:2026-10-19:20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fn())
		})
	}
}
