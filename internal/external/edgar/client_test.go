package edgar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/pkg/config"
	"github.com/dinotradez/backend/pkg/logger"
	"github.com/dinotradez/backend/pkg/redis"
)

const sampleResponse = `{
  "hits": {
    "total": {"value": 57, "relation": "eq"},
    "hits": [
      {"_id": "0001641398-26-000012:form.htm", "_source": {
        "adsh": "0001641398-26-000012",
        "display_names": ["GD Culture Group Ltd  (GDC)  (CIK 0001641398)"],
        "file_date": "2026-09-30", "form": "S-3", "root_forms": ["S-3"], "ciks": ["0001641398"]}},
      {"_id": "0001641398-26-000012:ex5.htm", "_source": {
        "adsh": "0001641398-26-000012",
        "display_names": ["GD Culture Group Ltd  (GDC)  (CIK 0001641398)"],
        "file_date": "2026-09-30", "form": "S-3", "root_forms": ["S-3"], "ciks": ["0001641398"]}}
    ]
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.EDGARConfig{
		BaseURL:   server.URL,
		UserAgent: "DinoTradez/1.0 (contact@dinotradez.com)",
	}
	c := NewClient(cfg, 2*time.Second, logger.Nop())
	c.http.SetRetryWaitTime(time.Millisecond).SetRetryMaxWaitTime(5 * time.Millisecond)
	return c
}

func TestSearchFilings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search-index", r.URL.Path)
		assert.Equal(t, "DinoTradez/1.0 (contact@dinotradez.com)", r.Header.Get("User-Agent"))

		q := r.URL.Query()
		assert.Equal(t, `"S-3"`, q.Get("q"))
		assert.Equal(t, "S-3", q.Get("forms"))
		assert.Equal(t, "custom", q.Get("dateRange"))
		assert.Equal(t, "2026-07-21", q.Get("startdt"))
		assert.Equal(t, "2026-10-19", q.Get("enddt"))
		assert.Equal(t, "0", q.Get("from"))
		assert.Equal(t, "20", q.Get("size"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	})

	query := contracts.NewFilingQuery("", 0, time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))
	result, err := client.SearchFilings(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, 57, result.Total)
	require.Len(t, result.Hits, 2, "raw hits are returned undeduplicated")
	assert.Equal(t, "0001641398-26-000012", result.Hits[0].Source.Adsh)
	assert.Equal(t, []string{"0001641398"}, result.Hits[0].Source.CIKs)
}

func TestSearchFilings_EmptyHits(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hits":{"total":{"value":0},"hits":[]}}`))
	})

	result, err := client.SearchFilings(context.Background(), contracts.NewFilingQuery("S-1", 5, time.Now()))
	require.NoError(t, err)
	assert.NotNil(t, result.Hits)
	assert.Empty(t, result.Hits)
	assert.Equal(t, 0, result.Total)
}

func TestSearchFilings_RetriesServerErrors(t *testing.T) {
	var attempts int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	})

	result, err := client.SearchFilings(context.Background(), contracts.NewFilingQuery("S-3", 20, time.Now()))
	require.NoError(t, err)
	assert.Len(t, result.Hits, 2)
	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
}

func TestSearchFilings_ClientError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.SearchFilings(context.Background(), contracts.NewFilingQuery("S-3", 20, time.Now()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 403")
}

func TestSearchFilings_WithDisabledRateLimiter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}).WithRateLimiter(redis.NewRateLimiter(redis.Disabled(), "test"))

	_, err := client.SearchFilings(context.Background(), contracts.NewFilingQuery("S-3", 20, time.Now()))
	require.NoError(t, err)
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("read tcp: connection reset by peer"), true},
		{errors.New("unexpected EOF"), true},
		{errors.New("dial tcp: i/o timeout"), true},
		{errors.New("x509: certificate signed by unknown authority"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isRetryableError(tt.err))
	}
}
