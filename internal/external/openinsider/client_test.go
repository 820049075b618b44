package openinsider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinotradez/backend/pkg/config"
	"github.com/dinotradez/backend/pkg/httputil"
	"github.com/dinotradez/backend/pkg/logger"
)

const screenerFixture = `<html><body>
<table class="tinytable">
<thead><tr>
<th>X</th><th>Filing&nbsp;Date</th><th>Trade&nbsp;Date</th><th>Ticker</th><th>Insider Name</th>
<th>Title</th><th>Trade&nbsp;Type</th><th>Price</th><th>Qty</th><th>Owned</th><th>ΔOwn</th><th>Value</th>
</tr></thead>
<tbody>
<tr><td>M</td><td>2026-10-01 18:02:11</td><td>2026-09-29</td><td>XYZ</td><td><a>Doe Jane</a></td>
<td>CEO</td><td>S - Sale</td><td>$12.50</td><td>-10,000</td><td>90,000</td><td>-10%</td><td>-$125,000</td></tr>
<tr><td></td><td>2026-09-20 17:00:00</td><td>2026-09-18</td><td>XYZ</td><td>Roe Rick</td>
<td>Dir</td><td>P - Purchase</td><td>$11.00</td><td>+2,000</td><td>2,000</td><td>New</td><td>+$22,000</td></tr>
<tr><td colspan="12"></td></tr>
</tbody>
</table>
</body></html>`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Provider: config.ProviderConfig{Timeout: 2 * time.Second}}
	httpClient := httputil.New(cfg, logger.Nop()).DisableRetry()
	return NewClient(httpClient, server.URL, logger.Nop())
}

func TestGetInsiderTrades(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/screener", r.URL.Path)
		assert.Equal(t, "XYZ", r.URL.Query().Get("s"))
		_, _ = w.Write([]byte(screenerFixture))
	})

	signal, err := client.GetInsiderTrades(context.Background(), "XYZ")
	require.NoError(t, err)
	assert.Equal(t, "XYZ", signal.Symbol)
	assert.True(t, signal.HasActivity())
	require.Len(t, signal.Trades, 2)

	first := signal.Trades[0]
	assert.Equal(t, "Doe Jane", first.Insider)
	assert.Equal(t, "CEO", first.Relation)
	assert.Equal(t, "S - Sale", first.Transaction)
	assert.Equal(t, int64(10000), first.Shares)
	assert.Equal(t, 125000.0, first.Value)
	assert.Equal(t, "2026-09-29", first.Date)

	assert.Equal(t, int64(2000), signal.Trades[1].Shares)
}

func TestGetInsiderTrades_NoTable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>No results.</p></body></html>`))
	})

	signal, err := client.GetInsiderTrades(context.Background(), "ABC")
	require.NoError(t, err)
	assert.False(t, signal.HasActivity())
	assert.NotNil(t, signal.Trades)
}

func TestGetInsiderTrades_BadStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetInsiderTrades(context.Background(), "ABC")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 404")
}

func TestParseNum(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"+2,000", 2000},
		{"-10,000", -10000},
		{"-$125,000", -125000},
		{"", 0},
		{"-", 0},
		{"n/a", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseNum(tt.in), tt.in)
	}
}
