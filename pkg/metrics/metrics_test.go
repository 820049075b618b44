package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveFeature(t *testing.T) {
	m := New()

	m.ObserveFeature("darkpool", OutcomeSuccess, time.Now())
	m.ObserveFeature("darkpool", OutcomeSuccess, time.Now())
	m.ObserveFeature("lotto", OutcomeUpstream, time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.featureRequests.WithLabelValues("darkpool", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.featureRequests.WithLabelValues("lotto", OutcomeUpstream)))
}

func TestSubFetchFailed(t *testing.T) {
	m := New()

	m.SubFetchFailed("insider")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.subFetchFailures.WithLabelValues("insider")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveFeature("darkpool", OutcomeSuccess, time.Now())
		m.SubFetchFailed("insider")
		m.ObserveHTTP("/api/dark-pool", http.MethodGet, 200, time.Millisecond)
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveHTTP("/api/lotto-picks", http.MethodGet, 200, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `dinotradez_http_requests_total{method="GET",route="/api/lotto-picks",status="200"} 1`)
}
