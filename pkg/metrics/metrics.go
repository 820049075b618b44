package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for feature requests
const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeUpstream     = "upstream_error"
)

// Metrics holds the Prometheus collectors on a private registry
// ⭐ SSOT: every metric name is declared here
type Metrics struct {
	registry *prometheus.Registry

	featureRequests  *prometheus.CounterVec
	featureDuration  *prometheus.HistogramVec
	subFetchFailures *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New creates a Metrics instance with its own registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		featureRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dinotradez_feature_requests_total",
				Help: "Analytics feature invocations by outcome",
			},
			[]string{"feature", "outcome"},
		),
		featureDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dinotradez_feature_duration_seconds",
				Help:    "Analytics feature latency including upstream fetches",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"feature"},
		),
		subFetchFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dinotradez_subfetch_failures_total",
				Help: "Optional sub-fetches that degraded to no signal",
			},
			[]string{"resource"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dinotradez_http_requests_total",
				Help: "HTTP API requests by route and status",
			},
			[]string{"route", "method", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dinotradez_http_request_duration_seconds",
				Help:    "HTTP API request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}
}

// Handler exposes the private registry for /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveFeature records one feature invocation. A nil receiver is a no-op.
func (m *Metrics) ObserveFeature(feature, outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.featureRequests.WithLabelValues(feature, outcome).Inc()
	m.featureDuration.WithLabelValues(feature).Observe(time.Since(started).Seconds())
}

// SubFetchFailed counts a degraded optional fetch
func (m *Metrics) SubFetchFailed(resource string) {
	if m == nil {
		return
	}
	m.subFetchFailures.WithLabelValues(resource).Inc()
}

// ObserveHTTP records one API request
func (m *Metrics) ObserveHTTP(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(d.Seconds())
}
