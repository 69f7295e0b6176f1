// Package observability provides Prometheus metrics for the API.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application's Prometheus collectors.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Model metrics
	ValuationsTotal   *prometheus.CounterVec
	SeriesPointsTotal prometheus.Counter
	HistoryYears      prometheus.Gauge
}

// NewMetrics registers the collectors with the default registry under
// namespace. Call it once per process.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "btc_energy_value"
	}

	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		ValuationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "model",
			Name:      "valuations_total",
			Help:      "Total number of valuations computed by scenario and share source",
		}, []string{"scenario", "source"}),
		SeriesPointsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "model",
			Name:      "series_points_total",
			Help:      "Total number of yearly series points computed",
		}),
		HistoryYears: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "model",
			Name:      "history_years",
			Help:      "Number of years in the loaded historical share table",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordRequest records one completed HTTP request.
func RecordRequest(method, route, status string, seconds float64) {
	DefaultMetrics.RequestsTotal.WithLabelValues(method, route, status).Inc()
	DefaultMetrics.RequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordValuation counts one computed valuation.
func RecordValuation(scenario, source string) {
	DefaultMetrics.ValuationsTotal.WithLabelValues(scenario, source).Inc()
}

// RecordSeries counts the points of one computed series.
func RecordSeries(points int) {
	DefaultMetrics.SeriesPointsTotal.Add(float64(points))
}

// SetHistoryYears updates the loaded history gauge.
func SetHistoryYears(n int) {
	DefaultMetrics.HistoryYears.Set(float64(n))
}
