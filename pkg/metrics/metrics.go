package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ChecksTotal         *prometheus.CounterVec
	FetchDuration       *prometheus.HistogramVec
)

// Init registers the application metrics with the default registry.
// It must be called exactly once at startup, before any request is served.
func Init() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	ChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_checks_total",
			Help: "Total number of page check attempts.",
		},
		[]string{"outcome"}, // outcome: success, failure
	)

	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "page_fetch_duration_seconds",
			Help:    "Duration of page fetch operations.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"host"},
	)
}
