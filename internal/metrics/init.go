package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netposture_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netposture_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestsInFlight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netposture_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)
}

func (r *Registry) initAssessmentMetrics() {
	r.AssessmentsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netposture_assessments_total",
			Help: "Total number of completed assessments by rating",
		},
		[]string{"rating"},
	)

	r.ResilienceScore = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netposture_resilience_score",
			Help:    "Distribution of resilience scores",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		},
	)

	r.GraphNodes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netposture_graph_nodes",
			Help:    "Number of nodes in rendered graphs",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
}
