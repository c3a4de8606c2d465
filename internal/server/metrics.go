package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	requests        *prometheus.CounterVec
	computeDuration prometheus.Histogram
	routesReturned  prometheus.Histogram
	greedyOutcomes  *prometheus.CounterVec
	traceSteps      prometheus.Histogram
	sessions        prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "greedyroute_http_requests_total",
			Help: "HTTP requests by route template and status code",
		}, []string{"route", "code"}),
		computeDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "greedyroute_compute_duration_seconds",
			Help:    "Route computation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
		}),
		routesReturned: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "greedyroute_routes_returned",
			Help:    "Number of routes returned per computation",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 8},
		}),
		greedyOutcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "greedyroute_greedy_outcomes_total",
			Help: "What became of the greedy route, by outcome",
		}, []string{"outcome"}),
		traceSteps: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "greedyroute_greedy_trace_steps",
			Help:    "Edges discovered by the greedy search per computation",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		sessions: f.NewGauge(prometheus.GaugeOpts{
			Name: "greedyroute_sessions",
			Help: "Open sessions",
		}),
	}
}
