// Package metrics holds the Prometheus collectors for sync passes and upstream calls.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SyncPasses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "syncer_passes_total",
			Help: "Total number of sync passes by target kind and outcome",
		},
		[]string{"kind", "outcome"}, // outcome: "success", "noop", "error"
	)

	SyncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "syncer_pass_duration_seconds",
			Help:    "Duration of sync passes in seconds",
			Buckets: []float64{0.5, 1, 5, 15, 30, 60, 120, 300, 600},
		},
		[]string{"kind"},
	)

	VideosSynced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "syncer_videos_synced_total",
			Help: "Total number of new videos fetched and stored",
		},
	)

	EventsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "syncer_event_publish_failures_total",
			Help: "Total number of events that could not be published",
		},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "syncer_upstream_requests_total",
			Help: "Total number of catalog API requests by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "syncer_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)
