package sedriver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ionut-arm/parsec-se-driver/psa"
)

// Prometheus metrics for monitoring the driver. The embedding application
// decides whether and where to expose them.
var (
	// Operation counters by callback and resulting PSA status
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sedriver_operations_total",
			Help: "Total number of driver operations by operation and resulting PSA status",
		},
		[]string{"operation", "status"},
	)

	// Initialization attempts by resulting PSA status
	InitTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sedriver_init_total",
			Help: "Total number of driver initialization attempts by resulting PSA status",
		},
		[]string{"status"},
	)

	// Remote outcomes that could not be represented in the host status
	// space (diagnostics are in the log)
	StatusFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sedriver_status_fallbacks_total",
			Help: "Total number of remote outcomes collapsed to the generic error status",
		},
	)

	// Remote round-trip duration histogram
	RemoteCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sedriver_remote_call_duration_seconds",
			Help:    "Remote call duration in seconds by operation",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// Helper functions for common metric operations

// RecordOperation records one driver operation outcome.
func RecordOperation(operation string, status psa.Status) {
	OperationsTotal.WithLabelValues(operation, status.String()).Inc()
}

// RecordInit records one initialization attempt.
func RecordInit(status psa.Status) {
	InitTotal.WithLabelValues(status.String()).Inc()
}

// RecordStatusFallback records a remote outcome collapsed to generic error.
func RecordStatusFallback() {
	StatusFallbacksTotal.Inc()
}

// ObserveRemoteCall records the duration of one remote round-trip.
func ObserveRemoteCall(operation string, d time.Duration) {
	RemoteCallDuration.WithLabelValues(operation).Observe(d.Seconds())
}
