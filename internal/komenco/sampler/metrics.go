package sampler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "komenco"
	subsystem        = "sampler"
)

// Run outcome labels
const (
	statusSuccess   = "success"
	statusInvalid   = "invalid"
	statusTransport = "transport_error"
	statusRemote    = "remote_error"
)

var (
	RunTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "run_total",
			Help:      "Total number of circuit runs",
		},
		[]string{"status"}, // success, invalid, transport_error, remote_error
	)

	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "run_duration_seconds",
			Help:      "Wall clock time of a circuit run, serialization included",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		},
	)

	CircuitGates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "circuit_gates",
			Help:      "Number of non-measurement operations per submitted circuit",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	OutcomesReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "outcomes_returned",
			Help:      "Number of distinct outcomes returned per run",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
)
