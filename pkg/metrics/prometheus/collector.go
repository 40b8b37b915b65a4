// Package prometheus contains the Prometheus-backed implementations of the
// interfaces declared in pkg/metrics.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/marmos91/finfo/pkg/metrics"
)

// collectorMetrics is the Prometheus implementation for collection metrics.
type collectorMetrics struct {
	collections  *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	attributes   *prometheus.HistogramVec
	fetchRetries *prometheus.CounterVec
}

// NewCollectorMetrics creates a new Prometheus-backed collection metrics
// instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called).
func NewCollectorMetrics() metrics.CollectorMetrics {
	if !metrics.IsEnabled() {
		return nil
	}

	reg := metrics.GetRegistry()

	return &collectorMetrics{
		collections: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "finfo_collections_total",
				Help: "Total number of collection calls by entry point and outcome",
			},
			[]string{"op", "outcome"},
		),
		duration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finfo_collection_duration_seconds",
				Help:    "Collection call latency by entry point",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"op"},
		),
		attributes: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finfo_attributes_per_record",
				Help:    "Number of attributes in returned records by entry point",
				Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 250},
			},
			[]string{"op"},
		),
		fetchRetries: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "finfo_fetch_retries_total",
				Help: "Buffer-growth retries during variable-length fetches by protocol",
			},
			[]string{"kind"},
		),
	}
}

// RecordCollection records a completed collection call with its outcome.
func (m *collectorMetrics) RecordCollection(op string, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.collections.WithLabelValues(op, outcome).Inc()
	m.duration.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordAttributes records the size of a returned record.
func (m *collectorMetrics) RecordAttributes(op string, count int) {
	if m == nil {
		return
	}
	m.attributes.WithLabelValues(op).Observe(float64(count))
}

// RecordFetchRetry records a buffer-growth retry for a fetch protocol.
func (m *collectorMetrics) RecordFetchRetry(kind string) {
	if m == nil {
		return
	}
	m.fetchRetries.WithLabelValues(kind).Inc()
}
