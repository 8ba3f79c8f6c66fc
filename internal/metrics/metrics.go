// Package metrics counts generation outcomes on a private Prometheus
// registry and can dump them in the node-exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gen_wrapper"

// Recorder collects counters for one generation run.
type Recorder struct {
	registry *prometheus.Registry

	fields    *prometheus.CounterVec
	generated prometheus.Counter
	skipped   *prometheus.CounterVec
	failures  prometheus.Counter
	duration  prometheus.Histogram
}

// New creates a recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		fields: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fields_total",
			Help:      "Raw fields processed, by match result.",
		}, []string{"result"}),
		generated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wrappers_generated_total",
			Help:      "Wrappers rendered successfully.",
		}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "packets_skipped_total",
			Help:      "Catalog entries not generated, by reason.",
		}, []string{"reason"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_failures_total",
			Help:      "Catalog entries whose generation failed.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "wrapper_duration_seconds",
			Help:      "Time spent generating one wrapper.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
	}
	r.registry.MustRegister(r.fields, r.generated, r.skipped, r.failures, r.duration)
	return r
}

// Field counts one field outcome ("accessor", "ambiguous", "unmatched").
func (r *Recorder) Field(result string) {
	r.fields.WithLabelValues(result).Inc()
}

// Generated counts one wrapper and how long it took.
func (r *Recorder) Generated(elapsed time.Duration) {
	r.generated.Inc()
	r.duration.Observe(elapsed.Seconds())
}

// Skipped counts a catalog entry left out for reason.
func (r *Recorder) Skipped(reason string) {
	r.skipped.WithLabelValues(reason).Inc()
}

// Failed counts a catalog entry whose generation failed.
func (r *Recorder) Failed() {
	r.failures.Inc()
}

// Gatherer exposes the private registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes every metric to filename atomically.
func (r *Recorder) WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, r.registry)
}
