// Package metric provides Prometheus metrics for sortbench.
package metric

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sortbench"

// Registry holds all benchmark metrics on a private prometheus registry.
type Registry struct {
	reg *prometheus.Registry

	SortDuration    *prometheus.HistogramVec
	AverageDuration *prometheus.GaugeVec
	SortRuns        *prometheus.CounterVec
	Iterations      prometheus.Counter
	DatasetItems    prometheus.Gauge
}

// NewRegistry creates and registers the benchmark metrics.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		SortDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sort",
			Name:      "duration_milliseconds",
			Help:      "Wall-clock time of a single sort invocation in milliseconds",
			// 1µs .. ~4s
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 12),
		}, []string{"algorithm"}),
		AverageDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sort",
			Name:      "average_duration_milliseconds",
			Help:      "Average sort time over all iterations of the last run",
		}, []string{"algorithm"}),
		SortRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sort",
			Name:      "invocations_total",
			Help:      "Number of sort invocations",
		}, []string{"algorithm"}),
		Iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iterations_total",
			Help:      "Number of completed benchmark iterations",
		}),
		DatasetItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_items",
			Help:      "Number of items in the benchmark dataset",
		}),
	}

	r.reg.MustRegister(
		r.SortDuration,
		r.AverageDuration,
		r.SortRuns,
		r.Iterations,
		r.DatasetItems,
	)

	return r
}

// ObserveDataset records the dataset size of a run.
func (r *Registry) ObserveDataset(items int) {
	r.DatasetItems.Set(float64(items))
}

// ObserveIteration counts one completed iteration.
func (r *Registry) ObserveIteration() {
	r.Iterations.Inc()
}

// ObserveSort records one sort invocation.
func (r *Registry) ObserveSort(algorithm string, ms float64) {
	r.SortDuration.WithLabelValues(algorithm).Observe(ms)
	r.SortRuns.WithLabelValues(algorithm).Inc()
}

// SetAverage records the final average for an algorithm.
func (r *Registry) SetAverage(algorithm string, ms float64) {
	r.AverageDuration.WithLabelValues(algorithm).Set(ms)
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is written atomically.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
