// Package metric provides Prometheus metrics for sortbench.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: private registry with per-algorithm timing metrics
//   - collector.go: Go runtime and process collectors
//
// Metrics include:
//
//   - Sort duration histograms, labelled by algorithm
//   - Average duration gauges, set once a run completes
//   - Iteration and sort invocation counters
//   - Dataset size gauge
//
// sortbench is a one-shot CLI, so metrics are written to a file in the
// Prometheus text format (for node_exporter's textfile collector)
// instead of being served over HTTP.
package metric
