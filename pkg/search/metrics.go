package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics exposes the final counters of a search run as
// Prometheus-compatible gauges, namespaced "spbfs_", mirroring the teacher's
// own PrometheusMetrics collector (graph/metrics.go) but reporting once at
// run completion rather than streaming per-step updates: a search run is a
// single batch computation, not a long-lived service, so there is no
// per-step scrape target worth updating incrementally.
//
// Metrics exposed:
//
//  1. spbfs_expanded_nodes (gauge, labels: algorithm): nodes popped and
//     expanded.
//  2. spbfs_generated_nodes (gauge, labels: algorithm): generated successors
//     that were kept, i.e. new states plus better-duplicate updates
//     (discarded duplicates are not counted).
//  3. spbfs_duplicated_nodes (gauge, labels: algorithm): better-duplicate
//     updates applied to the closed table.
//  4. spbfs_elapsed_seconds (gauge, labels: algorithm): wall-clock run time.
//  5. spbfs_path_length (gauge, labels: algorithm): cost of the returned
//     path, or -1 when no path was found.
type PrometheusMetrics struct {
	expanded   *prometheus.GaugeVec
	generated  *prometheus.GaugeVec
	duplicated *prometheus.GaugeVec
	elapsed    *prometheus.GaugeVec
	pathLength *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the run-completion gauges against registry.
// Pass prometheus.NewRegistry() for an isolated registry (tests, multiple
// runs in one process) or prometheus.DefaultRegisterer to expose metrics via
// the default /metrics handler.
func NewPrometheusMetrics(registry prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(registry)
	labels := []string{"algorithm"}
	return &PrometheusMetrics{
		expanded: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "spbfs_expanded_nodes",
			Help: "Nodes popped and expanded during the most recent run.",
		}, labels),
		generated: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "spbfs_generated_nodes",
			Help: "Generated successors kept (new states plus better-duplicate updates) during the most recent run.",
		}, labels),
		duplicated: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "spbfs_duplicated_nodes",
			Help: "Better-duplicate updates applied during the most recent run.",
		}, labels),
		elapsed: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "spbfs_elapsed_seconds",
			Help: "Wall-clock duration of the most recent run.",
		}, labels),
		pathLength: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "spbfs_path_length",
			Help: "Cost of the returned path, or -1 when no path was found.",
		}, labels),
	}
}

// Observe reports a completed run's snapshot under the snapshot's algorithm
// label.
func (m *PrometheusMetrics) Observe(snap Snapshot) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{"algorithm": snap.Algorithm}
	m.expanded.With(labels).Set(float64(snap.ExpandedNodes))
	m.generated.With(labels).Set(float64(snap.GeneratedNodes))
	m.duplicated.With(labels).Set(float64(snap.DuplicatedNodes))
	m.elapsed.With(labels).Set(snap.ElapsedTime)
	m.pathLength.With(labels).Set(snap.PathLength)
}
