package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pathbench/bench"
)

const metricsNamespace = "pathbench"

// Metrics exposes benchmark results as Prometheus metrics on a private
// registry. Each cell sets its gauges; the histogram collects the average
// call time of every cell per solver.
type Metrics struct {
	reg *prometheus.Registry

	average *prometheus.GaugeVec
	stddev  *prometheus.GaugeVec
	edges   *prometheus.GaugeVec
	calls   *prometheus.HistogramVec
	cells   prometheus.Counter
}

// NewMetrics creates the collectors. runID, when non-empty, is attached to
// every series as the run_id label.
func NewMetrics(runID string) *Metrics {
	var constLabels prometheus.Labels
	if runID != "" {
		constLabels = prometheus.Labels{"run_id": runID}
	}
	cellLabels := []string{"topology", "vertices", "solver"}

	m := &Metrics{
		reg: prometheus.NewRegistry(),
		average: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        "pathfind_average_seconds",
			Help:        "Mean duration of one Pathfind call in a cell",
			ConstLabels: constLabels,
		}, cellLabels),
		stddev: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        "pathfind_stddev_seconds",
			Help:        "Standard deviation of Pathfind call durations in a cell",
			ConstLabels: constLabels,
		}, cellLabels),
		edges: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        "graph_edges",
			Help:        "Edge count of the generated graph",
			ConstLabels: constLabels,
		}, []string{"topology", "vertices"}),
		calls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   metricsNamespace,
			Name:        "cell_average_seconds",
			Help:        "Distribution of per-cell average Pathfind durations",
			ConstLabels: constLabels,
			Buckets:     prometheus.ExponentialBuckets(1e-7, 4, 14),
		}, []string{"topology", "solver"}),
		cells: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "cells_total",
			Help:        "Number of finished benchmark cells",
			ConstLabels: constLabels,
		}),
	}
	m.reg.MustRegister(m.average, m.stddev, m.edges, m.calls, m.cells)

	return m
}

// Registry returns the registry holding every collector.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Write records one cell.
func (m *Metrics) Write(r bench.Record) error {
	vertices := fmt.Sprint(r.ConfiguredVertices)
	m.average.WithLabelValues(r.Topology, vertices, r.Solver).Set(r.Average.Seconds())
	m.stddev.WithLabelValues(r.Topology, vertices, r.Solver).Set(r.StdDev.Seconds())
	m.edges.WithLabelValues(r.Topology, vertices).Set(float64(r.Edges))
	m.calls.WithLabelValues(r.Topology, r.Solver).Observe(r.Average.Seconds())
	m.cells.Inc()

	return nil
}

// WriteTextfile atomically writes the registry in the text exposition
// format, for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("report: metrics textfile: %w", err)
	}

	return nil
}
