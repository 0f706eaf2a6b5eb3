// Package metrics records shortest-path query metrics on a private Prometheus
// registry and writes them as a text exposition file.
package metrics

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/roadnet/dijkstra"
)

// Query outcome labels.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Collector captures metrics for one process.
type Collector struct {
	registry      *prometheus.Registry
	queriesTotal  *prometheus.CounterVec
	queryDuration prometheus.Histogram
	relaxations   prometheus.Counter
	blockedSkips  prometheus.Counter
	graphNodes    prometheus.Gauge
	graphEdges    prometheus.Gauge
}

// NewCollector initializes a new metrics registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	collector := &Collector{
		registry: registry,
		queriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "roadnet_queries_total", Help: "Total number of shortest-path queries"},
			[]string{"status"},
		),
		queryDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "roadnet_query_duration_seconds",
				Help:    "Shortest-path query duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
		relaxations: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "roadnet_relaxations_total", Help: "Distance improvements across all queries"},
		),
		blockedSkips: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "roadnet_blocked_skips_total", Help: "Edges skipped because they were blocked"},
		),
		graphNodes: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "roadnet_graph_nodes", Help: "Nodes in the loaded road network"},
		),
		graphEdges: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "roadnet_graph_edges", Help: "Logical edges in the loaded road network"},
		),
	}

	registry.MustRegister(collector.queriesTotal, collector.queryDuration, collector.relaxations,
		collector.blockedSkips, collector.graphNodes, collector.graphEdges)
	return collector
}

// ObserveGraph records the size of the loaded network.
func (c *Collector) ObserveGraph(nodes, edges int) {
	c.graphNodes.Set(float64(nodes))
	c.graphEdges.Set(float64(edges))
}

// ObserveQuery records a query outcome. A failed query only counts towards
// roadnet_queries_total{status="error"}.
func (c *Collector) ObserveQuery(err error, duration time.Duration, stats dijkstra.Stats) {
	if err != nil {
		c.queriesTotal.WithLabelValues(StatusError).Inc()
		return
	}
	c.queriesTotal.WithLabelValues(StatusOK).Inc()
	c.queryDuration.Observe(duration.Seconds())
	c.relaxations.Add(float64(stats.Relaxations))
	c.blockedSkips.Add(float64(stats.BlockedSkips))
}

// WriteTo encodes all metrics in the Prometheus text format.
func (c *Collector) WriteTo(w io.Writer) (int64, error) {
	metricFamilies, err := c.registry.Gather()
	if err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range metricFamilies {
		if err := enc.Encode(family); err != nil {
			return 0, err
		}
	}
	return buf.WriteTo(w)
}

// Write writes all metrics to a Prometheus text file.
func (c *Collector) Write(path string) error {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
