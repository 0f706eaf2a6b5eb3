package metrics_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/metrics"
)

func TestCollector_WriteTo(t *testing.T) {
	c := metrics.NewCollector()
	c.ObserveGraph(3, 2)
	c.ObserveQuery(nil, 2*time.Millisecond, dijkstra.Stats{Relaxations: 4, BlockedSkips: 1})
	c.ObserveQuery(nil, time.Millisecond, dijkstra.Stats{Relaxations: 1})
	c.ObserveQuery(errors.New("boom"), time.Millisecond, dijkstra.Stats{Relaxations: 100})

	var buf bytes.Buffer
	_, err := c.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, `roadnet_queries_total{status="ok"} 2`)
	assert.Contains(t, out, `roadnet_queries_total{status="error"} 1`)
	assert.Contains(t, out, "roadnet_relaxations_total 5\n")
	assert.Contains(t, out, "roadnet_blocked_skips_total 1\n")
	assert.Contains(t, out, "roadnet_graph_nodes 3\n")
	assert.Contains(t, out, "roadnet_graph_edges 2\n")
	assert.Contains(t, out, "roadnet_query_duration_seconds_count 2\n")
}

func TestCollector_Write(t *testing.T) {
	c := metrics.NewCollector()
	c.ObserveGraph(1, 0)

	path := filepath.Join(t.TempDir(), "roadnet.prom")
	require.NoError(t, c.Write(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "# TYPE roadnet_graph_nodes gauge")
}
