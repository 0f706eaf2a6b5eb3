// Package roadnet is an in-memory road network: an undirected weighted graph
// whose roads can be blocked and reopened, plus a Dijkstra engine that routes
// around blocked roads.
//
// What is inside:
//
//	core/        Graph[K, N, E]: nodes with payloads, symmetric weighted edges,
//	             the disabled-edge set, deduplicated listings and snapshots
//	dijkstra/    Engine over a point-in-time snapshot; distances,
//	             predecessors, path reconstruction and per-query stats
//	roads/       City and Road payloads
//	ingest/      CSV loader (from,to,weight,isBlocked)
//	render/      Graphviz DOT export with blocked roads and routes styled
//	metrics/     Prometheus text-file metrics for queries
//	logging/     zap logger construction
//	config/      YAML, dotenv and ROADNET_* environment settings
//	cmd/roadnet  route, edges and dot commands
//
// Quick ASCII example:
//
//	x ──1── y ──2── z
//	 \_____10______/   (blocked)
//
//	g := core.NewGraph[string, string, string]()
//	for _, id := range []string{"x", "y", "z"} {
//	    g.AddNode(id, id)
//	}
//	g.AddEdge("x", "y", "x-y", 1, false)
//	g.AddEdge("y", "z", "y-z", 2, false)
//	g.AddEdge("x", "z", "x-z", 10, true)
//
//	eng, _ := dijkstra.FromGraph(g)
//	res, _ := eng.ShortestPath("x")
//	path, _ := res.PathTo("z") // [x y z], distance 3
//
// Blocking is a state, not a deletion: DisableEdge keeps the road and its
// weight, EnableEdge restores it, RemoveEdge deletes it. Engines copy the
// graph when built, so later changes need a fresh engine.
package roadnet
