// Package dijkstra provides single-source shortest paths over a point-in-time
// snapshot of an undirected graph with non-negative weights and blockable edges.
//
// Overview:
//
//   - NewEngine copies three inputs: the key set, an adjacency view
//     (key → ordered (neighbor, weight) list) and the disabled-edge set.
//     FromGraph builds the same snapshot from a *core.Graph.
//   - ShortestPath(source) runs Dijkstra with a container/heap min-queue and
//     lazy deletion: improved distances are pushed again, and popped entries
//     whose distance is worse than the recorded best are discarded.
//   - An edge u–v is skipped when (u,v) or (v,u) is in the disabled set, so a
//     block recorded in either orientation stops traversal both ways.
//
// Result:
//
//   - Distance(k):    shortest distance, +Inf if unreached.
//   - Predecessor(k): previous key on one shortest path; none for the source
//     and for unreached keys.
//   - PathTo(k):      route source → … → k rebuilt from predecessors.
//   - Stats():        pops, stale skips, blocked skips, relaxations.
//
// Error handling (sentinel errors, check with errors.Is):
//
//   - ErrSourceNotFound: the source is not part of the snapshot. The engine
//     never silently answers "everything unreachable" for an unknown source.
//   - ErrNegativeWeight: NewEngine found a negative or NaN weight.
//   - ErrTargetNotFound, ErrUnreachable: returned by Result.PathTo.
//   - ErrBadMaxDistance, ErrBadInfThreshold: option misuse (panic).
//
// Thread safety:
//
//   - The engine never observes later graph mutations.
//   - A single Engine may serve concurrent ShortestPath calls; each call
//     allocates its own distance, predecessor and heap state.
//
// Example usage:
//
//	eng, err := dijkstra.FromGraph(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := eng.ShortestPath("x")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := res.PathTo("z")
package dijkstra
