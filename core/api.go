// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only snapshot facade consumed by presentation code and by the
//       shortest-path engine.
// Policy:
//   - Every function returns freshly allocated containers; mutating them
//     never affects the Graph.
//   - Enumeration order follows node insertion order, then neighbor
//     insertion order. It is deterministic but not a contract for callers
//     that only care about set semantics.

package core

// GetNodesData returns a snapshot copy of key → payload.
//
// Complexity: O(V).
func (g *Graph[K, N, E]) GetNodesData() map[K]N {
	out := make(map[K]N, g.nodes.Len())
	for p := g.nodes.Oldest(); p != nil; p = p.Next() {
		out[p.Key] = p.Value.data
	}

	return out
}

// GetDisabledEdges returns a snapshot copy of the disabled-edge set.
// A blocked logical edge contributes both (a,b) and (b,a).
//
// Complexity: O(D) where D is the set size.
func (g *Graph[K, N, E]) GetDisabledEdges() map[Pair[K]]struct{} {
	out := make(map[Pair[K]]struct{}, len(g.disabled))
	for p := range g.disabled {
		out[p] = struct{}{}
	}

	return out
}

// GetEdges lists each logical edge exactly once as (from, to, payload).
//
// Implementation:
//   - Walk nodes in insertion order and, per node, its records in insertion order.
//   - Keep a visited set of directed pairs; emitting (a,b) marks both (a,b) and (b,a).
//
// The orientation of each reported edge depends on which endpoint is visited
// first; both directions carry the same payload, so either is correct.
//
// Complexity: O(V + E) time, O(E) extra space.
func (g *Graph[K, N, E]) GetEdges() []EdgeView[K, E] {
	visited := make(map[Pair[K]]struct{}, len(g.weights))
	out := make([]EdgeView[K, E], 0, len(g.weights)/2+1)

	for np := g.nodes.Oldest(); np != nil; np = np.Next() {
		for ep := np.Value.edges.Oldest(); ep != nil; ep = ep.Next() {
			e := ep.Value
			pair := e.Pair()
			if _, seen := visited[pair]; seen {
				continue
			}
			if _, seen := visited[pair.Reverse()]; seen {
				continue
			}
			out = append(out, EdgeView[K, E]{From: e.From, To: e.To, Data: e.Data})
			visited[pair] = struct{}{}
			visited[pair.Reverse()] = struct{}{}
		}
	}

	return out
}

// Adjacency derives the adjacency view consumed by the shortest-path engine:
// key → ordered (neighbor, weight) list, weights read from the weight table.
//
// Every node appears as a key, isolated nodes with an empty list. Blocked
// edges are included; filtering is left to the consumer together with
// GetDisabledEdges.
//
// Complexity: O(V + E).
func (g *Graph[K, N, E]) Adjacency() map[K][]Neighbor[K] {
	out := make(map[K][]Neighbor[K], g.nodes.Len())
	for np := g.nodes.Oldest(); np != nil; np = np.Next() {
		list := make([]Neighbor[K], 0, np.Value.edges.Len())
		for ep := np.Value.edges.Oldest(); ep != nil; ep = ep.Next() {
			w := g.weights[ep.Value.Pair()]
			list = append(list, Neighbor[K]{ID: ep.Key, Weight: w})
		}
		out[np.Key] = list
	}

	return out
}
