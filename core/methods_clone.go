// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clones keep node insertion order and per-node neighbor order, so
//     Keys, GetEdges and Adjacency enumerate identically on the clone.
// Payloads:
//   - N and E values are copied by assignment; payloads holding pointers
//     share the pointees with the source graph.

package core

// CloneEmpty returns a new Graph with the same nodes and payloads but no edges.
//
// Complexity: O(V).
func (g *Graph[K, N, E]) CloneEmpty() *Graph[K, N, E] {
	clone := NewGraph[K, N, E]()
	for p := g.nodes.Oldest(); p != nil; p = p.Next() {
		clone.nodes.Set(p.Key, &node[K, N, E]{id: p.Key, data: p.Value.data, edges: newEdgeMap[K, E]()})
	}

	return clone
}

// Clone returns a deep copy: nodes, both directed records of every edge,
// the weight table and the disabled set. Mutating either graph afterwards
// never affects the other.
//
// Complexity: O(V + E).
func (g *Graph[K, N, E]) Clone() *Graph[K, N, E] {
	clone := g.CloneEmpty()
	for np := g.nodes.Oldest(); np != nil; np = np.Next() {
		dst, _ := clone.nodes.Get(np.Key)
		for ep := np.Value.edges.Oldest(); ep != nil; ep = ep.Next() {
			e := *ep.Value
			dst.edges.Set(ep.Key, &e)
		}
	}
	for p, w := range g.weights {
		clone.weights[p] = w
	}
	for p := range g.disabled {
		clone.disabled[p] = struct{}{}
	}

	return clone
}

// Clear removes every node and edge.
//
// Complexity: O(1); existing storage is released to the garbage collector.
func (g *Graph[K, N, E]) Clear() {
	fresh := NewGraph[K, N, E]()
	g.nodes = fresh.nodes
	g.weights = fresh.weights
	g.disabled = fresh.disabled
}
