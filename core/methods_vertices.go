// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Keys() returns keys in insertion order.
//   - Neighbors() returns neighbor keys in edge insertion order.

package core

import "fmt"

// AddNode inserts a node with the given key and payload if it is missing.
//
// Re-adding an existing key is a silent no-op: the stored payload is NOT
// overwritten and no error is reported.
// Complexity: O(1) amortized.
func (g *Graph[K, N, E]) AddNode(id K, data N) {
	if _, exists := g.nodes.Get(id); exists {
		return // idempotent
	}
	g.nodes.Set(id, &node[K, N, E]{
		id:    id,
		data:  data,
		edges: newEdgeMap[K, E](),
	})
}

// NodeExists reports whether a node with the given key is present.
// Complexity: O(1).
func (g *Graph[K, N, E]) NodeExists(id K) bool {
	_, ok := g.nodes.Get(id)

	return ok
}

// NodeData returns the payload stored for id.
// Complexity: O(1).
func (g *Graph[K, N, E]) NodeData(id K) (N, bool) {
	n, ok := g.nodes.Get(id)
	if !ok {
		var zero N
		return zero, false
	}

	return n.data, true
}

// Keys returns every node key in insertion order.
// Complexity: O(V).
func (g *Graph[K, N, E]) Keys() []K {
	out := make([]K, 0, g.nodes.Len())
	for p := g.nodes.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph[K, N, E]) NodeCount() int {
	return g.nodes.Len()
}

// Neighbors returns the keys adjacent to id, blocked edges included.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(deg(id)).
func (g *Graph[K, N, E]) Neighbors(id K) ([]K, error) {
	n, ok := g.nodes.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, id)
	}
	out := make([]K, 0, n.edges.Len())
	for p := n.edges.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out, nil
}
