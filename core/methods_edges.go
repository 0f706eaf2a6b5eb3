// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/DisableEdge/EnableEdge/RemoveEdge,
//       Edge/Weight/IsDisabled/EdgeCount.
// Invariants kept by every mutation:
//   - Both directed records of a logical edge exist, or neither does.
//   - weights[(a,b)] == weights[(b,a)] for every logical edge.
//   - (a,b) ∈ disabled  ⇔  record a→b has Blocked == true.
//   - Failing calls leave the graph untouched.

package core

import (
	"cmp"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// newEdgeMap allocates the per-node adjacency map.
func newEdgeMap[K cmp.Ordered, E comparable]() *orderedmap.OrderedMap[K, *Edge[K, E]] {
	return orderedmap.New[K, *Edge[K, E]]()
}

// AddEdge connects from and to with a logical edge carrying data and weight.
//
// Steps:
//  1. If either endpoint is missing, return without touching anything.
//  2. Write the forward and reverse directed records.
//  3. Write weights for both directions.
//  4. Insert (blocked) or clear (not blocked) both disabled pairs.
//
// Re-adding an edge between the same pair overwrites the previous records,
// weight and block state (last write wins).
// Complexity: O(1) amortized.
func (g *Graph[K, N, E]) AddEdge(from, to K, data E, weight float64, blocked bool) {
	fromNode, ok := g.nodes.Get(from)
	if !ok {
		return
	}
	toNode, ok := g.nodes.Get(to)
	if !ok {
		return
	}

	fwd := Pair[K]{From: from, To: to}
	rev := fwd.Reverse()

	fromNode.edges.Set(to, &Edge[K, E]{From: from, To: to, Data: data, Blocked: blocked, Weight: weight})
	toNode.edges.Set(from, &Edge[K, E]{From: to, To: from, Data: data, Blocked: blocked, Weight: weight})

	g.weights[fwd] = weight
	g.weights[rev] = weight

	if blocked {
		g.disabled[fwd] = struct{}{}
		g.disabled[rev] = struct{}{}
	} else {
		delete(g.disabled, fwd)
		delete(g.disabled, rev)
	}
}

// DisableEdge marks both directed records of the from–to edge as blocked and
// records both pairs in the disabled set.
//
// Returns ErrNodeNotFound if either node is missing and ErrEdgeNotFound if
// either directed record is missing.
// Complexity: O(1).
func (g *Graph[K, N, E]) DisableEdge(from, to K) error {
	return g.setBlocked(from, to, true)
}

// EnableEdge is the inverse of DisableEdge: both records become traversable
// again and both pairs leave the disabled set. Same errors as DisableEdge.
// Complexity: O(1).
func (g *Graph[K, N, E]) EnableEdge(from, to K) error {
	return g.setBlocked(from, to, false)
}

// setBlocked resolves both records before mutating either.
func (g *Graph[K, N, E]) setBlocked(from, to K, blocked bool) error {
	fwd, rev, err := g.records(from, to)
	if err != nil {
		return err
	}

	fwd.Blocked = blocked
	rev.Blocked = blocked
	if blocked {
		g.disabled[fwd.Pair()] = struct{}{}
		g.disabled[rev.Pair()] = struct{}{}
	} else {
		delete(g.disabled, fwd.Pair())
		delete(g.disabled, rev.Pair())
	}

	return nil
}

// records looks up the forward and reverse directed records of a logical edge.
func (g *Graph[K, N, E]) records(from, to K) (*Edge[K, E], *Edge[K, E], error) {
	fromNode, ok := g.nodes.Get(from)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrNodeNotFound, from)
	}
	toNode, ok := g.nodes.Get(to)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrNodeNotFound, to)
	}
	fwd, ok := fromNode.edges.Get(to)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
	}
	rev, ok := toNode.edges.Get(from)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, to, from)
	}

	return fwd, rev, nil
}

// RemoveEdge deletes the from–to edge: both weight entries, both disabled
// pairs and both adjacency records.
//
// Returns ErrEdgeNotFound if the weight table lacks either direction; in that
// case nothing is modified.
// Complexity: O(1) amortized.
func (g *Graph[K, N, E]) RemoveEdge(from, to K) error {
	fwd := Pair[K]{From: from, To: to}
	rev := fwd.Reverse()
	if _, ok := g.weights[fwd]; !ok {
		return fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
	}
	if _, ok := g.weights[rev]; !ok {
		return fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, to, from)
	}

	delete(g.weights, fwd)
	delete(g.weights, rev)
	delete(g.disabled, fwd)
	delete(g.disabled, rev)

	// A weight entry implies both nodes exist.
	if n, ok := g.nodes.Get(from); ok {
		n.edges.Delete(to)
	}
	if n, ok := g.nodes.Get(to); ok {
		n.edges.Delete(from)
	}

	return nil
}

// Edge returns a copy of the directed record from→to.
// Complexity: O(1).
func (g *Graph[K, N, E]) Edge(from, to K) (Edge[K, E], bool) {
	n, ok := g.nodes.Get(from)
	if !ok {
		return Edge[K, E]{}, false
	}
	e, ok := n.edges.Get(to)
	if !ok {
		return Edge[K, E]{}, false
	}

	return *e, true
}

// Weight returns the weight-table entry for from→to.
// Complexity: O(1).
func (g *Graph[K, N, E]) Weight(from, to K) (float64, bool) {
	w, ok := g.weights[Pair[K]{From: from, To: to}]

	return w, ok
}

// IsDisabled reports whether (from, to) is in the disabled set.
// Complexity: O(1).
func (g *Graph[K, N, E]) IsDisabled(from, to K) bool {
	_, ok := g.disabled[Pair[K]{From: from, To: to}]

	return ok
}

// EdgeCount returns the number of logical edges (each undirected edge counts once).
// Complexity: O(E).
func (g *Graph[K, N, E]) EdgeCount() int {
	n := 0
	for p := range g.weights {
		// Self-loops have a single weight entry; every other edge has two.
		if p.From == p.To || cmp.Less(p.From, p.To) {
			n++
		}
	}

	return n
}
