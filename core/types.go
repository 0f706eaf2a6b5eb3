// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, Pair, Neighbor and EdgeView declarations, sentinel errors,
//       and the NewGraph constructor.
// Storage:
//   - nodes:    insertion-ordered map key → node; each node owns an
//               insertion-ordered map neighbor key → *Edge (one directed record).
//   - weights:  Pair → weight, always written for both directions.
//   - disabled: set of Pair, always written for both directions.
// Concurrency:
//   - None. Graph is a plain single-threaded structure; callers serialize.

package core

import (
	"cmp"
	"errors"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge
	// (in at least one of its two directed records).
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Pair is an ordered pair of node keys. It names one direction of a logical edge.
type Pair[K cmp.Ordered] struct {
	From K
	To   K
}

// Reverse returns the pair with its endpoints swapped.
func (p Pair[K]) Reverse() Pair[K] {
	return Pair[K]{From: p.To, To: p.From}
}

// Canonical returns the pair ordered so that From <= To.
// Both orientations of a logical edge share the same canonical form.
func (p Pair[K]) Canonical() Pair[K] {
	if cmp.Compare(p.From, p.To) <= 0 {
		return p
	}

	return p.Reverse()
}

// Edge is one directed record of a logical (undirected) edge.
//
// Every logical edge is stored twice, From→To and To→From, with the same
// Data, Weight and Blocked values.
type Edge[K cmp.Ordered, E comparable] struct {
	// From is the key of the node that owns this record.
	From K

	// To is the neighbor key this record points at.
	To K

	// Data is the opaque edge payload. The core never inspects it.
	Data E

	// Blocked marks the edge as excluded from path traversal.
	Blocked bool

	// Weight is the non-negative traversal cost.
	Weight float64
}

// Equal reports whether e and o have the same endpoints (in the same
// direction), payload and blocked flag. Weight is not part of identity.
func (e Edge[K, E]) Equal(o Edge[K, E]) bool {
	return e.From == o.From && e.To == o.To && e.Data == o.Data && e.Blocked == o.Blocked
}

// Pair returns the directed pair of this record.
func (e Edge[K, E]) Pair() Pair[K] {
	return Pair[K]{From: e.From, To: e.To}
}

// EdgeView is the (from, to, payload) triple reported once per logical edge by GetEdges.
type EdgeView[K cmp.Ordered, E comparable] struct {
	From K
	To   K
	Data E
}

// Neighbor is one entry of an adjacency list: a reachable key and the edge weight.
type Neighbor[K cmp.Ordered] struct {
	ID     K
	Weight float64
}

// node is a graph vertex: key, opaque payload and its outgoing directed records.
type node[K cmp.Ordered, N any, E comparable] struct {
	id    K
	data  N
	edges *orderedmap.OrderedMap[K, *Edge[K, E]]
}

// Graph is an in-memory, undirected, weighted graph with blockable edges.
//
// K is the node key; N and E are opaque node and edge payloads.
// The zero value is not usable; construct with NewGraph.
type Graph[K cmp.Ordered, N any, E comparable] struct {
	nodes    *orderedmap.OrderedMap[K, *node[K, N, E]]
	weights  map[Pair[K]]float64
	disabled map[Pair[K]]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[K cmp.Ordered, N any, E comparable]() *Graph[K, N, E] {
	return &Graph[K, N, E]{
		nodes:    orderedmap.New[K, *node[K, N, E]](),
		weights:  make(map[Pair[K]]float64),
		disabled: make(map[Pair[K]]struct{}),
	}
}
