// Package core provides a generic, in-memory, undirected weighted graph whose
// edges can be blocked without being removed.
//
// The Graph G = (V,E) is parameterised by:
//
//   - K: node key (cmp.Ordered: equality, hashing and a total order)
//   - N: opaque node payload
//   - E: opaque, comparable edge payload
//
// Representation:
//
//   - Every logical edge a–b is stored as two directed records a→b and b→a
//     sharing payload, weight and blocked flag. Records reference neighbors
//     by key, never by pointer.
//   - A weight table Pair → float64 written for both directions.
//   - A disabled set of Pair written for both directions of a blocked edge.
//   - Nodes and per-node records live in insertion-ordered maps, so every
//     enumeration (Keys, GetEdges, Adjacency, Neighbors) is deterministic.
//
// Core Methods:
//
//	// Nodes
//	AddNode(id K, data N)                      // O(1), idempotent, never overwrites
//	NodeExists(id K) bool                      // O(1)
//	NodeData(id K) (N, bool)                   // O(1)
//	Keys() []K                                 // O(V), insertion order
//	Neighbors(id K) ([]K, error)               // O(deg)
//
//	// Edges
//	AddEdge(from, to K, data E, w float64, blocked bool) // O(1), no-op on missing endpoint
//	DisableEdge(from, to K) error              // O(1), ErrNodeNotFound / ErrEdgeNotFound
//	EnableEdge(from, to K) error               // O(1), same errors
//	RemoveEdge(from, to K) error               // O(1), ErrEdgeNotFound
//	Edge(from, to K) (Edge[K, E], bool)        // copy of one directed record
//	Weight(from, to K) (float64, bool)
//	IsDisabled(from, to K) bool
//
//	// Snapshots (fresh copies)
//	GetNodesData() map[K]N
//	GetDisabledEdges() map[Pair[K]]struct{}
//	GetEdges() []EdgeView[K, E]                // each logical edge once
//	Adjacency() map[K][]Neighbor[K]            // input for the dijkstra engine
//
// Error policy:
//
//   - AddNode on an existing key and AddEdge with a missing endpoint are
//     silent no-ops.
//   - DisableEdge, EnableEdge and RemoveEdge presuppose the edge and fail with
//     a wrapped sentinel (check with errors.Is) without mutating anything.
//
// Concurrency:
//
//	Graph carries no locks. Mutate from a single goroutine, or serialize
//	externally. Readers that need isolation should take a snapshot
//	(GetEdges, Adjacency, GetDisabledEdges) and work from that.
package core
