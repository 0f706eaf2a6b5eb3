// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"sort"

	"github.com/katalvlaran/roadnet/core"
)

// Common node keys used across core tests.
const (
	NodeX = "x"
	NodeY = "y"
	NodeZ = "z"
	NodeW = "w"
)

// Common weights used across core tests.
const (
	Weight1  = 1.0
	Weight2  = 2.0
	Weight10 = 10.0
)

// label is a small comparable edge payload.
type label struct {
	Name string
}

// place is a node payload.
type place struct {
	Name string
}

type testGraph = core.Graph[string, place, label]

// newTriangle builds x–y(1), y–z(2), x–z(10, blocked).
func newTriangle() *testGraph {
	g := core.NewGraph[string, place, label]()
	for _, id := range []string{NodeX, NodeY, NodeZ} {
		g.AddNode(id, place{Name: id})
	}
	g.AddEdge(NodeX, NodeY, label{"xy"}, Weight1, false)
	g.AddEdge(NodeY, NodeZ, label{"yz"}, Weight2, false)
	g.AddEdge(NodeX, NodeZ, label{"xz"}, Weight10, true)

	return g
}

// undirectedKey normalises an edge view so tests do not depend on orientation.
func undirectedKey(e core.EdgeView[string, label]) [2]string {
	k := [2]string{e.From, e.To}
	sort.Strings(k[:])

	return k
}
