// Package dijkstra_test provides examples demonstrating how to use the engine.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dijkstra"
)

// ExampleEngine_ShortestPath routes around a blocked edge.
//
//	x ──1── y ──2── z
//	 \_____10______/   (blocked)
func ExampleEngine_ShortestPath() {
	// 1) Build the store.
	g := core.NewGraph[string, string, string]()
	for _, id := range []string{"x", "y", "z"} {
		g.AddNode(id, id)
	}
	g.AddEdge("x", "y", "x-y", 1, false)
	g.AddEdge("y", "z", "y-z", 2, false)
	g.AddEdge("x", "z", "x-z", 10, true)

	// 2) Snapshot it into an engine.
	eng, err := dijkstra.FromGraph(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Query from "x".
	res, err := eng.ShortestPath("x")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, k := range res.Keys() {
		d, _ := res.Distance(k)
		p, ok := res.Predecessor(k)
		if !ok {
			fmt.Printf("%s dist=%.1f prev=none\n", k, d)
			continue
		}
		fmt.Printf("%s dist=%.1f prev=%s\n", k, d, p)
	}

	path, _ := res.PathTo("z")
	fmt.Println(path)

	// Output:
	// x dist=0.0 prev=none
	// y dist=1.0 prev=x
	// z dist=3.0 prev=y
	// [x y z]
}

// ExampleNewEngine builds an engine from raw snapshot inputs instead of a Graph.
func ExampleNewEngine() {
	keys := []string{"a", "b", "c"}
	adj := map[string][]core.Neighbor[string]{
		"a": {{ID: "b", Weight: 4}},
		"b": {{ID: "a", Weight: 4}},
	}
	eng, err := dijkstra.NewEngine(keys, adj, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, _ := eng.ShortestPath("a")
	d, _ := res.Distance("c")
	fmt.Println(res.Reachable("b"), d)

	_, err = eng.ShortestPath("q")
	fmt.Println(err)

	// Output:
	// true +Inf
	// dijkstra: source vertex not found: q
}

// ExampleFromGraph_cityRoute finds the fastest drive between two of six
// intersections while the short C–D road is closed.
//
//	      [A]
//	     /   \
//	  4 /     \ 2
//	   /       \
//	 [B]---1---[C]
//	  |  \       \ 10
//	5 |   1(closed)\
//	  |      \     [E]
//	 [D]------+      \ 3
//	   \_____6______[F]
func ExampleFromGraph_cityRoute() {
	g := core.NewGraph[string, string, int]()
	for _, id := range []string{"A", "B", "C", "D", "E", "F"} {
		g.AddNode(id, "intersection "+id)
	}
	for _, r := range []struct {
		u, v   string
		t      int
		closed bool
	}{
		{"A", "B", 4, false},
		{"A", "C", 2, false},
		{"B", "C", 1, false},
		{"B", "D", 5, false},
		{"C", "D", 1, true},
		{"C", "E", 10, false},
		{"D", "F", 6, false},
		{"E", "F", 3, false},
	} {
		g.AddEdge(r.u, r.v, r.t, float64(r.t), r.closed)
	}

	eng, err := dijkstra.FromGraph(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := eng.ShortestPath("A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("F")
	d, _ := res.Distance("F")
	fmt.Printf("A → F: %v, %.0f min\n", path, d)

	// Reopening C–D changes the answer for a fresh snapshot only.
	_ = g.EnableEdge("C", "D")
	reopened, _ := dijkstra.FromGraph(g)
	res2, _ := reopened.ShortestPath("A")
	path, _ = res2.PathTo("F")
	d, _ = res2.Distance("F")
	fmt.Printf("A → F: %v, %.0f min\n", path, d)

	// Output:
	// A → F: [A C B D F], 14 min
	// A → F: [A C D F], 9 min
}
