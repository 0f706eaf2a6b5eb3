package dijkstra

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Result is the immutable outcome of one ShortestPath call.
//
// Every snapshot key has a distance (+Inf when unreached). Only keys reached
// through at least one edge have a predecessor; the source and unreached keys
// have none.
type Result[K cmp.Ordered] struct {
	source K
	order  []K
	dist   map[K]float64
	prev   map[K]K
	stats  Stats
}

// Source returns the key the result was computed from.
func (r *Result[K]) Source() K { return r.source }

// Stats returns the work counters of the query.
func (r *Result[K]) Stats() Stats { return r.stats }

// Distance returns the shortest distance to k. The boolean is false when k is
// not part of the snapshot; an unreached key reports (+Inf, true).
func (r *Result[K]) Distance(k K) (float64, bool) {
	d, ok := r.dist[k]

	return d, ok
}

// Predecessor returns the key preceding k on a shortest path from the source.
// The boolean is false for the source, for unreached keys and for unknown keys.
func (r *Result[K]) Predecessor(k K) (K, bool) {
	p, ok := r.prev[k]

	return p, ok
}

// Reachable reports whether k has a finite distance.
func (r *Result[K]) Reachable(k K) bool {
	d, ok := r.dist[k]

	return ok && !math.IsInf(d, 1)
}

// Distances returns a copy of the key → distance map.
func (r *Result[K]) Distances() map[K]float64 {
	out := make(map[K]float64, len(r.dist))
	for k, d := range r.dist {
		out[k] = d
	}

	return out
}

// Predecessors returns a copy of the key → predecessor map. Keys without a
// predecessor are absent.
func (r *Result[K]) Predecessors() map[K]K {
	out := make(map[K]K, len(r.prev))
	for k, p := range r.prev {
		out[k] = p
	}

	return out
}

// Keys returns the snapshot keys in engine order.
func (r *Result[K]) Keys() []K {
	return slices.Clone(r.order)
}

// PathTo reconstructs the route source → … → target by walking predecessors.
//
// Returns ErrTargetNotFound for keys outside the snapshot and ErrUnreachable
// when the target has no finite distance. PathTo(source) returns [source].
//
// Complexity: O(path length).
func (r *Result[K]) PathTo(target K) ([]K, error) {
	if _, ok := r.dist[target]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrTargetNotFound, target)
	}
	if !r.Reachable(target) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, target)
	}

	path := []K{target}
	cur := target
	// A predecessor chain never revisits a key, so len(dist) bounds the walk.
	for steps := 0; cur != r.source; steps++ {
		if steps > len(r.dist) {
			return nil, fmt.Errorf("%w: predecessor cycle at %v", ErrUnreachable, cur)
		}
		p, ok := r.prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnreachable, target)
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path, nil
}
