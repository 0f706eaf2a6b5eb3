// Package dijkstra implements single-source shortest paths over a snapshot of
// an undirected graph whose edges may be disabled.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation (Push/Pop) costs O(log N), where N ≤ V + E.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - The engine copies keys, adjacency and the disabled set at construction;
//     later graph mutations are not observed.
//   - Weights are validated once at construction (ErrNegativeWeight).
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and discarding entries whose distance is worse than the recorded best.
package dijkstra

import (
	"cmp"
	"container/heap"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/roadnet/core"
)

// Engine answers shortest-path queries over an immutable graph snapshot.
//
// An Engine is safe for concurrent ShortestPath calls: each call owns its
// working state and only reads the snapshot.
type Engine[K cmp.Ordered] struct {
	keys      map[K]struct{}
	order     []K
	adjacency map[K][]core.Neighbor[K]
	disabled  map[core.Pair[K]]struct{}
	options   Options
}

// NewEngine snapshots keys, adjacency and the disabled-edge set.
//
// Preconditions:
//  1. Every adjacency weight must be non-negative and not NaN (ErrNegativeWeight).
//
// Keys that appear only in adjacency (as an owner or a neighbor) are appended
// to the key set, so every relaxation target has a recorded distance.
//
// Complexity: O(V + E).
func NewEngine[K cmp.Ordered](
	keys []K,
	adjacency map[K][]core.Neighbor[K],
	disabled map[core.Pair[K]]struct{},
	opts ...Option,
) (*Engine[K], error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	e := &Engine[K]{
		keys:      make(map[K]struct{}, len(keys)),
		order:     make([]K, 0, len(keys)),
		adjacency: make(map[K][]core.Neighbor[K], len(adjacency)),
		disabled:  make(map[core.Pair[K]]struct{}, len(disabled)),
		options:   cfg,
	}
	for _, k := range keys {
		e.addKey(k)
	}

	for from, list := range adjacency {
		e.addKey(from)
		cp := make([]core.Neighbor[K], len(list))
		for i, n := range list {
			if n.Weight < 0 || math.IsNaN(n.Weight) {
				return nil, fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, from, n.ID, n.Weight)
			}
			e.addKey(n.ID)
			cp[i] = n
		}
		e.adjacency[from] = cp
	}

	for p := range disabled {
		e.disabled[p] = struct{}{}
	}

	return e, nil
}

// FromGraph snapshots g (keys, adjacency view and disabled set) into a new Engine.
// Complexity: O(V + E).
func FromGraph[K cmp.Ordered, N any, E comparable](g *core.Graph[K, N, E], opts ...Option) (*Engine[K], error) {
	return NewEngine(g.Keys(), g.Adjacency(), g.GetDisabledEdges(), opts...)
}

func (e *Engine[K]) addKey(k K) {
	if _, ok := e.keys[k]; ok {
		return
	}
	e.keys[k] = struct{}{}
	e.order = append(e.order, k)
}

// Keys returns the snapshot's keys in the order they were supplied.
func (e *Engine[K]) Keys() []K {
	out := make([]K, len(e.order))
	copy(out, e.order)

	return out
}

// ShortestPath computes distances and predecessors from source to every key.
//
// Returns ErrSourceNotFound if source is not part of the snapshot.
// Unreachable keys keep distance +Inf and no predecessor.
//
// Complexity: O((V + E) log V).
func (e *Engine[K]) ShortestPath(source K) (*Result[K], error) {
	if _, ok := e.keys[source]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}

	log := e.options.Logger.With(zap.Any("source", source))
	log.Debug("shortest path started",
		zap.Int("vertices", len(e.order)),
		zap.Int("disabled_pairs", len(e.disabled)))
	start := time.Now()

	r := &runner[K]{
		engine: e,
		source: source,
		dist:   make(map[K]float64, len(e.order)),
		prev:   make(map[K]K, len(e.order)),
		pq:     make(nodePQ[K], 0, len(e.order)),
	}
	r.init()
	r.process()

	log.Debug("shortest path finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("pops", r.stats.Pops),
		zap.Int("stale_skips", r.stats.StaleSkips),
		zap.Int("blocked_skips", r.stats.BlockedSkips),
		zap.Int("relaxations", r.stats.Relaxations))

	return &Result[K]{
		source: source,
		order:  e.order,
		dist:   r.dist,
		prev:   r.prev,
		stats:  r.stats,
	}, nil
}

// blocked reports whether the u–v edge is disabled in either orientation.
func (e *Engine[K]) blocked(u, v K) bool {
	p := core.Pair[K]{From: u, To: v}
	if _, ok := e.disabled[p]; ok {
		return true
	}
	_, ok := e.disabled[p.Reverse()]

	return ok
}

// runner holds the mutable state for a single ShortestPath execution.
type runner[K cmp.Ordered] struct {
	engine *Engine[K]
	source K
	dist   map[K]float64 // key → best known distance from source
	prev   map[K]K       // key → predecessor; absent for source and unreached keys
	pq     nodePQ[K]
	stats  Stats
}

// init sets dist[v]=+Inf for every key, dist[source]=0 and seeds the heap.
func (r *runner[K]) init() {
	for _, v := range r.engine.order {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[K]{id: r.source, dist: 0})
}

// process is the main loop: pop the closest entry, drop it if stale, relax its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner[K]) process() {
	var item *nodeItem[K]
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem[K])
		r.stats.Pops++

		// Stale entry: a shorter distance was recorded after this one was pushed.
		if item.dist > r.dist[item.id] {
			r.stats.StaleSkips++
			continue
		}

		if item.dist > r.engine.options.MaxDistance {
			break
		}

		r.relax(item.id)
	}
}

// relax examines each edge leaving u and improves neighbor distances.
// A candidate replaces the recorded distance only when strictly smaller.
func (r *runner[K]) relax(u K) {
	cfg := r.engine.options
	du := r.dist[u]

	var n core.Neighbor[K]
	var candidate float64
	for _, n = range r.engine.adjacency[u] {
		if r.engine.blocked(u, n.ID) {
			r.stats.BlockedSkips++
			continue
		}
		if n.Weight >= cfg.InfEdgeThreshold {
			r.stats.WallSkips++
			continue
		}

		candidate = du + n.Weight
		if candidate > cfg.MaxDistance {
			continue
		}
		if candidate >= r.dist[n.ID] {
			continue
		}

		r.dist[n.ID] = candidate
		r.prev[n.ID] = u
		r.stats.Relaxations++
		heap.Push(&r.pq, &nodeItem[K]{id: n.ID, dist: candidate})
	}
}

// nodeItem is a heap entry: a key and the distance it was pushed with.
type nodeItem[K cmp.Ordered] struct {
	id   K
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by key so
// pop order is deterministic. Outdated entries stay in the heap and are
// discarded when popped.
type nodePQ[K cmp.Ordered] []*nodeItem[K]

func (pq nodePQ[K]) Len() int { return len(pq) }

func (pq nodePQ[K]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return cmp.Less(pq[i].id, pq[j].id)
}

func (pq nodePQ[K]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *nodeItem[K].
func (pq *nodePQ[K]) Push(x any) { *pq = append(*pq, x.(*nodeItem[K])) }

// Pop is called by heap.Pop.
func (pq *nodePQ[K]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
