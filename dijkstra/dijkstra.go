// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on
// core.Graph.
//
// Notes on implementation choices:
//
//   - An upfront O(E) scan rejects negative weights before any work is done.
//   - "Lazy" decrease-key: duplicates are pushed and stale entries skipped.
//   - The heap orders by (distance, vertex id), and neighbors are relaxed in
//     ascending id order, so predecessor trees are reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Dijkstra computes shortest distances from Options.Source to all vertices.
//
// Returns:
//
//   - dist: vertex id → minimum distance (Unreachable if not reached).
//   - prev: vertex id → predecessor on one shortest path (-1 for the source
//     and unreachable vertices), or nil unless WithReturnPath was given.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge may have a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[int]int64, map[int]int, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if cfg.Source < 0 {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}
	if err := checkWeights(g); err != nil {
		return nil, nil, err
	}

	r := newRunner(g, cfg)
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// checkWeights fails fast on the first negative edge weight.
// Complexity: O(E log E).
func checkWeights(g *core.Graph) error {
	var e core.Edge
	for _, e = range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %d-%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[int]int64
	prev    map[int]int
	visited map[int]bool
	pq      nodePQ
}

func newRunner(g *core.Graph, cfg Options) *runner {
	V := g.VertexCount()

	return &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]int64, V),
		prev:    make(map[int]int, V),
		visited: make(map[int]bool, V),
		pq:      make(nodePQ, 0, V),
	}
}

// init sets dist=Unreachable, prev=-1 everywhere and seeds the heap with the source.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = Unreachable
		r.prev[v] = noPredecessor
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unsettled vertex until the heap drains or the
// next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of the settled vertex u.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	var (
		e       core.Edge
		newDist int64
	)
	for _, e = range neighbors {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %d-%d weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
		}
		newDist = r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// strict improvement keeps the first-found predecessor on ties
		if newDist >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
