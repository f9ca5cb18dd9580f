// SPDX-License-Identifier: MIT

// File: table.go
// Role: frozen multi-source shortest-path results (the "oracle" contract).
//
// A Table answers three questions without touching the graph again:
//   - how far apart two vertices are (Distance, Matrix),
//   - which original vertices a shortest path crosses (Route),
//   - how a compact tour unfolds into a walk over original edges (Expand).
//
// Because core graphs are undirected, a query (u,v) is served from u's tree
// when u is a source and from v's tree (reversed) otherwise.
package dijkstra

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/matrix"
)

// Table holds one shortest-path tree per source vertex.
type Table struct {
	sources []int
	dist    map[int]map[int]int64
	prev    map[int]map[int]int
}

// AllPairs runs Dijkstra from every vertex in sources (all vertices of g
// when sources is empty) and returns the frozen results.
//
// Errors:
//   - ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight (wrapped with the source).
//
// Complexity: O(S·(V + E) log V) time, O(S·V) space for S sources.
func AllPairs(g *core.Graph, sources ...int) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(sources) == 0 {
		sources = g.Vertices()
	}
	uniq := uniqueSorted(sources)

	t := &Table{
		sources: uniq,
		dist:    make(map[int]map[int]int64, len(uniq)),
		prev:    make(map[int]map[int]int, len(uniq)),
	}
	var (
		s    int
		dist map[int]int64
		prev map[int]int
		err  error
	)
	for _, s = range uniq {
		dist, prev, err = Dijkstra(g, Source(s), WithReturnPath())
		if err != nil {
			return nil, fmt.Errorf("dijkstra: all-pairs from %d: %w", s, err)
		}
		t.dist[s] = dist
		t.prev[s] = prev
	}

	return t, nil
}

// indexed reports whether v was one of the AllPairs sources.
func (t *Table) indexed(v int) bool {
	_, ok := t.dist[v]

	return ok
}

// Sources returns the indexed source vertices, ascending.
func (t *Table) Sources() []int {
	out := make([]int, len(t.sources))
	copy(out, t.sources)

	return out
}

// Distance returns the shortest-path distance between u and v and whether
// a path exists. At least one of u, v must be an indexed source; otherwise
// ok is false.
//
// Complexity: O(1).
func (t *Table) Distance(u, v int) (int64, bool) {
	var (
		d  int64
		ok bool
	)
	if tree, indexed := t.dist[u]; indexed {
		d, ok = tree[v]
	} else if tree, indexed = t.dist[v]; indexed {
		d, ok = tree[u]
	}
	if !ok || d == Unreachable {
		return 0, false
	}

	return d, true
}

// Route returns the vertices of one shortest path from u to v, both ends
// included. Route(u, u) is [u].
//
// Errors:
//   - ErrSourceNotIndexed if neither u nor v is a source.
//   - ErrVertexNotFound if the other endpoint is not in the graph.
//   - ErrUnreachable if no path exists.
//
// Complexity: O(path length).
func (t *Table) Route(u, v int) ([]int, error) {
	if _, ok := t.prev[u]; ok {
		return t.walkBack(u, v)
	}
	if _, ok := t.prev[v]; ok {
		path, err := t.walkBack(v, u)
		if err != nil {
			return nil, err
		}
		reverse(path)

		return path, nil
	}

	return nil, fmt.Errorf("%w: %d (route to %d)", ErrSourceNotIndexed, u, v)
}

// walkBack follows src's predecessor tree from dst back to src.
func (t *Table) walkBack(src, dst int) ([]int, error) {
	if src == dst {
		return []int{src}, nil
	}
	prev := t.prev[src]
	p, ok := prev[dst]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, dst)
	}
	if p == noPredecessor {
		return nil, fmt.Errorf("%w: %d→%d", ErrUnreachable, src, dst)
	}

	path := []int{dst}
	for cur := dst; cur != src; {
		cur = prev[cur]
		path = append(path, cur)
	}
	reverse(path)

	return path, nil
}

// Matrix builds the compact |nodes|×|nodes| distance matrix: entry (i,j) is
// the shortest distance between nodes[i] and nodes[j], math.Inf(1) if none.
//
// Errors:
//   - matrix.ErrInvalidDimensions for an empty node list.
//   - ErrSourceNotIndexed if some pair has neither node indexed as a source.
//
// Complexity: O(k²) for k nodes.
func (t *Table) Matrix(nodes []int) (*matrix.Dense, error) {
	m, err := matrix.NewSquare(len(nodes), math.Inf(1))
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		d    int64
		ok   bool
	)
	for i = range nodes {
		for j = range nodes {
			if i == j {
				continue
			}
			if !t.indexed(nodes[i]) && !t.indexed(nodes[j]) {
				return nil, fmt.Errorf("%w: %d", ErrSourceNotIndexed, nodes[i])
			}
			if d, ok = t.Distance(nodes[i], nodes[j]); ok {
				if err = m.Set(i, j, float64(d)); err != nil {
					return nil, err
				}
			}
		}
	}

	return m, nil
}

// Expand unfolds a compact tour into a walk over original edges: for each
// consecutive pair (u,v) the stored route u→v is appended without its final
// vertex, and the tour's last vertex is appended once at the end. A hop from
// a vertex to itself contributes that vertex, so [d, d] expands to [d, d].
//
// The expansion is lossless: the walk's edge-weight sum equals the sum of
// Distance over the compact hops.
//
// Errors: those of Route.
//
// Complexity: O(total walk length).
func (t *Table) Expand(compact []int) ([]int, error) {
	if len(compact) == 0 {
		return nil, nil
	}
	walk := make([]int, 0, len(compact))
	var (
		i     int
		route []int
		err   error
	)
	for i = 0; i+1 < len(compact); i++ {
		if compact[i] == compact[i+1] {
			walk = append(walk, compact[i])
			continue
		}
		if route, err = t.Route(compact[i], compact[i+1]); err != nil {
			return nil, fmt.Errorf("dijkstra: expand hop %d: %w", i, err)
		}
		walk = append(walk, route[:len(route)-1]...)
	}
	walk = append(walk, compact[len(compact)-1])

	return walk, nil
}

// uniqueSorted returns the ascending distinct values of ids.
func uniqueSorted(ids []int) []int {
	out := make([]int, len(ids))
	copy(out, ids)
	sort.Ints(out)
	w := 0
	for i := range out {
		if i == 0 || out[i] != out[w-1] {
			out[w] = out[i]
			w++
		}
	}

	return out[:w]
}

func reverse(a []int) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}
