// SPDX-License-Identifier: MIT

package pickup

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/rs/zerolog"
)

// Evaluator scores candidate tours for one graph, friend set and α.
//
// Tours are read as vertex sets for coverage and as hop sequences for
// driving, so the same methods apply to compact tours and expanded walks.
// An Evaluator is not safe for concurrent use: it counts penalty hits.
type Evaluator struct {
	table *dijkstra.Table
	homes []int
	// cover[h] lists the edges from home h to its neighbors, by neighbor id
	cover map[int][]core.Edge
	alpha float64
	depot int
	log   zerolog.Logger
	hits  int
}

// NewEvaluator validates the instance and builds the shortest-path table.
//
// homes is deduplicated and sorted. Only WithDepot and WithLogger affect
// an Evaluator.
//
// Errors: ErrNilGraph, ErrBadAlpha, ErrUnknownVertex, or a wrapped dijkstra
// error (negative weights).
func NewEvaluator(g *core.Graph, homes []int, alpha float64, opts ...Option) (*Evaluator, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if alpha < 0 || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadAlpha, alpha)
	}
	if !g.HasVertex(cfg.Depot) {
		return nil, fmt.Errorf("%w: depot %d", ErrUnknownVertex, cfg.Depot)
	}

	uniq := make([]int, 0, len(homes))
	seen := make(map[int]struct{}, len(homes))
	for _, h := range homes {
		if !g.HasVertex(h) {
			return nil, fmt.Errorf("%w: home %d", ErrUnknownVertex, h)
		}
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		uniq = append(uniq, h)
	}
	sort.Ints(uniq)

	cover := make(map[int][]core.Edge, len(uniq))
	for _, h := range uniq {
		nbrs, err := g.Neighbors(h)
		if err != nil {
			return nil, fmt.Errorf("pickup: neighbors of home %d: %w", h, err)
		}
		cover[h] = nbrs
	}

	table, err := dijkstra.AllPairs(g)
	if err != nil {
		return nil, fmt.Errorf("pickup: shortest paths: %w", err)
	}

	return &Evaluator{
		table: table,
		homes: uniq,
		cover: cover,
		alpha: alpha,
		depot: cfg.Depot,
		log:   cfg.Logger,
	}, nil
}

// Homes returns the deduplicated friend homes, ascending.
func (e *Evaluator) Homes() []int {
	out := make([]int, len(e.homes))
	copy(out, e.homes)

	return out
}

// PenaltyHits reports how many hops were charged UnreachablePenalty so far.
func (e *Evaluator) PenaltyHits() int { return e.hits }

// Infeasibility counts friends whose home and every neighbor of it are all
// absent from tour.
func (e *Evaluator) Infeasibility(tour []int) int {
	on := vertexSet(tour)
	b := 0
	for _, h := range e.homes {
		if !e.covered(h, on) {
			b++
		}
	}

	return b
}

// DrivingCost sums shortest-path distances between consecutive vertices of
// tour. A pair without a path costs UnreachablePenalty.
func (e *Evaluator) DrivingCost(tour []int) int64 {
	var sum int64
	for i := 0; i+1 < len(tour); i++ {
		sum += e.distance(tour[i], tour[i+1])
	}

	return sum
}

// WalkingCost sums, per friend: 0 if the home is on tour, else the lightest
// edge from the home to a neighbor on tour, else StrandedFactor times the
// home's distance to the depot.
func (e *Evaluator) WalkingCost(tour []int) int64 {
	on := vertexSet(tour)
	var sum int64
	for _, h := range e.homes {
		if w, ok := e.walk(h, on); ok {
			sum += w
			continue
		}
		sum += StrandedFactor * e.distance(h, e.depot)
	}

	return sum
}

// Cost is DrivingCost + α·WalkingCost.
func (e *Evaluator) Cost(tour []int) float64 {
	return float64(e.DrivingCost(tour)) + e.alpha*float64(e.WalkingCost(tour))
}

// score returns Cost and Infeasibility together.
func (e *Evaluator) score(tour []int) (float64, int) {
	return e.Cost(tour), e.Infeasibility(tour)
}

// distance is the oracle distance with the penalty fallback.
func (e *Evaluator) distance(u, v int) int64 {
	if d, ok := e.table.Distance(u, v); ok {
		return d
	}
	e.hits++
	e.log.Warn().
		Int("from", u).
		Int("to", v).
		Int64("penalty", UnreachablePenalty).
		Msg("no path between vertices, charging penalty")

	return UnreachablePenalty
}

// covered reports whether home h or one of its neighbors is in on.
func (e *Evaluator) covered(h int, on map[int]struct{}) bool {
	if _, ok := on[h]; ok {
		return true
	}
	for _, nb := range e.cover[h] {
		if _, ok := on[nb.To]; ok {
			return true
		}
	}

	return false
}

// walk returns the cheapest walk from home h to a vertex in on, if any.
func (e *Evaluator) walk(h int, on map[int]struct{}) (int64, bool) {
	if _, ok := on[h]; ok {
		return 0, true
	}
	var (
		best  int64
		found bool
	)
	for _, nb := range e.cover[h] {
		if _, ok := on[nb.To]; !ok {
			continue
		}
		if !found || nb.Weight < best {
			best, found = nb.Weight, true
		}
	}

	return best, found
}

func vertexSet(tour []int) map[int]struct{} {
	on := make(map[int]struct{}, len(tour))
	for _, v := range tour {
		on[v] = struct{}{}
	}

	return on
}
