// SPDX-License-Identifier: MIT

package pickup

// move kinds, for logs
const (
	moveInsert = "insert"
	moveRemove = "remove"
)

// search is the local-search state of one Solve call.
type search struct {
	e         *Evaluator
	vertices  []int // scan order, ascending
	depot     int
	maxRounds int

	tour []int
	cost float64
	b    int
}

func newSearch(e *Evaluator, vertices []int, maxRounds int) *search {
	s := &search{
		e:         e,
		vertices:  vertices,
		depot:     e.depot,
		maxRounds: maxRounds,
		tour:      []int{e.depot},
	}
	s.cost, s.b = e.score(s.tour)

	return s
}

// run performs up to maxRounds first-improvement rounds and returns the
// number of rounds executed. It stops early after any round that leaves
// the tour feasible, even if no move was applied in it.
func (s *search) run() int {
	rounds := 0
	for rounds < s.maxRounds {
		rounds++
		s.round(rounds)
		if s.b == 0 {
			break
		}
	}

	return rounds
}

// round applies the first accepted move, if any.
func (s *search) round(k int) {
	var (
		cand []int
		kind string
	)
	for _, v := range s.vertices {
		if contains(s.tour, v) {
			if v == s.depot {
				continue
			}
			cand, kind = without(s.tour, v), moveRemove
		} else {
			cand, kind = s.bestInsertion(v), moveInsert
		}
		if len(cand) < 2 {
			continue
		}

		cost, b := s.e.score(cand)
		if !s.accept(cost, b) {
			continue
		}
		s.e.log.Debug().
			Int("round", k).
			Str("move", kind).
			Int("vertex", v).
			Float64("cost", cost).
			Int("uncovered", b).
			Ints("tour", cand).
			Msg("move accepted")
		s.tour, s.cost, s.b = cand, cost, b

		return
	}
}

// accept compares a candidate's (cost, b) against the current tour.
func (s *search) accept(cost float64, b int) bool {
	if b == 0 {
		return s.b > 0 || cost < s.cost
	}
	if s.b == 0 {
		return false
	}

	return b < s.b || (b == s.b && cost < s.cost)
}

// bestInsertion places v at the slot (1..len-1) with the lowest driving
// distance; the first such slot wins ties. A single-vertex tour t becomes
// [t, v, t].
func (s *search) bestInsertion(v int) []int {
	if len(s.tour) == 1 {
		return []int{s.tour[0], v, s.tour[0]}
	}

	var (
		best     []int
		bestCost int64
		pos      int
		cand     []int
		c        int64
	)
	for pos = 1; pos < len(s.tour); pos++ {
		cand = insertAt(s.tour, pos, v)
		c = s.e.DrivingCost(cand)
		if best == nil || c < bestCost {
			best, bestCost = cand, c
		}
	}

	return best
}

func contains(tour []int, v int) bool {
	for _, x := range tour {
		if x == v {
			return true
		}
	}

	return false
}

// without returns tour with every occurrence of v removed.
func without(tour []int, v int) []int {
	out := make([]int, 0, len(tour))
	for _, x := range tour {
		if x != v {
			out = append(out, x)
		}
	}

	return out
}

func insertAt(tour []int, pos, v int) []int {
	out := make([]int, 0, len(tour)+1)
	out = append(out, tour[:pos]...)
	out = append(out, v)

	return append(out, tour[pos:]...)
}
