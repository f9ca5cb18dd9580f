// SPDX-License-Identifier: MIT

package pickup

import "sort"

// pickupOption is one place a friend could be picked up.
type pickupOption struct {
	walk   int64
	vertex int
}

// assign picks, for every home, the walk vertex with the shortest walk,
// breaking ties by vertex id. Homes without any option are returned as
// unassigned, ascending.
func (e *Evaluator) assign(walk []int) (map[int][]int, []int) {
	on := vertexSet(walk)
	assignment := make(map[int][]int)
	var (
		unassigned []int
		opts       []pickupOption
	)
	for _, h := range e.homes {
		opts = opts[:0]
		if _, ok := on[h]; ok {
			opts = append(opts, pickupOption{walk: 0, vertex: h})
		}
		for _, nb := range e.cover[h] {
			if _, ok := on[nb.To]; ok {
				opts = append(opts, pickupOption{walk: nb.Weight, vertex: nb.To})
			}
		}
		if len(opts) == 0 {
			unassigned = append(unassigned, h)
			continue
		}
		sort.Slice(opts, func(i, j int) bool {
			if opts[i].walk != opts[j].walk {
				return opts[i].walk < opts[j].walk
			}
			return opts[i].vertex < opts[j].vertex
		})
		assignment[opts[0].vertex] = append(assignment[opts[0].vertex], h)
	}

	return assignment, unassigned
}
