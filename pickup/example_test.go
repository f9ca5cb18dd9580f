// SPDX-License-Identifier: MIT

package pickup_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/pickup"
)

// ExampleSolve picks up a friend living opposite the depot on a unit square.
func ExampleSolve() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(3, 0, 1)

	res, err := pickup.Solve(g, []int{2}, 1.0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("walk:", res.Walk)
	fmt.Println("pickups:", res.Assignment)
	fmt.Println("cost:", res.Cost, "feasible:", res.Feasible())
	// Output:
	// walk: [0 1 0]
	// pickups: map[1:[2]]
	// cost: 3 feasible: true
}
