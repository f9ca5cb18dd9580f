// SPDX-License-Identifier: MIT

package subset_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/subset"
)

// ExampleSolve visits two stops that are not adjacent to the depot.
func ExampleSolve() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(1, 3, 2)

	res, err := subset.Solve(g, []int{2, 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("compact:", res.Compact)
	fmt.Println("walk:", res.Walk)
	fmt.Println("cost:", res.Cost)
	// Output:
	// compact: [0 3 2 0]
	// walk: [0 1 3 1 2 1 0]
	// cost: 8
}
