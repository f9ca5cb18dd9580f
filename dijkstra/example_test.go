// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// ExampleAllPairs expands a depot round trip into original road hops.
func ExampleAllPairs() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(1, 2, 3)
	_ = g.AddEdge(0, 2, 9)

	tab, err := dijkstra.AllPairs(g, 0, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := tab.Distance(0, 2)
	walk, _ := tab.Expand([]int{0, 2, 0})
	fmt.Println("distance:", d)
	fmt.Println("walk:", walk)
	// Output:
	// distance: 7
	// walk: [0 1 2 1 0]
}
