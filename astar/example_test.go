package astar_test

import (
	"fmt"

	"github.com/morning-star-1/project9-hp-algo/astar"
	"github.com/morning-star-1/project9-hp-algo/grid"
)

// ExampleSearch finds the optimal path around a wall with classic A*.
func ExampleSearch() {
	g, _ := grid.New([][]int{
		{0, 0, 0, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
	})
	res := astar.Search(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 2, Col: 0}, astar.Manhattan)

	fmt.Println("found:", res.Found, "cost:", res.Cost, "expanded:", res.Expanded)
	fmt.Println("path:", res.Path)
	// Output:
	// found: true cost: 8 expanded: 9
	// path: [(0,0) (0,1) (0,2) (0,3) (1,3) (2,3) (2,2) (2,1) (2,0)]
}

// ExampleWithWeight runs Weighted A* and reports the unreachable case.
func ExampleWithWeight() {
	g, _ := grid.New([][]int{
		{0, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	})
	res := astar.Search(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 2, Col: 2},
		astar.Manhattan, astar.WithWeight(2))

	fmt.Println("found:", res.Found, "cost:", res.Cost, "expanded:", res.Expanded)
	// Output: found: false cost: +Inf expanded: 3
}
