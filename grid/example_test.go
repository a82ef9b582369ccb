package grid_test

import (
	"fmt"

	"github.com/morning-star-1/project9-hp-algo/grid"
)

// ExampleGrid_Components shows how free cells split into 4-connected regions.
func ExampleGrid_Components() {
	g, _ := grid.New([][]int{
		{0, 0, 1, 0},
		{1, 1, 1, 0},
		{0, 1, 0, 0},
	})

	for i, comp := range g.Components() {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			fmt.Printf(" %v", g.Coord(idx))
		}
		fmt.Println()
	}

	// Output:
	// component 0: (0,0) (0,1)
	// component 1: (0,3) (1,3) (2,3) (2,2)
	// component 2: (2,0)
}

// ExampleGrid_ShortestDistance computes the exact BFS distance around a wall.
func ExampleGrid_ShortestDistance() {
	g, _ := grid.New([][]int{
		{0, 1, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	d, ok := g.ShortestDistance(grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 2})
	fmt.Println(d, ok)
	// Output: 6 true
}
