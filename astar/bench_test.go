package astar_test

import (
	"fmt"
	"testing"

	"github.com/morning-star-1/project9-hp-algo/astar"
	"github.com/morning-star-1/project9-hp-algo/builder"
)

// BenchmarkSearch measures Search on the default 200×200 benchmark grid
// (p=0.25, seed 123) for each heuristic/weight pair the harness uses.
// Complexity: O(N log N) per call with N = 40 000 cells.
func BenchmarkSearch(b *testing.B) {
	start, goal := c(0, 0), c(199, 199)
	g, err := builder.RandomGrid(200, 200, 0.25, builder.WithSeed(123), builder.WithOpenCells(start, goal))
	if err != nil {
		b.Fatalf("setup RandomGrid failed: %v", err)
	}

	cases := []struct {
		name string
		h    astar.Heuristic
		w    float64
	}{
		{"manhattan", astar.Manhattan, 1.0},
		{"euclidean", astar.Euclidean, 1.0},
		{"manhattan", astar.Manhattan, 1.5},
		{"manhattan", astar.Manhattan, 2.0},
	}
	for _, tc := range cases {
		b.Run(fmt.Sprintf("%s/w=%.1f", tc.name, tc.w), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = astar.Search(g, start, goal, tc.h, astar.WithWeight(tc.w))
			}
		})
	}
}
