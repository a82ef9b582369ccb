package bench_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/morning-star-1/project9-hp-algo/bench"
)

// BenchmarkRun measures a small suite end to end with one and four workers.
func BenchmarkRun(b *testing.B) {
	for _, workers := range []int{1, 4} {
		s := bench.DefaultSuite()
		s.Rows, s.Cols, s.Trials, s.Workers = 60, 60, 8, workers

		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := bench.Run(context.Background(), s); err != nil {
					b.Fatalf("Run: %v", err)
				}
			}
		})
	}
}
