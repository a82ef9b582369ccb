package bench

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/morning-star-1/project9-hp-algo/astar"
	"github.com/morning-star-1/project9-hp-algo/builder"
	"github.com/morning-star-1/project9-hp-algo/grid"
)

// sample is the measurement of one config on one trial grid.
type sample struct {
	millis   float64
	expanded int
	found    bool
	cost     float64
	optimal  float64 // BFS distance, valid only when found
}

// Run executes the suite and aggregates the measurements.
// It returns the first validation or generation error, or ctx.Err() if the
// context is cancelled before all trials have started.
func Run(ctx context.Context, s Suite) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	// samples[trial][config]; each trial goroutine writes only its own row.
	samples := make([][]sample, s.Trials)
	var done atomic.Int64

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(s.Workers)
	for t := 0; t < s.Trials; t++ {
		if gctx.Err() != nil {
			break
		}
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := runTrial(s, t)
			if err != nil {
				return err
			}
			samples[t] = row
			if s.OnTrial != nil {
				s.OnTrial(int(done.Add(1)), s.Trials)
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return newReport(s, aggregate(s.Configs, samples)), nil
}

// runTrial builds the grid for trial t and measures every config on it.
func runTrial(s Suite, t int) ([]sample, error) {
	start := grid.Coord{Row: 0, Col: 0}
	goal := grid.Coord{Row: s.Rows - 1, Col: s.Cols - 1}

	g, err := builder.RandomGrid(s.Rows, s.Cols, s.ObstacleP,
		builder.WithSeed(s.Seed+int64(t)),
		builder.WithOpenCells(start, goal))
	if err != nil {
		return nil, fmt.Errorf("bench: trial %d: %w", t, err)
	}
	optimal, _ := g.ShortestDistance(start, goal)

	row := make([]sample, len(s.Configs))
	for i, c := range s.Configs {
		t0 := time.Now()
		res := astar.Search(g, start, goal, c.Heuristic, astar.WithWeight(c.Weight))
		elapsed := time.Since(t0)

		row[i] = sample{
			millis:   float64(elapsed) / float64(time.Millisecond),
			expanded: res.Expanded,
			found:    res.Found,
			cost:     res.Cost,
			optimal:  float64(optimal),
		}
	}
	return row, nil
}
