// SPDX-License-Identifier: MIT
// Package: hp-algo/builder
//
// impl_random_grid.go - implementation of RandomGrid(rows, cols, p).
//
// Model:
//   - Each cell is blocked independently with probability p: one LCG draw per
//     cell, blocked iff draw < p.
//
// Contract:
//   - rows ≥ 0 and cols ≥ 0 (else ErrBadSize). Zero dimensions give an empty grid.
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability). p = 0 never blocks, p = 1 always does.
//   - Cells listed via WithOpenCells are cleared after all draws, so they do not
//     shift the stream.
//
// Complexity:
//   - Time: O(rows·cols) draws.
//   - Space: O(rows·cols) for the grid buffer.
//
// Determinism:
//   - Stable trial order: row asc, col asc.

package builder

import (
	"math"

	"github.com/morning-star-1/project9-hp-algo/grid"
)

const (
	methodRandomGrid = "RandomGrid"
	probMin          = 0.0
	probMax          = 1.0
)

// RandomGrid samples a rows×cols occupancy grid with obstacle probability p.
func RandomGrid(rows, cols int, p float64, opts ...BuilderOption) (*grid.Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, builderErrorf(methodRandomGrid, ErrBadSize, "rows=%d cols=%d must be >= 0", rows, cols)
	}
	if math.IsNaN(p) || p < probMin || p > probMax {
		return nil, builderErrorf(methodRandomGrid, ErrInvalidProbability,
			"p=%.6f not in [%.1f,%.1f]", p, probMin, probMax)
	}

	cfg := newBuilderConfig(opts...)
	rng := NewLCG(cfg.seed)

	cells := make([]uint8, rows*cols)
	for i := range cells {
		if rng.Float64() < p {
			cells[i] = grid.Blocked
		}
	}
	for _, c := range cfg.open {
		if c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols {
			cells[c.Row*cols+c.Col] = grid.Free
		}
	}

	return grid.FromCells(rows, cols, cells)
}
