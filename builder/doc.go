// Package builder produces reproducible pseudo-random occupancy grids for
// pathfinding experiments, configured with functional options.
//
// The package offers the following key components:
//
//   - Constructors:
//     – RandomGrid:    rows×cols grid, each cell blocked independently with probability p.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed:      seed of the deterministic stream (default 0).
//     – WithOpenCells: cells forced free after sampling (e.g. search endpoints).
//   - Random source:
//     – LCG:           32-bit linear congruential generator
//     (x ← 1664525·x + 1013904223 mod 2^32), sampled as x / 2^32.
//
// Guarantees:
//
//   - Same (rows, cols, p, seed) ⇒ identical grid, on every platform.
//   - Cells are sampled in row-major order, one draw per cell.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors for invalid build parameters, wrapping the
//     sentinels ErrBadSize and ErrInvalidProbability with method context.
//
// Complexity: O(rows·cols) time and memory per grid.
package builder
