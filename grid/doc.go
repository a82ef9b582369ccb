// Package grid models a 2-D occupancy grid as an implicit 4-connected graph.
//
// What:
//
//   - Grid wraps a rectangular rows×cols field of cells, each free (0) or blocked (1).
//   - Cells are addressed by Coord{Row, Col} and stored row-major in one flat buffer.
//   - Distances runs a breadth-first search and serves as the exact unit-cost oracle.
//   - Components and ReachableCount describe the free-cell connectivity.
//
// Why:
//
//   - Pathfinding: a compact, cache-friendly graph for A* and Weighted A*.
//   - Benchmarking: BFS distances give the true optimum to measure suboptimality against.
//
// Complexity:
//
//   - New, NewEmpty, WithOpen: O(R×C) time and memory.
//   - InBounds, Blocked, Index, Coord: O(1).
//   - Distances, Components, ReachableCount: O(R×C×4), Memory: O(R×C).
//
// Grids are immutable once built; a single *Grid may be shared read-only by any
// number of concurrent searches.
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeSize: a negative dimension was requested.
//
// A grid with zero rows or zero columns is valid. Every coordinate is out of
// bounds on it, so no search can succeed.
package grid
