// Package hpalgo is a small toolkit for shortest and near-shortest paths on
// 2-D occupancy grids, with A* and Weighted A* search, a reproducible grid
// generator and a benchmark harness that compares heuristics and weights.
//
// 🚀 What is in the box?
//
//   - grid/:    Coord, immutable Grid, occupancy queries, BFS distance oracle, components.
//   - astar/:   Search (A* / Weighted A*), Manhattan, Euclidean and Zero heuristics.
//   - builder/: seeded LCG random grids (RandomGrid, WithSeed, WithOpenCells).
//   - render/:  ASCII maps (Text) and tcell screen drawing (Draw).
//   - bench/:   benchmark suites, parallel trials, stats, table/JSON/YAML reports.
//   - cmd/demo, cmd/bench: command-line entry points.
//
// Movement is 4-connected (up, down, left, right) with unit cost. Weighted A*
// orders the frontier by f = g + w·h; with w = 1 and an admissible heuristic
// the returned path is optimal, with w > 1 its cost is at most w times the
// optimum.
//
// Quick ASCII example (S start, G goal, * path, # blocked):
//
//	S**.
//	##*#
//	..*G
//
//	go get github.com/morning-star-1/project9-hp-algo
package hpalgo
