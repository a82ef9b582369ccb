// Package astar implements A* and Weighted A* best-first search on a
// 4-connected, unit-cost occupancy grid.
//
// Overview:
//
//   - Search expands cells in increasing order of f = g + w·h, where g is the
//     cost from the start, h a pluggable Heuristic estimate to the goal and w ≥ 1
//     the weight supplied via WithWeight.
//   - w = 1 is classic A*: with an admissible, consistent heuristic such as
//     Manhattan the returned path is cost-minimal.
//   - w > 1 is Weighted A*: fewer expansions, and the returned cost is at most
//     w times the optimum.
//
// Determinism:
//
//   - Frontier ties on the priority key are broken by a strictly increasing
//     insertion sequence (earlier entries win). Neighbors are generated in the
//     fixed order up, down, left, right. Identical inputs therefore yield an
//     identical Result, which benchmark reproducibility relies on.
//
// Implementation notes:
//
//   - The frontier is a container/heap binary heap with lazy deletion: improved
//     cells are pushed again and stale entries are skipped on pop once the cell
//     is closed. Closed cells are never re-opened, also under w > 1.
//   - All per-search state (g-scores, parent links, closed flags, frontier) is
//     allocated per call and discarded on return. Concurrent searches over the
//     same *grid.Grid are safe.
//
// Failure model:
//
//   - Out-of-bounds or blocked endpoints and unreachable goals are ordinary
//     outcomes reported through Result.Found, never errors. Expanded is still
//     reported for unreachable goals.
//
// Complexity:
//
//   - Time:  O(N log N) for N = rows·cols; each cell is closed at most once and
//     pushed at most four times.
//   - Space: O(N).
package astar
