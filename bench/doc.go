// Package bench measures the effort/quality tradeoff of A* and Weighted A*
// configurations over reproducible random grids.
//
// A Suite describes the grid shape, obstacle probability, number of trials,
// base seed and the (heuristic, weight) configurations to compare. Run builds
// one grid per trial (seed+trial, with the endpoints (0,0) and
// (rows-1, cols-1) forced free), times every configuration on it, and
// aggregates per-configuration statistics into a Report:
//
//   - average wall time per search in milliseconds,
//   - average number of expanded cells,
//   - number of successful searches,
//   - average cost among successful searches,
//   - worst observed cost/optimal ratio, using BFS distances as the optimum.
//
// Trials may run in parallel (Suite.Workers); each trial owns its grid and all
// search state, and samples are aggregated in trial order, so everything but
// the timings is independent of scheduling.
//
// A Report renders as an aligned text table, JSON or YAML.
package bench
