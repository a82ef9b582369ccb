package astar

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/morning-star-1/project9-hp-algo/grid"
)

// Manhattan returns |Δrow| + |Δcol|, the exact distance on an empty
// 4-connected unit grid. Admissible and consistent.
func Manhattan(a, b grid.Coord) float64 {
	return math.Abs(float64(a.Row-b.Row)) + math.Abs(float64(a.Col-b.Col))
}

// Euclidean returns the straight-line distance between a and b.
// Admissible for 4-connected grids but looser than Manhattan.
func Euclidean(a, b grid.Coord) float64 {
	dr, dc := float64(a.Row-b.Row), float64(a.Col-b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// Zero always returns 0, turning Search into uniform-cost search.
func Zero(_, _ grid.Coord) float64 {
	return 0
}

var heuristics = map[string]Heuristic{
	"manhattan": Manhattan,
	"euclidean": Euclidean,
	"zero":      Zero,
}

// Lookup resolves a heuristic by case-insensitive name.
func Lookup(name string) (Heuristic, error) {
	h, ok := heuristics[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownHeuristic, name, strings.Join(HeuristicNames(), ", "))
	}

	return h, nil
}

// HeuristicNames lists the names accepted by Lookup, sorted.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for n := range heuristics {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
