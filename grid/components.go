package grid

// Components finds all 4-connected regions of free cells.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in breadth-first discovery order. Components are listed in the
// row-major order of their first cell.
//
// To convert an index back to a coordinate, use Coord(idx).
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Components() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0, v := range g.cells {
		if v != Free || seen[i0] {
			continue
		}
		seen[i0] = true
		comps = append(comps, g.flood(i0, seen))
	}

	return comps
}

// ReachableCount returns the number of free cells 4-connected to start,
// start included. Returns 0 if start is out of bounds or blocked.
func (g *Grid) ReachableCount(start Coord) int {
	if g.Blocked(start) {
		return 0
	}
	i0 := g.Index(start)
	seen := make([]bool, len(g.cells))
	seen[i0] = true

	return len(g.flood(i0, seen))
}

// flood collects the component containing i0 by BFS. i0 must already be marked in seen.
func (g *Grid) flood(i0 int, seen []bool) []int {
	queue := []int{i0}
	for qi := 0; qi < len(queue); qi++ {
		u := g.Coord(queue[qi])
		for _, d := range Neighbors4 {
			v := u.Add(d)
			if g.Blocked(v) {
				continue
			}
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}
