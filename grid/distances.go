package grid

// Unreachable marks cells with no path from the BFS source.
const Unreachable = -1

// Distances computes exact unit-cost shortest-path lengths from start to every
// cell by breadth-first search over free 4-neighbors.
// The result is indexed row-major; blocked or disconnected cells hold Unreachable.
// If start is out of bounds or blocked, every entry is Unreachable.
//
// Time:   O(R·C·4).
// Memory: O(R·C).
func (g *Grid) Distances(start Coord) []int {
	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = Unreachable
	}
	if g.Blocked(start) {
		return dist
	}

	i0 := g.Index(start)
	dist[i0] = 0
	queue := []int{i0}
	for qi := 0; qi < len(queue); qi++ {
		ui := queue[qi]
		u := g.Coord(ui)
		for _, d := range Neighbors4 {
			v := u.Add(d)
			if g.Blocked(v) {
				continue
			}
			vi := g.Index(v)
			if dist[vi] == Unreachable {
				dist[vi] = dist[ui] + 1
				queue = append(queue, vi)
			}
		}
	}

	return dist
}

// ShortestDistance returns the BFS distance from start to goal and whether
// goal is reachable at all.
func (g *Grid) ShortestDistance(start, goal Coord) (int, bool) {
	if g.Blocked(start) || g.Blocked(goal) {
		return 0, false
	}
	d := g.Distances(start)[g.Index(goal)]
	if d == Unreachable {
		return 0, false
	}

	return d, true
}
