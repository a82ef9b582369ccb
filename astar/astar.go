package astar

import (
	"container/heap"
	"math"

	"github.com/morning-star-1/project9-hp-algo/grid"
)

// noParent marks cells without a predecessor in the parent links.
const noParent = -1

// Search finds a path from start to goal on g using heuristic h and the
// configured weight (see WithWeight).
//
// Preconditions are checked, not assumed, and fail without doing any work
// (Expanded = 0):
//
//  1. g must be non-nil and both endpoints must lie within its bounds.
//     A zero-sized grid therefore always fails here.
//  2. Both endpoints must be free.
//
// If start == goal the result is Found with Path=[start], Cost=0, Expanded=0.
// A nil h is treated as Zero.
//
// Otherwise Search runs best-first graph search with unit edge costs over the
// four axis-aligned neighbors and either returns the first path to reach goal
// when goal is popped, or Found=false once the frontier is exhausted, with
// Expanded counting every cell finalized along the way.
func Search(g *grid.Grid, start, goal grid.Coord, h Heuristic, opts ...Option) Result {
	// 1) Build Options; a nil heuristic degrades to uniform-cost search
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if h == nil {
		h = Zero
	}

	// 2) Validate grid and endpoint bounds
	if g == nil || !g.InBounds(start) || !g.InBounds(goal) {
		return notFound(0)
	}
	// 3) Validate endpoints are free
	if g.Blocked(start) || g.Blocked(goal) {
		return notFound(0)
	}
	// 4) Trivial path
	if start == goal {
		return Result{Path: []grid.Coord{start}, Cost: 0, Expanded: 0, Found: true}
	}

	// 5) Allocate per-call state, seed the frontier and run the main loop
	r := newRunner(g, goal, h, cfg)
	r.init(start)

	return r.process()
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g       *grid.Grid
	goal    grid.Coord
	goalIdx int
	h       Heuristic
	weight  float64
	onExp   func(grid.Coord, float64)

	gScore []float64 // best-known cost from start, +Inf if unseen
	parent []int     // predecessor index, noParent if none
	closed []bool    // finalized flags
	open   frontier
	seq    uint64 // last issued insertion sequence number

	expanded int
}

func newRunner(g *grid.Grid, goal grid.Coord, h Heuristic, cfg Options) *runner {
	n := g.Len()
	r := &runner{
		g:       g,
		goal:    goal,
		goalIdx: g.Index(goal),
		h:       h,
		weight:  cfg.Weight,
		onExp:   cfg.OnExpand,
		gScore:  make([]float64, n),
		parent:  make([]int, n),
		closed:  make([]bool, n),
		open:    make(frontier, 0, 64),
	}
	inf := math.Inf(1)
	for i := range r.gScore {
		r.gScore[i] = inf
		r.parent[i] = noParent
	}

	return r
}

// init seeds the frontier with start at g = 0.
func (r *runner) init(start grid.Coord) {
	si := r.g.Index(start)
	r.gScore[si] = 0
	heap.Init(&r.open)
	heap.Push(&r.open, entry{key: r.weight * r.h(start, r.goal), seq: r.seq, idx: si})
}

// process is the main loop: pop the best entry, skip it if stale, finalize it,
// stop at the goal, otherwise relax its neighbors.
func (r *runner) process() Result {
	for r.open.Len() > 0 {
		// 1) Pop the lowest (key, seq) entry; skip stale duplicates
		e := heap.Pop(&r.open).(entry)
		if r.closed[e.idx] {
			continue
		}
		// 2) Finalize the cell; it is never re-opened
		r.closed[e.idx] = true
		r.expanded++

		cur := r.g.Coord(e.idx)
		if r.onExp != nil {
			r.onExp(cur, r.gScore[e.idx])
		}

		// 3) Goal reached: rebuild the path from parent links
		if e.idx == r.goalIdx {
			return Result{
				Path:     r.path(e.idx),
				Cost:     r.gScore[e.idx],
				Expanded: r.expanded,
				Found:    true,
			}
		}

		// 4) Relax neighbors in up, down, left, right order
		r.relax(cur, e.idx)
	}

	// 5) Frontier exhausted
	return notFound(r.expanded)
}

// relax pushes every in-bounds, free, open neighbor of cur whose g-score
// strictly improves.
func (r *runner) relax(cur grid.Coord, ci int) {
	ng := r.gScore[ci] + 1.0
	for _, d := range grid.Neighbors4 {
		nb := cur.Add(d)
		if r.g.Blocked(nb) {
			continue
		}
		ni := r.g.Index(nb)
		if r.closed[ni] || ng >= r.gScore[ni] {
			continue
		}
		r.gScore[ni] = ng
		r.parent[ni] = ci
		r.seq++
		heap.Push(&r.open, entry{key: ng + r.weight*r.h(nb, r.goal), seq: r.seq, idx: ni})
	}
}

// path walks parent links back from idx and returns them in start→goal order.
func (r *runner) path(idx int) []grid.Coord {
	var rev []grid.Coord
	for at := idx; at != noParent; at = r.parent[at] {
		rev = append(rev, r.g.Coord(at))
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
