package grid

import "fmt"

// New constructs a Grid from a rectangular 2D slice. Any non-zero value marks
// the cell as blocked. The input is copied, so later mutation of values does
// not affect the Grid.
// Returns ErrNonRectangular if any row length differs from the first.
// An empty slice, or rows of length zero, yield a valid empty grid.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	rows := len(values)
	cols := 0
	if rows > 0 {
		cols = len(values[0])
	}
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), cols, ErrNonRectangular)
		}
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}
	for r, row := range values {
		base := r * cols
		for c, v := range row {
			if v != 0 {
				g.cells[base+c] = Blocked
			}
		}
	}

	return g, nil
}

// NewEmpty constructs a rows×cols grid with every cell free.
// Returns ErrNegativeSize if either dimension is negative.
func NewEmpty(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrNegativeSize)
	}

	return &Grid{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}, nil
}

// FromCells wraps an already-sampled row-major buffer. The buffer is owned by
// the returned Grid; callers must not modify it afterwards.
// Values other than Free are normalized to Blocked.
func FromCells(rows, cols int, cells []uint8) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrNegativeSize)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("buffer has %d cells, want %d: %w", len(cells), rows*cols, ErrNonRectangular)
	}
	for i, v := range cells {
		if v != Free {
			cells[i] = Blocked
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether c lies within the grid. Always false on an empty grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Blocked reports whether c is an obstacle. Out-of-bounds cells count as blocked.
func (g *Grid) Blocked(c Coord) bool {
	if !g.InBounds(c) {
		return true
	}

	return g.cells[g.Index(c)] != Free
}

// Free reports whether c is in bounds and traversable.
func (g *Grid) Free(c Coord) bool {
	return !g.Blocked(c)
}

// Index maps c to its row-major buffer index: row*cols + col.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coord converts a row-major index back to a coordinate.
// Complexity: O(1).
func (g *Grid) Coord(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// FreeCount returns the number of free cells.
func (g *Grid) FreeCount() int {
	n := 0
	for _, v := range g.cells {
		if v == Free {
			n++
		}
	}

	return n
}

// Rows2D returns a fresh [][]int copy of the occupancy values (0 free, 1 blocked).
func (g *Grid) Rows2D() [][]int {
	out := make([][]int, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]int, g.cols)
		base := r * g.cols
		for c := 0; c < g.cols; c++ {
			row[c] = int(g.cells[base+c])
		}
		out[r] = row
	}

	return out
}

// WithOpen returns a copy of g with the given cells cleared to free.
// Out-of-bounds coordinates are ignored. g itself is left untouched.
func (g *Grid) WithOpen(cells ...Coord) *Grid {
	cp := &Grid{rows: g.rows, cols: g.cols, cells: make([]uint8, len(g.cells))}
	copy(cp.cells, g.cells)
	for _, c := range cells {
		if cp.InBounds(c) {
			cp.cells[cp.Index(c)] = Free
		}
	}

	return cp
}
