package grid

import "fmt"

// Cell occupancy values stored in the grid buffer.
const (
	Free    uint8 = 0
	Blocked uint8 = 1
)

// Coord identifies a single cell by row and column.
// It is a comparable value type, so it works as a map key and as a path element.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by the offset d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Neighbors4 lists the axis-aligned neighbor offsets in expansion order:
// up, down, left, right. Searches iterate it in this order, which makes their
// tie-breaking reproducible.
var Neighbors4 = [4]Coord{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Grid is a rectangular occupancy grid. It is immutable once built.
// cells holds rows*cols occupancy values in row-major order.
type Grid struct {
	rows, cols int
	cells      []uint8
}
