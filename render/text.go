package render

import (
	"strings"

	"github.com/morning-star-1/project9-hp-algo/grid"
)

// layer precomputes the marker lookup shared by Text and Draw.
type layer struct {
	g      *grid.Grid
	onPath map[grid.Coord]struct{}
	opts   Options
}

func newLayer(g *grid.Grid, path []grid.Coord, opts []Option) layer {
	l := layer{g: g, opts: newOptions(opts)}
	if len(path) > 0 {
		l.onPath = make(map[grid.Coord]struct{}, len(path))
		for _, c := range path {
			l.onPath[c] = struct{}{}
		}
	}
	return l
}

// bounds returns the clipped rows and columns to draw.
func (l layer) bounds() (rows, cols int) {
	if l.g == nil {
		return 0, 0
	}
	return min(l.g.Rows(), l.opts.MaxRows), min(l.g.Cols(), l.opts.MaxCols)
}

// glyph resolves the character for c.
func (l layer) glyph(c grid.Coord) rune {
	ch := GlyphFree
	if l.g.Blocked(c) {
		ch = GlyphBlocked
	}
	if _, ok := l.onPath[c]; ok {
		ch = GlyphPath
	}
	if l.opts.Start != nil && *l.opts.Start == c {
		ch = GlyphStart
	}
	if l.opts.Goal != nil && *l.opts.Goal == c {
		ch = GlyphGoal
	}
	return ch
}

// Text renders g as lines joined by '\n', without a trailing newline.
// A nil or empty grid renders as "".
func Text(g *grid.Grid, path []grid.Coord, opts ...Option) string {
	l := newLayer(g, path, opts)
	rows, cols := l.bounds()

	var sb strings.Builder
	sb.Grow(rows * (cols + 1))
	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < cols; c++ {
			sb.WriteRune(l.glyph(grid.Coord{Row: r, Col: c}))
		}
	}
	return sb.String()
}
