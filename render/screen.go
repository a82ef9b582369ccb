package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/morning-star-1/project9-hp-algo/grid"
)

// Styles maps each glyph to a tcell style.
var Styles = map[rune]tcell.Style{
	GlyphBlocked: tcell.StyleDefault.Foreground(tcell.ColorGray),
	GlyphFree:    tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
	GlyphPath:    tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	GlyphStart:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	GlyphGoal:    tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
}

// Draw paints g onto screen at the top-left corner, one cell per grid cell,
// clipped to the options and to the screen size. It does not call Show.
func Draw(screen tcell.Screen, g *grid.Grid, path []grid.Coord, opts ...Option) {
	l := newLayer(g, path, opts)
	rows, cols := l.bounds()
	w, h := screen.Size()
	rows, cols = min(rows, h), min(cols, w)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ch := l.glyph(grid.Coord{Row: r, Col: c})
			screen.SetContent(c, r, ch, nil, Styles[ch])
		}
	}
}

// DrawLine writes s at row y starting at column 0 with the default style,
// truncated to the screen width.
func DrawLine(screen tcell.Screen, y int, s string) {
	w, _ := screen.Size()
	x := 0
	for _, ch := range s {
		if x >= w {
			return
		}
		screen.SetContent(x, y, ch, nil, tcell.StyleDefault)
		x++
	}
}
