package render

import "github.com/morning-star-1/project9-hp-algo/grid"

// Glyphs used by Text and Draw.
const (
	GlyphBlocked = '#'
	GlyphFree    = '.'
	GlyphPath    = '*'
	GlyphStart   = 'S'
	GlyphGoal    = 'G'
)

// Default clipping bounds.
const (
	DefaultMaxRows = 40
	DefaultMaxCols = 80
)

// Options controls rendering.
type Options struct {
	MaxRows, MaxCols int
	Start, Goal      *grid.Coord
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMaxRows clips output to at most n rows. Panics if n < 0.
func WithMaxRows(n int) Option {
	if n < 0 {
		panic("render: WithMaxRows(n<0)")
	}
	return func(o *Options) { o.MaxRows = n }
}

// WithMaxCols clips output to at most n columns. Panics if n < 0.
func WithMaxCols(n int) Option {
	if n < 0 {
		panic("render: WithMaxCols(n<0)")
	}
	return func(o *Options) { o.MaxCols = n }
}

// WithStart marks c with GlyphStart.
func WithStart(c grid.Coord) Option {
	return func(o *Options) { o.Start = &c }
}

// WithGoal marks c with GlyphGoal.
func WithGoal(c grid.Coord) Option {
	return func(o *Options) { o.Goal = &c }
}

func newOptions(opts []Option) Options {
	o := Options{MaxRows: DefaultMaxRows, MaxCols: DefaultMaxCols}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
