package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/morning-star-1/project9-hp-algo/grid"
)

// Sentinel errors returned by the astar helpers. Search itself never fails
// with an error; see Result.Found.
var (
	// ErrBadWeight indicates a weight below 1.0 or NaN was requested.
	ErrBadWeight = errors.New("astar: weight must be >= 1.0")

	// ErrUnknownHeuristic indicates Lookup received an unsupported name.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")
)

// DefaultWeight is the weight of classic (unweighted) A*.
const DefaultWeight = 1.0

// Heuristic estimates the remaining cost from a to b. It must be pure and
// return a non-negative value.
type Heuristic func(a, b grid.Coord) float64

// Result is the outcome of a single Search call.
//
// Path runs from start to goal inclusive and is nil when Found is false.
// Cost is the g-score of the goal, or +Inf when no path was found.
// Expanded counts cells popped from the frontier and finalized.
type Result struct {
	Path     []grid.Coord
	Cost     float64
	Expanded int
	Found    bool
}

// notFound builds the failure result for the given expansion count.
func notFound(expanded int) Result {
	return Result{Path: nil, Cost: math.Inf(1), Expanded: expanded, Found: false}
}

// Options configures a search.
//
// Weight     - multiplier on the heuristic term (≥ 1). Default 1.0.
// OnExpand   - optional callback invoked for each finalized cell, in order.
type Options struct {
	Weight   float64
	OnExpand func(c grid.Coord, g float64)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options for classic A* with no hooks.
func DefaultOptions() Options {
	return Options{Weight: DefaultWeight}
}

// WithWeight sets the heuristic weight w of f = g + w·h.
// Panics with ErrBadWeight when w < 1, w is NaN or w is +Inf.
func WithWeight(w float64) Option {
	if !validWeight(w) {
		panic(ErrBadWeight.Error())
	}
	return func(o *Options) {
		o.Weight = w
	}
}

// WithExpandHook registers fn to observe every finalized cell together with
// its g-score. A nil fn is ignored.
func WithExpandHook(fn func(c grid.Coord, g float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// CheckWeight reports ErrBadWeight for weights WithWeight would reject.
// Use it to validate user input before building options.
func CheckWeight(w float64) error {
	if !validWeight(w) {
		return fmt.Errorf("%w: got %v", ErrBadWeight, w)
	}
	return nil
}

// validWeight reports whether w is finite and >= 1.
func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 1
}
