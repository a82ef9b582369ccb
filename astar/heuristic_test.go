package astar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morning-star-1/project9-hp-algo/astar"
)

func TestHeuristics(t *testing.T) {
	a, b := c(1, 2), c(4, 6)
	assert.Equal(t, 7.0, astar.Manhattan(a, b))
	assert.Equal(t, 5.0, astar.Euclidean(a, b))
	assert.Equal(t, 0.0, astar.Zero(a, b))

	// Symmetric and zero on identical cells.
	for _, h := range []astar.Heuristic{astar.Manhattan, astar.Euclidean} {
		assert.Equal(t, h(a, b), h(b, a))
		assert.Equal(t, 0.0, h(a, a))
	}
	assert.LessOrEqual(t, astar.Euclidean(c(0, 0), c(3, 9)), astar.Manhattan(c(0, 0), c(3, 9)))
	assert.InDelta(t, math.Sqrt(2), astar.Euclidean(c(0, 0), c(1, 1)), 1e-12)
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"manhattan", "Euclidean", " ZERO "} {
		h, err := astar.Lookup(name)
		require.NoError(t, err, name)
		require.NotNil(t, h)
	}
	h, err := astar.Lookup("manhattan")
	require.NoError(t, err)
	assert.Equal(t, 3.0, h(c(0, 0), c(1, 2)))

	_, err = astar.Lookup("octile")
	assert.ErrorIs(t, err, astar.ErrUnknownHeuristic)
	assert.Equal(t, []string{"euclidean", "manhattan", "zero"}, astar.HeuristicNames())
}
