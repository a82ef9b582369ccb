package main

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morning-star-1/project9-hp-algo/astar"
	"github.com/morning-star-1/project9-hp-algo/builder"
)

func TestDemo_Defaults(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newCommand(&out).Run(context.Background(), []string{"demo"}))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 21)
	assert.Equal(t, "found=true cost=58.0 expanded=292", lines[0])
	assert.Equal(t, "S...#..##.............#...#.#..##..#....", lines[1])
	assert.Equal(t, ".......#..#.........##.........#*******G", lines[20])
}

func TestDemo_Unreachable(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newCommand(&out).Run(context.Background(),
		[]string{"demo", "--rows", "3", "--cols", "3", "--obstacle-p", "1"}))
	assert.Equal(t, "found=false cost=inf expanded=1\nS##\n###\n##G\n", out.String())
}

func TestDemo_Errors(t *testing.T) {
	err := newCommand(&bytes.Buffer{}).Run(context.Background(), []string{"demo", "--heuristic", "octile"})
	assert.ErrorIs(t, err, astar.ErrUnknownHeuristic)

	err = newCommand(&bytes.Buffer{}).Run(context.Background(), []string{"demo", "--weight", "0.5"})
	assert.ErrorIs(t, err, astar.ErrBadWeight)

	err = newCommand(&bytes.Buffer{}).Run(context.Background(), []string{"demo", "--weight", "Inf"})
	assert.ErrorIs(t, err, astar.ErrBadWeight)

	err = newCommand(&bytes.Buffer{}).Run(context.Background(), []string{"demo", "--rows=-2"})
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "58.0", formatCost(58))
	assert.Equal(t, "0.0", formatCost(0))
	assert.Equal(t, "inf", formatCost(math.Inf(1)))
}
