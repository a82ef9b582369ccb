// SPDX-License-Identifier: MIT
// Package: hp-algo/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Determinism is explicit: seeding is done via WithSeed.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"github.com/morning-star-1/project9-hp-algo/grid"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before grid construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithSeed sets the seed of the LCG stream. Only the low 32 bits are used,
// so seeds congruent modulo 2^32 produce identical grids.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.seed = seed
	}
}

// WithOpenCells lists cells that are forced free after sampling, such as the
// start and goal of a benchmark trial. Out-of-bounds cells are ignored.
// Repeated use appends.
func WithOpenCells(cells ...grid.Coord) BuilderOption {
	return func(c *builderConfig) {
		c.open = append(c.open, cells...)
	}
}
