// SPDX-License-Identifier: MIT
// Package: hp-algo/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • seed = 0
//   • open = none

package builder

import (
	"github.com/morning-star-1/project9-hp-algo/grid"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Seed of the LCG stream (low 32 bits).
	seed int64
	// Cells cleared after sampling.
	open []grid.Coord
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last-wins for scalar fields).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{seed: 0}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
