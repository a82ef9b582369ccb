// SPDX-License-Identifier: MIT
// Package: hp-algo/builder
//
// lcg.go - 32-bit linear congruential generator.
//
// Parameters are the Numerical Recipes constants (a=1664525, c=1013904223,
// m=2^32). The stream is fully determined by the low 32 bits of the seed.

package builder

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgModulus    = 1 << 32
)

// LCG is a reproducible pseudo-random stream. The zero value is an LCG
// seeded with 0. Not safe for concurrent use.
type LCG struct {
	x uint32
}

// NewLCG returns an LCG seeded with the low 32 bits of seed.
func NewLCG(seed int64) *LCG {
	return &LCG{x: uint32(seed)}
}

// Uint32 advances the stream and returns the new state.
func (l *LCG) Uint32() uint32 {
	l.x = lcgMultiplier*l.x + lcgIncrement // wraps mod 2^32
	return l.x
}

// Float64 advances the stream and returns a sample in [0, 1).
func (l *LCG) Float64() float64 {
	return float64(l.Uint32()) / lcgModulus
}
