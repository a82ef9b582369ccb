// SPDX-License-Identifier: MIT
// Package: hp-algo/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w via builderErrorf.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative row or column count.
// Usage: if errors.Is(err, ErrBadSize) { /* fix rows/cols */ }.
var ErrBadSize = errors.New("builder: invalid size")

// ErrInvalidProbability indicates that an obstacle probability lies outside
// the closed interval [0,1] or is NaN.
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// builderErrorf wraps sentinel with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
