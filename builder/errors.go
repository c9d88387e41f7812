// SPDX-License-Identifier: MIT
// Package: sparsemat/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf (method + %w).
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructors (WithX..., *ValueFn).

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidDensity indicates that a probability/density is outside [0,1].
var ErrInvalidDensity = errors.New("builder: density out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrShape indicates that a constructor's input does not fit the target shape,
// e.g. more diagonal values than min(rows, cols) or a FromRows literal of a different size.
var ErrShape = errors.New("builder: input does not fit matrix shape")

// ErrConstructFailed indicates a structural failure of the build itself,
// such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the method name, keeping it matchable via errors.Is.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
