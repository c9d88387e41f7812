// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All kernels return these sentinels (possibly wrapped with an operation tag)
// and callers MUST match them via errors.Is. User-triggered conditions never panic.

package sparse

import "errors"

// Every message is prefixed with "sparse: ..." for easy grepping. Facades wrap
// with fmt.Errorf("<Op>: %w", ErrX); errors.Is keeps working through the wrap.

var (
	// ErrInvalidDimensions is returned when rows<=0 or cols<=0 is requested.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside [0,rows)×[0,cols).
	// At/Set return it instead of panicking.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add/Sub of
	// different shapes, or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was used as receiver or operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
