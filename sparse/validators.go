// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for nil/shape/index checks shared by the store and kernels.
//   - Return plain sentinel errors (no wrapping) so facades can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing on the success path.

package sparse

import "fmt"

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	return nil
}

// ValidateSameShape ensures both operands are non-nil and have identical
// (rows, cols), as required by Add and Sub.
//
// Errors:
//   - ErrNilMatrix if a or b is nil (checked first).
//   - ErrDimensionMismatch if shapes differ.
//
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.rows != b.rows || a.cols != b.cols {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() for the product a×b.
//
// Errors:
//   - ErrNilMatrix if a or b is nil.
//   - ErrDimensionMismatch if the inner dimensions differ.
//
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.cols != b.rows {
		return fmt.Errorf("%dx%d × %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	return nil
}

// validateIndex checks 0 ≤ row < rows and 0 ≤ col < cols.
func (m *Matrix) validateIndex(row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return ErrOutOfRange
	}
	return nil
}
