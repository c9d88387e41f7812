// SPDX-License-Identifier: MIT
// Package: sparsemat/builder
//
// impl_diagonal.go - Identity and Diagonal constructors.
//
// Both write along the main diagonal (i,i) for i < min(rows, cols), so they
// also work on rectangular matrices.

package builder

import (
	"github.com/katalvlaran/sparsemat/sparse"
)

// Identity returns a Constructor that sets (i,i)=1 for every i < min(rows, cols).
// Complexity: O(min(rows,cols)).
func Identity() Constructor {
	return func(m *sparse.Matrix, _ builderConfig) error {
		rows, cols := m.Shape()
		for i := 0; i < min(rows, cols); i++ {
			if err := m.Set(i, i, 1); err != nil {
				return builderErrorf(MethodIdentity, "Set(%d,%d): %w", i, i, err)
			}
		}
		return nil
	}
}

// Diagonal returns a Constructor that sets (i,i)=vs[i]. Zero values clear the cell.
//
// Errors:
//   - ErrShape if len(vs) > min(rows, cols).
func Diagonal(vs ...int64) Constructor {
	return func(m *sparse.Matrix, _ builderConfig) error {
		rows, cols := m.Shape()
		if err := validateFits(MethodDiagonal, len(vs), min(rows, cols), rows, cols); err != nil {
			return err
		}
		for i, v := range vs {
			if err := m.Set(i, i, v); err != nil {
				return builderErrorf(MethodDiagonal, "Set(%d,%d): %w", i, i, err)
			}
		}
		return nil
	}
}
