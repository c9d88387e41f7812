// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/sparsemat/sparse"
)

// FromRows returns a Constructor that copies a dense row-major literal into m.
// Zero cells are written too, so FromRows fully overrides earlier constructors.
//
// Errors:
//   - ErrShape if the literal is not exactly rows×cols.
//
// Complexity: O(rows·cols · log nnz).
func FromRows(data [][]int64) Constructor {
	return func(m *sparse.Matrix, _ builderConfig) error {
		rows, cols := m.Shape()
		if len(data) != rows {
			return builderErrorf(MethodFromRows, "%d rows, want %d: %w", len(data), rows, ErrShape)
		}
		for i, row := range data {
			if len(row) != cols {
				return builderErrorf(MethodFromRows, "row %d has %d columns, want %d: %w", i, len(row), cols, ErrShape)
			}
			for j, v := range row {
				if err := m.Set(i, j, v); err != nil {
					return builderErrorf(MethodFromRows, "Set(%d,%d): %w", i, j, err)
				}
			}
		}
		return nil
	}
}
