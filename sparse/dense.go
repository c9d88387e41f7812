// SPDX-License-Identifier: MIT

package sparse

import "fmt"

const opFromDense = "FromDense"

// ToDense materializes m as a rows×cols [][]int64 (zeros included).
// Intended for small fixtures and reference checks; Space O(rows*cols).
// ToDense of nil is nil.
func (m *Matrix) ToDense() [][]int64 {
	if m == nil {
		return nil
	}
	out := make([][]int64, m.rows)
	flat := make([]int64, m.rows*m.cols)
	for i := range out {
		out[i] = flat[i*m.cols : (i+1)*m.cols]
	}
	for _, t := range m.data {
		out[t.Row][t.Col] = t.Value
	}
	return out
}

// FromDense builds a canonical Matrix from a rectangular [][]int64, skipping zeros.
//
// Errors:
//   - ErrInvalidDimensions if there are no rows or the first row is empty.
//   - ErrDimensionMismatch if the rows are ragged.
//
// Complexity: O(rows*cols).
func FromDense(rows [][]int64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, sparseErrorf(opFromDense, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m := &Matrix{rows: r, cols: c}
	m.reserve(DefaultCapacity)

	for i, row := range rows {
		if len(row) != c {
			return nil, sparseErrorf(opFromDense,
				fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrDimensionMismatch))
		}
		for j, v := range row {
			if v != 0 {
				m.push(Triplet{Row: i, Col: j, Value: v})
			}
		}
	}

	return m, nil
}
