// SPDX-License-Identifier: MIT

package sparse

// csr is a compressed-sparse-row view of a Matrix.
// It is derived on demand, never mutated after toCSR returns, and dropped
// once the kernel that built it finishes.
//
// Invariants:
//   - len(rowPtr) == rows+1, rowPtr[0] == 0, rowPtr[rows] == nnz, non-decreasing.
//   - Row i occupies colIdx[rowPtr[i]:rowPtr[i+1]] with ascending columns.
type csr struct {
	rows, cols int
	rowPtr     []int
	colIdx     []int
	vals       []int64
}

// toCSR builds the CSR view of m.
//
// Implementation:
//   - Stage 1: count entries per row into rowPtr[r+1].
//   - Stage 2: prefix-sum rowPtr so rowPtr[r] is the offset of row r.
//   - Stage 3: scatter (col, value) pairs using a per-row cursor.
//
// The scatter visits m.data in order, so each row keeps the column order of
// the source; canonical input therefore yields ascending columns per row.
//
// Complexity: O(rows + nnz) time and space.
func toCSR(m *Matrix) *csr {
	nnz := len(m.data)
	c := &csr{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: make([]int, m.rows+1),
		colIdx: make([]int, nnz),
		vals:   make([]int64, nnz),
	}

	for _, t := range m.data {
		c.rowPtr[t.Row+1]++
	}
	for r := 1; r <= m.rows; r++ {
		c.rowPtr[r] += c.rowPtr[r-1]
	}

	next := make([]int, m.rows)
	copy(next, c.rowPtr[:m.rows])
	var p int
	for _, t := range m.data {
		p = next[t.Row]
		c.colIdx[p] = t.Col
		c.vals[p] = t.Value
		next[t.Row]++
	}

	return c
}

// row returns the column indices and values stored in row i.
// The returned slices alias the view and must not be modified.
func (c *csr) row(i int) ([]int, []int64) {
	lo, hi := c.rowPtr[i], c.rowPtr[i+1]
	return c.colIdx[lo:hi], c.vals[lo:hi]
}

// nnz returns the number of stored entries.
func (c *csr) nnz() int { return c.rowPtr[c.rows] }
