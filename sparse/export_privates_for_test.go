// SPDX-License-Identifier: MIT
// Package sparse: test-only shims exposing internals to the external sparse_test package.

package sparse

// CSR_TestOnly returns the three CSR arrays derived from m.
func CSR_TestOnly(m *Matrix) (rowPtr, colIdx []int, vals []int64) {
	c := toCSR(m)
	return c.rowPtr, c.colIdx, c.vals
}

// Capacity_TestOnly exposes the capacity of the triplet buffer.
func Capacity_TestOnly(m *Matrix) int {
	return cap(m.data)
}

// FromTriplets_TestOnly installs ts verbatim (no sorting, no validation).
// Used to feed non-canonical input into toCSR.
func FromTriplets_TestOnly(rows, cols int, ts []Triplet) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: ts}
}
