// SPDX-License-Identifier: MIT

// Package sparse - triplet storage & safe accessors.
//
// Purpose:
//   - Keep a canonical, strictly (row, col)-sorted triplet buffer with no zeros.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Own the growth policy of the buffer explicitly (doubling, see options.go).
//
// Complexity quicksheet:
//   - New: O(capacity); At: O(log nnz); Set: O(log nnz) search + O(nnz) shift; Clone: O(nnz).
package sparse

import (
	"fmt"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// storeErrorf wraps err with the method tag and the offending coordinates.
func storeErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a sparse integer matrix in canonical triplet form.
//   - rows, cols are the declared dimensions (both > 0).
//   - data holds the non-zero entries sorted by (Row, Col), no duplicates.
type Matrix struct {
	rows, cols int
	data       []Triplet
}

var _ fmt.Stringer = (*Matrix)(nil)

// New creates an empty rows×cols matrix.
//
// Errors:
//   - ErrInvalidDimensions if rows <= 0 or cols <= 0.
//
// Complexity: O(capacity) for the initial buffer.
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]Triplet, 0, o.capacity),
	}, nil
}

// The read-only accessors below treat a nil *Matrix as an empty 0×0 matrix
// instead of panicking; mutation through a nil receiver reports ErrNilMatrix.

// Rows returns the declared number of rows.
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}
	return m.rows
}

// Cols returns the declared number of columns.
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}
	return m.cols
}

// Shape returns (rows, cols).
func (m *Matrix) Shape() (rows, cols int) {
	if m == nil {
		return 0, 0
	}
	return m.rows, m.cols
}

// NNZ returns the number of stored non-zero entries.
func (m *Matrix) NNZ() int {
	if m == nil {
		return 0
	}
	return len(m.data)
}

// At returns the value at (row, col), or 0 when no entry is stored.
//
// Implementation:
//   - Stage 1: bounds check; ErrOutOfRange outside the declared shape.
//   - Stage 2: binary search over the canonical triplets.
//
// Complexity: O(log nnz).
func (m *Matrix) At(row, col int) (int64, error) {
	if m == nil {
		return 0, storeErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	if err := m.validateIndex(row, col); err != nil {
		return 0, storeErrorf(ctxAt, row, col, err)
	}

	return m.get(row, col), nil
}

// Set assigns v at (row, col), keeping the canonical form.
//
// Implementation:
//   - Stage 1: bounds check; ErrOutOfRange outside the declared shape.
//   - Stage 2: binary search for the (row, col) slot.
//   - Stage 3: v==0 deletes a present entry; v!=0 overwrites in place or
//     shift-inserts at the search position.
//
// Behavior highlights:
//   - Setting 0 where nothing is stored is a no-op.
//   - Deletion preserves the relative order of the remaining triplets.
//
// Complexity: O(log nnz) search, O(nnz) worst-case shift.
func (m *Matrix) Set(row, col int, v int64) error {
	if m == nil {
		return storeErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	if err := m.validateIndex(row, col); err != nil {
		return storeErrorf(ctxSet, row, col, err)
	}
	m.set(row, col, v)

	return nil
}

// search locates (row, col); pos is the insertion point when found is false.
func (m *Matrix) search(row, col int) (pos int, found bool) {
	return slices.BinarySearchFunc(m.data, Triplet{Row: row, Col: col}, compareTriplets)
}

// get is At without validation; callers guarantee in-range indices.
func (m *Matrix) get(row, col int) int64 {
	if pos, found := m.search(row, col); found {
		return m.data[pos].Value
	}
	return 0
}

// set is Set without validation; callers guarantee in-range indices.
func (m *Matrix) set(row, col int, v int64) {
	pos, found := m.search(row, col)
	switch {
	case found && v == 0:
		m.removeAt(pos)
	case found:
		m.data[pos].Value = v
	case v != 0:
		m.insertAt(pos, Triplet{Row: row, Col: col, Value: v})
	}
}

// reserve guarantees cap(m.data) >= n. Capacity grows by growthFactor from
// max(cap, DefaultCapacity) until it fits, so growth stays geometric.
func (m *Matrix) reserve(n int) {
	if n <= cap(m.data) {
		return
	}
	newCap := cap(m.data) * growthFactor
	if newCap < DefaultCapacity {
		newCap = DefaultCapacity
	}
	for newCap < n {
		newCap *= growthFactor
	}
	buf := make([]Triplet, len(m.data), newCap)
	copy(buf, m.data)
	m.data = buf
}

// insertAt shifts data[pos:] right by one and stores t at pos.
func (m *Matrix) insertAt(pos int, t Triplet) {
	n := len(m.data)
	m.reserve(n + 1)
	m.data = m.data[:n+1]
	copy(m.data[pos+1:], m.data[pos:n])
	m.data[pos] = t
}

// removeAt shifts data[pos+1:] left by one.
func (m *Matrix) removeAt(pos int) {
	copy(m.data[pos:], m.data[pos+1:])
	m.data = m.data[:len(m.data)-1]
}

// push appends t; the caller guarantees t sorts after every stored triplet.
func (m *Matrix) push(t Triplet) {
	m.reserve(len(m.data) + 1)
	m.data = append(m.data, t)
}

// Clone returns a deep copy with the same shape, entries and capacity.
// Clone of nil is nil. Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	buf := make([]Triplet, len(m.data), cap(m.data))
	copy(buf, m.data)

	return &Matrix{rows: m.rows, cols: m.cols, data: buf}
}

// Triplets returns a copy of the stored entries in canonical order.
func (m *Matrix) Triplets() []Triplet {
	if m == nil {
		return nil
	}
	return slices.Clone(m.data)
}

// Each calls fn for every stored entry in canonical order until fn returns false.
func (m *Matrix) Each(fn func(Triplet) bool) {
	if m == nil {
		return
	}
	for _, t := range m.data {
		if !fn(t) {
			return
		}
	}
}

// Equal reports whether m and o have the same shape and the same entries.
// Two nil matrices are equal.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.rows == o.rows && m.cols == o.cols && slices.Equal(m.data, o.data)
}

// String renders "RxC nnz=N [{r,c,v} ...]" for debugging.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d nnz=%d [", m.rows, m.cols, len(m.data))
	for i, t := range m.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "{%d,%d,%d}", t.Row, t.Col, t.Value)
	}
	sb.WriteByte(']')

	return sb.String()
}
