// SPDX-License-Identifier: MIT
// Package sparse: arithmetic kernels over canonical triplet storage.
//
// Purpose:
//   - Add/Sub as a two-cursor merge that emits canonical output directly.
//   - Mul as row-by-row accumulation over CSR views of both operands.
//   - Transpose/Scale helpers that keep the canonical form without sorting.
//
// Notes:
//   - Operands are never mutated; every kernel returns a freshly owned *Matrix.
//   - Errors are sentinels wrapped as "<Op>: <cause>" via sparseErrorf.

package sparse

import "fmt"

// Operation tags used for uniform error wrapping and tracing.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// sparseErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with err != nil.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: walk a.data and b.data with cursors i, j in row-major order.
//     The smaller key is copied (negated when it comes from b and sign<0);
//     equal keys are combined and emitted only if the sum is non-zero.
//   - Stage 3: drain whichever side has entries left.
//
// Behavior highlights:
//   - Output is canonical by construction; no sort, no search.
//   - Result capacity is reserved once for the worst case nnz_a+nnz_b.
//
// Complexity:
//   - Time O(nnz_a + nnz_b), Space O(nnz_a + nnz_b).
func addSub(a, b *Matrix, sign int64, opTag string) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, sparseErrorf(opTag, err)
	}

	res := &Matrix{rows: a.rows, cols: a.cols}
	res.reserve(len(a.data) + len(b.data))

	var (
		i, j   int
		ta, tb Triplet
	)
	for i < len(a.data) && j < len(b.data) {
		ta, tb = a.data[i], b.data[j]
		switch c := compareTriplets(ta, tb); {
		case c < 0:
			res.push(ta)
			i++
		case c > 0:
			res.push(Triplet{Row: tb.Row, Col: tb.Col, Value: sign * tb.Value})
			j++
		default:
			if v := ta.Value + sign*tb.Value; v != 0 {
				res.push(Triplet{Row: ta.Row, Col: ta.Col, Value: v})
			}
			i++
			j++
		}
	}
	for ; i < len(a.data); i++ {
		res.push(a.data[i])
	}
	for ; j < len(b.data); j++ {
		tb = b.data[j]
		res.push(Triplet{Row: tb.Row, Col: tb.Col, Value: sign * tb.Value})
	}

	tracer().Debugf("%s: %dx%d nnz %d,%d -> %d", opTag, a.rows, a.cols, len(a.data), len(b.data), len(res.data))
	return res, nil
}

// Add returns a fresh matrix C = A + B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes must be identical).
//
// Complexity: O(nnz_a + nnz_b).
func Add(a, b *Matrix) (*Matrix, error) {
	return addSub(a, b, 1, opAdd)
}

// Sub returns a fresh matrix C = A - B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes must be identical).
//
// Complexity: O(nnz_a + nnz_b).
func Sub(a, b *Matrix) (*Matrix, error) {
	return addSub(a, b, -1, opSub)
}

// Mul returns a fresh (a.Rows() × b.Cols()) matrix C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: build CSR views of both operands.
//   - Stage 3: for each row i of A, for each (i,k,va), for each (k,j,vb) in
//     row k of B: C(i,j) += va*vb through the store's search/insert.
//
// Behavior highlights:
//   - Entries whose partial sums cancel to 0 are removed by set(…, 0), so the
//     final result never holds zeros.
//   - Each accumulation is a binary search plus a possible shift-insert; the
//     cost is superlinear in the output density of a row.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols() != b.Rows()).
//
// Complexity:
//   - Time O(Σ_{(i,k)∈A} nnz(B[k,:]) · (log nnz_C + shift)), Space O(rows + nnz).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	res := &Matrix{rows: a.rows, cols: b.cols}
	ca, cb := toCSR(a), toCSR(b)

	var (
		i, p, q, k, j int
		va            int64
		aCols, bCols  []int
		aVals, bVals  []int64
	)
	for i = 0; i < ca.rows; i++ {
		aCols, aVals = ca.row(i)
		for p, k = range aCols {
			va = aVals[p]
			bCols, bVals = cb.row(k)
			for q, j = range bCols {
				res.set(i, j, res.get(i, j)+va*bVals[q])
			}
		}
	}

	tracer().Debugf("%s: %dx%d × %dx%d nnz %d,%d -> %d",
		opMul, a.rows, a.cols, b.rows, b.cols, ca.nnz(), cb.nnz(), len(res.data))
	return res, nil
}

// Transpose returns a fresh (cols × rows) matrix with entries (j, i, v).
//
// Implementation:
//   - Counting pass per source column, prefix sum, then a scatter in source
//     order. Source rows ascend, so each output row receives ascending
//     columns and the result is canonical without sorting.
//
// Complexity: O(cols + nnz).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opTranspose, err)
	}

	offsets := make([]int, m.cols+1)
	for _, t := range m.data {
		offsets[t.Col+1]++
	}
	for c := 1; c <= m.cols; c++ {
		offsets[c] += offsets[c-1]
	}

	data := make([]Triplet, len(m.data), max(len(m.data), DefaultCapacity))
	for _, t := range m.data {
		data[offsets[t.Col]] = Triplet{Row: t.Col, Col: t.Row, Value: t.Value}
		offsets[t.Col]++
	}

	return &Matrix{rows: m.cols, cols: m.rows, data: data}, nil
}

// Scale returns a fresh matrix k·M. Scale(M, 0) is the empty matrix of M's shape.
// Complexity: O(nnz).
func Scale(m *Matrix, k int64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opScale, err)
	}

	res := &Matrix{rows: m.rows, cols: m.cols}
	if k == 0 {
		res.reserve(DefaultCapacity)
		return res, nil
	}
	res.reserve(len(m.data))
	for _, t := range m.data {
		res.data = append(res.data, Triplet{Row: t.Row, Col: t.Col, Value: k * t.Value})
	}

	return res, nil
}

// Add returns m + o. See the package-level Add.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) { return Add(m, o) }

// Sub returns m - o. See the package-level Sub.
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) { return Sub(m, o) }

// Mul returns m × o. See the package-level Mul.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) { return Mul(m, o) }
