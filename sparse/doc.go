// SPDX-License-Identifier: MIT

// Package sparse implements an integer sparse matrix stored as coordinate
// triplets (row, col, value) together with merge-based addition/subtraction
// and a CSR-accelerated multiplication.
//
// Canonical form:
//
//	Every *Matrix keeps its triplets strictly sorted by (row, col) ascending,
//	with no duplicates and no stored zeros. Set(i, j, 0) deletes an entry.
//	All kernels rely on this ordering and all of them preserve it.
//
// Components:
//
//	store.go  - Matrix, At/Set (binary search + shift insert), Clone, iteration.
//	csr.go    - compressed-row view derived on demand for multiplication.
//	ops.go    - Add, Sub (two-cursor merge), Mul (row-by-row accumulation),
//	            Transpose and Scale.
//	dense.go  - conversion to and from [][]int64 for small fixtures.
//
// Complexity quicksheet:
//
//	At: O(log nnz); Set: O(log nnz + nnz) worst case (shift);
//	Add/Sub: O(nnz_a + nnz_b); Mul: O(Σ_{(i,k)∈A} nnz(B[k,:]) · log nnz(C)).
//
// Values are int64; no overflow policy is applied beyond the host width.
// A Matrix is not safe for concurrent mutation; operations never share
// mutable state between operands and results.
package sparse

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'sparsemat'.
func tracer() tracing.Trace {
	return tracing.Select("sparsemat")
}
