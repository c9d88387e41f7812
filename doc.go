// Package sparsemat is a small engine for integer sparse matrices: a sorted
// triplet store, a line-oriented text format, and add / subtract / multiply
// kernels that never materialize the dense form.
//
// 🚀 What is in the box?
//
//	• Triplet store: sorted (row, col, value) entries, no zeros, O(log nnz) lookups
//	• Arithmetic: merge-based Add/Sub, CSR-accelerated Mul, Transpose, Scale
//	• Text codec: "rows = R" / "cols = C" header plus one (r,c,v) or {r,c,v} per line
//	• Fixtures: seeded random sparse, identity, diagonal and literal builders
//	• CLI: sparsemat add|sub|mul|gen|list
//
// Under the hood, everything is organized under three subpackages:
//
//	sparse/  - Matrix, Triplet, CSR view and the arithmetic kernels
//	format/  - Parse/ParseFile and Write/WriteFile for the triplet text format
//	builder/ - BuildMatrix with composable constructors and functional options
//
// Quick example:
//
//	rows = 2
//	cols = 2
//	(0,0,1)
//	(1,1,2)
//
// is the 2×2 matrix diag(1, 2).
//
//	go install github.com/katalvlaran/sparsemat/cmd/sparsemat@latest
package sparsemat
