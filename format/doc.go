// SPDX-License-Identifier: MIT

// Package format reads and writes sparse matrices in the line-oriented
// triplet text format:
//
//	rows = 3
//	cols = 4
//	(0,1,5)
//	{2,3,-7}
//
// The header is positional: the first non-blank line must be "rows = R" and
// the second "cols = C", both positive. Each further non-blank line is one
// entry in either bracket style, comma separated, with optional whitespace
// and optional minus signs. Blank lines may appear anywhere.
//
// Reading stops at the first malformed line. Entries with value 0 are dropped;
// duplicate coordinates keep the last value unless WithRejectDuplicates is set.
// Writing always emits ascending (row, col) order in a single bracket style, so
// Parse(Write(m)) reproduces m exactly.
package format

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'sparsemat'.
func tracer() tracing.Trace {
	return tracing.Select("sparsemat")
}
