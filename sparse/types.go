// SPDX-License-Identifier: MIT

package sparse

import "cmp"

// Triplet is a single non-zero entry of a sparse matrix.
type Triplet struct {
	Row   int   // 0 <= Row < rows
	Col   int   // 0 <= Col < cols
	Value int64 // never 0 inside a Matrix
}

// compareTriplets orders triplets row-major: by Row, then by Col.
// Values do not participate in the order.
func compareTriplets(a, b Triplet) int {
	if a.Row != b.Row {
		return cmp.Compare(a.Row, b.Row)
	}
	return cmp.Compare(a.Col, b.Col)
}

// Less reports whether t precedes o in canonical (row, col) order.
func (t Triplet) Less(o Triplet) bool {
	return compareTriplets(t, o) < 0
}
