// SPDX-License-Identifier: MIT
// Package sparse_test contains shared fixtures for the sparse tests.

package sparse_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// traceTo redirects the package tracer into t for the duration of the test.
func traceTo(t *testing.T) {
	t.Helper()
	teardown := gotestingadapter.QuickConfig(t, "sparsemat")
	t.Cleanup(teardown)
}

// MustNew allocates a rows×cols matrix or fails the test.
func MustNew(t testing.TB, rows, cols int) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(rows, cols)
	require.NoError(t, err)
	return m
}

// FromTriplets builds a matrix through Set, in the given order.
func FromTriplets(t testing.TB, rows, cols int, ts ...sparse.Triplet) *sparse.Matrix {
	t.Helper()
	m := MustNew(t, rows, cols)
	for _, tr := range ts {
		require.NoError(t, m.Set(tr.Row, tr.Col, tr.Value))
	}
	return m
}

// RandomMatrix fills roughly density*rows*cols cells with values in [-9,9]\{0}
// using a fixed seed. Zero draws are skipped, so nnz may be slightly lower.
func RandomMatrix(t testing.TB, rows, cols int, density float64, seed int64) *sparse.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustNew(t, rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() < density {
				require.NoError(t, m.Set(i, j, int64(rng.Intn(19)-9)))
			}
		}
	}
	return m
}

// denseMul is the O(n³) reference product.
func denseMul(a, b [][]int64) [][]int64 {
	n, k, p := len(a), len(b), len(b[0])
	out := make([][]int64, n)
	for i := range out {
		out[i] = make([]int64, p)
		for x := 0; x < k; x++ {
			for j := 0; j < p; j++ {
				out[i][j] += a[i][x] * b[x][j]
			}
		}
	}
	return out
}

// requireCanonical asserts strict (row, col) ordering and the absence of zeros.
func requireCanonical(t *testing.T, m *sparse.Matrix) {
	t.Helper()
	ts := m.Triplets()
	require.True(t, slices.IsSortedFunc(ts, func(a, b sparse.Triplet) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	}), "triplets not sorted: %v", ts)
	for i, tr := range ts {
		require.NotZero(t, tr.Value, "zero stored at %d: %v", i, tr)
		if i > 0 {
			require.True(t, ts[i-1].Less(tr), "duplicate key at %d: %v", i, tr)
		}
	}
}
