// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for the triplet store.
package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimensions ensures New rejects non-positive dimensions.
func TestNewInvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {3, -2}, {0, 0}} {
		_, err := sparse.New(dims[0], dims[1])
		require.ErrorIs(t, err, sparse.ErrInvalidDimensions, "dims=%v", dims)
	}
}

// TestNewEmpty verifies shape accessors and that a fresh store is empty.
func TestNewEmpty(t *testing.T) {
	t.Parallel()

	m := MustNew(t, 3, 4)
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Zero(t, m.NNZ())
	require.Equal(t, sparse.DefaultCapacity, sparse.Capacity_TestOnly(m))
}

// TestAtSetOutOfRange ensures At and Set report ErrOutOfRange instead of panicking.
func TestAtSetOutOfRange(t *testing.T) {
	t.Parallel()

	m := MustNew(t, 2, 2)
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, sparse.ErrOutOfRange, "At%v", ij)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1), sparse.ErrOutOfRange, "Set%v", ij)
	}
	require.Zero(t, m.NNZ())
}

// TestNilReceiver ensures At/Set on a nil *Matrix fail with ErrNilMatrix and
// the read-only accessors do not panic.
func TestNilReceiver(t *testing.T) {
	t.Parallel()

	var m *sparse.Matrix
	_, err := m.At(0, 0)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	require.ErrorIs(t, m.Set(0, 0, 1), sparse.ErrNilMatrix)

	// read-only accessors see an empty 0×0 matrix
	require.NotPanics(t, func() {
		require.Zero(t, m.Rows())
		require.Zero(t, m.Cols())
		r, c := m.Shape()
		require.Zero(t, r+c)
		require.Zero(t, m.NNZ())
		require.Nil(t, m.Clone())
		require.Nil(t, m.Triplets())
		require.Nil(t, m.ToDense())
		require.Equal(t, "<nil>", m.String())
		m.Each(func(sparse.Triplet) bool {
			t.Fatal("Each on nil must not call fn")
			return false
		})
	})
}

// TestSetGet covers insert, overwrite, delete and absent lookups.
func TestSetGet(t *testing.T) {
	t.Parallel()

	m := MustNew(t, 3, 3)
	require.NoError(t, m.Set(1, 2, 7))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(7), v)

	v, err = m.At(2, 1)
	require.NoError(t, err)
	require.Zero(t, v, "absent entry reads as 0")

	require.NoError(t, m.Set(1, 2, -4)) // overwrite in place
	v, _ = m.At(1, 2)
	require.Equal(t, int64(-4), v)
	require.Equal(t, 1, m.NNZ())

	require.NoError(t, m.Set(1, 2, 0)) // delete
	require.Zero(t, m.NNZ())

	require.NoError(t, m.Set(0, 0, 0)) // deleting nothing is a no-op
	require.Zero(t, m.NNZ())
}

// TestSetKeepsCanonicalOrder inserts out of order and checks the stored sequence.
func TestSetKeepsCanonicalOrder(t *testing.T) {
	t.Parallel()

	m := FromTriplets(t, 3, 3,
		sparse.Triplet{Row: 2, Col: 0, Value: 5},
		sparse.Triplet{Row: 0, Col: 2, Value: 3},
		sparse.Triplet{Row: 1, Col: 1, Value: 4},
		sparse.Triplet{Row: 0, Col: 0, Value: 1},
		sparse.Triplet{Row: 2, Col: 2, Value: 9},
	)
	require.Equal(t, []sparse.Triplet{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 2, Value: 3},
		{Row: 1, Col: 1, Value: 4},
		{Row: 2, Col: 0, Value: 5},
		{Row: 2, Col: 2, Value: 9},
	}, m.Triplets())

	require.NoError(t, m.Set(1, 1, 0)) // removal from the middle keeps the rest in order
	require.Equal(t, []sparse.Triplet{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 2, Value: 3},
		{Row: 2, Col: 0, Value: 5},
		{Row: 2, Col: 2, Value: 9},
	}, m.Triplets())
}

// TestSetRandomSequenceCanonical drives a long random Set sequence against a
// map model and checks canonical form plus point lookups.
func TestSetRandomSequenceCanonical(t *testing.T) {
	t.Parallel()

	const rows, cols = 17, 11
	rng := rand.New(rand.NewSource(7))
	m := MustNew(t, rows, cols)
	model := map[[2]int]int64{}

	for step := 0; step < 2000; step++ {
		i, j := rng.Intn(rows), rng.Intn(cols)
		v := int64(rng.Intn(7) - 3) // includes zeros to exercise deletion
		require.NoError(t, m.Set(i, j, v))
		if v == 0 {
			delete(model, [2]int{i, j})
		} else {
			model[[2]int{i, j}] = v
		}
	}

	requireCanonical(t, m)
	require.Equal(t, len(model), m.NNZ())
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, model[[2]int{i, j}], got, "(%d,%d)", i, j)
		}
	}
}

// TestGrowthDoubles checks the explicit doubling growth policy.
func TestGrowthDoubles(t *testing.T) {
	t.Parallel()

	m, err := sparse.New(1, 100, sparse.WithCapacity(0))
	require.NoError(t, err)
	require.Zero(t, sparse.Capacity_TestOnly(m))

	want := []int{10, 20, 40, 80}
	seen := []int{}
	last := 0
	for j := 0; j < 80; j++ {
		require.NoError(t, m.Set(0, j, 1))
		if c := sparse.Capacity_TestOnly(m); c != last {
			seen = append(seen, c)
			last = c
		}
	}
	require.Equal(t, want, seen)

	m, err = sparse.New(1, 100, sparse.WithCapacity(3))
	require.NoError(t, err)
	for j := 0; j < 4; j++ {
		require.NoError(t, m.Set(0, j, 1))
	}
	require.Equal(t, 10, sparse.Capacity_TestOnly(m), "first growth is floored at DefaultCapacity")
}

// TestWithCapacityPanics ensures the option constructor rejects negative sizes.
func TestWithCapacityPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { sparse.WithCapacity(-1) })
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	m := FromTriplets(t, 2, 2, sparse.Triplet{Row: 0, Col: 0, Value: 1}, sparse.Triplet{Row: 1, Col: 1, Value: 2})
	c := m.Clone()
	require.True(t, m.Equal(c))

	require.NoError(t, c.Set(0, 0, 3))
	require.NoError(t, c.Set(0, 1, 5))

	v, _ := m.At(0, 0)
	require.Equal(t, int64(1), v, "original unchanged")
	require.Equal(t, 2, m.NNZ())
	require.False(t, m.Equal(c))
}

// TestTripletsReturnsCopy ensures callers cannot alias the store.
func TestTripletsReturnsCopy(t *testing.T) {
	t.Parallel()

	m := FromTriplets(t, 2, 2, sparse.Triplet{Row: 1, Col: 0, Value: 4})
	ts := m.Triplets()
	ts[0].Value = 99
	v, _ := m.At(1, 0)
	require.Equal(t, int64(4), v)
}

// TestEachStopsEarly verifies canonical iteration and early termination.
func TestEachStopsEarly(t *testing.T) {
	t.Parallel()

	m := FromTriplets(t, 3, 3,
		sparse.Triplet{Row: 2, Col: 2, Value: 3},
		sparse.Triplet{Row: 0, Col: 1, Value: 1},
		sparse.Triplet{Row: 1, Col: 0, Value: 2},
	)
	var got []int64
	m.Each(func(tr sparse.Triplet) bool {
		got = append(got, tr.Value)
		return len(got) < 2
	})
	require.Equal(t, []int64{1, 2}, got)
}

// TestEqual covers shape and content differences plus nil handling.
func TestEqual(t *testing.T) {
	t.Parallel()

	a := FromTriplets(t, 2, 3, sparse.Triplet{Row: 0, Col: 1, Value: 1})
	b := FromTriplets(t, 2, 3, sparse.Triplet{Row: 0, Col: 1, Value: 1})
	c := FromTriplets(t, 3, 2, sparse.Triplet{Row: 0, Col: 1, Value: 1})
	var n1, n2 *sparse.Matrix

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))
	require.True(t, n1.Equal(n2))
}

// TestString checks the debug rendering.
func TestString(t *testing.T) {
	t.Parallel()

	m := FromTriplets(t, 2, 2, sparse.Triplet{Row: 1, Col: 1, Value: -2}, sparse.Triplet{Row: 0, Col: 0, Value: 1})
	require.Equal(t, "2x2 nnz=2 [{0,0,1} {1,1,-2}]", m.String())
}
