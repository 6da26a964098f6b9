package normalize

import (
	"testing"

	"github.com/gomlx/einsum/types/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iota64(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	return data
}

func TestDiagonalMatrix(t *testing.T) {
	a := views.RowMajor(iota64(9), 3, 3)
	d, idx := Diagonal(a, "ii")
	require.Equal(t, "i", idx)
	require.Equal(t, []int{3}, d.Lengths)
	// The diagonal is a single axis whose stride is the sum of the original
	// strides.
	assert.Equal(t, []int{4}, d.Strides)
	for i := 0; i < 3; i++ {
		assert.Equal(t, a.At(i, i), d.At(i))
	}

	// The argument is untouched.
	assert.Equal(t, []int{3, 3}, a.Lengths)
}

func TestDiagonalInterleaved(t *testing.T) {
	// Repeated labels need not be adjacent: a[i,j,i].
	a := views.RowMajor(iota64(12), 2, 3, 2)
	d, idx := Diagonal(a, "iji")
	require.Equal(t, "ij", idx)
	require.Equal(t, []int{2, 3}, d.Lengths)
	assert.Equal(t, []int{6 + 1, 2}, d.Strides)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, a.At(i, j, i), d.At(i, j))
		}
	}
}

func TestDiagonalDropsUnitAxes(t *testing.T) {
	a := views.RowMajor(iota64(6), 1, 2, 1, 3)
	d, idx := Diagonal(a, "uivj")
	require.Equal(t, "ij", idx)
	require.Equal(t, []int{2, 3}, d.Lengths)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, a.At(0, i, 0, j), d.At(i, j))
		}
	}

	// All axes of length 1 collapse to a scalar view.
	s := views.RowMajor([]float64{5}, 1, 1)
	d, idx = Diagonal(s, "ij")
	assert.Equal(t, "", idx)
	assert.Equal(t, 0, d.Rank())
	assert.Equal(t, 5.0, d.At())
}

func TestDiagonalSortsByLabel(t *testing.T) {
	a := views.RowMajor(iota64(24), 2, 3, 4)
	d, idx := Diagonal(a, "cab")
	require.Equal(t, "abc", idx)
	assert.Equal(t, []int{3, 4, 2}, d.Lengths)
	assert.Equal(t, []int{4, 1, 12}, d.Strides)
}

func TestDiagonalRankMismatchPanics(t *testing.T) {
	a := views.RowMajor(iota64(6), 2, 3)
	assert.Panics(t, func() { Diagonal(a, "i") })
}

func TestDiagonalOf(t *testing.T) {
	a := views.RowMajor(iota64(4), 2, 2)
	d := DiagonalOf(a, "ii")
	assert.Equal(t, []int{2}, d.Lengths)
	assert.Equal(t, 3.0, d.At(1))
}
