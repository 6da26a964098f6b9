package views

import (
	"testing"

	"github.com/janpfeifer/must"
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

func TestNew(t *testing.T) {
	data := iota64(6)

	v := must.M1(New(data, 0, []int{2, 3}, []int{3, 1}))
	assert.Equal(t, 2, v.Rank())
	assert.Equal(t, 3, v.Len(1))
	assert.Equal(t, 3, v.Stride(0))
	assert.Equal(t, 5.0, v.At(1, 2))

	// Metadata is copied: mutating the argument slices doesn't leak in.
	lengths := []int{2, 3}
	v = must.M1(New(data, 0, lengths, []int{3, 1}))
	lengths[0] = 17
	assert.Equal(t, 2, v.Len(0))

	// Negative strides address from an interior origin.
	rev := must.M1(New(data, 5, []int{6}, []int{-1}))
	assert.Equal(t, 5.0, rev.At(0))
	assert.Equal(t, 0.0, rev.At(5))

	_, err := New(data, 0, []int{2, 3}, []int{3})
	require.ErrorContains(t, err, "disagree")
	_, err = New(data, 0, []int{2, 0}, []int{3, 1})
	require.ErrorContains(t, err, "length >= 1")
	_, err = New(data, 0, []int{7}, []int{1})
	require.ErrorContains(t, err, "outside the backing storage")
	_, err = New(data, 0, []int{6}, []int{-1})
	require.ErrorContains(t, err, "outside the backing storage")
}

func TestRowMajor(t *testing.T) {
	v := RowMajor(iota64(24), 2, 3, 4)
	assert.Equal(t, []int{12, 4, 1}, v.Strides)
	assert.Equal(t, 23.0, v.At(1, 2, 3))
	assert.Equal(t, 0.0, v.At(0, 0, 0))

	v.SetAt(-1, 1, 0, 0)
	assert.Equal(t, -1.0, v.At(1, 0, 0))

	scalar := RowMajor([]float64{42})
	assert.Equal(t, 0, scalar.Rank())
	assert.Equal(t, 42.0, scalar.At())

	assert.Panics(t, func() { RowMajor(iota64(5), 2, 3) })
}

func TestSameStorage(t *testing.T) {
	data := iota64(6)
	a := RowMajor(data, 6)
	b := must.M1(New(data, 3, []int{3}, []int{1}))
	assert.True(t, SameStorage(a, b))
	assert.False(t, SameStorage(a, RowMajor(iota64(6), 6)))
}

func TestFromAnyValue(t *testing.T) {
	v := must.M1(FromAnyValue[float64]([][]float64{{1, 2}, {3, 4}, {5, 6}}))
	assert.Equal(t, []int{3, 2}, v.Lengths)
	assert.Equal(t, []int{2, 1}, v.Strides)
	assert.Equal(t, 6.0, v.At(2, 1))

	scalar := must.M1(FromAnyValue[complex64](complex64(2 + 3i)))
	assert.Equal(t, 0, scalar.Rank())
	assert.Equal(t, complex64(2+3i), scalar.At())

	_, err := FromAnyValue[float64]([][]float64{{1, 2}, {3}})
	require.ErrorContains(t, err, "irregular")
	_, err = FromAnyValue[float64]([][]float32{{1, 2}})
	require.ErrorContains(t, err, "cannot convert")
	_, err = FromAnyValue[float64]([]float64{})
	require.ErrorContains(t, err, "empty slice")
}
