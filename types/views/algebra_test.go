package views

import (
	"slices"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
)

func TestSizeAndStorageSize(t *testing.T) {
	assert.Equal(t, 24, Size([]int{2, 3, 4}))
	assert.Equal(t, 1, Size(nil))

	// Packed layout spans exactly its element count.
	assert.Equal(t, 24, StorageSize([]int{2, 3, 4}, []int{12, 4, 1}))
	assert.Equal(t, 24, StorageSize([]int{2, 3, 4}, nil))

	// Negative strides count by magnitude.
	assert.Equal(t, 6, StorageSize([]int{2, 3}, []int{-3, 1}))

	// A strided (sub-sampled) layout spans more than it holds.
	assert.Equal(t, 7, StorageSize([]int{4}, []int{2}))
}

func TestOffsets(t *testing.T) {
	var got []int
	for off := range Offsets([]int{2, 2}, []int{1, 4}) {
		got = append(got, off)
	}
	assert.Equal(t, []int{0, 1, 4, 5}, got)

	got = got[:0]
	for off := range Offsets(nil, nil) {
		got = append(got, off)
	}
	assert.Equal(t, []int{0}, got)
}

func TestAreCompatible(t *testing.T) {
	// A 2x3 row-major view is the same offsets as a flat length-6 view.
	assert.True(t, AreCompatible([]int{2, 3}, []int{3, 1}, []int{6}, []int{1}))
	// ... and as the column-major enumeration of the same storage.
	assert.True(t, AreCompatible([]int{2, 3}, []int{3, 1}, []int{3, 2}, []int{1, 3}))

	// Different total sizes fail fast.
	assert.False(t, AreCompatible([]int{2, 3}, []int{3, 1}, []int{5}, []int{1}))
	// Same size, different offsets.
	assert.False(t, AreCompatible([]int{2, 3}, []int{3, 1}, []int{6}, []int{2}))
}

func TestAreCongruentAlong(t *testing.T) {
	data := iota64(64)
	a := must.M1(New(data, 0, []int{2, 3, 4}, []int{12, 4, 1}))

	same := must.M1(New(data, 0, []int{2, 7, 4}, []int{12, 4, 1}))
	assert.True(t, AreCongruentAlong(a, same, 1))
	assert.False(t, AreCongruentAlong(a, same, 0))

	// One fewer axis: axis 1 missing entirely.
	missing := must.M1(New(data, 0, []int{2, 4}, []int{12, 1}))
	assert.True(t, AreCongruentAlong(a, missing, 1))
	assert.True(t, AreCongruentAlong(missing, a, 1)) // order independent
	assert.False(t, AreCongruentAlong(a, missing, 0))

	// Stride disagreement is never congruent.
	skewed := must.M1(New(data, 0, []int{2, 3, 4}, []int{12, 1, 4}))
	assert.False(t, AreCongruentAlong(a, skewed, 1))

	// Rank gap of two.
	flat := RowMajor(iota64(24), 24)
	assert.False(t, AreCongruentAlong(a, flat, 0))
}

func TestRowMajorStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, RowMajorStrides([]int{2, 3, 4}))
	assert.True(t, slices.Equal(nil, RowMajorStrides(nil)))
}
