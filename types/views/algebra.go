package views

import (
	"iter"
	"slices"

	"github.com/gomlx/einsum/internal/indices"
)

// Size returns the number of elements described by the length vector, the
// product of all lengths. An empty vector describes a scalar: size 1.
func Size(lengths []int) int {
	size := 1
	for _, length := range lengths {
		size *= length
	}
	return size
}

// StorageSize returns the number of storage elements spanned by a layout:
// 1 + sum |stride_i|*(length_i-1). A nil stride vector means a packed layout,
// in which case it returns Size(lengths).
func StorageSize(lengths, strides []int) int {
	if strides == nil {
		return Size(lengths)
	}
	size := 1
	for axis, length := range lengths {
		stride := strides[axis]
		if stride < 0 {
			stride = -stride
		}
		size += stride * (length - 1)
	}
	return size
}

// Offsets enumerates every element offset of the layout, first axis fastest.
// An empty layout yields the single offset 0.
func Offsets(lengths, strides []int) iter.Seq[int] {
	return func(yield func(int) bool) {
		rank := len(lengths)
		coords := make([]int, rank)
		offset := 0
		for {
			if !yield(offset) {
				return
			}
			axis := 0
			for ; axis < rank; axis++ {
				coords[axis]++
				offset += strides[axis]
				if coords[axis] < lengths[axis] {
					break
				}
				coords[axis] = 0
				offset -= strides[axis] * lengths[axis]
			}
			if axis == rank {
				return
			}
		}
	}
}

// AreCompatible reports whether two strided layouts enumerate exactly the
// same offset sequence once both are put in ascending-stride order. It is the
// debug check that folding did not change which elements a view addresses.
func AreCompatible(lenA, strideA, lenB, strideB []int) bool {
	if len(lenA) != len(strideA) || len(lenB) != len(strideB) {
		return false
	}
	if Size(lenA) != Size(lenB) {
		return false
	}

	sortByStride := func(lengths, strides []int) ([]int, []int) {
		axes := indices.Range(len(lengths))
		indices.SortByStride(axes, strides)
		sortedLen := make([]int, len(lengths))
		sortedStride := make([]int, len(strides))
		for i, axis := range axes {
			sortedLen[i] = lengths[axis]
			sortedStride[i] = strides[axis]
		}
		return sortedLen, sortedStride
	}

	lenAr, strideAr := sortByStride(lenA, strideA)
	lenBr, strideBr := sortByStride(lenB, strideB)

	nextB, stop := iter.Pull(Offsets(lenBr, strideBr))
	defer stop()
	for offA := range Offsets(lenAr, strideAr) {
		offB, ok := nextB()
		if !ok || offA != offB {
			return false
		}
	}
	return true
}

// AreCongruentAlong reports whether views A and B agree on all strides and on
// all lengths except possibly at the given axis. It also accepts the
// degenerate case where one view has exactly one fewer axis, the given axis
// missing entirely, with everything else matching. It guards the inverse view
// shapers (Unpartition, Unslice).
func AreCongruentAlong[T Number](a, b View[T], axis int) bool {
	if a.Rank() < b.Rank() {
		a, b = b, a
	}
	rank := a.Rank()

	switch b.Rank() {
	case rank:
		if !slices.Equal(a.Strides, b.Strides) {
			return false
		}
		if !slices.Equal(a.Lengths[:axis], b.Lengths[:axis]) {
			return false
		}
		return slices.Equal(a.Lengths[axis+1:], b.Lengths[axis+1:])
	case rank - 1:
		if !slices.Equal(a.Strides[:axis], b.Strides[:axis]) ||
			!slices.Equal(a.Strides[axis+1:], b.Strides[axis:]) {
			return false
		}
		return slices.Equal(a.Lengths[:axis], b.Lengths[:axis]) &&
			slices.Equal(a.Lengths[axis+1:], b.Lengths[axis:])
	}
	return false
}
