package normalize

import (
	"github.com/gomlx/einsum/internal/indices"
	"github.com/gomlx/einsum/types/views"
	"github.com/gomlx/exceptions"
)

// Diagonal rewrites a view so that repeated labels within the operand become
// a single axis addressing the generalized diagonal. It returns the new view
// and its new index string; the arguments are unchanged.
//
// Axes of length 1 are dropped. Axes sharing a label (which the validator
// guarantees have equal lengths) collapse into one axis whose stride is the
// sum of the collapsed strides: stepping that axis advances every original
// coordinate at once, which is exactly the diagonal, still as a plain strided
// view over the original storage. The surviving axes come out sorted by
// label.
func Diagonal[T views.Number](a views.View[T], idxA string) (views.View[T], string) {
	idx := []rune(idxA)
	if len(idx) != a.Rank() {
		exceptions.Panicf("Diagonal of a rank-%d view with index string %q (%d labels)",
			a.Rank(), idxA, len(idx))
	}

	axes := indices.Range(a.Rank())
	indices.SortByLabel(axes, idx)

	newIdx := make([]rune, 0, a.Rank())
	lengths := make([]int, 0, a.Rank())
	strides := make([]int, 0, a.Rank())

	for i, axis := range axes {
		switch {
		case a.Len(axis) == 1:
			// Dropped.
		case i == 0 || idx[axis] != idx[axes[i-1]]:
			newIdx = append(newIdx, idx[axis])
			lengths = append(lengths, a.Len(axis))
			strides = append(strides, a.Stride(axis))
		default:
			strides[len(strides)-1] += a.Stride(axis)
		}
	}

	return a.Reshaped(a.Offset, lengths, strides), string(newIdx)
}

// DiagonalOf is a convenience wrapper around Diagonal for call sites that
// only need the view.
func DiagonalOf[T views.Number](a views.View[T], idxA string) views.View[T] {
	v, _ := Diagonal(a, idxA)
	return v
}
