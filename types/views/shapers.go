package views

import (
	"slices"

	"github.com/gomlx/exceptions"
)

// The view shapers below never move data and never inspect element values:
// they only rewrite shape metadata. Violated preconditions are programming
// errors and panic (see exceptions.TryCatch to convert them to errors).

// Partition splits A along the given axis at offset off into a0 (length off)
// and a1 (length Len(axis)-off), both with A's strides. off is clamped to
// [0, Len(axis)]. Either part may come out with a length-0 axis when off is
// at a boundary; such a part is only valid as an argument to Unpartition.
func Partition[T Number](a View[T], axis, off int) (a0, a1 View[T]) {
	if axis < 0 || axis >= a.Rank() {
		exceptions.Panicf("Partition along axis %d of a rank-%d view", axis, a.Rank())
	}
	off = max(0, min(off, a.Len(axis)))

	lengths := slices.Clone(a.Lengths)
	lengths[axis] -= off
	a1 = a.Reshaped(a.Offset+off*a.Stride(axis), lengths, a.Strides)

	lengths = slices.Clone(a.Lengths)
	lengths[axis] = off
	a0 = a.Reshaped(a.Offset, lengths, a.Strides)
	return
}

// Unpartition is the inverse of Partition: it rejoins a0 and a1 along the
// given axis. The two parts must be congruent along the axis, live in the
// same storage, and a1 must start exactly where a0 ends.
func Unpartition[T Number](a0, a1 View[T], axis int) View[T] {
	if axis < 0 || axis >= a0.Rank() {
		exceptions.Panicf("Unpartition along axis %d of a rank-%d view", axis, a0.Rank())
	}
	if !AreCongruentAlong(a0, a1, axis) {
		exceptions.Panicf("Unpartition of incongruent views %s and %s along axis %d", a0, a1, axis)
	}
	if !SameStorage(a0, a1) || a0.Offset+a0.Len(axis)*a0.Stride(axis) != a1.Offset {
		exceptions.Panicf("Unpartition of views that are not adjacent along axis %d", axis)
	}

	lengths := slices.Clone(a0.Lengths)
	lengths[axis] += a1.Len(axis)
	return a0.Reshaped(a0.Offset, lengths, a0.Strides)
}

// Slice splits A along the given axis at offset off into a0 (length off), the
// hyperplane mid at off (one fewer axis), and a2 (length Len(axis)-off-1).
// Requires 0 <= off < Len(axis).
func Slice[T Number](a View[T], axis, off int) (a0, mid, a2 View[T]) {
	if axis < 0 || axis >= a.Rank() {
		exceptions.Panicf("Slice along axis %d of a rank-%d view", axis, a.Rank())
	}
	if off < 0 || off >= a.Len(axis) {
		exceptions.Panicf("Slice of axis %d (length %d) at offset %d", axis, a.Len(axis), off)
	}

	lengths := slices.Clone(a.Lengths)
	lengths[axis] -= off + 1
	a2 = a.Reshaped(a.Offset+(off+1)*a.Stride(axis), lengths, a.Strides)

	lengths = slices.Clone(a.Lengths)
	lengths[axis] = off
	a0 = a.Reshaped(a.Offset, lengths, a.Strides)

	mid = a.Reshaped(a.Offset+off*a.Stride(axis),
		slices.Delete(slices.Clone(a.Lengths), axis, axis+1),
		slices.Delete(slices.Clone(a.Strides), axis, axis+1))
	return
}

// SliceFront takes the first hyperplane along the given axis: it returns that
// hyperplane front (one fewer axis) and the rest of A with the axis shortened
// by one.
func SliceFront[T Number](a View[T], axis int) (front, rest View[T]) {
	if axis < 0 || axis >= a.Rank() {
		exceptions.Panicf("SliceFront along axis %d of a rank-%d view", axis, a.Rank())
	}

	lengths := slices.Clone(a.Lengths)
	lengths[axis]--
	rest = a.Reshaped(a.Offset+a.Stride(axis), lengths, a.Strides)

	front = a.Reshaped(a.Offset,
		slices.Delete(slices.Clone(a.Lengths), axis, axis+1),
		slices.Delete(slices.Clone(a.Strides), axis, axis+1))
	return
}

// SliceBack takes the last hyperplane along the given axis: it returns the
// rest of A with the axis shortened by one and that hyperplane back.
func SliceBack[T Number](a View[T], axis int) (rest, back View[T]) {
	if axis < 0 || axis >= a.Rank() {
		exceptions.Panicf("SliceBack along axis %d of a rank-%d view", axis, a.Rank())
	}

	lengths := slices.Clone(a.Lengths)
	lengths[axis]--
	rest = a.Reshaped(a.Offset, lengths, a.Strides)

	back = a.Reshaped(a.Offset+(a.Len(axis)-1)*a.Stride(axis),
		slices.Delete(slices.Clone(a.Lengths), axis, axis+1),
		slices.Delete(slices.Clone(a.Strides), axis, axis+1))
	return
}

// Unslice is the inverse of Slice: it rejoins a0, the hyperplane mid, and a2
// along the given axis.
func Unslice[T Number](a0, mid, a2 View[T], axis int) View[T] {
	if axis < 0 || axis >= a0.Rank() {
		exceptions.Panicf("Unslice along axis %d of a rank-%d view", axis, a0.Rank())
	}
	if a0.Rank() != mid.Rank()+1 || a2.Rank() != mid.Rank()+1 {
		exceptions.Panicf("Unslice of views with ranks %d, %d, %d", a0.Rank(), mid.Rank(), a2.Rank())
	}
	if !AreCongruentAlong(a0, mid, axis) || !AreCongruentAlong(a0, a2, axis) {
		exceptions.Panicf("Unslice of incongruent views along axis %d", axis)
	}
	if !SameStorage(a0, mid) || mid.Offset != a0.Offset+a0.Len(axis)*a0.Stride(axis) {
		exceptions.Panicf("Unslice with a hyperplane that is not adjacent to the front part along axis %d", axis)
	}
	if !SameStorage(a0, a2) || a2.Offset != a0.Offset+(a0.Len(axis)+1)*a0.Stride(axis) {
		exceptions.Panicf("Unslice with a back part that is not adjacent to the hyperplane along axis %d", axis)
	}

	lengths := slices.Clone(a0.Lengths)
	lengths[axis] += a2.Len(axis) + 1
	return a0.Reshaped(a0.Offset, lengths, a0.Strides)
}

// UnsliceFront is the inverse of SliceFront.
func UnsliceFront[T Number](front, rest View[T], axis int) View[T] {
	if axis < 0 || axis >= rest.Rank() {
		exceptions.Panicf("UnsliceFront along axis %d of a rank-%d view", axis, rest.Rank())
	}
	if rest.Rank() != front.Rank()+1 {
		exceptions.Panicf("UnsliceFront of views with ranks %d and %d", front.Rank(), rest.Rank())
	}
	if !AreCongruentAlong(front, rest, axis) {
		exceptions.Panicf("UnsliceFront of incongruent views along axis %d", axis)
	}
	if !SameStorage(front, rest) || rest.Offset != front.Offset+rest.Stride(axis) {
		exceptions.Panicf("UnsliceFront with a hyperplane that is not adjacent to the rest along axis %d", axis)
	}

	lengths := slices.Clone(rest.Lengths)
	lengths[axis]++
	return rest.Reshaped(front.Offset, lengths, rest.Strides)
}

// UnsliceBack is the inverse of SliceBack.
func UnsliceBack[T Number](rest, back View[T], axis int) View[T] {
	if axis < 0 || axis >= rest.Rank() {
		exceptions.Panicf("UnsliceBack along axis %d of a rank-%d view", axis, rest.Rank())
	}
	if rest.Rank() != back.Rank()+1 {
		exceptions.Panicf("UnsliceBack of views with ranks %d and %d", rest.Rank(), back.Rank())
	}
	if !AreCongruentAlong(rest, back, axis) {
		exceptions.Panicf("UnsliceBack of incongruent views along axis %d", axis)
	}
	if !SameStorage(rest, back) || back.Offset != rest.Offset+rest.Len(axis)*rest.Stride(axis) {
		exceptions.Panicf("UnsliceBack with a hyperplane that is not adjacent to the rest along axis %d", axis)
	}

	lengths := slices.Clone(rest.Lengths)
	lengths[axis]++
	return rest.Reshaped(rest.Offset, lengths, rest.Strides)
}

// Matricize reshapes A into a 2-D view of shape
// (prod lengths[:split], prod lengths[split:]). The axes on each side of
// split must be jointly contiguous in ascending-stride order (length-1 axes
// are ignored). The row and column strides are the strides of the most
// contiguous axis on each side; a side with no axes longer than 1 collapses
// to length 1 and gets the packed stride for its position. A rank-0 view
// matricizes to 1x1.
func Matricize[T Number](a View[T], split int) View[T] {
	rank := a.Rank()
	if split < 0 || split > rank {
		exceptions.Panicf("Matricize of a rank-%d view at split %d", rank, split)
	}

	// unit returns the smallest stride among the axes of [lo, hi) with
	// length > 1, after asserting the side is jointly contiguous.
	unit := func(lo, hi int) int {
		axes := make([]int, 0, hi-lo)
		for axis := lo; axis < hi; axis++ {
			if a.Len(axis) > 1 {
				axes = append(axes, axis)
			}
		}
		if len(axes) == 0 {
			return 0
		}
		slices.SortFunc(axes, func(i, j int) int { return a.Stride(i) - a.Stride(j) })
		for k := 1; k < len(axes); k++ {
			if a.Stride(axes[k]) != a.Stride(axes[k-1])*a.Len(axes[k-1]) {
				exceptions.Panicf("Matricize of a view whose axes %d and %d are not contiguous (strides %v, lengths %v)",
					axes[k-1], axes[k], a.Strides, a.Lengths)
			}
		}
		return a.Stride(axes[0])
	}

	unitRow := unit(0, split)
	unitCol := unit(split, rank)

	m := Size(a.Lengths[:split])
	n := Size(a.Lengths[split:])

	var rs, cs int
	switch {
	case unitRow == 0 && unitCol == 0:
		rs, cs = n, 1
	case unitRow == 0:
		rs, cs = n*unitCol, unitCol
	case unitCol == 0:
		rs, cs = unitRow, m*unitRow
	default:
		rs, cs = unitRow, unitCol
	}

	return a.Reshaped(a.Offset, []int{m, n}, []int{rs, cs})
}
