// Package views defines the strided tensor view type used by the einsum
// front-end, along with the shape algebra that operates on it: congruence and
// compatibility tests, pure view splits (partition and slice), and 2-D
// reshapes (matricize).
//
// A View is a triple (backing data, length vector, stride vector) plus the
// element offset of the view origin. Strides are signed and measured in
// elements, so reversed and interior views are expressible without touching
// the backing storage. Apart from FromAnyValue, which copies a nested Go value
// into fresh storage, the package never allocates backing memory and never
// inspects element values; everything else here is metadata rewriting.
//
// Shape metadata is treated as immutable: operations that change the shape of
// a view return a new View with freshly allocated length/stride vectors and
// leave their argument untouched.
package views

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Number is the element-type universe of the front-end: the kernels are
// polymorphic over exactly these four types.
type Number interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// View is a strided window into a backing slice. The element at coordinates
// (x_0, ..., x_{d-1}) lives at Data[Offset + sum_i x_i*Strides[i]].
//
// Length-0 dimensions are not allowed; length-1 dimensions are.
//
// Whether a View may be written through is positional: operations document
// which of their view arguments are destinations.
type View[T Number] struct {
	Data    []T
	Offset  int
	Lengths []int
	Strides []int
}

// New builds a view over data and validates it: lengths and strides must have
// the same rank, every length must be at least 1, and every addressable
// element must fall inside data.
func New[T Number](data []T, offset int, lengths, strides []int) (View[T], error) {
	v := View[T]{
		Data:    data,
		Offset:  offset,
		Lengths: append([]int(nil), lengths...),
		Strides: append([]int(nil), strides...),
	}
	if len(lengths) != len(strides) {
		return View[T]{}, errors.Errorf("lengths (rank %d) and strides (rank %d) disagree", len(lengths), len(strides))
	}
	lo, hi := offset, offset
	for axis, length := range lengths {
		if length < 1 {
			return View[T]{}, errors.Errorf("axis %d has length %d, every axis must have length >= 1", axis, length)
		}
		span := strides[axis] * (length - 1)
		if span < 0 {
			lo += span
		} else {
			hi += span
		}
	}
	if lo < 0 || hi >= len(data) {
		return View[T]{}, errors.Errorf("view addresses elements %d..%d, outside the backing storage of %d elements", lo, hi, len(data))
	}
	return v, nil
}

// RowMajor builds a packed row-major view over data: the last axis is
// contiguous. It panics if data doesn't hold exactly the product of lengths.
func RowMajor[T Number](data []T, lengths ...int) View[T] {
	strides := RowMajorStrides(lengths)
	v, err := New(data, 0, lengths, strides)
	if err != nil {
		panic(err)
	}
	if len(data) != Size(lengths) {
		panic(errors.Errorf("RowMajor over %d elements, but lengths %v describe %d", len(data), lengths, Size(lengths)))
	}
	return v
}

// RowMajorStrides returns the packed row-major strides for the given lengths.
func RowMajorStrides(lengths []int) []int {
	strides := make([]int, len(lengths))
	stride := 1
	for axis := len(lengths) - 1; axis >= 0; axis-- {
		strides[axis] = stride
		stride *= lengths[axis]
	}
	return strides
}

// Rank returns the number of axes of the view.
func (v View[T]) Rank() int { return len(v.Lengths) }

// Len returns the length along the given axis.
func (v View[T]) Len(axis int) int { return v.Lengths[axis] }

// Stride returns the stride along the given axis.
func (v View[T]) Stride(axis int) int { return v.Strides[axis] }

// OffsetOf returns the element offset (relative to Data) of the given
// coordinates. It panics if the number of coordinates doesn't match the rank.
func (v View[T]) OffsetOf(coords ...int) int {
	if len(coords) != v.Rank() {
		panic(fmt.Sprintf("OffsetOf got %d coordinates for a rank-%d view", len(coords), v.Rank()))
	}
	offset := v.Offset
	for axis, x := range coords {
		offset += x * v.Strides[axis]
	}
	return offset
}

// At returns the element at the given coordinates.
func (v View[T]) At(coords ...int) T {
	return v.Data[v.OffsetOf(coords...)]
}

// SetAt writes the element at the given coordinates.
func (v View[T]) SetAt(value T, coords ...int) {
	v.Data[v.OffsetOf(coords...)] = value
}

// Reshaped returns a view over the same storage with new shape metadata.
// The lengths and strides are copied; the receiver is unchanged.
func (v View[T]) Reshaped(offset int, lengths, strides []int) View[T] {
	return View[T]{
		Data:    v.Data,
		Offset:  offset,
		Lengths: append([]int(nil), lengths...),
		Strides: append([]int(nil), strides...),
	}
}

// SameStorage reports whether two views are windows into the same backing
// slice. Views over distinct (even if equal-valued) allocations are not the
// same storage.
func SameStorage[T Number](a, b View[T]) bool {
	return len(a.Data) == len(b.Data) && len(a.Data) > 0 && &a.Data[0] == &b.Data[0]
}

// String implements fmt.Stringer, printing shape metadata but no elements.
func (v View[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "view[%T]{lengths=%v, strides=%v, offset=%d}", *new(T), v.Lengths, v.Strides, v.Offset)
	return b.String()
}
