// Package kernels is the reference back-end of the einsum front-end: plain
// strided-loop implementations of the eleven tensor primitives.
//
// The kernels receive views and index strings that the front-end has already
// validated, diagonalized, and folded, so every operand has distinct labels
// and a minimal number of axes. They are single-threaded and carry no tiling
// or vectorization; their job is to define the numerical contract
// (alpha/beta semantics, reduction results) that optimized back-ends must
// reproduce.
//
// Every kernel returns an integer status, 0 on success. The reference
// kernels always succeed; non-zero values are reserved for back-ends with
// failure modes of their own.
package kernels

import (
	"math"
	"math/cmplx"

	"github.com/chewxy/math32"
	"github.com/gomlx/einsum/types/views"
)

// joint is the loop space of one kernel call: the union of the operands'
// labels with, per operand, the stride of each label (0 where the label does
// not appear in that operand).
type joint struct {
	lengths []int
	strides [][]int // one vector per operand, aligned to lengths
}

// jointSpace merges the (index string, view) pairs of the call into a single
// loop space. Labels keep their order of first appearance.
func jointSpace[T views.Number](idxs []string, operands []views.View[T]) joint {
	var labels []rune
	var lengths []int
	position := map[rune]int{}
	for k, idx := range idxs {
		for axis, c := range []rune(idx) {
			if _, seen := position[c]; !seen {
				position[c] = len(labels)
				labels = append(labels, c)
				lengths = append(lengths, operands[k].Len(axis))
			}
		}
	}

	j := joint{lengths: lengths, strides: make([][]int, len(operands))}
	for k, idx := range idxs {
		j.strides[k] = make([]int, len(labels))
		for axis, c := range []rune(idx) {
			j.strides[k][position[c]] = operands[k].Stride(axis)
		}
	}
	return j
}

// visit walks the whole loop space, first label fastest, calling fn with the
// per-operand element offsets of the current point. Offsets are relative to
// each operand's view origin (its Offset field is not included).
func (j joint) visit(fn func(offsets []int)) {
	rank := len(j.lengths)
	coords := make([]int, rank)
	offsets := make([]int, len(j.strides))
	for {
		fn(offsets)
		axis := 0
		for ; axis < rank; axis++ {
			coords[axis]++
			for k := range offsets {
				offsets[k] += j.strides[k][axis]
			}
			if coords[axis] < j.lengths[axis] {
				break
			}
			coords[axis] = 0
			for k := range offsets {
				offsets[k] -= j.strides[k][axis] * j.lengths[axis]
			}
		}
		if axis == rank {
			return
		}
	}
}

// absOf returns |x| as a float64: the absolute value for real element types,
// the magnitude for complex ones.
func absOf[T views.Number](x T) float64 {
	switch v := any(x).(type) {
	case float32:
		return float64(math32.Abs(v))
	case float64:
		return math.Abs(v)
	case complex64:
		return cmplx.Abs(complex128(v))
	case complex128:
		return cmplx.Abs(v)
	}
	panic("unreachable")
}

// realOf returns the real part of x as a float64.
func realOf[T views.Number](x T) float64 {
	switch v := any(x).(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case complex64:
		return float64(real(v))
	case complex128:
		return real(v)
	}
	panic("unreachable")
}

// fromReal embeds a real value into T (imaginary part zero for complex).
func fromReal[T views.Number](x float64) T {
	switch any(*new(T)).(type) {
	case float32:
		return any(float32(x)).(T)
	case float64:
		return any(x).(T)
	case complex64:
		return any(complex64(complex(x, 0))).(T)
	case complex128:
		return any(complex(x, 0)).(T)
	}
	panic("unreachable")
}

// sqrtOf computes sqrt(x) in the precision of T's real component.
func sqrtOf[T views.Number](x float64) T {
	switch any(*new(T)).(type) {
	case float32, complex64:
		return fromReal[T](float64(math32.Sqrt(float32(x))))
	default:
		return fromReal[T](math.Sqrt(x))
	}
}

// scaleDest applies the beta coefficient to the destination view. beta == 0
// means overwrite: the destination is zeroed without ever being read, so
// NaN or Inf garbage in it cannot leak into the result.
func scaleDest[T views.Number](beta T, dest views.View[T], idxDest string) {
	space := jointSpace([]string{idxDest}, []views.View[T]{dest})
	base := dest.Offset
	if beta == 0 {
		space.visit(func(offsets []int) {
			dest.Data[base+offsets[0]] = 0
		})
		return
	}
	if beta == 1 {
		return
	}
	space.visit(func(offsets []int) {
		dest.Data[base+offsets[0]] *= beta
	})
}
