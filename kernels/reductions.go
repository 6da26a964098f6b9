package kernels

import (
	"github.com/gomlx/einsum/types"
	"github.com/gomlx/einsum/types/views"
)

// Dot computes the inner product of A and B over their (fully shared) labels
// and stores it in *val.
func Dot[T views.Number](a views.View[T], idxA string,
	b views.View[T], idxB string, val *T) int {
	space := jointSpace([]string{idxA, idxB}, []views.View[T]{a, b})
	baseA, baseB := a.Offset, b.Offset
	var sum T
	space.visit(func(offsets []int) {
		sum += a.Data[baseA+offsets[0]] * b.Data[baseB+offsets[1]]
	})
	*val = sum
	return 0
}

// Reduce combines all elements of A according to op, storing the result in
// *val. For the extremum operations it also stores in *off the element offset
// of the extremum, relative to A's view origin; other operations leave -1.
//
// An empty label space (a scalar view) still reduces over its one element.
// MaxAbs and MinAbs report the magnitude, not the signed element. For complex
// element types, Max and Min order by real part; MaxAbs and MinAbs by
// magnitude.
func Reduce[T views.Number](op types.ReduceOp, a views.View[T], idxA string, val *T, off *int) int {
	space := jointSpace([]string{idxA}, []views.View[T]{a})
	base := a.Offset

	*off = -1
	var sum T
	var sumAbs float64
	first := true
	var bestKey float64
	var bestValue T

	space.visit(func(offsets []int) {
		x := a.Data[base+offsets[0]]
		switch op {
		case types.ReduceSum:
			sum += x
		case types.ReduceSumAbs:
			sumAbs += absOf(x)
		case types.ReduceNorm2:
			abs := absOf(x)
			sumAbs += abs * abs
		case types.ReduceMax, types.ReduceMin, types.ReduceMaxAbs, types.ReduceMinAbs:
			var key float64
			value := x
			if op == types.ReduceMax || op == types.ReduceMin {
				key = realOf(x)
			} else {
				key = absOf(x)
				value = fromReal[T](key)
			}
			if op == types.ReduceMin || op == types.ReduceMinAbs {
				key = -key
			}
			if first || key > bestKey {
				bestKey = key
				bestValue = value
				*off = offsets[0]
			}
			first = false
		}
	})

	switch op {
	case types.ReduceSum:
		*val = sum
	case types.ReduceSumAbs:
		*val = fromReal[T](sumAbs)
	case types.ReduceNorm2:
		*val = sqrtOf[T](sumAbs)
	default:
		*val = bestValue
	}
	return 0
}
