// Package types defines the small shared types of the einsum front-end that
// both the public API and the back-end kernels need to agree on.
package types

// ReduceOp enum selects the combining function of a Reduce call.
type ReduceOp int

//go:generate go tool enumer -type=ReduceOp -trimprefix=Reduce -output=gen_reduceop_enumer.go reduce.go

const (
	// ReduceSum accumulates the plain sum of all elements.
	ReduceSum ReduceOp = iota

	// ReduceSumAbs accumulates the sum of absolute values (magnitudes for
	// complex element types).
	ReduceSumAbs

	// ReduceMax finds the largest element and its offset.
	ReduceMax

	// ReduceMin finds the smallest element and its offset.
	ReduceMin

	// ReduceMaxAbs finds the element of largest absolute value and its offset.
	ReduceMaxAbs

	// ReduceMinAbs finds the element of smallest absolute value and its offset.
	ReduceMinAbs

	// ReduceNorm2 computes the Euclidean norm, sqrt of the sum of squared
	// absolute values.
	ReduceNorm2
)

// HasOffset returns whether the reduction locates an extremum, in which case
// the kernel also reports the element offset of that extremum.
func (op ReduceOp) HasOffset() bool {
	switch op {
	case ReduceMax, ReduceMin, ReduceMaxAbs, ReduceMinAbs:
		return true
	}
	return false
}
