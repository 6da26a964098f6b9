// Package einsum is the named-index (Einstein-convention) front-end of a
// multi-dimensional array library.
//
// Among its features:
//
//   - A strided View type over caller-owned storage (see types/views), with
//     pure view rewrites: partition, slice, matricize.
//   - The symbolic shape-normalization pipeline shared by every operation:
//     index validation, diagonal extraction, and stride-based index folding
//     (see the normalize package).
//   - The tensor primitives Mult, Contract, Weight, OuterProd, Sum, Trace,
//     Replicate, Transpose, Dot, Scale, and Reduce, each of which validates,
//     normalizes, and dispatches to a back-end kernel.
//
// Operands are described by an index string with one label (rune) per axis.
// How the labels are partitioned among the operands decides which primitives
// accept the call: for example Contract requires every label to be shared by
// exactly two of the three operands, while Transpose requires A and B to use
// the same label set.
//
// The front-end rewrites only shape metadata. Element values are touched
// exclusively by the back-end kernels (see the kernels package for the
// reference implementation), which receive already-normalized views.
//
// Malformed calls -- an index string that doesn't match its operand's rank,
// a label tagging axes of different lengths, a label partition outside the
// operation's table -- are programming errors and panic. Use
// exceptions.TryCatch from github.com/gomlx/exceptions to convert them to
// errors at a boundary.
package einsum

import (
	"github.com/gomlx/einsum/types"
	"github.com/gomlx/einsum/types/views"
)

// View is a strided tensor view. Alias of views.View.
type View[T Number] = views.View[T]

// Number constrains the supported element types. Alias of views.Number.
type Number = views.Number

// ReduceOp selects the combining function of Reduce. Alias of types.ReduceOp.
type ReduceOp = types.ReduceOp

// Reduction operations, re-exported for convenience.
const (
	ReduceSum    = types.ReduceSum
	ReduceSumAbs = types.ReduceSumAbs
	ReduceMax    = types.ReduceMax
	ReduceMin    = types.ReduceMin
	ReduceMaxAbs = types.ReduceMaxAbs
	ReduceMinAbs = types.ReduceMinAbs
	ReduceNorm2  = types.ReduceNorm2
)

// TensorSize returns the number of elements described by the length vector.
func TensorSize(lengths []int) int {
	return views.Size(lengths)
}

// TensorStorageSize returns the number of storage elements spanned by the
// layout; with a nil stride vector the layout is taken as packed.
func TensorStorageSize(lengths, strides []int) int {
	return views.StorageSize(lengths, strides)
}
