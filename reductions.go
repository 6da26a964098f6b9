package einsum

import (
	"github.com/gomlx/einsum/kernels"
	"github.com/gomlx/einsum/normalize"
	"k8s.io/klog/v2"
)

// Dot stores in *val the inner product of A and B, which must use the same
// label set. Repeated labels within an operand address its diagonal.
func Dot[T Number](a View[T], idxA string, b View[T], idxB string, val *T) int {
	normalize.CheckIndicesPair(a, idxA, b, idxB, normalize.PairClasses{
		AB: true,
	})
	a, idxA, b, idxB = normalizePair("Dot", a, idxA, b, idxB)
	return kernels.Dot(a, idxA, b, idxB, val)
}

// DotValue returns the inner product of A and B directly, discarding the
// kernel status.
func DotValue[T Number](a View[T], idxA string, b View[T], idxB string) T {
	var val T
	Dot(a, idxA, b, idxB, &val)
	return val
}

// Scale computes A = alpha*A in place. Repeated labels within A restrict the
// scaling to its generalized diagonal.
func Scale[T Number](alpha T, a View[T], idxA string) int {
	normalize.CheckIndices(a, idxA)
	a, idxA = normalize.Diagonal(a, idxA)
	a, idxA = normalize.Fold(a, idxA)
	if klog.V(2).Enabled() {
		klog.Infof("einsum.Scale: normalized A=%s[%q]", a, idxA)
	}
	return kernels.Scale(alpha, a, idxA)
}

// Reduce combines all elements of A according to op, storing the result in
// *val. For ReduceMax, ReduceMin, ReduceMaxAbs, and ReduceMinAbs it also
// stores in *off the linear offset of the extremum, measured in elements
// relative to the view's origin after diagonalization and folding; other
// operations store -1.
func Reduce[T Number](op ReduceOp, a View[T], idxA string, val *T, off *int) int {
	normalize.CheckIndices(a, idxA)
	a, idxA = normalize.Diagonal(a, idxA)
	a, idxA = normalize.Fold(a, idxA)
	if klog.V(2).Enabled() {
		klog.Infof("einsum.Reduce: op=%s normalized A=%s[%q]", op, a, idxA)
	}
	return kernels.Reduce(op, a, idxA, val, off)
}

// ReduceValue returns the reduction result and extremum offset directly,
// discarding the kernel status.
func ReduceValue[T Number](op ReduceOp, a View[T], idxA string) (T, int) {
	var val T
	var off int
	Reduce(op, a, idxA, &val, &off)
	return val, off
}
