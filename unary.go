package einsum

import (
	"github.com/gomlx/einsum/kernels"
	"github.com/gomlx/einsum/normalize"
	"k8s.io/klog/v2"
)

// normalizePair runs the shared pipeline of the two-operand primitives:
// diagonalize each operand, then fold both jointly.
func normalizePair[T Number](op string, a View[T], idxA string,
	b View[T], idxB string) (View[T], string, View[T], string) {
	a, idxA = normalize.Diagonal(a, idxA)
	b, idxB = normalize.Diagonal(b, idxB)
	a, idxA, b, idxB = normalize.FoldPair(a, idxA, b, idxB)
	if klog.V(2).Enabled() {
		klog.Infof("einsum.%s: normalized A=%s[%q] B=%s[%q]", op, a, idxA, b, idxB)
	}
	return a, idxA, b, idxB
}

// Sum computes B = alpha*A + beta*B with an arbitrary label partition: the
// general unary form that combines trace (A-only labels are summed),
// replicate (B-only labels broadcast), and transpose.
//
// beta == 0 means overwrite: the previous contents of B are not read.
func Sum[T Number](alpha T, a View[T], idxA string, beta T, b View[T], idxB string) int {
	normalize.CheckIndicesPair(a, idxA, b, idxB, normalize.PairClasses{
		AOnly: true, BOnly: true, AB: true,
	})
	a, idxA, b, idxB = normalizePair("Sum", a, idxA, b, idxB)
	return kernels.Sum(alpha, a, idxA, beta, b, idxB)
}

// Trace computes B = alpha*Tr(A) + beta*B: the A-only labels are summed
// (traced) over, and repeated labels within A address its generalized
// diagonal. The general form is ab...k*l*... -> ab...; when no labels are
// traced the result is the same as Transpose.
func Trace[T Number](alpha T, a View[T], idxA string, beta T, b View[T], idxB string) int {
	normalize.CheckIndicesPair(a, idxA, b, idxB, normalize.PairClasses{
		AOnly: true, AB: true,
	})
	a, idxA, b, idxB = normalizePair("Trace", a, idxA, b, idxB)
	return kernels.Trace(alpha, a, idxA, beta, b, idxB)
}

// Replicate computes B = alpha*A + beta*B, broadcasting A over the B-only
// labels. The general form is ab... -> ab...c*d*...; repeated labels within B
// write its generalized diagonal.
func Replicate[T Number](alpha T, a View[T], idxA string, beta T, b View[T], idxB string) int {
	normalize.CheckIndicesPair(a, idxA, b, idxB, normalize.PairClasses{
		BOnly: true, AB: true,
	})
	a, idxA, b, idxB = normalizePair("Replicate", a, idxA, b, idxB)
	return kernels.Replicate(alpha, a, idxA, beta, b, idxB)
}

// Transpose computes B = alpha*P(A) + beta*B where P is the axis permutation
// induced by the two index strings over the same label set.
func Transpose[T Number](alpha T, a View[T], idxA string, beta T, b View[T], idxB string) int {
	normalize.CheckIndicesPair(a, idxA, b, idxB, normalize.PairClasses{
		AB: true,
	})
	a, idxA, b, idxB = normalizePair("Transpose", a, idxA, b, idxB)
	return kernels.Transpose(alpha, a, idxA, beta, b, idxB)
}
