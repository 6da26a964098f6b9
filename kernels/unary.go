package kernels

import (
	"github.com/gomlx/einsum/types/views"
)

// accumulateSum runs the general binary loop: B[...] += alpha * A[...] over
// the joint label space, after the destination was scaled by beta. Labels
// only in A are summed over; labels only in B replicate.
func accumulateSum[T views.Number](alpha T, a views.View[T], idxA string,
	beta T, b views.View[T], idxB string) {
	scaleDest(beta, b, idxB)
	if alpha == 0 {
		return
	}
	space := jointSpace([]string{idxA, idxB}, []views.View[T]{a, b})
	baseA, baseB := a.Offset, b.Offset
	space.visit(func(offsets []int) {
		b.Data[baseB+offsets[1]] += alpha * a.Data[baseA+offsets[0]]
	})
}

// Sum computes B = alpha*A + beta*B over an arbitrary label partition,
// combining trace, transpose, and replicate behavior.
func Sum[T views.Number](alpha T, a views.View[T], idxA string,
	beta T, b views.View[T], idxB string) int {
	accumulateSum(alpha, a, idxA, beta, b, idxB)
	return 0
}

// Trace computes B = alpha*Tr(A) + beta*B: the A-only labels are summed.
func Trace[T views.Number](alpha T, a views.View[T], idxA string,
	beta T, b views.View[T], idxB string) int {
	accumulateSum(alpha, a, idxA, beta, b, idxB)
	return 0
}

// Replicate computes B = alpha*A + beta*B, broadcasting A over the B-only
// labels.
func Replicate[T views.Number](alpha T, a views.View[T], idxA string,
	beta T, b views.View[T], idxB string) int {
	accumulateSum(alpha, a, idxA, beta, b, idxB)
	return 0
}

// Transpose computes B = alpha*P(A) + beta*B for a label permutation P.
func Transpose[T views.Number](alpha T, a views.View[T], idxA string,
	beta T, b views.View[T], idxB string) int {
	accumulateSum(alpha, a, idxA, beta, b, idxB)
	return 0
}

// Scale computes A = alpha*A in place.
func Scale[T views.Number](alpha T, a views.View[T], idxA string) int {
	space := jointSpace([]string{idxA}, []views.View[T]{a})
	base := a.Offset
	if alpha == 0 {
		space.visit(func(offsets []int) {
			a.Data[base+offsets[0]] = 0
		})
		return 0
	}
	space.visit(func(offsets []int) {
		a.Data[base+offsets[0]] *= alpha
	})
	return 0
}
