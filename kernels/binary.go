package kernels

import (
	"github.com/gomlx/einsum/types/views"
)

// accumulateProduct runs the general ternary loop:
// C[...] += alpha * A[...] * B[...] over the joint label space, after the
// destination was scaled by beta. Labels absent from C are summed over;
// labels absent from A or B broadcast.
func accumulateProduct[T views.Number](alpha T, a views.View[T], idxA string,
	b views.View[T], idxB string, beta T, c views.View[T], idxC string) {
	scaleDest(beta, c, idxC)
	if alpha == 0 {
		return
	}
	space := jointSpace([]string{idxA, idxB, idxC}, []views.View[T]{a, b, c})
	baseA, baseB, baseC := a.Offset, b.Offset, c.Offset
	space.visit(func(offsets []int) {
		c.Data[baseC+offsets[2]] += alpha * a.Data[baseA+offsets[0]] * b.Data[baseB+offsets[1]]
	})
}

// Mult computes C = alpha*A*B + beta*C over an arbitrary label partition.
func Mult[T views.Number](alpha T, a views.View[T], idxA string,
	b views.View[T], idxB string, beta T, c views.View[T], idxC string) int {
	accumulateProduct(alpha, a, idxA, b, idxB, beta, c, idxC)
	return 0
}

// Contract computes C = alpha*A*B + beta*C where the AB labels are summed.
func Contract[T views.Number](alpha T, a views.View[T], idxA string,
	b views.View[T], idxB string, beta T, c views.View[T], idxC string) int {
	accumulateProduct(alpha, a, idxA, b, idxB, beta, c, idxC)
	return 0
}

// Weight computes C = alpha*A*B + beta*C where every label survives into C.
func Weight[T views.Number](alpha T, a views.View[T], idxA string,
	b views.View[T], idxB string, beta T, c views.View[T], idxC string) int {
	accumulateProduct(alpha, a, idxA, b, idxB, beta, c, idxC)
	return 0
}

// OuterProd computes C = alpha*A(x)B + beta*C, A and B sharing no labels.
func OuterProd[T views.Number](alpha T, a views.View[T], idxA string,
	b views.View[T], idxB string, beta T, c views.View[T], idxC string) int {
	accumulateProduct(alpha, a, idxA, b, idxB, beta, c, idxC)
	return 0
}
