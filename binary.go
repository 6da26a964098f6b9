package einsum

import (
	"github.com/gomlx/einsum/kernels"
	"github.com/gomlx/einsum/normalize"
	"k8s.io/klog/v2"
)

// normalizeTriple runs the shared pipeline of the three-operand primitives:
// diagonalize each operand, then fold all three jointly.
func normalizeTriple[T Number](op string, a View[T], idxA string, b View[T], idxB string,
	c View[T], idxC string) (View[T], string, View[T], string, View[T], string) {
	a, idxA = normalize.Diagonal(a, idxA)
	b, idxB = normalize.Diagonal(b, idxB)
	c, idxC = normalize.Diagonal(c, idxC)
	a, idxA, b, idxB, c, idxC = normalize.FoldTriple(a, idxA, b, idxB, c, idxC)
	if klog.V(2).Enabled() {
		klog.Infof("einsum.%s: normalized A=%s[%q] B=%s[%q] C=%s[%q]", op, a, idxA, b, idxB, c, idxC)
	}
	return a, idxA, b, idxB, c, idxC
}

// Mult computes C = alpha*A*B + beta*C with an arbitrary label partition:
// the general form that combines contraction and weighting with the unary
// trace, transpose, and replicate operations. Labels absent from C are summed
// over.
//
// beta == 0 means overwrite: the previous contents of C are not read.
func Mult[T Number](alpha T, a View[T], idxA string, b View[T], idxB string,
	beta T, c View[T], idxC string) int {
	normalize.CheckIndicesTriple(a, idxA, b, idxB, c, idxC, normalize.TripleClasses{
		AOnly: true, BOnly: true, COnly: true,
		AB: true, AC: true, BC: true,
		ABC: true,
	})
	a, idxA, b, idxB, c, idxC = normalizeTriple("Mult", a, idxA, b, idxB, c, idxC)
	return kernels.Mult(alpha, a, idxA, b, idxB, beta, c, idxC)
}

// Contract computes C = alpha*A*B + beta*C where every label is shared by
// exactly two operands: the AB labels are summed over, the AC and BC labels
// index C. The general form is ab...ef * ef...cd -> ab...cd; when there are
// no AB labels it reduces to an outer product.
func Contract[T Number](alpha T, a View[T], idxA string, b View[T], idxB string,
	beta T, c View[T], idxC string) int {
	normalize.CheckIndicesTriple(a, idxA, b, idxB, c, idxC, normalize.TripleClasses{
		AB: true, AC: true, BC: true,
	})
	a, idxA, b, idxB, c, idxC = normalizeTriple("Contract", a, idxA, b, idxB, c, idxC)
	return kernels.Contract(alpha, a, idxA, b, idxB, beta, c, idxC)
}

// Weight computes C = alpha*A*B + beta*C with no summation: every label
// survives into C, and the ABC labels weight elementwise. The general form is
// ab...ef * ef...cd -> ab...cd...ef.
func Weight[T Number](alpha T, a View[T], idxA string, b View[T], idxB string,
	beta T, c View[T], idxC string) int {
	normalize.CheckIndicesTriple(a, idxA, b, idxB, c, idxC, normalize.TripleClasses{
		AC: true, BC: true, ABC: true,
	})
	a, idxA, b, idxB, c, idxC = normalizeTriple("Weight", a, idxA, b, idxB, c, idxC)
	return kernels.Weight(alpha, a, idxA, b, idxB, beta, c, idxC)
}

// OuterProd computes C = alpha*(A outer B) + beta*C: A and B share no labels
// and every label indexes C.
func OuterProd[T Number](alpha T, a View[T], idxA string, b View[T], idxB string,
	beta T, c View[T], idxC string) int {
	normalize.CheckIndicesTriple(a, idxA, b, idxB, c, idxC, normalize.TripleClasses{
		AC: true, BC: true,
	})
	a, idxA, b, idxB, c, idxC = normalizeTriple("OuterProd", a, idxA, b, idxB, c, idxC)
	return kernels.OuterProd(alpha, a, idxA, b, idxB, beta, c, idxC)
}
