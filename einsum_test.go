package einsum

import (
	"math"
	"testing"

	"github.com/gomlx/einsum/normalize"
	"github.com/gomlx/einsum/types/views"
	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractMatmul(t *testing.T) {
	// C[i,j] += A[i,k] * B[k,j]
	a := views.RowMajor([]float64{1, 2, 3, 4}, 2, 2)
	b := views.RowMajor([]float64{5, 6, 7, 8}, 2, 2)
	c := views.RowMajor(make([]float64, 4), 2, 2)

	status := Contract(1.0, a, "ik", b, "kj", 0.0, c, "ij")
	require.Equal(t, 0, status)
	assert.Equal(t, []float64{19, 22, 43, 50}, c.Data)
}

func TestTraceFolding(t *testing.T) {
	// b = sum_i A[i,i]
	a := views.RowMajor([]float64{1, 2, 3, 4}, 2, 2)
	b := views.RowMajor([]float64{math.NaN()}) // beta == 0 must not read it
	status := Trace(1.0, a, "ii", 0.0, b, "")
	require.Equal(t, 0, status)
	assert.Equal(t, 5.0, b.At())

	// After normalization the input is a 1-D diagonal view of length 2 with
	// the summed stride.
	d, idx := normalize.Diagonal(a, "ii")
	d, idx = normalize.Fold(d, idx)
	assert.Equal(t, []int{2}, d.Lengths)
	assert.Equal(t, []int{a.Stride(0) + a.Stride(1)}, d.Strides)
	assert.Equal(t, "i", idx)
}

func TestTranspose(t *testing.T) {
	// B[j,i] = A[i,j]
	a := views.RowMajor([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	b := views.RowMajor(make([]float64, 6), 3, 2)
	status := Transpose(1.0, a, "ij", 0.0, b, "ji")
	require.Equal(t, 0, status)
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, b.Data)
}

func TestReplicate(t *testing.T) {
	// B[i,j] = A[i]
	a := views.RowMajor([]float64{10, 20}, 2)
	b := views.RowMajor(make([]float64, 6), 2, 3)
	status := Replicate(1.0, a, "i", 0.0, b, "ij")
	require.Equal(t, 0, status)
	assert.Equal(t, []float64{10, 10, 10, 20, 20, 20}, b.Data)
}

func TestReduceMaxAbs(t *testing.T) {
	a := views.RowMajor([]float64{-5, 3, -7, 2}, 4)
	val, off := ReduceValue(ReduceMaxAbs, a, "i")
	assert.Equal(t, 7.0, val)
	assert.Equal(t, 2*a.Stride(0), off)
}

func TestOuterProd(t *testing.T) {
	// C[i,j] = A[i]*B[j]; the folder must not merge C's axes because they
	// belong to different partition classes.
	a := views.RowMajor([]float64{1, 2}, 2)
	b := views.RowMajor([]float64{3, 4, 5}, 3)
	c := views.RowMajor(make([]float64, 6), 2, 3)
	status := OuterProd(1.0, a, "i", b, "j", 0.0, c, "ij")
	require.Equal(t, 0, status)
	assert.Equal(t, []float64{3, 4, 5, 6, 8, 10}, c.Data)
}

func TestMultGeneral(t *testing.T) {
	// C[i] = sum_k A[i,k] * B[k] computed through the fully general form.
	a := views.RowMajor([]float64{1, 2, 3, 4}, 2, 2)
	b := views.RowMajor([]float64{5, 6}, 2)
	c := views.RowMajor(make([]float64, 2), 2)
	require.Equal(t, 0, Mult(1.0, a, "ik", b, "k", 0.0, c, "i"))
	assert.Equal(t, []float64{17, 39}, c.Data)

	// Weighting: C[i,k] = A[i,k]*B[k].
	cw := views.RowMajor(make([]float64, 4), 2, 2)
	require.Equal(t, 0, Weight(1.0, a, "ik", b, "k", 0.0, cw, "ik"))
	assert.Equal(t, []float64{5, 12, 15, 24}, cw.Data)
}

func TestAlphaBeta(t *testing.T) {
	a := views.RowMajor([]float64{1, 2, 3, 4}, 2, 2)
	b := views.RowMajor([]float64{5, 6, 7, 8}, 2, 2)
	c := views.RowMajor([]float64{100, 100, 100, 100}, 2, 2)

	// beta scales the destination before accumulation.
	require.Equal(t, 0, Contract(2.0, a, "ik", b, "kj", 0.5, c, "ij"))
	assert.Equal(t, []float64{88, 94, 136, 150}, c.Data)

	// beta == 0 overwrites even NaN/Inf garbage.
	nan := math.NaN()
	cNaN := views.RowMajor([]float64{nan, nan, nan, nan}, 2, 2)
	require.Equal(t, 0, Contract(1.0, a, "ik", b, "kj", 0.0, cNaN, "ij"))
	assert.Equal(t, []float64{19, 22, 43, 50}, cNaN.Data)
}

func TestDot(t *testing.T) {
	a := views.RowMajor([]float64{1, 2, 3}, 3)
	b := views.RowMajor([]float64{4, 5, 6}, 3)
	var val float64
	require.Equal(t, 0, Dot(a, "i", b, "i", &val))
	assert.Equal(t, 32.0, val)
	assert.Equal(t, 32.0, DotValue(a, "i", b, "i"))

	// Complex dot is the plain (unconjugated) bilinear product.
	ca := views.RowMajor([]complex128{1 + 1i, 2}, 2)
	cb := views.RowMajor([]complex128{3, 4 - 2i}, 2)
	assert.Equal(t, complex128(11-1i), DotValue(ca, "i", cb, "i"))
}

func TestScale(t *testing.T) {
	a := views.RowMajor([]float64{1, 2, 3, 4}, 2, 2)
	require.Equal(t, 0, Scale(3.0, a, "ij"))
	assert.Equal(t, []float64{3, 6, 9, 12}, a.Data)

	// Scaling the diagonal only.
	d := views.RowMajor([]float64{1, 2, 3, 4}, 2, 2)
	require.Equal(t, 0, Scale(10.0, d, "ii"))
	assert.Equal(t, []float64{10, 2, 3, 40}, d.Data)
}

func TestSumCombined(t *testing.T) {
	// Sum generalizes trace + replicate in one call:
	// B[j] = sum_i A[i] replicated over j.
	a := views.RowMajor([]float64{1, 2, 3}, 3)
	b := views.RowMajor(make([]float64, 2), 2)
	require.Equal(t, 0, Sum(1.0, a, "i", 0.0, b, "j"))
	assert.Equal(t, []float64{6, 6}, b.Data)
}

func TestReduceOps(t *testing.T) {
	a := views.RowMajor([]float64{-5, 3, -7, 2}, 4)
	for _, tc := range []struct {
		op      ReduceOp
		val     float64
		off     int
	}{
		{ReduceSum, -7, -1},
		{ReduceSumAbs, 17, -1},
		{ReduceMax, 3, 1},
		{ReduceMin, -7, 2},
		{ReduceMaxAbs, 7, 2},
		{ReduceMinAbs, 2, 3},
		{ReduceNorm2, math.Sqrt(25 + 9 + 49 + 4), -1},
	} {
		t.Run(tc.op.String(), func(t *testing.T) {
			val, off := ReduceValue(tc.op, a, "i")
			assert.InDelta(t, tc.val, val, 1e-12)
			assert.Equal(t, tc.off, off)
		})
	}
}

func TestPartitionConformance(t *testing.T) {
	a := views.RowMajor([]float64{1, 2, 3, 4}, 2, 2)
	b := views.RowMajor([]float64{5, 6, 7, 8}, 2, 2)
	c := views.RowMajor(make([]float64, 4), 2, 2)

	// Transpose with a stray A-only label must abort.
	assert.Panics(t, func() { Transpose(1.0, a, "ij", 0.0, c, "jk") })
	// Contract with an ABC label must abort.
	assert.Panics(t, func() { Contract(1.0, a, "ik", b, "kj", 0.0, c, "ik") })
	// Replicate with an A-only label must abort.
	vec := views.RowMajor(make([]float64, 2), 2)
	assert.Panics(t, func() { Replicate(1.0, a, "ij", 0.0, vec, "j") })

	// The panics are catchable at a boundary.
	err := exceptions.TryCatch[error](func() {
		Transpose(1.0, a, "ij", 0.0, c, "jk")
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "partition class")
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, 24, TensorSize([]int{2, 3, 4}))
	assert.Equal(t, 24, TensorStorageSize([]int{2, 3, 4}, nil))
	assert.Equal(t, 7, TensorStorageSize([]int{4}, []int{2}))
}
