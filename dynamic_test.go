package einsum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestMultAny(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{5, 6, 7, 8}
	c := make([]float64, 4)
	status, err := MultAny(1, a, []int{2, 2}, []int{2, 1}, "ik",
		b, []int{2, 2}, []int{2, 1}, "kj",
		0, c, []int{2, 2}, []int{2, 1}, "ij")
	require.NoError(t, err)
	require.Equal(t, 0, status)
	assert.Equal(t, []float64{19, 22, 43, 50}, c)
}

func TestContractAnyFloat32(t *testing.T) {
	a := []float32{1, 2, 3, 4}
	b := []float32{5, 6, 7, 8}
	c := make([]float32, 4)
	status, err := ContractAny(1, a, []int{2, 2}, []int{2, 1}, "ik",
		b, []int{2, 2}, []int{2, 1}, "kj",
		0, c, []int{2, 2}, []int{2, 1}, "ij")
	require.NoError(t, err)
	require.Equal(t, 0, status)
	assert.Equal(t, []float32{19, 22, 43, 50}, c)
}

func TestContractAnyFloat16(t *testing.T) {
	f16 := func(values ...float32) []float16.Float16 {
		out := make([]float16.Float16, len(values))
		for i, v := range values {
			out[i] = float16.Fromfloat32(v)
		}
		return out
	}
	a := f16(1, 2, 3, 4)
	b := f16(5, 6, 7, 8)
	c := f16(0, 0, 0, 0)
	status, err := ContractAny(1, a, []int{2, 2}, []int{2, 1}, "ik",
		b, []int{2, 2}, []int{2, 1}, "kj",
		0, c, []int{2, 2}, []int{2, 1}, "ij")
	require.NoError(t, err)
	require.Equal(t, 0, status)
	got := make([]float32, 4)
	for i, x := range c {
		got[i] = x.Float32()
	}
	assert.Equal(t, []float32{19, 22, 43, 50}, got)
}

func TestTraceAny(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{0}
	status, err := TraceAny(1, a, []int{2, 2}, []int{2, 1}, "ii",
		0, b, nil, nil, "")
	require.NoError(t, err)
	require.Equal(t, 0, status)
	assert.Equal(t, 5.0, b[0])
}

func TestScaleAny(t *testing.T) {
	a := []complex64{1, 2i}
	status, err := ScaleAny(complex64(2i), a, []int{2}, []int{1}, "i")
	require.NoError(t, err)
	require.Equal(t, 0, status)
	assert.Equal(t, []complex64{2i, -4}, a)
}

func TestDotAny(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}
	val, status, err := DotAny(a, []int{3}, []int{1}, "i", b, []int{3}, []int{1}, "i")
	require.NoError(t, err)
	require.Equal(t, 0, status)
	assert.Equal(t, 32.0, val)
}

func TestReduceAny(t *testing.T) {
	a := []float64{-5, 3, -7, 2}
	val, off, status, err := ReduceAny(ReduceMaxAbs, a, []int{4}, []int{1}, "i")
	require.NoError(t, err)
	require.Equal(t, 0, status)
	assert.Equal(t, 7.0, val)
	assert.Equal(t, 2, off)
}

func TestDynamicErrors(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b32 := []float32{5, 6, 7, 8}
	c := make([]float64, 4)

	// Mixed element types.
	_, err := MultAny(1, a, []int{2, 2}, []int{2, 1}, "ik",
		b32, []int{2, 2}, []int{2, 1}, "kj",
		0, c, []int{2, 2}, []int{2, 1}, "ij")
	require.ErrorContains(t, err, "mix element types")

	// Unsupported slice type.
	_, err = ScaleAny(1, []int32{1}, []int{1}, []int{1}, "i")
	require.ErrorContains(t, err, "unsupported data slice type")

	// Index string length mismatch.
	_, err = ScaleAny(1, a, []int{2, 2}, []int{2, 1}, "i")
	require.ErrorContains(t, err, "labels")

	// Out-of-bounds layout.
	_, err = ScaleAny(1, a, []int{5}, []int{1}, "i")
	require.ErrorContains(t, err, "outside the backing storage")

	// Complex coefficient for real operands.
	_, err = ScaleAny(2i, a, []int{4}, []int{1}, "i")
	require.ErrorContains(t, err, "is complex")
}
