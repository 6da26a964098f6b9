package einsum

import (
	"github.com/gomlx/einsum/internal/utils"
	"github.com/gomlx/einsum/types/views"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// This file holds the dynamic entry points: variants of the primitives that
// take raw (data slice, lengths, strides, index string) tuples with the
// element type resolved at runtime. The adapter's responsibilities are
// length-checking the tuples, building the views, and dispatching once on the
// element type; the typed primitives do everything else.
//
// Supported data slices are []float32, []float64, []complex64, []complex128,
// and []float16.Float16. Float16 calls are widened to float32, executed, and
// the destination narrowed back.
//
// Unlike the typed primitives, malformed tuples here are caller data, not
// programming errors, so the adapter returns them as errors.

type opKind int

const (
	opMult opKind = iota
	opContract
	opWeight
	opOuterProd
	opSum
	opTrace
	opReplicate
	opTranspose
)

// dtypeOf resolves the element type tag of a raw data slice.
func dtypeOf(data any) (dtypes.DType, error) {
	switch data.(type) {
	case []float32:
		return dtypes.Float32, nil
	case []float64:
		return dtypes.Float64, nil
	case []complex64:
		return dtypes.Complex64, nil
	case []complex128:
		return dtypes.Complex128, nil
	case []float16.Float16:
		return dtypes.Float16, nil
	}
	return dtypes.InvalidDType, errors.Errorf("unsupported data slice type %T", data)
}

// commonDType resolves the element type shared by all operands of a call.
func commonDType(datas ...any) (dtypes.DType, error) {
	dtype, err := dtypeOf(datas[0])
	if err != nil {
		return dtypes.InvalidDType, err
	}
	for _, data := range datas[1:] {
		dt, err := dtypeOf(data)
		if err != nil {
			return dtypes.InvalidDType, err
		}
		if dt != dtype {
			return dtypes.InvalidDType, errors.Errorf("operands mix element types %s and %s", dtype, dt)
		}
	}
	if dtype != dtypes.Float16 && !utils.IsKernelDType(dtype) {
		return dtypes.InvalidDType, errors.Errorf("element type %s has no kernel", dtype)
	}
	return dtype, nil
}

// viewOf length-checks one raw tuple and builds its view.
func viewOf[T Number](data any, lengths, strides []int, idx string, operand string) (View[T], error) {
	slice, ok := data.([]T)
	if !ok {
		return View[T]{}, errors.Errorf("operand %s: data slice is %T, expected %T", operand, data, []T(nil))
	}
	if labels := len([]rune(idx)); labels != len(lengths) {
		return View[T]{}, errors.Errorf("operand %s: index string %q has %d labels for %d lengths", operand, idx, labels, len(lengths))
	}
	v, err := views.New(slice, 0, lengths, strides)
	return v, errors.Wrapf(err, "operand %s", operand)
}

// scalarOf converts a coefficient given as any numeric Go value into T.
func scalarOf[T Number](value any, name string) (T, error) {
	var c complex128
	switch x := value.(type) {
	case int:
		c = complex(float64(x), 0)
	case float32:
		c = complex(float64(x), 0)
	case float64:
		c = complex(x, 0)
	case complex64:
		c = complex128(x)
	case complex128:
		c = x
	default:
		return 0, errors.Errorf("coefficient %s has unsupported type %T", name, value)
	}
	switch any(*new(T)).(type) {
	case complex64:
		return any(complex64(c)).(T), nil
	case complex128:
		return any(c).(T), nil
	}
	if imag(c) != 0 {
		return 0, errors.Errorf("coefficient %s is complex (%v) but the operands are real", name, value)
	}
	switch any(*new(T)).(type) {
	case float32:
		return any(float32(real(c))).(T), nil
	default:
		return any(real(c)).(T), nil
	}
}

func widenF16(data []float16.Float16) []float32 {
	out := make([]float32, len(data))
	for i, x := range data {
		out[i] = x.Float32()
	}
	return out
}

func narrowF16(dst []float16.Float16, src []float32) {
	for i, x := range src {
		dst[i] = float16.Fromfloat32(x)
	}
}

func ternaryTyped[T Number](kind opKind, alpha any, aData any, lenA, strideA []int, idxA string,
	bData any, lenB, strideB []int, idxB string,
	beta any, cData any, lenC, strideC []int, idxC string) (int, error) {
	a, err := viewOf[T](aData, lenA, strideA, idxA, "A")
	if err != nil {
		return 0, err
	}
	b, err := viewOf[T](bData, lenB, strideB, idxB, "B")
	if err != nil {
		return 0, err
	}
	c, err := viewOf[T](cData, lenC, strideC, idxC, "C")
	if err != nil {
		return 0, err
	}
	alphaT, err := scalarOf[T](alpha, "alpha")
	if err != nil {
		return 0, err
	}
	betaT, err := scalarOf[T](beta, "beta")
	if err != nil {
		return 0, err
	}
	switch kind {
	case opMult:
		return Mult(alphaT, a, idxA, b, idxB, betaT, c, idxC), nil
	case opContract:
		return Contract(alphaT, a, idxA, b, idxB, betaT, c, idxC), nil
	case opWeight:
		return Weight(alphaT, a, idxA, b, idxB, betaT, c, idxC), nil
	default:
		return OuterProd(alphaT, a, idxA, b, idxB, betaT, c, idxC), nil
	}
}

func ternaryAny(kind opKind, alpha any, aData any, lenA, strideA []int, idxA string,
	bData any, lenB, strideB []int, idxB string,
	beta any, cData any, lenC, strideC []int, idxC string) (int, error) {
	dtype, err := commonDType(aData, bData, cData)
	if err != nil {
		return 0, err
	}
	switch dtype {
	case dtypes.Float32:
		return ternaryTyped[float32](kind, alpha, aData, lenA, strideA, idxA, bData, lenB, strideB, idxB, beta, cData, lenC, strideC, idxC)
	case dtypes.Float64:
		return ternaryTyped[float64](kind, alpha, aData, lenA, strideA, idxA, bData, lenB, strideB, idxB, beta, cData, lenC, strideC, idxC)
	case dtypes.Complex64:
		return ternaryTyped[complex64](kind, alpha, aData, lenA, strideA, idxA, bData, lenB, strideB, idxB, beta, cData, lenC, strideC, idxC)
	case dtypes.Complex128:
		return ternaryTyped[complex128](kind, alpha, aData, lenA, strideA, idxA, bData, lenB, strideB, idxB, beta, cData, lenC, strideC, idxC)
	default: // dtypes.Float16, widened.
		cF16 := cData.([]float16.Float16)
		cWide := widenF16(cF16)
		status, err := ternaryTyped[float32](kind, alpha,
			widenF16(aData.([]float16.Float16)), lenA, strideA, idxA,
			widenF16(bData.([]float16.Float16)), lenB, strideB, idxB,
			beta, cWide, lenC, strideC, idxC)
		if err == nil {
			narrowF16(cF16, cWide)
		}
		return status, err
	}
}

func binaryTyped[T Number](kind opKind, alpha any, aData any, lenA, strideA []int, idxA string,
	beta any, bData any, lenB, strideB []int, idxB string) (int, error) {
	a, err := viewOf[T](aData, lenA, strideA, idxA, "A")
	if err != nil {
		return 0, err
	}
	b, err := viewOf[T](bData, lenB, strideB, idxB, "B")
	if err != nil {
		return 0, err
	}
	alphaT, err := scalarOf[T](alpha, "alpha")
	if err != nil {
		return 0, err
	}
	betaT, err := scalarOf[T](beta, "beta")
	if err != nil {
		return 0, err
	}
	switch kind {
	case opSum:
		return Sum(alphaT, a, idxA, betaT, b, idxB), nil
	case opTrace:
		return Trace(alphaT, a, idxA, betaT, b, idxB), nil
	case opReplicate:
		return Replicate(alphaT, a, idxA, betaT, b, idxB), nil
	default:
		return Transpose(alphaT, a, idxA, betaT, b, idxB), nil
	}
}

func binaryAny(kind opKind, alpha any, aData any, lenA, strideA []int, idxA string,
	beta any, bData any, lenB, strideB []int, idxB string) (int, error) {
	dtype, err := commonDType(aData, bData)
	if err != nil {
		return 0, err
	}
	switch dtype {
	case dtypes.Float32:
		return binaryTyped[float32](kind, alpha, aData, lenA, strideA, idxA, beta, bData, lenB, strideB, idxB)
	case dtypes.Float64:
		return binaryTyped[float64](kind, alpha, aData, lenA, strideA, idxA, beta, bData, lenB, strideB, idxB)
	case dtypes.Complex64:
		return binaryTyped[complex64](kind, alpha, aData, lenA, strideA, idxA, beta, bData, lenB, strideB, idxB)
	case dtypes.Complex128:
		return binaryTyped[complex128](kind, alpha, aData, lenA, strideA, idxA, beta, bData, lenB, strideB, idxB)
	default: // dtypes.Float16, widened.
		bF16 := bData.([]float16.Float16)
		bWide := widenF16(bF16)
		status, err := binaryTyped[float32](kind, alpha,
			widenF16(aData.([]float16.Float16)), lenA, strideA, idxA,
			beta, bWide, lenB, strideB, idxB)
		if err == nil {
			narrowF16(bF16, bWide)
		}
		return status, err
	}
}

// MultAny is the dynamic form of Mult.
func MultAny(alpha any, aData any, lenA, strideA []int, idxA string,
	bData any, lenB, strideB []int, idxB string,
	beta any, cData any, lenC, strideC []int, idxC string) (int, error) {
	return ternaryAny(opMult, alpha, aData, lenA, strideA, idxA, bData, lenB, strideB, idxB, beta, cData, lenC, strideC, idxC)
}

// ContractAny is the dynamic form of Contract.
func ContractAny(alpha any, aData any, lenA, strideA []int, idxA string,
	bData any, lenB, strideB []int, idxB string,
	beta any, cData any, lenC, strideC []int, idxC string) (int, error) {
	return ternaryAny(opContract, alpha, aData, lenA, strideA, idxA, bData, lenB, strideB, idxB, beta, cData, lenC, strideC, idxC)
}

// WeightAny is the dynamic form of Weight.
func WeightAny(alpha any, aData any, lenA, strideA []int, idxA string,
	bData any, lenB, strideB []int, idxB string,
	beta any, cData any, lenC, strideC []int, idxC string) (int, error) {
	return ternaryAny(opWeight, alpha, aData, lenA, strideA, idxA, bData, lenB, strideB, idxB, beta, cData, lenC, strideC, idxC)
}

// OuterProdAny is the dynamic form of OuterProd.
func OuterProdAny(alpha any, aData any, lenA, strideA []int, idxA string,
	bData any, lenB, strideB []int, idxB string,
	beta any, cData any, lenC, strideC []int, idxC string) (int, error) {
	return ternaryAny(opOuterProd, alpha, aData, lenA, strideA, idxA, bData, lenB, strideB, idxB, beta, cData, lenC, strideC, idxC)
}

// SumAny is the dynamic form of Sum.
func SumAny(alpha any, aData any, lenA, strideA []int, idxA string,
	beta any, bData any, lenB, strideB []int, idxB string) (int, error) {
	return binaryAny(opSum, alpha, aData, lenA, strideA, idxA, beta, bData, lenB, strideB, idxB)
}

// TraceAny is the dynamic form of Trace.
func TraceAny(alpha any, aData any, lenA, strideA []int, idxA string,
	beta any, bData any, lenB, strideB []int, idxB string) (int, error) {
	return binaryAny(opTrace, alpha, aData, lenA, strideA, idxA, beta, bData, lenB, strideB, idxB)
}

// ReplicateAny is the dynamic form of Replicate.
func ReplicateAny(alpha any, aData any, lenA, strideA []int, idxA string,
	beta any, bData any, lenB, strideB []int, idxB string) (int, error) {
	return binaryAny(opReplicate, alpha, aData, lenA, strideA, idxA, beta, bData, lenB, strideB, idxB)
}

// TransposeAny is the dynamic form of Transpose.
func TransposeAny(alpha any, aData any, lenA, strideA []int, idxA string,
	beta any, bData any, lenB, strideB []int, idxB string) (int, error) {
	return binaryAny(opTranspose, alpha, aData, lenA, strideA, idxA, beta, bData, lenB, strideB, idxB)
}

// DotAny is the dynamic form of Dot. The scalar result is returned boxed,
// with the concrete type of the operands (float32 for float16 calls).
func DotAny(aData any, lenA, strideA []int, idxA string,
	bData any, lenB, strideB []int, idxB string) (value any, status int, err error) {
	dtype, err := commonDType(aData, bData)
	if err != nil {
		return nil, 0, err
	}
	dot := func(aData, bData any) (any, int, error) {
		switch dtype {
		case dtypes.Float64:
			return dotTyped[float64](aData, lenA, strideA, idxA, bData, lenB, strideB, idxB)
		case dtypes.Complex64:
			return dotTyped[complex64](aData, lenA, strideA, idxA, bData, lenB, strideB, idxB)
		case dtypes.Complex128:
			return dotTyped[complex128](aData, lenA, strideA, idxA, bData, lenB, strideB, idxB)
		default:
			return dotTyped[float32](aData, lenA, strideA, idxA, bData, lenB, strideB, idxB)
		}
	}
	if dtype == dtypes.Float16 {
		return dot(widenF16(aData.([]float16.Float16)), widenF16(bData.([]float16.Float16)))
	}
	return dot(aData, bData)
}

func dotTyped[T Number](aData any, lenA, strideA []int, idxA string,
	bData any, lenB, strideB []int, idxB string) (any, int, error) {
	a, err := viewOf[T](aData, lenA, strideA, idxA, "A")
	if err != nil {
		return nil, 0, err
	}
	b, err := viewOf[T](bData, lenB, strideB, idxB, "B")
	if err != nil {
		return nil, 0, err
	}
	var val T
	status := Dot(a, idxA, b, idxB, &val)
	return val, status, nil
}

// ScaleAny is the dynamic form of Scale.
func ScaleAny(alpha any, aData any, lenA, strideA []int, idxA string) (int, error) {
	dtype, err := commonDType(aData)
	if err != nil {
		return 0, err
	}
	switch dtype {
	case dtypes.Float32:
		return scaleTyped[float32](alpha, aData, lenA, strideA, idxA)
	case dtypes.Float64:
		return scaleTyped[float64](alpha, aData, lenA, strideA, idxA)
	case dtypes.Complex64:
		return scaleTyped[complex64](alpha, aData, lenA, strideA, idxA)
	case dtypes.Complex128:
		return scaleTyped[complex128](alpha, aData, lenA, strideA, idxA)
	default: // dtypes.Float16, widened.
		aF16 := aData.([]float16.Float16)
		aWide := widenF16(aF16)
		status, err := scaleTyped[float32](alpha, aWide, lenA, strideA, idxA)
		if err == nil {
			narrowF16(aF16, aWide)
		}
		return status, err
	}
}

func scaleTyped[T Number](alpha any, aData any, lenA, strideA []int, idxA string) (int, error) {
	a, err := viewOf[T](aData, lenA, strideA, idxA, "A")
	if err != nil {
		return 0, err
	}
	alphaT, err := scalarOf[T](alpha, "alpha")
	if err != nil {
		return 0, err
	}
	return Scale(alphaT, a, idxA), nil
}

// ReduceAny is the dynamic form of Reduce. The reduction result is returned
// boxed, with the concrete type of the operand (float32 for float16 calls).
func ReduceAny(op ReduceOp, aData any, lenA, strideA []int, idxA string) (value any, off int, status int, err error) {
	dtype, err := commonDType(aData)
	if err != nil {
		return nil, -1, 0, err
	}
	switch dtype {
	case dtypes.Float32:
		return reduceTyped[float32](op, aData, lenA, strideA, idxA)
	case dtypes.Float64:
		return reduceTyped[float64](op, aData, lenA, strideA, idxA)
	case dtypes.Complex64:
		return reduceTyped[complex64](op, aData, lenA, strideA, idxA)
	case dtypes.Complex128:
		return reduceTyped[complex128](op, aData, lenA, strideA, idxA)
	default: // dtypes.Float16, widened.
		return reduceTyped[float32](op, widenF16(aData.([]float16.Float16)), lenA, strideA, idxA)
	}
}

func reduceTyped[T Number](op ReduceOp, aData any, lenA, strideA []int, idxA string) (any, int, int, error) {
	a, err := viewOf[T](aData, lenA, strideA, idxA, "A")
	if err != nil {
		return nil, -1, 0, err
	}
	var val T
	var off int
	status := Reduce(op, a, idxA, &val, &off)
	return val, off, status, nil
}
