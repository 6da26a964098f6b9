package utils

import (
	"github.com/gomlx/gopjrt/dtypes"
)

// KernelDTypes are the element types the reference kernels operate on.
// Float16 buffers are accepted at the dynamic entry points but are widened
// to Float32 before dispatch.
var KernelDTypes = SetWith(
	dtypes.Float32,
	dtypes.Float64,
	dtypes.Complex64,
	dtypes.Complex128,
)

// IsKernelDType returns whether dtype can be dispatched directly to a kernel.
func IsKernelDType(dtype dtypes.DType) bool {
	return KernelDTypes.Has(dtype)
}
