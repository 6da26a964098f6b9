package views

import (
	"reflect"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// FromAnyValue converts a Go "any" value to a packed row-major view with
// element type T. Accepted values are scalars of type T or slices (or
// multiple levels of slices) of T, with all sub-slices of regular shape.
//
// This is the one constructor in the package that allocates backing storage:
// the nested value is flattened into a fresh slice.
//
// Example:
//
//	v, err := views.FromAnyValue[float64]([][]float64{{1, 2}, {3, 4}}) // lengths [2 2]
func FromAnyValue[T Number](value any) (View[T], error) {
	var lengths []int
	if err := lengthsForAnyValueRecursive[T](&lengths, reflect.ValueOf(value), reflect.TypeOf(value)); err != nil {
		return View[T]{}, err
	}
	data := make([]T, 0, Size(lengths))
	data = flattenAnyValue(data, reflect.ValueOf(value))
	return New(data, 0, lengths, RowMajorStrides(lengths))
}

func lengthsForAnyValueRecursive[T Number](lengths *[]int, v reflect.Value, t reflect.Type) error {
	if t.Kind() != reflect.Slice {
		// If it's not a slice, it must be the scalar type T.
		if t != reflect.TypeFor[T]() {
			return errors.Errorf("cannot convert element type %q to %s (dtype %s)",
				t, reflect.TypeFor[T](), dtypes.FromGoType(reflect.TypeFor[T]()))
		}
		return nil
	}

	// Slice: recurse into its element type (again slices or the scalar T).
	t = t.Elem()
	if v.Len() == 0 {
		return errors.Errorf("value with empty slice not valid for view conversion: %T -- every axis must have length >= 1", v.Interface())
	}
	*lengths = append(*lengths, v.Len())
	prefixRank := len(*lengths)

	// The first element is the reference.
	if err := lengthsForAnyValueRecursive[T](lengths, v.Index(0), t); err != nil {
		return err
	}

	// Test that the other elements have the same shape as the first one.
	want := (*lengths)[prefixRank:]
	for ii := 1; ii < v.Len(); ii++ {
		var sub []int
		if err := lengthsForAnyValueRecursive[T](&sub, v.Index(ii), t); err != nil {
			return err
		}
		if len(sub) != len(want) {
			return errors.Errorf("sub-slices have irregular shapes, found %v and %v", want, sub)
		}
		for axis := range sub {
			if sub[axis] != want[axis] {
				return errors.Errorf("sub-slices have irregular shapes, found %v and %v", want, sub)
			}
		}
	}
	return nil
}

func flattenAnyValue[T Number](data []T, v reflect.Value) []T {
	if v.Kind() != reflect.Slice {
		return append(data, v.Interface().(T))
	}
	for ii := 0; ii < v.Len(); ii++ {
		data = flattenAnyValue(data, v.Index(ii))
	}
	return data
}
