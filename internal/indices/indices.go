// Package indices manipulates einsum index strings: the per-axis label
// sequences that describe how tensor operands relate to each other.
//
// Labels are runes, and an index string is handled as a []rune so that one
// label always occupies one position regardless of the UTF-8 encoding.
// Helpers that combine index strings (Unique, Intersection, Exclusion) return
// their result sorted by label, so class concatenation downstream is
// deterministic.
package indices

import (
	"slices"

	"github.com/gomlx/einsum/internal/utils"
)

// Unique returns the distinct labels of idx, sorted.
func Unique(idx []rune) []rune {
	out := slices.Clone(idx)
	slices.Sort(out)
	return slices.Compact(out)
}

// Intersection returns the sorted labels present in every one of the given
// index strings. With a single argument it is equivalent to Unique.
func Intersection(idx []rune, rest ...[]rune) []rune {
	out := Unique(idx)
	for _, other := range rest {
		has := utils.SetWith(other...)
		out = slices.DeleteFunc(out, func(c rune) bool { return !has.Has(c) })
	}
	return out
}

// Exclusion returns the sorted labels of idx that appear in none of the rest.
func Exclusion(idx []rune, rest ...[]rune) []rune {
	out := Unique(idx)
	for _, other := range rest {
		has := utils.SetWith(other...)
		out = slices.DeleteFunc(out, func(c rune) bool { return has.Has(c) })
	}
	return out
}

// SelectFrom picks, for each label in wanted, the value at the label's first
// position in idx. It is used to gather the lengths or strides of one
// partition class out of a full per-axis vector.
//
// Every label of wanted must occur in idx.
func SelectFrom(values []int, idx, wanted []rune) []int {
	out := make([]int, 0, len(wanted))
	for _, c := range wanted {
		pos := slices.Index(idx, c)
		if pos < 0 {
			panic("einsum: label selected from an index string that does not contain it")
		}
		out = append(out, values[pos])
	}
	return out
}

// Range returns the permutation [0, 1, ..., n-1].
func Range(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// SortByLabel sorts the axis permutation axes so that the labels
// idx[axes[0]], idx[axes[1]], ... come out in ascending label order.
// The sort is stable: equal labels keep their original axis order.
func SortByLabel(axes []int, idx []rune) {
	slices.SortStableFunc(axes, func(i, j int) int {
		return int(idx[i]) - int(idx[j])
	})
}

// SortByStride sorts the axis permutation axes by ascending stride, where the
// stride of an axis is the minimum over all the given stride vectors. This is
// the "most contiguous first" canonical order used by the folder.
func SortByStride(axes []int, strides ...[]int) {
	slices.SortStableFunc(axes, func(i, j int) int {
		minI, minJ := strides[0][i], strides[0][j]
		for _, s := range strides[1:] {
			minI = min(minI, s[i])
			minJ = min(minJ, s[j])
		}
		switch {
		case minI < minJ:
			return -1
		case minI > minJ:
			return 1
		}
		return 0
	})
}
