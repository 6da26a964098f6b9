// Package normalize implements the symbolic shape-normalization pipeline
// shared by every einsum operation: index validation, diagonal extraction,
// and stride-based index folding.
//
// All functions here rewrite shape metadata only; they never move or inspect
// element values. Inputs are taken by value and new descriptors are returned,
// so the caller's views and index strings are never mutated.
//
// Violated preconditions are unrecoverable programming errors and panic
// through github.com/gomlx/exceptions.
package normalize

import (
	"slices"

	"github.com/gomlx/einsum/internal/indices"
	"github.com/gomlx/einsum/types/views"
	"github.com/gomlx/exceptions"
)

// PairClasses declares which label partition classes a two-operand
// operation permits to be non-empty.
type PairClasses struct {
	AOnly, BOnly, AB bool
}

// TripleClasses declares which label partition classes a three-operand
// operation permits to be non-empty.
type TripleClasses struct {
	AOnly, BOnly, COnly bool
	AB, AC, BC          bool
	ABC                 bool
}

type labelLen struct {
	label  rune
	length int
}

func gatherLabelLens(dst []labelLen, idx []rune, lengths []int) []labelLen {
	for axis, c := range idx {
		dst = append(dst, labelLen{c, lengths[axis]})
	}
	return dst
}

// checkLabelLens asserts that every label tags axes of a single length,
// across all the operands whose (label, length) pairs were gathered.
func checkLabelLens(pairs []labelLen) {
	slices.SortFunc(pairs, func(a, b labelLen) int {
		if a.label != b.label {
			return int(a.label) - int(b.label)
		}
		return a.length - b.length
	})
	for i := 1; i < len(pairs); i++ {
		if pairs[i].label == pairs[i-1].label && pairs[i].length != pairs[i-1].length {
			exceptions.Panicf("index %q tags axes of different lengths (%d and %d)",
				pairs[i].label, pairs[i-1].length, pairs[i].length)
		}
	}
}

func checkRank[T views.Number](v views.View[T], idx []rune, operand string) {
	if len(idx) != v.Rank() {
		exceptions.Panicf("operand %s has rank %d but its index string %q has %d labels",
			operand, v.Rank(), string(idx), len(idx))
	}
}

func checkClass(class []rune, allowed bool, name string) {
	if len(class) > 0 && !allowed {
		exceptions.Panicf("labels %q belong to the %s partition class, which this operation does not permit",
			string(class), name)
	}
}

// CheckIndices validates a single-operand call: the index string must have
// one label per axis, and repeated labels must tag axes of equal length.
func CheckIndices[T views.Number](a views.View[T], idxA string) {
	idx := []rune(idxA)
	checkRank(a, idx, "A")
	checkLabelLens(gatherLabelLens(nil, idx, a.Lengths))
}

// CheckIndicesPair validates a two-operand call and asserts that every
// non-empty partition class is permitted by allowed.
func CheckIndicesPair[T views.Number](a views.View[T], idxA string,
	b views.View[T], idxB string, allowed PairClasses) {
	iA, iB := []rune(idxA), []rune(idxB)
	checkRank(a, iA, "A")
	checkRank(b, iB, "B")

	pairs := gatherLabelLens(nil, iA, a.Lengths)
	pairs = gatherLabelLens(pairs, iB, b.Lengths)
	checkLabelLens(pairs)

	checkClass(indices.Intersection(iA, iB), allowed.AB, "AB")
	checkClass(indices.Exclusion(iA, iB), allowed.AOnly, "A-only")
	checkClass(indices.Exclusion(iB, iA), allowed.BOnly, "B-only")
}

// CheckIndicesTriple validates a three-operand call and asserts that every
// non-empty partition class is permitted by allowed.
func CheckIndicesTriple[T views.Number](a views.View[T], idxA string,
	b views.View[T], idxB string,
	c views.View[T], idxC string, allowed TripleClasses) {
	iA, iB, iC := []rune(idxA), []rune(idxB), []rune(idxC)
	checkRank(a, iA, "A")
	checkRank(b, iB, "B")
	checkRank(c, iC, "C")

	pairs := gatherLabelLens(nil, iA, a.Lengths)
	pairs = gatherLabelLens(pairs, iB, b.Lengths)
	pairs = gatherLabelLens(pairs, iC, c.Lengths)
	checkLabelLens(pairs)

	checkClass(indices.Intersection(iA, iB, iC), allowed.ABC, "ABC")
	checkClass(indices.Exclusion(indices.Intersection(iA, iB), iC), allowed.AB, "AB")
	checkClass(indices.Exclusion(indices.Intersection(iA, iC), iB), allowed.AC, "AC")
	checkClass(indices.Exclusion(indices.Intersection(iB, iC), iA), allowed.BC, "BC")
	checkClass(indices.Exclusion(iA, iB, iC), allowed.AOnly, "A-only")
	checkClass(indices.Exclusion(iB, iA, iC), allowed.BOnly, "B-only")
	checkClass(indices.Exclusion(iC, iA, iB), allowed.COnly, "C-only")
}
