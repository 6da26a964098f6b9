package normalize

import (
	"github.com/gomlx/einsum/internal/indices"
	"github.com/gomlx/einsum/types/views"
	"github.com/gomlx/exceptions"
)

// debugChecks enables the post-fold compatibility assertion. It is a
// compile-time toggle so release builds don't pay for the offset enumeration.
const debugChecks = true

// foldDescriptor merges consecutive axes that are jointly contiguous across
// every stride vector. Axes are walked in ascending order of the first stride
// vector; an axis joins the current group iff, for every operand k,
// strides[k][axis] == strides[k][prev] * lengths[prev]. Each group emits one
// axis: the product of the group lengths, with the stride and label of the
// group's first (most contiguous) axis.
//
// The inputs are not modified.
func foldDescriptor(lengths []int, strides [][]int, idx []rune) ([]int, [][]int, []rune) {
	axes := indices.Range(len(lengths))
	indices.SortByStride(axes, strides[0])

	newLengths := make([]int, 0, len(lengths))
	newStrides := make([][]int, len(strides))
	for k := range strides {
		newStrides[k] = make([]int, 0, len(lengths))
	}
	newIdx := make([]rune, 0, len(idx))

	for i, axis := range axes {
		joins := i > 0
		if joins {
			prev := axes[i-1]
			for _, s := range strides {
				if s[axis] != s[prev]*lengths[prev] {
					joins = false
					break
				}
			}
		}
		if joins {
			newLengths[len(newLengths)-1] *= lengths[axis]
			continue
		}
		// Group boundary: the axis starts a fresh group.
		newIdx = append(newIdx, idx[axis])
		newLengths = append(newLengths, lengths[axis])
		for k, s := range strides {
			newStrides[k] = append(newStrides[k], s[axis])
		}
	}

	if debugChecks {
		for k := range strides {
			if !views.AreCompatible(lengths, strides[k], newLengths, newStrides[k]) {
				exceptions.Panicf("folding changed the offsets enumerated by operand %d: %v/%v -> %v/%v",
					k, lengths, strides[k], newLengths, newStrides[k])
			}
		}
	}

	return newLengths, newStrides, newIdx
}

// Fold merges the contiguous axes of a single view, returning the folded view
// and index string. The arguments are unchanged.
func Fold[T views.Number](a views.View[T], idxA string) (views.View[T], string) {
	idx := []rune(idxA)
	if len(idx) != a.Rank() {
		exceptions.Panicf("Fold of a rank-%d view with index string %q (%d labels)", a.Rank(), idxA, len(idx))
	}
	lengths, strides, newIdx := foldDescriptor(a.Lengths, [][]int{a.Strides}, idx)
	return a.Reshaped(a.Offset, lengths, strides[0]), string(newIdx)
}

// classDescriptor is one partition class of a joint fold: the labels of the
// class with their lengths, plus one stride vector per participating operand.
type classDescriptor struct {
	labels  []rune
	lengths []int
	strides [][]int
}

// fold folds the class in place.
func (d *classDescriptor) fold() {
	d.lengths, d.strides, d.labels = foldDescriptor(d.lengths, d.strides, d.labels)
}

func classOf(labels []rune, idx [][]rune, lengths []int, strides ...[]int) classDescriptor {
	d := classDescriptor{labels: labels, lengths: indices.SelectFrom(lengths, idx[0], labels)}
	for k, s := range strides {
		d.strides = append(d.strides, indices.SelectFrom(s, idx[k], labels))
	}
	return d
}

// concat rebuilds one operand's descriptor from its folded classes, in the
// given order. which[k] selects the stride vector belonging to this operand
// inside classes[k].
func concat[T views.Number](v views.View[T], classes []classDescriptor, which []int) (views.View[T], string) {
	var labels []rune
	var lengths, strides []int
	for k, class := range classes {
		labels = append(labels, class.labels...)
		lengths = append(lengths, class.lengths...)
		strides = append(strides, class.strides[which[k]]...)
	}
	return v.Reshaped(v.Offset, lengths, strides), string(labels)
}

// FoldPair jointly folds the two operands of a binary operation. The label
// partition classes (A-only, B-only, AB) are folded independently, so axes
// separable in one operand but entangled in the other stay separate and class
// boundaries survive. Each operand comes back as own-only classes first, then
// the shared class.
func FoldPair[T views.Number](a views.View[T], idxA string, b views.View[T], idxB string) (
	foldedA views.View[T], foldedIdxA string, foldedB views.View[T], foldedIdxB string) {
	iA, iB := []rune(idxA), []rune(idxB)
	checkRank(a, iA, "A")
	checkRank(b, iB, "B")

	classAB := classOf(indices.Intersection(iA, iB), [][]rune{iA, iB}, a.Lengths, a.Strides, b.Strides)
	classA := classOf(indices.Exclusion(iA, iB), [][]rune{iA}, a.Lengths, a.Strides)
	classB := classOf(indices.Exclusion(iB, iA), [][]rune{iB}, b.Lengths, b.Strides)

	// The shared class folds with both stride vectors in play; an axis pair
	// only merges when contiguous in A and in B at once.
	classA.fold()
	classB.fold()
	classAB.fold()

	foldedA, foldedIdxA = concat(a, []classDescriptor{classA, classAB}, []int{0, 0})
	foldedB, foldedIdxB = concat(b, []classDescriptor{classB, classAB}, []int{0, 1})
	return
}

// FoldTriple jointly folds the three operands of a ternary operation,
// folding each of the seven partition classes independently. Each operand
// comes back as own-only, then pairwise, then fully shared classes.
func FoldTriple[T views.Number](a views.View[T], idxA string, b views.View[T], idxB string,
	c views.View[T], idxC string) (
	foldedA views.View[T], foldedIdxA string,
	foldedB views.View[T], foldedIdxB string,
	foldedC views.View[T], foldedIdxC string) {
	iA, iB, iC := []rune(idxA), []rune(idxB), []rune(idxC)
	checkRank(a, iA, "A")
	checkRank(b, iB, "B")
	checkRank(c, iC, "C")

	labelsABC := indices.Intersection(iA, iB, iC)
	labelsAB := indices.Exclusion(indices.Intersection(iA, iB), iC)
	labelsAC := indices.Exclusion(indices.Intersection(iA, iC), iB)
	labelsBC := indices.Exclusion(indices.Intersection(iB, iC), iA)

	classABC := classOf(labelsABC, [][]rune{iA, iB, iC}, a.Lengths, a.Strides, b.Strides, c.Strides)
	classAB := classOf(labelsAB, [][]rune{iA, iB}, a.Lengths, a.Strides, b.Strides)
	classAC := classOf(labelsAC, [][]rune{iA, iC}, a.Lengths, a.Strides, c.Strides)
	classBC := classOf(labelsBC, [][]rune{iB, iC}, b.Lengths, b.Strides, c.Strides)
	classA := classOf(indices.Exclusion(iA, iB, iC), [][]rune{iA}, a.Lengths, a.Strides)
	classB := classOf(indices.Exclusion(iB, iA, iC), [][]rune{iB}, b.Lengths, b.Strides)
	classC := classOf(indices.Exclusion(iC, iA, iB), [][]rune{iC}, c.Lengths, c.Strides)

	for _, class := range []*classDescriptor{&classA, &classB, &classC, &classAB, &classAC, &classBC, &classABC} {
		class.fold()
	}

	foldedA, foldedIdxA = concat(a, []classDescriptor{classA, classAB, classAC, classABC}, []int{0, 0, 0, 0})
	foldedB, foldedIdxB = concat(b, []classDescriptor{classB, classAB, classBC, classABC}, []int{0, 1, 0, 1})
	foldedC, foldedIdxC = concat(c, []classDescriptor{classC, classAC, classBC, classABC}, []int{0, 1, 1, 2})
	return
}
