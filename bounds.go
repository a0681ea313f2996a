package seqtree

/*
BSD 3-Clause License

Please refer to the License file in the repository root.

*/

import "cmp"

// Bisect returns the index of the first element for which pred returns
// false, or Len if pred holds for every element.
//
// pred must be monotonic over the in-order sequence: true on some prefix
// and false on the remaining suffix. The result for a non-monotonic
// predicate is unspecified.
func (t *Tree[E]) Bisect(pred func(E) bool) int {
	if t == nil {
		return 0
	}
	return bisectNode(t.root, pred)
}

// LowerBoundFunc returns the smallest index whose element is not less than
// the probe, given a three-way comparison f reporting the element relative
// to the probe (negative, zero or positive, as with cmp.Compare). The
// elements must be sorted non-decreasingly under that comparison.
func (t *Tree[E]) LowerBoundFunc(f func(E) int) int {
	return t.Bisect(func(v E) bool { return f(v) < 0 })
}

// UpperBoundFunc returns the smallest index whose element is strictly
// greater than the probe; see LowerBoundFunc for the comparison contract.
func (t *Tree[E]) UpperBoundFunc(f func(E) int) int {
	return t.Bisect(func(v E) bool { return f(v) <= 0 })
}

// LowerBound returns the smallest index whose element is >= value. The
// elements must be sorted in non-decreasing order.
//
// This is a free function because Go methods cannot introduce the ordering
// constraint on E; use LowerBoundFunc for element types that are not
// cmp.Ordered.
func LowerBound[E cmp.Ordered](t *Tree[E], value E) int {
	return t.LowerBoundFunc(func(v E) int { return cmp.Compare(v, value) })
}

// UpperBound returns the smallest index whose element is > value. The
// elements must be sorted in non-decreasing order.
func UpperBound[E cmp.Ordered](t *Tree[E], value E) int {
	return t.UpperBoundFunc(func(v E) int { return cmp.Compare(v, value) })
}
