package multiset

import (
	"cmp"
	"iter"

	seqtree "github.com/knrew/reprol-sub000"
)

// Multiset is an ordered multiset: a container that keeps its elements in
// non-decreasing order under an injected comparator and permits duplicate
// values (stored contiguously).
//
// It is a thin layer over seqtree.Tree. Value ordering is maintained purely
// through lower/upper-bound bisection on the underlying sequence; the tree
// itself stays unaware of element values.
//
// A Multiset must be created through New, NewFunc or From, and must not be
// mutated concurrently with any other access.
type Multiset[E any] struct {
	tree *seqtree.Tree[E]
	cmp  func(a, b E) int
}

// New creates an empty multiset over an ordered element type, using
// cmp.Compare as the ordering.
func New[E cmp.Ordered]() *Multiset[E] {
	return NewFunc[E](cmp.Compare[E])
}

// NewFunc creates an empty multiset ordered by the given three-way
// comparator. compare must define a total order: negative if a sorts before
// b, zero if they are equal, positive if a sorts after b.
func NewFunc[E any](compare func(a, b E) int) *Multiset[E] {
	return &Multiset[E]{tree: seqtree.New[E](), cmp: compare}
}

// From creates a multiset containing the slice elements.
func From[E cmp.Ordered](values []E) *Multiset[E] {
	s := New[E]()
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// Len returns the number of elements, duplicates included.
func (s *Multiset[E]) Len() int {
	return s.tree.Len()
}

// IsEmpty reports whether the multiset has no elements.
func (s *Multiset[E]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Clear removes all elements.
func (s *Multiset[E]) Clear() {
	s.tree.Clear()
}

// lowerBound is the smallest index whose element is >= value.
func (s *Multiset[E]) lowerBound(value E) int {
	return s.tree.LowerBoundFunc(func(v E) int { return s.cmp(v, value) })
}

// upperBound is the smallest index whose element is > value.
func (s *Multiset[E]) upperBound(value E) int {
	return s.tree.UpperBoundFunc(func(v E) int { return s.cmp(v, value) })
}

// Insert adds value at its bound position, keeping the sequence sorted.
func (s *Multiset[E]) Insert(value E) {
	s.tree.Insert(s.lowerBound(value), value)
}

// InsertUnique adds value unless an equal element is already present. It
// reports whether the value was inserted.
func (s *Multiset[E]) InsertUnique(value E) bool {
	index := s.lowerBound(value)
	if v, ok := s.tree.At(index); ok && s.cmp(v, value) == 0 {
		return false
	}
	s.tree.Insert(index, value)
	return true
}

// Contains reports whether at least one element equal to value is present.
func (s *Multiset[E]) Contains(value E) bool {
	v, ok := s.tree.At(s.lowerBound(value))
	return ok && s.cmp(v, value) == 0
}

// Count returns the number of elements equal to value.
func (s *Multiset[E]) Count(value E) int {
	return s.upperBound(value) - s.lowerBound(value)
}

// Remove removes one element equal to value. It reports whether an element
// was removed; with no equal element present it is a no-op.
func (s *Multiset[E]) Remove(value E) bool {
	index := s.lowerBound(value)
	if v, ok := s.tree.At(index); !ok || s.cmp(v, value) != 0 {
		return false
	}
	s.tree.RemoveAt(index)
	return true
}

// Nth returns the n-th smallest element (0-based), or false if n is outside
// [0, Len).
func (s *Multiset[E]) Nth(n int) (E, bool) {
	return s.tree.At(n)
}

// NthBack returns the n-th largest element (0-based), or false if n is
// outside [0, Len).
func (s *Multiset[E]) NthBack(n int) (E, bool) {
	return s.tree.At(s.tree.Len() - 1 - n)
}

// Min returns the smallest element, or false if the multiset is empty.
func (s *Multiset[E]) Min() (E, bool) {
	return s.tree.Front()
}

// Max returns the largest element, or false if the multiset is empty.
func (s *Multiset[E]) Max() (E, bool) {
	return s.tree.Back()
}

// PopMin removes and returns the smallest element.
func (s *Multiset[E]) PopMin() (E, bool) {
	return s.tree.PopFront()
}

// PopMax removes and returns the largest element.
func (s *Multiset[E]) PopMax() (E, bool) {
	return s.tree.PopBack()
}

// Append moves every element of other into s and leaves other empty. Unlike
// seqtree's positional Append this is a sorted merge: the smaller side is
// drained and its elements reinserted at their bound positions, costing
// O(m log(n+m)) for m moved elements.
//
// Both multisets must use the same ordering.
func (s *Multiset[E]) Append(other *Multiset[E]) {
	if other == nil || other == s || other.IsEmpty() {
		return
	}
	if s.Len() < other.Len() {
		s.tree, other.tree = other.tree, s.tree
	}
	for _, v := range other.tree.Drain() {
		s.Insert(v)
	}
}

// SplitOff splits the multiset at value: every element < value stays, every
// element >= value moves to the returned multiset, which shares the
// ordering of s.
func (s *Multiset[E]) SplitOff(value E) *Multiset[E] {
	return &Multiset[E]{tree: s.tree.SplitOff(s.lowerBound(value)), cmp: s.cmp}
}

// All returns an iterator over the elements in non-decreasing order.
func (s *Multiset[E]) All() iter.Seq[E] {
	return s.tree.All()
}

// Backward returns an iterator over the elements in non-increasing order.
func (s *Multiset[E]) Backward() iter.Seq[E] {
	return s.tree.Backward()
}

// Range returns an iterator over the elements v with lo <= v < hi, in
// non-decreasing order. The start position is found by bisection, so
// yielding k elements costs O(log n + k). lo must not sort after hi.
func (s *Multiset[E]) Range(lo, hi E) iter.Seq[E] {
	assert(s.cmp(lo, hi) <= 0, "multiset.Range: range start sorts after range end")
	return func(yield func(E) bool) {
		it := s.tree.IterAt(s.lowerBound(lo))
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if s.cmp(v, hi) >= 0 {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Values collects the elements into a sorted slice.
func (s *Multiset[E]) Values() []E {
	return s.tree.Values()
}
