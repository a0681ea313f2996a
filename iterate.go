package seqtree

/*
BSD 3-Clause License

Please refer to the License file in the repository root.

*/

import "iter"

// Iter is a double-ended iterator over a tree's in-order sequence.
//
// Each direction is driven by an explicit stack holding the path to the
// next unvisited node; advancing pops a node and pushes the spine of its
// opposite-side child, which makes a full traversal O(n) with amortized
// O(1) per step. The two directions advance independently and do not stop
// at each other.
//
// An Iter is invalidated by any mutation of the tree it was created from.
type Iter[E any] struct {
	fwd []*node[E] // path to the leftmost unvisited node
	bwd []*node[E] // path to the rightmost unvisited node
}

// Iter returns an iterator over all elements, usable in both directions.
func (t *Tree[E]) Iter() *Iter[E] {
	it := &Iter[E]{}
	if t != nil {
		it.pushLeftSpine(t.root)
		it.pushRightSpine(t.root)
	}
	return it
}

// IterAt returns a forward iterator positioned right before the element at
// index. The start stack is built in O(log n); with index == Len the
// iterator is exhausted from the start. Backward iteration on an IterAt
// iterator yields nothing.
func (t *Tree[E]) IterAt(index int) *Iter[E] {
	it := &Iter[E]{}
	if t == nil {
		return it
	}
	n := t.root
	for n != nil {
		switch leftSize := size(n.left); {
		case index < leftSize:
			it.fwd = append(it.fwd, n)
			n = n.left
		case index > leftSize:
			index -= leftSize + 1
			n = n.right
		default:
			it.fwd = append(it.fwd, n)
			n = nil
		}
	}
	return it
}

func (it *Iter[E]) pushLeftSpine(n *node[E]) {
	for n != nil {
		it.fwd = append(it.fwd, n)
		n = n.left
	}
}

func (it *Iter[E]) pushRightSpine(n *node[E]) {
	for n != nil {
		it.bwd = append(it.bwd, n)
		n = n.right
	}
}

// Next yields the next element in forward order.
func (it *Iter[E]) Next() (E, bool) {
	if len(it.fwd) == 0 {
		var zero E
		return zero, false
	}
	n := it.fwd[len(it.fwd)-1]
	it.fwd = it.fwd[:len(it.fwd)-1]
	it.pushLeftSpine(n.right)
	return n.value, true
}

// NextBack yields the next element in backward order.
func (it *Iter[E]) NextBack() (E, bool) {
	if len(it.bwd) == 0 {
		var zero E
		return zero, false
	}
	n := it.bwd[len(it.bwd)-1]
	it.bwd = it.bwd[:len(it.bwd)-1]
	it.pushRightSpine(n.left)
	return n.value, true
}

// All returns an iterator over the elements in positional order, for use
// with range-over-func.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		it := t.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements in reverse positional
// order.
func (t *Tree[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		it := t.Iter()
		for v, ok := it.NextBack(); ok; v, ok = it.NextBack() {
			if !yield(v) {
				return
			}
		}
	}
}

// Drain removes all elements and returns them in positional order.
//
// Unlike All this is an eager, one-shot walk: every node is unlinked as its
// value is captured, so no node is reachable from the tree (or from other
// nodes) once Drain returns.
func (t *Tree[E]) Drain() []E {
	if t == nil {
		return nil
	}
	out := make([]E, 0, t.Len())
	drainNode(t.root, &out)
	t.root = nil
	return out
}

func drainNode[E any](n *node[E], out *[]E) {
	if n == nil {
		return
	}
	l, r := n.left, n.right
	n.left, n.right = nil, nil
	drainNode(l, out)
	*out = append(*out, n.value)
	drainNode(r, out)
}
