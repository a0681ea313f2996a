package seqtree

/*
BSD 3-Clause License

Please refer to the License file in the repository root.

*/

// Tree is a balanced order-statistics tree used as a sequence container.
//
// All positions are 0-based in-order indices. Mutating operations keep the
// AVL balance invariant, so positional access, insertion, removal,
// splitting and concatenation all run in O(log n).
//
// Lookup-style operations treat an out-of-range index as a normal outcome
// and return a comma-ok result. Mutation-site indices are contract bound:
// Insert and SplitOff with an index beyond Len panic.
//
// A Tree must not be mutated concurrently with any other access.
type Tree[E any] struct {
	root *node[E]
}

// New creates an empty sequence tree.
func New[E any]() *Tree[E] {
	return &Tree[E]{}
}

// From creates a tree holding the slice elements in positional order.
func From[E any](values []E) *Tree[E] {
	t := New[E]()
	for _, v := range values {
		t.PushBack(v)
	}
	return t
}

// Len returns the number of elements.
func (t *Tree[E]) Len() int {
	if t == nil {
		return 0
	}
	return size(t.root)
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[E]) IsEmpty() bool {
	return t.Len() == 0
}

// Height returns the tree height, where 0 means empty and 1 means a single
// node.
func (t *Tree[E]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

// Clear removes all elements.
func (t *Tree[E]) Clear() {
	t.root = nil
}

// At returns the element at position index. The second result is false if
// index is outside [0, Len).
func (t *Tree[E]) At(index int) (E, bool) {
	if n := nodeAt(t.root, index); n != nil {
		return n.value, true
	}
	var zero E
	return zero, false
}

// Set replaces the element at position index. It reports whether the index
// was valid.
func (t *Tree[E]) Set(index int, value E) bool {
	n := nodeAt(t.root, index)
	if n == nil {
		return false
	}
	n.value = value
	return true
}

// UpdateAt applies f to the element at position index in place. It reports
// whether the index was valid.
func (t *Tree[E]) UpdateAt(index int, f func(*E)) bool {
	n := nodeAt(t.root, index)
	if n == nil {
		return false
	}
	f(&n.value)
	return true
}

// Front returns the first element, or false if the tree is empty.
func (t *Tree[E]) Front() (E, bool) {
	return t.At(0)
}

// Back returns the last element, or false if the tree is empty.
func (t *Tree[E]) Back() (E, bool) {
	return t.At(t.Len() - 1)
}

// Insert inserts value at position index; all elements at positions >= index
// shift right by one. index must be at most Len.
func (t *Tree[E]) Insert(index int, value E) {
	assert(index >= 0 && index <= t.Len(), "seqtree.Insert: index out of bounds")
	T().Debugf("insert at position %d of %d", index, t.Len())
	left, right := split(t.root, index)
	t.root = mergeWithRoot(left, newNode(value), right)
}

// RemoveAt removes and returns the element at position index; later
// elements shift left by one. The second result is false if index is
// outside [0, Len).
func (t *Tree[E]) RemoveAt(index int) (E, bool) {
	var zero E
	if index < 0 || index >= t.Len() {
		return zero, false
	}
	T().Debugf("remove position %d of %d", index, t.Len())
	left, rest := split(t.root, index)
	removed, right := split(rest, 1)
	t.root = merge(left, right)
	return removed.value, true
}

// PushFront inserts value at position 0.
func (t *Tree[E]) PushFront(value E) {
	t.Insert(0, value)
}

// PushBack appends value after the last element.
func (t *Tree[E]) PushBack(value E) {
	t.Insert(t.Len(), value)
}

// PopFront removes and returns the first element.
func (t *Tree[E]) PopFront() (E, bool) {
	return t.RemoveAt(0)
}

// PopBack removes and returns the last element.
func (t *Tree[E]) PopBack() (E, bool) {
	return t.RemoveAt(t.Len() - 1)
}

// Append concatenates other after t in positional order and leaves other
// empty. This is pure positional concatenation, unaware of any value
// ordering; see multiset.Multiset.Append for the sorted-merge variant.
func (t *Tree[E]) Append(other *Tree[E]) {
	if other == nil {
		return
	}
	assert(other != t, "seqtree.Append: cannot append a tree to itself")
	T().Debugf("append tree of length %d onto length %d", other.Len(), t.Len())
	t.root = merge(t.root, other.root)
	other.root = nil
}

// SplitOff splits the sequence right before position index: t keeps
// [0, index) and the returned tree holds [index, Len). index must be at
// most Len.
func (t *Tree[E]) SplitOff(index int) *Tree[E] {
	assert(index >= 0 && index <= t.Len(), "seqtree.SplitOff: index out of bounds")
	T().Debugf("split at position %d of %d", index, t.Len())
	left, right := split(t.root, index)
	t.root = left
	return &Tree[E]{root: right}
}

// ForEach walks the elements in positional order. Iteration stops early if
// fn returns false.
func (t *Tree[E]) ForEach(fn func(E) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	forEachNode(t.root, fn)
}

func forEachNode[E any](n *node[E], fn func(E) bool) bool {
	if n == nil {
		return true
	}
	if !forEachNode(n.left, fn) {
		return false
	}
	if !fn(n.value) {
		return false
	}
	return forEachNode(n.right, fn)
}

// Values collects the elements into a slice in positional order.
func (t *Tree[E]) Values() []E {
	out := make([]E, 0, t.Len())
	t.ForEach(func(v E) bool {
		out = append(out, v)
		return true
	})
	return out
}
