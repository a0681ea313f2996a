package seqtree

/*
BSD 3-Clause License

Please refer to the License file in the repository root.

*/

// node is the storage unit of the tree: one element plus cached subtree
// bookkeeping. A node is reachable from exactly one place at any time,
// either as a child of another node or as a tree handle's root. This
// single-ownership discipline is what lets split and merge move whole
// subtrees around without copying.
type node[E any] struct {
	value  E
	size   int // number of nodes in this subtree, including this one
	height int // 1 + max of child heights; a nil child counts as 0
	left   *node[E]
	right  *node[E]
}

func newNode[E any](value E) *node[E] {
	return &node[E]{value: value, size: 1, height: 1}
}

// size is the nil-safe subtree size accessor.
func size[E any](n *node[E]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// height is the nil-safe subtree height accessor.
func height[E any](n *node[E]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// update recomputes the cached size and height from the children. It must
// be called whenever a child link of n has changed.
func (n *node[E]) update() {
	n.size = size(n.left) + size(n.right) + 1
	n.height = max(height(n.left), height(n.right)) + 1
}

// balanceFactor is the height of the left subtree minus the height of the
// right subtree, 0 for a nil node.
func balanceFactor[E any](n *node[E]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// rotateRight rotates the subtree rooted at n to the right and returns the
// new subtree root. n.left must not be nil.
func rotateRight[E any](n *node[E]) *node[E] {
	l := n.left
	n.left = l.right
	n.update()
	l.right = n
	l.update()
	return l
}

// rotateLeft rotates the subtree rooted at n to the left and returns the
// new subtree root. n.right must not be nil.
func rotateLeft[E any](n *node[E]) *node[E] {
	r := n.right
	n.right = r.left
	n.update()
	r.left = n
	r.update()
	return r
}

// rebalance restores the AVL invariant for a subtree whose balance may be
// off by at most the amount a single local edit introduces, and returns the
// new subtree root with size and height recomputed. nil in, nil out.
func rebalance[E any](n *node[E]) *node[E] {
	if n == nil {
		return nil
	}
	switch d := balanceFactor(n); {
	case d > 1:
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		n = rotateRight(n)
	case d < -1:
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right)
		}
		n = rotateLeft(n)
	default:
		n.update()
	}
	return n
}
