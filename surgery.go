package seqtree

/*
BSD 3-Clause License

Please refer to the License file in the repository root.

*/

// This file contains the recursive subtree surgery all public operations
// are expressed in: mergeWithRoot, merge, removeMax and split. Each of them
// rebalances on the way back up the recursion, so intermediate subtrees may
// pass through a larger imbalance but every returned subtree satisfies the
// AVL invariant again.

// mergeWithRoot joins left, root and right into one balanced subtree whose
// in-order sequence is left's elements, then root's value, then right's
// elements. root must be a standalone node; its previous children are
// overwritten. The recursion descends into the taller side until the height
// difference is small enough to attach both sides directly, keeping the
// total work proportional to the height difference of the inputs.
func mergeWithRoot[E any](left, root, right *node[E]) *node[E] {
	switch d := height(left) - height(right); {
	case d > 1:
		left.right = mergeWithRoot(left.right, root, right)
		return rebalance(left)
	case d < -1:
		right.left = mergeWithRoot(left, root, right.left)
		return rebalance(right)
	default:
		root.left = left
		root.right = right
		return rebalance(root)
	}
}

// removeMax detaches the rightmost node of the subtree and returns the
// remaining subtree together with the detached node, rebalancing every
// ancestor on the way back up. n must not be nil; the detached node comes
// back with both children unlinked.
func removeMax[E any](n *node[E]) (rest, detached *node[E]) {
	if n.right == nil {
		rest = n.left
		n.left = nil
		n.update()
		return rest, n
	}
	n.right, detached = removeMax(n.right)
	return rebalance(n), detached
}

// merge concatenates two subtrees end to end. If either side is nil the
// other is returned unchanged; otherwise the rightmost node of the left
// subtree becomes the pivot for mergeWithRoot.
func merge[E any](left, right *node[E]) *node[E] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	rest, pivot := removeMax(left)
	return mergeWithRoot(rest, pivot, right)
}

// split divides a subtree into [0,index) and [index,size), preserving
// in-order positions. The root's children are detached up front so that no
// node ever has two owners while the halves are being reassembled.
func split[E any](n *node[E], index int) (left, right *node[E]) {
	if n == nil {
		return nil, nil
	}
	l, r := n.left, n.right
	n.left, n.right = nil, nil
	switch leftSize := size(l); {
	case index < leftSize:
		sl, sr := split(l, index)
		return sl, mergeWithRoot(sr, n, r)
	case index > leftSize:
		sl, sr := split(r, index-leftSize-1)
		return mergeWithRoot(l, n, sl), sr
	default:
		return l, mergeWithRoot(nil, n, r)
	}
}

// nodeAt returns the node holding in-order position index, or nil if index
// is outside the subtree. Read-only, does not rebalance.
func nodeAt[E any](n *node[E], index int) *node[E] {
	for n != nil {
		switch leftSize := size(n.left); {
		case index < leftSize:
			n = n.left
		case index > leftSize:
			index -= leftSize + 1
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// bisectNode returns the index of the first element for which pred is
// false, assuming pred is true on a prefix of the in-order sequence and
// false on the remaining suffix.
func bisectNode[E any](n *node[E], pred func(E) bool) int {
	if n == nil {
		return 0
	}
	if !pred(n.value) {
		return bisectNode(n.left, pred)
	}
	return size(n.left) + 1 + bisectNode(n.right, pred)
}
