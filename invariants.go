package seqtree

/*
BSD 3-Clause License

Please refer to the License file in the repository root.

*/

import "fmt"

// Check validates the structural invariants of the tree: every node's
// cached subtree size and height, and the AVL balance bound.
//
// This checker is intentionally strict and meant for tests; a healthy tree
// always passes.
func (t *Tree[E]) Check() error {
	if t == nil {
		return nil
	}
	_, _, err := checkNode(t.root)
	return err
}

func checkNode[E any](n *node[E]) (nodes int, depth int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	lnodes, ldepth, err := checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rnodes, rdepth, err := checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if want := lnodes + rnodes + 1; n.size != want {
		return 0, 0, fmt.Errorf("%w: cached size %d, subtree has %d nodes",
			ErrInvariantViolation, n.size, want)
	}
	if want := max(ldepth, rdepth) + 1; n.height != want {
		return 0, 0, fmt.Errorf("%w: cached height %d, subtree height is %d",
			ErrInvariantViolation, n.height, want)
	}
	if d := ldepth - rdepth; d < -1 || d > 1 {
		return 0, 0, fmt.Errorf("%w: balance factor %d", ErrInvariantViolation, d)
	}
	return n.size, n.height, nil
}
