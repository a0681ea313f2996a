package seqtree

/*
BSD 3-Clause License

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	dumpValueColor = color.New(color.FgBlue)
	dumpMetaColor  = color.New(color.FgYellow)
)

// Dump writes an indented rendering of the internal tree structure to w
// (for debugging purposes).
//
// Each line shows one node's value, colorized on capable terminals,
// together with its cached size and height. Children are indented below
// their parent, right subtree first, so the output reads like the tree
// rotated by 90 degrees.
func (t *Tree[E]) Dump(w io.Writer) {
	if t == nil || t.root == nil {
		fmt.Fprintln(w, "<empty tree>")
		return
	}
	dumpNode(w, t.root, 0)
}

func dumpNode[E any](w io.Writer, n *node[E], depth int) {
	if n == nil {
		return
	}
	dumpNode(w, n.right, depth+1)
	fmt.Fprintf(w, "%s%s %s\n", strings.Repeat("   ", depth),
		dumpValueColor.Sprintf("%v", n.value),
		dumpMetaColor.Sprintf("(size=%d height=%d)", n.size, n.height))
	dumpNode(w, n.left, depth+1)
}
