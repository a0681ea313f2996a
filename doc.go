/*
Package seqtree implements a balanced order-statistics tree: a sequence
container shaped like a binary search tree, where the in-order traversal
of the nodes defines the element order. Position, not value, is the
organizing key.

The tree supports logarithmic insertion and removal at arbitrary positions,
random access by position, splitting a sequence into two at an index,
merging two sequences back together, and predicate-based boundary search
(bisection). Balance follows the AVL discipline: after every public
operation the heights of any node's subtrees differ by at most one, which
bounds the tree height (and with it the cost of every positional
operation) logarithmically in the sequence length.

A tree created by

	seqtree.New[int]()

is a valid, empty sequence. Due to their internal structure sequence trees
have performance characteristics differing from Go slices:

	Operation     |   seqtree       |  slice
	--------------+-----------------+--------
	Index         |   O(log n)      |   O(1)
	Iterate       |   O(n)          |   O(n)

	Insert        |   O(log n)      |   O(n)
	Remove        |   O(log n)      |   O(n)
	Split         |   O(log n)      |   O(n)
	Concatenate   |   O(log n)      |   O(n)

For use cases with many editing operations on long sequences, or whenever
sequence splicing and k-th-element queries have to be cheap, the tree has
stable performance characteristics where a slice degrades linearly.

Trees are not safe for concurrent use. Every operation runs to completion
before returning; callers that share a tree across goroutines must
serialize access themselves.

The subpackage multiset derives a value-ordered multiset from this
container by maintaining sortedness through bisection.

_________________________________________________________________________

BSD 3-Clause License

Please refer to the License file in the repository root.
*/
package seqtree
