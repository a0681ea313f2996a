/*
Package multiset derives a value-ordered multiset from the positional
sequence tree in the parent package.

The wrapped tree's sequence is, at every observable instant, sorted
non-decreasingly under the multiset's comparator. All value-oriented
operations (membership, counting, removal by value, splitting at a value)
reduce to lower/upper-bound bisection on that sorted sequence followed by a
positional tree operation, so everything runs in O(log n) except the bulk
operations noted on their methods.

_________________________________________________________________________

BSD 3-Clause License

Please refer to the License file in the repository root.
*/
package multiset

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
