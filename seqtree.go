package seqtree

/*
BSD 3-Clause License

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the seqtree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrInvariantViolation is returned by Check whenever a node's cached
// bookkeeping or the balance bound does not hold.
const ErrInvariantViolation = TreeError("tree invariant violated")

// ErrCorruptSnapshot is returned when snapshot data cannot be a valid
// encoding of a tree.
const ErrCorruptSnapshot = TreeError("corrupt snapshot")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
