/*
Package fingertree implements persistent finger trees annotated with a monoid.

A finger tree is a sequence type with cheap access to both of its ends and
logarithmic concatenation and splitting. Every subtree carries a cached
measure, an element of a client-supplied monoid. Choosing the monoid
selects what the tree is good at:

	monoid            measure         use
	----------------  --------------  ---------------------------------
	Sum[int]          Size            indexed sequences (see package seq)
	Sum[int]          StringLength    ropes of text fragments
	Max               CostOf          priority queues (see package pqueue)

Trees are immutable. Every operation returns a new tree and shares all
untouched structure with its input, so older versions stay valid:

	cfg := fingertree.ByLength()
	t, _ := fingertree.FromSlice(cfg, []string{"a", "bb", "ccc"})
	t2 := t.PushR("dddd")      // t is unchanged
	s := t2.SplitWith(func(m int) bool { return m > 3 })
	// s.Left = [a bb], s.Pivot = ccc, s.Right = [dddd]

Performance characteristics:

	Operation          |  Cost
	-------------------+------------------
	PushL, PushR       |  O(1) amortized
	PopL, PopR         |  O(1) amortized
	First, Last        |  O(1)
	Measure            |  O(1)
	Concat             |  O(log min(n,m))
	SplitWith, Find    |  O(log n)

The implementation follows R. Hinze and R. Paterson, "Finger trees: a simple
general-purpose data structure", Journal of Functional Programming 16:2, 2006.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package fingertree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fingertree'
func tracer() tracing.Trace {
	return tracing.Select("fingertree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
