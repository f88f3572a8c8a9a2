/*
Package seq implements a persistent, indexed sequence on top of a finger
tree measured by element count.

Seq offers positional access and editing in logarithmic time, and constant
time access to both ends:

	s := seq.FromSlice([]string{"a", "b", "d"})
	s2, _ := s.InsertAt(2, "c")  // [a b c d], s is unchanged
	x, _ := s2.At(3)             // "d"

The zero value of Seq is an empty sequence, ready to use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package seq

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
