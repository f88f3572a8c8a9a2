/*
Package rope implements persistent UTF-8 text as a finger tree of string
fragments.

Every fragment is measured by a Summary of byte, character, line, grapheme
and display-width counts. The summaries are cached throughout the tree, so
the totals of a text are available in constant time and positions can be
located in logarithmic time.

A Text created by

	rope.Text{}

is a valid object and behaves like the empty string.

Positions are byte offsets. Operations taking a position reject offsets
which do not fall on a character boundary.

Performance characteristics:

	Operation     |   Text          |  String
	--------------+-----------------+--------
	Index         |   O(log n)      |   O(1)
	Split         |   O(log n)      |   O(1)
	Iterate       |   O(n)          |   O(n)

	Concatenate   |   O(log n)      |   O(n)
	Insert        |   O(log n)      |   O(n)
	Delete        |   O(log n)      |   O(n)

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rope

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
