/*
Package pqueue implements a persistent max-priority queue on top of a finger
tree.

Every element contributes its cost to a running maximum cached throughout
the tree, together with an element count. Finding and removing the element
of highest cost is a single split of the tree, guided by the cached maxima.
Elements of equal cost leave the queue in insertion order.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package pqueue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fingertree'
func tracer() tracing.Trace {
	return tracing.Select("fingertree")
}
