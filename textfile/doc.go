/*
Package textfile provides API helpers to load UTF-8 text files as ropes.

Files are read in fragments by a background goroutine. Every fragment
becomes a leaf of the resulting rope and is broadcast to subscribers as
soon as it has been read, so clients may display the beginning of a large
file while the rest is still loading. Load wraps this into a synchronous
call.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fingertree'
func tracer() tracing.Trace {
	return tracing.Select("fingertree")
}
