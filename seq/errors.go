package seq

import (
	"fmt"

	"github.com/npillmayer/fingertree"
)

// ErrIndexOutOfBounds signals an index outside of a sequence. It matches
// fingertree.ErrIndexOutOfBounds as well.
var ErrIndexOutOfBounds = fmt.Errorf("seq: %w", fingertree.ErrIndexOutOfBounds)
