package fingertree

import "errors"

var (
	// ErrInvalidConfig signals an invalid measure configuration.
	ErrInvalidConfig = errors.New("fingertree: invalid configuration")
	// ErrIndexOutOfBounds signals a split position outside of a tree's measure.
	ErrIndexOutOfBounds = errors.New("fingertree: index out of bounds")
	// ErrInvariant signals a violated structural or measure invariant.
	ErrInvariant = errors.New("fingertree: invariant violated")
)
