package rope

import "errors"

var (
	// ErrInvalidUTF8 signals invalid UTF-8 source text.
	ErrInvalidUTF8 = errors.New("rope: invalid UTF-8")
	// ErrIndexOutOfBounds signals a position or length outside of a text.
	ErrIndexOutOfBounds = errors.New("rope: index out of bounds")
	// ErrNotCharBoundary signals an offset inside a multi-byte character.
	ErrNotCharBoundary = errors.New("rope: offset is not a char boundary")
	// ErrTextCompleted signals that a builder has already handed out its text.
	ErrTextCompleted = errors.New("rope: text builder already completed")
	// ErrIllegalArguments signals a nil receiver or argument.
	ErrIllegalArguments = errors.New("rope: illegal arguments")
)
