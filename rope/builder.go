package rope

import (
	"github.com/npillmayer/fingertree"
)

// Builder incrementally stages text and finalizes it into a Text.
//
// Appended text is merged into the last staged fragment while it fits into
// MaxFragment bytes; the tree is built only when Text is called.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// front keeps prepended fragments in reverse logical order.
	front []string
	// back keeps appended fragments in logical order.
	back []string

	done  bool
	dirty bool
	text  Text
}

// NewBuilder creates a new and empty text builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Text returns the text built from all staged fragments.
//
// It is illegal to continue adding fragments after Text has been called, but
// Text may be called multiple times.
func (b *Builder) Text() Text {
	if b == nil {
		return Text{}
	}
	if b.dirty {
		b.text = b.build()
		b.dirty = false
	}
	b.done = true
	if b.text.IsVoid() {
		tracer().Debugf("text builder: text is void")
	}
	return b.text
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.text = Text{}
}

// Append appends UTF-8 text to the staged build.
func (b *Builder) Append(s string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTextCompleted
	}
	parts, err := splitToFragments(s, MaxFragment)
	if err != nil {
		return err
	}
	for _, p := range parts {
		if last := len(b.back) - 1; last >= 0 && len(b.back[last])+len(p) <= MaxFragment {
			b.back[last] += p
			continue
		}
		b.back = append(b.back, p)
	}
	if len(parts) > 0 {
		b.dirty = true
	}
	return nil
}

// Prepend prepends UTF-8 text to the staged build.
func (b *Builder) Prepend(s string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTextCompleted
	}
	parts, err := splitToFragments(s, MaxFragment)
	if err != nil {
		return err
	}
	// front is stored in reverse logical order.
	for i := len(parts) - 1; i >= 0; i-- {
		b.front = append(b.front, parts[i])
	}
	if len(parts) > 0 {
		b.dirty = true
	}
	return nil
}

func (b *Builder) build() Text {
	parts := b.orderedFragments()
	if len(parts) == 0 {
		return Text{}
	}
	t, err := fingertree.FromSlice(config(), parts)
	assert(err == nil, "builder: fingertree.FromSlice failed")
	return fromTree(t)
}

func (b *Builder) orderedFragments() []string {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]string, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}
