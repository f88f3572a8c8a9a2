package rope

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/fingertree"
)

// Text stores immutable UTF-8 text fragments in a persistent finger tree.
// All operations leave the receiver unchanged.
type Text struct {
	tree *fingertree.Tree[string, Summary]
}

func emptyTree() *fingertree.Tree[string, Summary] {
	t, err := fingertree.New(config())
	assert(err == nil, "rope: cannot create fragment tree")
	return t
}

func (text Text) root() *fingertree.Tree[string, Summary] {
	if text.tree == nil {
		return emptyTree()
	}
	return text.tree
}

func fromTree(t *fingertree.Tree[string, Summary]) Text {
	if t.IsEmpty() {
		return Text{}
	}
	return Text{tree: t}
}

// FromString creates a text from a Go string.
//
// The input string must be valid UTF-8. Invalid input triggers an internal
// assertion panic; clients with untrusted input should use a Builder.
func FromString(s string) Text {
	parts, err := splitToFragments(s, MaxFragment)
	assert(err == nil, "FromString requires valid UTF-8 input")
	t, err := fingertree.FromSlice(config(), parts)
	assert(err == nil, "FromString: cannot create fragment tree")
	return fromTree(t)
}

// AppendFragment returns a text with s appended as a single fragment,
// regardless of its size. s is not merged with the current last fragment.
func (text Text) AppendFragment(s string) (Text, error) {
	if !utf8.ValidString(s) {
		return text, ErrInvalidUTF8
	}
	if s == "" {
		return text, nil
	}
	return fromTree(text.root().PushR(s)), nil
}

// String returns the complete text as a Go string. This may be an expensive
// operation, as it collects all fragments into a single continuous string.
func (text Text) String() string {
	if text.IsVoid() {
		return ""
	}
	var bf strings.Builder
	bf.Grow(text.Len())
	text.tree.ForEach(func(frag string) bool {
		bf.WriteString(frag)
		return true
	})
	return bf.String()
}

// IsVoid reports whether the text has no bytes.
func (text Text) IsVoid() bool {
	return text.tree.IsEmpty()
}

// Len returns the text length in bytes.
func (text Text) Len() int {
	return text.Summary().Bytes
}

// Summary returns the aggregated metrics of the text in O(1).
func (text Text) Summary() Summary {
	if text.tree == nil {
		return Summary{}
	}
	return text.tree.Measure()
}

// Tree returns the finger tree backing the text.
func (text Text) Tree() *fingertree.Tree[string, Summary] {
	return text.root()
}

// Concat returns the text followed by all of others.
func (text Text) Concat(others ...Text) Text {
	t := text.root()
	for _, o := range others {
		if !o.IsVoid() {
			t = t.Concat(o.tree)
		}
	}
	return fromTree(t)
}

// Split splits the text at byte offset i. i must be in the range
// 0 … text.Len() and must fall on a character boundary.
func (text Text) Split(i int) (Text, Text, error) {
	if i < 0 || i > text.Len() {
		return text, Text{}, fmt.Errorf("%w: offset %d, length %d", ErrIndexOutOfBounds, i, text.Len())
	}
	if i == 0 {
		return Text{}, text, nil
	}
	if i == text.Len() {
		return text, Text{}, nil
	}
	s := text.tree.SplitWith(func(m Summary) bool { return m.Bytes > i })
	assert(s.HasPivot, "rope: split inside bounds found no fragment")
	left, right := s.Left, s.Right
	off := i - left.Measure().Bytes
	frag := s.Pivot
	if off == 0 {
		return fromTree(left), fromTree(right.PushL(frag)), nil
	}
	if !utf8.RuneStart(frag[off]) {
		return text, Text{}, fmt.Errorf("%w: offset %d", ErrNotCharBoundary, i)
	}
	tracer().Debugf("rope: split fragment of %d bytes at %d", len(frag), off)
	return fromTree(left.PushR(frag[:off])), fromTree(right.PushL(frag[off:])), nil
}

// Insert inserts c at byte offset i and returns the new text.
func (text Text) Insert(c Text, i int) (Text, error) {
	left, right, err := text.Split(i)
	if err != nil {
		return text, err
	}
	return left.Concat(c, right), nil
}

// Delete removes l bytes starting at byte offset i and returns the new text.
// Both ends of the deleted range must fall on character boundaries.
func (text Text) Delete(i, l int) (Text, error) {
	left, mid, err := text.cut(i, l)
	if err != nil {
		return text, err
	}
	_, right, _ := mid.Split(l)
	return left.Concat(right), nil
}

// cut returns the text before i and the text from i on, after checking that
// the range [i, i+l) lies within the text.
func (text Text) cut(i, l int) (Text, Text, error) {
	if i < 0 || l < 0 || i+l > text.Len() {
		return text, Text{}, fmt.Errorf("%w: range %d+%d, length %d", ErrIndexOutOfBounds, i, l, text.Len())
	}
	left, rest, err := text.Split(i)
	if err != nil {
		return text, Text{}, err
	}
	if l < rest.Len() {
		if _, _, err := rest.Split(l); err != nil {
			return text, Text{}, err
		}
	}
	return left, rest, nil
}

// Substr returns l bytes of the text starting at byte offset i as a text.
func (text Text) Substr(i, l int) (Text, error) {
	_, rest, err := text.cut(i, l)
	if err != nil {
		return Text{}, err
	}
	sub, _, _ := rest.Split(l)
	return sub, nil
}

// Report returns l bytes of the text starting at byte offset i as a string.
func (text Text) Report(i, l int) (string, error) {
	sub, err := text.Substr(i, l)
	if err != nil {
		return "", err
	}
	return sub.String(), nil
}

// ByteAt returns the byte at offset i.
func (text Text) ByteAt(i int) (byte, error) {
	if i < 0 || i >= text.Len() {
		return 0, fmt.Errorf("%w: offset %d, length %d", ErrIndexOutOfBounds, i, text.Len())
	}
	frag, before, ok := text.tree.Find(func(m Summary) bool { return m.Bytes > i })
	assert(ok, "rope: lookup inside bounds found no fragment")
	return frag[i-before.Bytes], nil
}

// LineStart returns the byte offset at which line n starts. Lines are
// counted from 0 and separated by '\n'; line n starts right after the n-th
// newline.
func (text Text) LineStart(n int) (int, error) {
	if n < 0 || n > text.Summary().Lines {
		return 0, fmt.Errorf("%w: line %d of %d", ErrIndexOutOfBounds, n, text.Summary().Lines+1)
	}
	if n == 0 {
		return 0, nil
	}
	frag, before, ok := text.tree.Find(func(m Summary) bool { return m.Lines >= n })
	assert(ok, "rope: line lookup inside bounds found no fragment")
	pos := before.Bytes
	for k := before.Lines; k < n; k++ {
		nl := strings.IndexByte(frag, '\n')
		assert(nl >= 0, "rope: fragment lacks counted newline")
		pos += nl + 1
		frag = frag[nl+1:]
	}
	return pos, nil
}

// Lines returns an iterator over the lines of the text, without their
// terminating newlines. A trailing newline does not start another line.
func (text Text) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if text.IsVoid() {
			return
		}
		var line strings.Builder
		stopped := false
		text.tree.ForEach(func(frag string) bool {
			for {
				nl := strings.IndexByte(frag, '\n')
				if nl < 0 {
					line.WriteString(frag)
					return true
				}
				line.WriteString(frag[:nl])
				if !yield(line.String()) {
					stopped = true
					return false
				}
				line.Reset()
				frag = frag[nl+1:]
			}
		})
		if !stopped && line.Len() > 0 {
			yield(line.String())
		}
	}
}

// Fragments returns an iterator over all fragments in order.
func (text Text) Fragments() iter.Seq[string] {
	return func(yield func(string) bool) {
		if text.IsVoid() {
			return
		}
		text.tree.ForEach(yield)
	}
}

// FragmentCount returns the number of fragments, in O(n).
func (text Text) FragmentCount() int {
	n := 0
	for range text.Fragments() {
		n++
	}
	return n
}
