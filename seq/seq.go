package seq

import (
	"fmt"
	"iter"

	"github.com/npillmayer/fingertree"
)

// Seq is a persistent sequence of items of type T. All operations leave the
// receiver unchanged and return a new sequence sharing structure with it.
type Seq[T any] struct {
	tree *fingertree.Tree[T, int]
}

// New returns an empty sequence.
func New[T any]() Seq[T] {
	return Seq[T]{}
}

// FromSlice returns a sequence holding the items of xs in order.
func FromSlice[T any](xs []T) Seq[T] {
	t, err := fingertree.FromSlice(fingertree.BySize[T](), xs)
	assert(err == nil, "seq: size measure configuration rejected")
	return Seq[T]{tree: t}
}

// Tree returns the finger tree backing s.
func (s Seq[T]) Tree() *fingertree.Tree[T, int] {
	return s.root()
}

func (s Seq[T]) root() *fingertree.Tree[T, int] {
	if s.tree == nil {
		t, err := fingertree.New(fingertree.BySize[T]())
		assert(err == nil, "seq: size measure configuration rejected")
		return t
	}
	return s.tree
}

// Len returns the number of items in s.
func (s Seq[T]) Len() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Measure()
}

// IsEmpty reports whether s has no items.
func (s Seq[T]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

func (s Seq[T]) outOfBounds(i int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, s.Len())
}

// At returns the item at index i.
func (s Seq[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= s.Len() {
		return zero, s.outOfBounds(i)
	}
	x, _, ok := s.tree.Find(func(n int) bool { return n > i })
	assert(ok, "seq: index lookup failed inside bounds")
	return x, nil
}

// Set returns a sequence with the item at index i replaced by x.
func (s Seq[T]) Set(i int, x T) (Seq[T], error) {
	if i < 0 || i >= s.Len() {
		return s, s.outOfBounds(i)
	}
	sp := s.tree.SplitWith(func(n int) bool { return n > i })
	assert(sp.HasPivot, "seq: split inside bounds found no pivot")
	return Seq[T]{tree: sp.Left.PushR(x).Concat(sp.Right)}, nil
}

// SplitAt splits s into the items before index i and the items from index i on.
// i must be in the range 0 … s.Len().
func (s Seq[T]) SplitAt(i int) (Seq[T], Seq[T], error) {
	if i < 0 || i > s.Len() {
		return s, Seq[T]{}, s.outOfBounds(i)
	}
	left, right, err := fingertree.SplitAt(s.root(), i)
	if err != nil {
		return s, Seq[T]{}, err
	}
	return Seq[T]{tree: left}, Seq[T]{tree: right}, nil
}

// InsertAt returns a sequence with xs inserted before index i. i may equal
// s.Len(), which appends xs.
func (s Seq[T]) InsertAt(i int, xs ...T) (Seq[T], error) {
	if i < 0 || i > s.Len() {
		return s, s.outOfBounds(i)
	}
	if len(xs) == 0 {
		return s, nil
	}
	left, right, err := s.SplitAt(i)
	if err != nil {
		return s, err
	}
	return left.Concat(FromSlice(xs)).Concat(right), nil
}

// DeleteAt returns a sequence without the item at index i.
func (s Seq[T]) DeleteAt(i int) (Seq[T], error) {
	if i < 0 || i >= s.Len() {
		return s, s.outOfBounds(i)
	}
	sp := s.tree.SplitWith(func(n int) bool { return n > i })
	return Seq[T]{tree: sp.Left.Concat(sp.Right)}, nil
}

// DeleteRange returns a sequence without the count items starting at index i.
//
// The range is cut out by splitting twice and concatenating the outer parts.
func (s Seq[T]) DeleteRange(i, count int) (Seq[T], error) {
	if i < 0 || count < 0 || i+count > s.Len() {
		return s, fmt.Errorf("%w: range %d+%d, length %d", ErrIndexOutOfBounds, i, count, s.Len())
	}
	if count == 0 {
		return s, nil
	}
	tracer().Debugf("seq: delete %d items at %d", count, i)
	left, rest, err := s.SplitAt(i)
	if err != nil {
		return s, err
	}
	_, right, err := rest.SplitAt(count)
	if err != nil {
		return s, err
	}
	return left.Concat(right), nil
}

// Slice returns the items from index from up to, but not including, index to.
func (s Seq[T]) Slice(from, to int) (Seq[T], error) {
	if from < 0 || to < from || to > s.Len() {
		return s, fmt.Errorf("%w: slice [%d:%d], length %d", ErrIndexOutOfBounds, from, to, s.Len())
	}
	t := fingertree.Drop(fingertree.Take(s.root(), to), from)
	return Seq[T]{tree: t}, nil
}

// Append returns a sequence with xs added at the end.
func (s Seq[T]) Append(xs ...T) Seq[T] {
	t := s.root()
	for _, x := range xs {
		t = t.PushR(x)
	}
	return Seq[T]{tree: t}
}

// Prepend returns a sequence with xs added at the front, keeping their order.
func (s Seq[T]) Prepend(xs ...T) Seq[T] {
	t := s.root()
	for i := len(xs) - 1; i >= 0; i-- {
		t = t.PushL(xs[i])
	}
	return Seq[T]{tree: t}
}

// Concat returns the items of s followed by the items of other.
func (s Seq[T]) Concat(other Seq[T]) Seq[T] {
	if other.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return other
	}
	return Seq[T]{tree: s.tree.Concat(other.tree)}
}

// First returns the first item of s.
func (s Seq[T]) First() (T, bool) {
	return s.root().First()
}

// Last returns the last item of s.
func (s Seq[T]) Last() (T, bool) {
	return s.root().Last()
}

// ToSlice returns the items of s in order.
func (s Seq[T]) ToSlice() []T {
	if s.tree == nil {
		return nil
	}
	return s.tree.ToSlice()
}

// Range returns an iterator over index/item pairs of s.
func (s Seq[T]) Range() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if s.tree == nil {
			return
		}
		i := 0
		s.tree.ForEach(func(x T) bool {
			ok := yield(i, x)
			i++
			return ok
		})
	}
}

// String returns a short description of s.
func (s Seq[T]) String() string {
	return fmt.Sprintf("seq(len=%d)", s.Len())
}
