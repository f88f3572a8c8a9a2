package fingertree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
)

// Tree is a persistent finger tree.
//
// T is the element type, M is the measure type aggregated through the tree.
// Trees are created with New, Single or FromSlice; the zero value of Tree is
// not usable, as it lacks a measure configuration.
//
// All methods leave the receiver unchanged. Trees may therefore be shared
// freely between goroutines.
type Tree[T, M any] struct {
	cfg  Measured[T, M]
	root fingers[M] // nil means empty tree
}

// New creates an empty tree with validated configuration.
func New[T, M any](cfg Measured[T, M]) (*Tree[T, M], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T, M]{cfg: cfg}, nil
}

// Single creates a tree holding exactly x.
func Single[T, M any](cfg Measured[T, M], x T) (*Tree[T, M], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return t.PushR(x), nil
}

// FromSlice creates a tree holding the items of xs in order.
func FromSlice[T, M any](cfg Measured[T, M], xs []T) (*Tree[T, M], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	o := t.ops()
	var root fingers[M]
	for _, x := range xs {
		root = o.pushR(root, t.wrap(x))
	}
	return t.with(root), nil
}

// Config returns the measure configuration of the tree.
func (t *Tree[T, M]) Config() Measured[T, M] {
	return t.cfg
}

func (t *Tree[T, M]) ops() ops[M] {
	return ops[M]{mon: t.cfg.Monoid}
}

// with returns a tree sharing t's configuration with a new spine.
func (t *Tree[T, M]) with(root fingers[M]) *Tree[T, M] {
	return &Tree[T, M]{cfg: t.cfg, root: root}
}

func (t *Tree[T, M]) wrap(x T) element[M] {
	return leaf[T, M]{value: x, m: t.cfg.Measure(x)}
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T, M]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Measure returns the combined measure of all elements, or the monoid's
// identity for an empty tree. It runs in O(1).
func (t *Tree[T, M]) Measure() M {
	assert(t != nil, "Measure called on nil tree")
	if t.root == nil {
		return t.cfg.Monoid.Empty()
	}
	return t.root.measure()
}

// PushL returns a new tree with x prepended.
func (t *Tree[T, M]) PushL(x T) *Tree[T, M] {
	assert(t != nil, "PushL called on nil tree")
	return t.with(t.ops().pushL(t.wrap(x), t.root))
}

// PushR returns a new tree with x appended.
func (t *Tree[T, M]) PushR(x T) *Tree[T, M] {
	assert(t != nil, "PushR called on nil tree")
	return t.with(t.ops().pushR(t.root, t.wrap(x)))
}

// PopL removes the first element. It returns ok == false if t is empty.
func (t *Tree[T, M]) PopL() (head T, rest *Tree[T, M], ok bool) {
	if t.IsEmpty() {
		return head, t, false
	}
	x, r, _ := t.ops().popL(t.root)
	return x.(leaf[T, M]).value, t.with(r), true
}

// PopR removes the last element. It returns ok == false if t is empty.
func (t *Tree[T, M]) PopR() (rest *Tree[T, M], last T, ok bool) {
	if t.IsEmpty() {
		return t, last, false
	}
	r, x, _ := t.ops().popR(t.root)
	return t.with(r), x.(leaf[T, M]).value, true
}

// First returns the first element without removing it.
func (t *Tree[T, M]) First() (x T, ok bool) {
	if t.IsEmpty() {
		return x, false
	}
	e, _ := peekL(t.root)
	return e.(leaf[T, M]).value, true
}

// Last returns the last element without removing it.
func (t *Tree[T, M]) Last() (x T, ok bool) {
	if t.IsEmpty() {
		return x, false
	}
	e, _ := peekR(t.root)
	return e.(leaf[T, M]).value, true
}

// Concat returns the concatenation of t and other.
//
// Both trees are expected to share the same measure configuration; the
// result uses t's. A nil other is treated as empty.
func (t *Tree[T, M]) Concat(other *Tree[T, M]) *Tree[T, M] {
	assert(t != nil, "Concat called on nil tree")
	if other.IsEmpty() {
		return t
	}
	if t.root == nil {
		return t.with(other.root)
	}
	return t.with(t.ops().app3(t.root, nil, other.root))
}

// Reverse returns a tree holding the elements of t in reverse order.
// Measures are recombined right to left, so non-commutative monoids yield
// the measure of the reversed sequence.
func (t *Tree[T, M]) Reverse() *Tree[T, M] {
	assert(t != nil, "Reverse called on nil tree")
	o := t.ops()
	return t.with(o.reverse(t.root, func(e element[M]) element[M] { return e }))
}

func (o ops[M]) reverse(f fingers[M], rev func(element[M]) element[M]) fingers[M] {
	switch t := f.(type) {
	case nil:
		return nil
	case *single[M]:
		return &single[M]{x: rev(t.x)}
	case *deep[M]:
		revNode := func(e element[M]) element[M] {
			n := e.(*node[M])
			items := o.reverseItems(n.items, rev)
			return &node[M]{m: o.sum(items), items: items}
		}
		return o.mkDeep(
			o.digitOf(o.reverseItems(t.suffix.items, rev)...),
			o.reverse(t.middle, revNode),
			o.digitOf(o.reverseItems(t.prefix.items, rev)...),
		)
	}
	panic("reverse: unknown spine type")
}

func (o ops[M]) reverseItems(items []element[M], rev func(element[M]) element[M]) []element[M] {
	out := make([]element[M], len(items))
	for i, x := range items {
		out[len(items)-1-i] = rev(x)
	}
	return out
}

// ForEach walks the elements in order.
//
// Iteration stops early if fn returns false.
func (t *Tree[T, M]) ForEach(fn func(x T) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	eachInSpine(t.root, func(e element[M]) bool {
		return fn(e.(leaf[T, M]).value)
	})
}

// Range returns an iterator over all elements in order.
func (t *Tree[T, M]) Range() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.ForEach(yield)
	}
}

// ToSlice returns all elements in order.
func (t *Tree[T, M]) ToSlice() []T {
	var out []T
	t.ForEach(func(x T) bool {
		out = append(out, x)
		return true
	})
	return out
}

// eachInSpine visits the leaves of a spine in order.
func eachInSpine[M any](f fingers[M], fn func(element[M]) bool) bool {
	switch t := f.(type) {
	case nil:
		return true
	case *single[M]:
		return eachLeaf(t.x, fn)
	case *deep[M]:
		for _, x := range t.prefix.items {
			if !eachLeaf(x, fn) {
				return false
			}
		}
		if !eachInSpine(t.middle, fn) {
			return false
		}
		for _, x := range t.suffix.items {
			if !eachLeaf(x, fn) {
				return false
			}
		}
		return true
	}
	panic("eachInSpine: unknown spine type")
}

// eachLeaf unpacks nodes down to the leaves.
func eachLeaf[M any](e element[M], fn func(element[M]) bool) bool {
	n, ok := e.(*node[M])
	if !ok {
		return fn(e)
	}
	for _, child := range n.items {
		if !eachLeaf(child, fn) {
			return false
		}
	}
	return true
}
