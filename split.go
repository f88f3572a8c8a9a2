package fingertree

import "fmt"

// splitDigit finds the first element of items at which pred turns true,
// starting from accumulated measure acc. If pred never turns true inside
// items, the last element is returned as the pivot.
func (o ops[M]) splitDigit(pred func(M) bool, acc M, items []element[M]) (before []element[M], x element[M], after []element[M]) {
	last := len(items) - 1
	for i, item := range items[:last] {
		acc = o.mon.Combine(acc, item.measure())
		if pred(acc) {
			return items[:i], item, items[i+1:]
		}
	}
	return items[:last], items[last], nil
}

// splitTree splits a non-empty spine around the element at which pred turns
// true. Callers must ensure that pred(acc ⊕ measure(f)) holds.
func (o ops[M]) splitTree(pred func(M) bool, acc M, f fingers[M]) (fingers[M], element[M], fingers[M]) {
	switch t := f.(type) {
	case *single[M]:
		return nil, t.x, nil
	case *deep[M]:
		accPrefix := o.mon.Combine(acc, t.prefix.m)
		if pred(accPrefix) {
			before, x, after := o.splitDigit(pred, acc, t.prefix.items)
			return o.fromElements(before), x, o.deepL(after, t.middle, t.suffix)
		}
		accMiddle := o.mon.Combine(accPrefix, o.measureOf(t.middle))
		if pred(accMiddle) {
			ml, nx, mr := o.splitTree(pred, accPrefix, t.middle)
			n := nx.(*node[M])
			accNode := o.mon.Combine(accPrefix, o.measureOf(ml))
			before, x, after := o.splitDigit(pred, accNode, n.items)
			return o.deepR(t.prefix, ml, before), x, o.deepL(after, mr, t.suffix)
		}
		before, x, after := o.splitDigit(pred, accMiddle, t.suffix.items)
		return o.deepR(t.prefix, t.middle, before), x, o.fromElements(after)
	}
	panic("splitTree called with empty spine")
}

// lookupDigit is splitDigit without rebuilding anything. It returns the
// measure accumulated before the pivot.
func (o ops[M]) lookupDigit(pred func(M) bool, acc M, items []element[M]) (element[M], M) {
	last := len(items) - 1
	for _, item := range items[:last] {
		next := o.mon.Combine(acc, item.measure())
		if pred(next) {
			return item, acc
		}
		acc = next
	}
	return items[last], acc
}

// lookupTree descends to the element at which pred turns true, under the
// same precondition as splitTree. Elements of deeper levels are nodes, which
// are unpacked on the way back up.
func (o ops[M]) lookupTree(pred func(M) bool, acc M, f fingers[M]) (element[M], M) {
	switch t := f.(type) {
	case *single[M]:
		return t.x, acc
	case *deep[M]:
		accPrefix := o.mon.Combine(acc, t.prefix.m)
		if pred(accPrefix) {
			return o.lookupDigit(pred, acc, t.prefix.items)
		}
		accMiddle := o.mon.Combine(accPrefix, o.measureOf(t.middle))
		if pred(accMiddle) {
			nx, accNode := o.lookupTree(pred, accPrefix, t.middle)
			return o.lookupDigit(pred, accNode, nx.(*node[M]).items)
		}
		return o.lookupDigit(pred, accMiddle, t.suffix.items)
	}
	panic("lookupTree called with empty spine")
}

// Split is the result of SplitWith.
type Split[T, M any] struct {
	// Left holds the elements before the pivot.
	Left *Tree[T, M]
	// Pivot is the element at which the predicate turned true.
	Pivot T
	// HasPivot is false if the predicate never turned true.
	HasPivot bool
	// Right holds the elements after the pivot.
	Right *Tree[T, M]
}

// SplitWith splits t at the first element at which pred, applied to the
// measure accumulated from the left up to and including that element,
// turns true.
//
// pred must be monotone: once true for an accumulated measure, it stays true
// for every extension of it. A typical predicate is
//
//	func(size int) bool { return size > index }
//
// If pred never turns true, all of t ends up in Left, there is no pivot and
// Right is empty.
func (t *Tree[T, M]) SplitWith(pred func(M) bool) Split[T, M] {
	assert(t != nil, "SplitWith called on nil tree")
	if t.root == nil || !pred(t.Measure()) {
		return Split[T, M]{Left: t, Right: t.with(nil)}
	}
	o := t.ops()
	l, x, r := o.splitTree(pred, o.mon.Empty(), t.root)
	return Split[T, M]{
		Left:     t.with(l),
		Pivot:    x.(leaf[T, M]).value,
		HasPivot: true,
		Right:    t.with(r),
	}
}

// Find returns the element at which pred turns true, together with the
// measure accumulated before it. It does the same descent as SplitWith but
// does not build any trees. ok is false if pred never turns true.
func (t *Tree[T, M]) Find(pred func(M) bool) (x T, before M, ok bool) {
	assert(t != nil, "Find called on nil tree")
	if t.root == nil || !pred(t.Measure()) {
		return x, before, false
	}
	o := t.ops()
	e, acc := o.lookupTree(pred, o.mon.Empty(), t.root)
	return e.(leaf[T, M]).value, acc, true
}

// SplitAt splits a tree with a numeric, additive measure at position index:
// left holds the elements whose accumulated measure does not exceed index.
// For trees measured by Size this is the familiar split at an element
// index. index must be in the range 0 … t.Measure().
func SplitAt[T any, M Number](t *Tree[T, M], index M) (left, right *Tree[T, M], err error) {
	if t == nil {
		return nil, nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	var zero M
	if index < zero || index > t.Measure() {
		return nil, nil, fmt.Errorf("%w: position %v outside 0…%v", ErrIndexOutOfBounds, index, t.Measure())
	}
	s := t.SplitWith(func(m M) bool { return m > index })
	right = s.Right
	if s.HasPivot {
		right = right.PushL(s.Pivot)
	}
	return s.Left, right, nil
}

// Take returns the elements of t whose accumulated measure does not exceed n.
// n is clamped to the range 0 … t.Measure().
func Take[T any, M Number](t *Tree[T, M], n M) *Tree[T, M] {
	left, _, err := SplitAt(t, clamp(n, t.Measure()))
	assert(err == nil, "Take: clamped split failed")
	return left
}

// Drop returns t without the elements Take(t, n) would return.
// n is clamped to the range 0 … t.Measure().
func Drop[T any, M Number](t *Tree[T, M], n M) *Tree[T, M] {
	_, right, err := SplitAt(t, clamp(n, t.Measure()))
	assert(err == nil, "Drop: clamped split failed")
	return right
}

func clamp[M Number](n, limit M) M {
	var zero M
	if n < zero {
		return zero
	}
	if n > limit {
		return limit
	}
	return n
}
