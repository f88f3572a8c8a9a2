package pqueue

import (
	"math"

	"github.com/npillmayer/fingertree"
)

// Priority is the measure cached in the queue: the number of elements and
// their maximum cost.
type Priority = fingertree.Pair[int, float64]

// Queue is a persistent priority queue of elements with a cost. The zero
// value is an empty queue.
type Queue[T fingertree.Coster] struct {
	tree *fingertree.Tree[T, Priority]
}

func config[T fingertree.Coster]() fingertree.Measured[T, Priority] {
	return fingertree.Measured[T, Priority]{
		Monoid: fingertree.PairMonoid[int, float64]{
			First:  fingertree.Sum[int]{},
			Second: fingertree.Max{},
		},
		Measure: func(x T) Priority {
			return Priority{First: 1, Second: costOf(x)}
		},
	}
}

// costOf treats a NaN cost as −∞.
func costOf[T fingertree.Coster](x T) float64 {
	c := x.Cost()
	if math.IsNaN(c) {
		return math.Inf(-1)
	}
	return c
}

// New returns a queue holding xs.
func New[T fingertree.Coster](xs ...T) Queue[T] {
	t, err := fingertree.FromSlice(config[T](), xs)
	if err != nil {
		panic(err)
	}
	return Queue[T]{tree: t}
}

func (q Queue[T]) root() *fingertree.Tree[T, Priority] {
	if q.tree == nil {
		return New[T]().tree
	}
	return q.tree
}

// Len returns the number of elements in q.
func (q Queue[T]) Len() int {
	if q.tree == nil {
		return 0
	}
	return q.tree.Measure().First
}

// IsEmpty reports whether q has no elements.
func (q Queue[T]) IsEmpty() bool {
	return q.tree.IsEmpty()
}

// Push returns a queue with x added.
func (q Queue[T]) Push(x T) Queue[T] {
	return Queue[T]{tree: q.root().PushR(x)}
}

// Max returns the highest cost in q, or −∞ for an empty queue.
func (q Queue[T]) Max() float64 {
	return q.root().Measure().Second
}

// Peek returns the element of highest cost without removing it.
func (q Queue[T]) Peek() (x T, ok bool) {
	if q.IsEmpty() {
		return x, false
	}
	top := q.Max()
	x, _, ok = q.tree.Find(func(p Priority) bool { return p.Second >= top })
	return x, ok
}

// PopMax removes the element of highest cost. Of several elements with the
// same cost, the one pushed first is removed. A NaN cost ranks as −∞. ok is
// false for an empty queue.
func (q Queue[T]) PopMax() (x T, rest Queue[T], ok bool) {
	if q.IsEmpty() {
		return x, q, false
	}
	top := q.Max()
	s := q.tree.SplitWith(func(p Priority) bool { return p.Second >= top })
	if !s.HasPivot {
		tracer().Errorf("pqueue: no element reaches maximum cost %v", top)
		return x, q, false
	}
	return s.Pivot, Queue[T]{tree: s.Left.Concat(s.Right)}, true
}

// Merge returns a queue holding the elements of q and other. Elements of q
// count as inserted before those of other.
func (q Queue[T]) Merge(other Queue[T]) Queue[T] {
	if other.IsEmpty() {
		return q
	}
	if q.IsEmpty() {
		return other
	}
	return Queue[T]{tree: q.tree.Concat(other.tree)}
}

// Drain removes all elements in order of decreasing cost.
func (q Queue[T]) Drain() []T {
	out := make([]T, 0, q.Len())
	for {
		x, rest, ok := q.PopMax()
		if !ok {
			return out
		}
		out = append(out, x)
		q = rest
	}
}
