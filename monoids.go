package fingertree

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of numeric types usable with the arithmetic monoids and
// with positional splitting.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum is the additive monoid (0, +).
type Sum[N Number] struct{}

// Empty returns 0.
func (Sum[N]) Empty() N { return 0 }

// Combine returns left + right.
func (Sum[N]) Combine(left, right N) N { return left + right }

// Product is the multiplicative monoid (1, ×).
type Product[N Number] struct{}

// Empty returns 1.
func (Product[N]) Empty() N { return 1 }

// Combine returns left × right.
func (Product[N]) Combine(left, right N) N { return left * right }

// Max is the monoid (−∞, max) over float64.
type Max struct{}

// Empty returns negative infinity.
func (Max) Empty() float64 { return math.Inf(-1) }

// Combine returns the larger of both values. NaN loses against any number.
func (Max) Combine(left, right float64) float64 {
	if math.IsNaN(left) || right > left {
		return right
	}
	return left
}

// Min is the monoid (+∞, min) over float64.
type Min struct{}

// Empty returns positive infinity.
func (Min) Empty() float64 { return math.Inf(1) }

// Combine returns the smaller of both values. NaN loses against any number.
func (Min) Combine(left, right float64) float64 {
	if math.IsNaN(left) || right < left {
		return right
	}
	return left
}

// Pair is a measure made of two independent components.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairMonoid combines two monoids component-wise. It lets a single tree
// carry, for example, an element count next to a maximum.
type PairMonoid[A, B any] struct {
	First  Monoid[A]
	Second Monoid[B]
}

// Empty returns the pair of both identities.
func (p PairMonoid[A, B]) Empty() Pair[A, B] {
	return Pair[A, B]{First: p.First.Empty(), Second: p.Second.Empty()}
}

// Combine combines both components independently.
func (p PairMonoid[A, B]) Combine(left, right Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{
		First:  p.First.Combine(left.First, right.First),
		Second: p.Second.Combine(left.Second, right.Second),
	}
}
