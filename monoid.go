package fingertree

import "fmt"

// Monoid defines how measures are aggregated up the tree.
//
// For measures s, t, u, Combine should be associative:
//
//	Combine(Combine(s, t), u) == Combine(s, Combine(t, u))
//
// and Empty should be the neutral element:
//
//	Combine(Empty(), s) == s == Combine(s, Empty())
//
// Neither law is checked at runtime. Combine need not be commutative; the
// tree always combines measures in left-to-right element order.
type Monoid[M any] interface {
	Empty() M
	Combine(left, right M) M
}

// Measured configures a finger tree: it ties the element type T to a
// measure type M.
type Measured[T, M any] struct {
	// Monoid aggregates measures up the tree.
	Monoid Monoid[M]
	// Measure computes the contribution of a single element.
	Measure func(T) M
}

func (cfg Measured[T, M]) validate() error {
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	if cfg.Measure == nil {
		return fmt.Errorf("%w: measure function is required", ErrInvalidConfig)
	}
	return nil
}
