package fingertree

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - digits hold 1 to 4 elements,
//   - nodes hold 2 or 3 elements,
//   - every element at spine level k is a complete 2-3 tree of depth k.
//
// This checker is intentionally strict and should be used in tests.
func (t *Tree[T, M]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if err := t.cfg.validate(); err != nil {
		return err
	}
	return checkSpine(t.root, 0)
}

func checkSpine[M any](f fingers[M], level int) error {
	switch t := f.(type) {
	case nil:
		return nil
	case *single[M]:
		if t.x == nil {
			return fmt.Errorf("%w: single without element at level %d", ErrInvariant, level)
		}
		return checkElement(t.x, level)
	case *deep[M]:
		if err := checkDigit(t.prefix, level); err != nil {
			return fmt.Errorf("prefix: %w", err)
		}
		if err := checkDigit(t.suffix, level); err != nil {
			return fmt.Errorf("suffix: %w", err)
		}
		return checkSpine(t.middle, level+1)
	}
	return fmt.Errorf("%w: unknown spine type %T", ErrInvariant, f)
}

func checkDigit[M any](d digit[M], level int) error {
	if len(d.items) < 1 || len(d.items) > 4 {
		return fmt.Errorf("%w: digit of size %d at level %d", ErrInvariant, len(d.items), level)
	}
	for _, x := range d.items {
		if err := checkElement(x, level); err != nil {
			return err
		}
	}
	return nil
}

// checkElement verifies that e is a 2-3 tree of exactly the given depth.
func checkElement[M any](e element[M], depth int) error {
	if e == nil {
		return fmt.Errorf("%w: nil element", ErrInvariant)
	}
	n, isNode := e.(*node[M])
	if depth == 0 {
		if isNode {
			return fmt.Errorf("%w: node found where a leaf belongs", ErrInvariant)
		}
		return nil
	}
	if !isNode {
		return fmt.Errorf("%w: leaf found at depth %d", ErrInvariant, depth)
	}
	if len(n.items) != 2 && len(n.items) != 3 {
		return fmt.Errorf("%w: node of arity %d", ErrInvariant, len(n.items))
	}
	for _, child := range n.items {
		if err := checkElement(child, depth-1); err != nil {
			return err
		}
	}
	return nil
}

// CheckMeasures validates that every cached measure equals the combination
// of its children's measures, and that every leaf's cached measure equals
// the configured measure of its item. eq decides equality of measures;
// clients with floating point measures will want to compare with a
// tolerance.
func (t *Tree[T, M]) CheckMeasures(eq func(a, b M) bool) error {
	if err := t.Check(); err != nil {
		return err
	}
	if eq == nil {
		return fmt.Errorf("%w: equality predicate is required", ErrInvalidConfig)
	}
	c := measureChecker[T, M]{o: t.ops(), measure: t.cfg.Measure, eq: eq}
	_, err := c.spine(t.root)
	if err == nil {
		tracer().Debugf("fingertree: measures verified, total = %v", t.Measure())
	}
	return err
}

type measureChecker[T, M any] struct {
	o       ops[M]
	measure func(T) M
	eq      func(a, b M) bool
}

func (c measureChecker[T, M]) spine(f fingers[M]) (M, error) {
	switch t := f.(type) {
	case nil:
		return c.o.mon.Empty(), nil
	case *single[M]:
		return c.element(t.x)
	case *deep[M]:
		pm, err := c.digit(t.prefix)
		if err != nil {
			return pm, err
		}
		mm, err := c.spine(t.middle)
		if err != nil {
			return mm, err
		}
		sm, err := c.digit(t.suffix)
		if err != nil {
			return sm, err
		}
		m := c.o.mon.Combine(c.o.mon.Combine(pm, mm), sm)
		if !c.eq(m, t.m) {
			return m, fmt.Errorf("%w: deep spine caches %v, children combine to %v", ErrInvariant, t.m, m)
		}
		return m, nil
	}
	return c.o.mon.Empty(), fmt.Errorf("%w: unknown spine type %T", ErrInvariant, f)
}

func (c measureChecker[T, M]) digit(d digit[M]) (M, error) {
	m, err := c.all(d.items)
	if err != nil {
		return m, err
	}
	if !c.eq(m, d.m) {
		return m, fmt.Errorf("%w: digit caches %v, items combine to %v", ErrInvariant, d.m, m)
	}
	return m, nil
}

func (c measureChecker[T, M]) all(items []element[M]) (M, error) {
	m := c.o.mon.Empty()
	for _, x := range items {
		xm, err := c.element(x)
		if err != nil {
			return m, err
		}
		m = c.o.mon.Combine(m, xm)
	}
	return m, nil
}

func (c measureChecker[T, M]) element(e element[M]) (M, error) {
	switch x := e.(type) {
	case leaf[T, M]:
		m := c.measure(x.value)
		if !c.eq(m, x.m) {
			return m, fmt.Errorf("%w: leaf %v caches %v, measures %v", ErrInvariant, x.value, x.m, m)
		}
		return m, nil
	case *node[M]:
		m, err := c.all(x.items)
		if err != nil {
			return m, err
		}
		if !c.eq(m, x.m) {
			return m, fmt.Errorf("%w: node caches %v, children combine to %v", ErrInvariant, x.m, m)
		}
		return m, nil
	}
	return c.o.mon.Empty(), fmt.Errorf("%w: unknown element type %T", ErrInvariant, e)
}
