package fingertree

// Go generics do not allow a type to be instantiated with a nesting of
// itself (a tree of T holding a tree of nodes of T), so the spine is
// type-erased: every level holds elements which only promise a cached
// measure. Level 0 holds leaves wrapping client items, level k+1 holds nodes
// grouping 2 or 3 elements of level k.

// element is anything stored in a digit or node.
type element[M any] interface {
	measure() M
}

// leaf wraps a client item together with its measure, computed once when
// the item enters the tree.
type leaf[T, M any] struct {
	value T
	m     M
}

func (l leaf[T, M]) measure() M { return l.m }

// node groups 2 or 3 elements of the level below. Its arity is fixed at
// construction; nodes are never resized.
type node[M any] struct {
	m     M
	items []element[M]
}

func (n *node[M]) measure() M { return n.m }

// digit buffers 1 to 4 elements at either end of a deep spine.
type digit[M any] struct {
	m     M
	items []element[M]
}

// fingers is the spine of a finger tree. A nil value denotes the empty tree,
// *single[M] holds exactly one element and *deep[M] everything else.
type fingers[M any] interface {
	measure() M
	isSpine()
}

type single[M any] struct {
	x element[M]
}

func (s *single[M]) measure() M { return s.x.measure() }
func (s *single[M]) isSpine()   {}

// deep is a spine with two digits and a nested spine of nodes.
type deep[M any] struct {
	m      M
	prefix digit[M]
	middle fingers[M]
	suffix digit[M]
}

func (d *deep[M]) measure() M { return d.m }
func (d *deep[M]) isSpine()   {}

// ops bundles the monoid with the structural helpers. All helpers build
// fresh digits, nodes and spines; slices held by existing values are never
// appended to or written.
type ops[M any] struct {
	mon Monoid[M]
}

func (o ops[M]) measureOf(f fingers[M]) M {
	if f == nil {
		return o.mon.Empty()
	}
	return f.measure()
}

func (o ops[M]) sum(items []element[M]) M {
	m := o.mon.Empty()
	for _, x := range items {
		m = o.mon.Combine(m, x.measure())
	}
	return m
}

// digitOf materializes a digit and computes its measure.
func (o ops[M]) digitOf(items ...element[M]) digit[M] {
	assert(len(items) >= 1 && len(items) <= 4, "digitOf requires 1 to 4 items")
	return digit[M]{m: o.sum(items), items: items}
}

func (o ops[M]) node2(a, b element[M]) *node[M] {
	return &node[M]{
		m:     o.mon.Combine(a.measure(), b.measure()),
		items: []element[M]{a, b},
	}
}

func (o ops[M]) node3(a, b, c element[M]) *node[M] {
	return &node[M]{
		m:     o.mon.Combine(o.mon.Combine(a.measure(), b.measure()), c.measure()),
		items: []element[M]{a, b, c},
	}
}

// mkDeep materializes a deep spine with a freshly combined measure.
func (o ops[M]) mkDeep(prefix digit[M], middle fingers[M], suffix digit[M]) fingers[M] {
	m := o.mon.Combine(o.mon.Combine(prefix.m, o.measureOf(middle)), suffix.m)
	return &deep[M]{m: m, prefix: prefix, middle: middle, suffix: suffix}
}

// fromElements builds a spine from at most 4 elements without touching a
// deeper level.
func (o ops[M]) fromElements(items []element[M]) fingers[M] {
	switch len(items) {
	case 0:
		return nil
	case 1:
		return &single[M]{x: items[0]}
	}
	assert(len(items) <= 8, "fromElements called with too many items")
	k := len(items) / 2
	return o.mkDeep(o.digitOf(items[:k]...), nil, o.digitOf(items[k:]...))
}

// nodes regroups a list of at least 2 elements into nodes of 2 or 3.
//
// Lists of length 4 become two 2-nodes, longer lists peel off 3-nodes. No
// remainder of a single element can occur this way, so no element is ever
// duplicated or dropped. Greedy grouping into 3-nodes with a padded final
// pair, which would repeat the last element, is not used.
func (o ops[M]) nodes(items []element[M]) []element[M] {
	assert(len(items) >= 2, "nodes requires at least 2 items")
	out := make([]element[M], 0, (len(items)+2)/3+1)
	for len(items) > 0 {
		switch len(items) {
		case 2:
			out = append(out, o.node2(items[0], items[1]))
			items = nil
		case 3:
			out = append(out, o.node3(items[0], items[1], items[2]))
			items = nil
		case 4:
			out = append(out, o.node2(items[0], items[1]), o.node2(items[2], items[3]))
			items = nil
		default:
			out = append(out, o.node3(items[0], items[1], items[2]))
			items = items[3:]
		}
	}
	return out
}

// deepL builds a spine from a prefix which may have run empty.
func (o ops[M]) deepL(prefix []element[M], middle fingers[M], suffix digit[M]) fingers[M] {
	if len(prefix) > 0 {
		return o.mkDeep(o.digitOf(prefix...), middle, suffix)
	}
	if middle == nil {
		return o.fromElements(suffix.items)
	}
	head, rest, _ := o.popL(middle)
	n := head.(*node[M])
	return o.mkDeep(o.digitOf(n.items...), rest, suffix)
}

// deepR builds a spine from a suffix which may have run empty.
func (o ops[M]) deepR(prefix digit[M], middle fingers[M], suffix []element[M]) fingers[M] {
	if len(suffix) > 0 {
		return o.mkDeep(prefix, middle, o.digitOf(suffix...))
	}
	if middle == nil {
		return o.fromElements(prefix.items)
	}
	rest, last, _ := o.popR(middle)
	n := last.(*node[M])
	return o.mkDeep(prefix, rest, o.digitOf(n.items...))
}
