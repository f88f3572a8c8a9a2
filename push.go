package fingertree

// pushL prepends x to spine f.
//
// A full prefix [a b c d] keeps [x a b] and hands a 2-node (c d) down to the
// next level. Every overflow causes at most one push one level deeper.
func (o ops[M]) pushL(x element[M], f fingers[M]) fingers[M] {
	switch t := f.(type) {
	case nil:
		return &single[M]{x: x}
	case *single[M]:
		return o.mkDeep(o.digitOf(x), nil, o.digitOf(t.x))
	case *deep[M]:
		pr := t.prefix.items
		if len(pr) < 4 {
			items := make([]element[M], 0, len(pr)+1)
			items = append(items, x)
			items = append(items, pr...)
			return o.mkDeep(o.digitOf(items...), t.middle, t.suffix)
		}
		middle := o.pushL(o.node2(pr[2], pr[3]), t.middle)
		return o.mkDeep(o.digitOf(x, pr[0], pr[1]), middle, t.suffix)
	}
	panic("pushL: unknown spine type")
}

// pushR appends x to spine f. It mirrors pushL.
func (o ops[M]) pushR(f fingers[M], x element[M]) fingers[M] {
	switch t := f.(type) {
	case nil:
		return &single[M]{x: x}
	case *single[M]:
		return o.mkDeep(o.digitOf(t.x), nil, o.digitOf(x))
	case *deep[M]:
		sf := t.suffix.items
		if len(sf) < 4 {
			items := make([]element[M], 0, len(sf)+1)
			items = append(items, sf...)
			items = append(items, x)
			return o.mkDeep(t.prefix, t.middle, o.digitOf(items...))
		}
		middle := o.pushR(t.middle, o.node2(sf[0], sf[1]))
		return o.mkDeep(t.prefix, middle, o.digitOf(sf[2], sf[3], x))
	}
	panic("pushR: unknown spine type")
}

// pushAllL prepends items to f, keeping their order.
func (o ops[M]) pushAllL(items []element[M], f fingers[M]) fingers[M] {
	for i := len(items) - 1; i >= 0; i-- {
		f = o.pushL(items[i], f)
	}
	return f
}

// pushAllR appends items to f, keeping their order.
func (o ops[M]) pushAllR(f fingers[M], items []element[M]) fingers[M] {
	for _, x := range items {
		f = o.pushR(f, x)
	}
	return f
}
