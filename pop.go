package fingertree

// popL removes the leftmost element of spine f. It returns ok == false for
// the empty spine.
func (o ops[M]) popL(f fingers[M]) (head element[M], rest fingers[M], ok bool) {
	switch t := f.(type) {
	case nil:
		return nil, nil, false
	case *single[M]:
		return t.x, nil, true
	case *deep[M]:
		pr := t.prefix.items
		return pr[0], o.deepL(pr[1:], t.middle, t.suffix), true
	}
	panic("popL: unknown spine type")
}

// popR removes the rightmost element of spine f. It returns ok == false for
// the empty spine.
func (o ops[M]) popR(f fingers[M]) (rest fingers[M], last element[M], ok bool) {
	switch t := f.(type) {
	case nil:
		return nil, nil, false
	case *single[M]:
		return nil, t.x, true
	case *deep[M]:
		sf := t.suffix.items
		n := len(sf)
		return o.deepR(t.prefix, t.middle, sf[:n-1]), sf[n-1], true
	}
	panic("popR: unknown spine type")
}

// peekL returns the leftmost element of a non-empty spine in O(1).
func peekL[M any](f fingers[M]) (element[M], bool) {
	switch t := f.(type) {
	case *single[M]:
		return t.x, true
	case *deep[M]:
		return t.prefix.items[0], true
	}
	return nil, false
}

// peekR returns the rightmost element of a non-empty spine in O(1).
func peekR[M any](f fingers[M]) (element[M], bool) {
	switch t := f.(type) {
	case *single[M]:
		return t.x, true
	case *deep[M]:
		return t.suffix.items[len(t.suffix.items)-1], true
	}
	return nil, false
}
