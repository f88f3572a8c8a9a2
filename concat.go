package fingertree

// app3 concatenates spine l, the elements ts and spine r.
//
// ts carries the nodes left over from the level above; it is empty for the
// outermost call. Each recursive call descends one level, so the cost is
// bounded by the depth of the shallower spine.
func (o ops[M]) app3(l fingers[M], ts []element[M], r fingers[M]) fingers[M] {
	switch lt := l.(type) {
	case nil:
		return o.pushAllL(ts, r)
	case *single[M]:
		return o.pushL(lt.x, o.pushAllL(ts, r))
	}
	switch rt := r.(type) {
	case nil:
		return o.pushAllR(l, ts)
	case *single[M]:
		return o.pushR(o.pushAllR(l, ts), rt.x)
	}
	ld, rd := l.(*deep[M]), r.(*deep[M])
	inner := make([]element[M], 0, len(ld.suffix.items)+len(ts)+len(rd.prefix.items))
	inner = append(inner, ld.suffix.items...)
	inner = append(inner, ts...)
	inner = append(inner, rd.prefix.items...)
	middle := o.app3(ld.middle, o.nodes(inner), rd.middle)
	return o.mkDeep(ld.prefix, middle, rd.suffix)
}
