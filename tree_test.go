package fingertree

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func intTree(t *testing.T, xs []int) *Tree[int, int] {
	t.Helper()
	tree, err := FromSlice(BySize[int](), xs)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	return tree
}

func intRange(from, to int) []int {
	xs := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		xs = append(xs, i)
	}
	return xs
}

func eqInt(a, b int) bool { return a == b }

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Measured[string, int]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	_, err = New(Measured[string, int]{Monoid: Sum[int]{}})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing measure, got %v", err)
	}
	_, err = FromSlice(Measured[string, int]{Measure: StringLength}, []string{"a"})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing monoid, got %v", err)
	}
}

func TestEmptyTree(t *testing.T) {
	tree, err := New(ByLength())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tree.IsEmpty() {
		t.Fatalf("expected new tree to be empty")
	}
	if tree.Measure() != 0 {
		t.Fatalf("expected empty measure 0, got %d", tree.Measure())
	}
	if _, _, ok := tree.PopL(); ok {
		t.Fatalf("PopL on empty tree reported an element")
	}
	if _, _, ok := tree.PopR(); ok {
		t.Fatalf("PopR on empty tree reported an element")
	}
	if _, ok := tree.First(); ok {
		t.Fatalf("First on empty tree reported an element")
	}
	if got := tree.ToSlice(); len(got) != 0 {
		t.Fatalf("expected no elements, got %v", got)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("expected empty tree to be valid, got %v", err)
	}
}

func TestSingle(t *testing.T) {
	tree, err := Single(ByLength(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Measure() != 5 {
		t.Fatalf("expected measure 5, got %d", tree.Measure())
	}
	head, rest, ok := tree.PopL()
	if !ok || head != "hello" || !rest.IsEmpty() {
		t.Fatalf("unexpected PopL result: %q, %v, %v", head, rest.ToSlice(), ok)
	}
}

func TestStringLengthScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	tree, err := FromSlice(ByLength(), []string{"a", "bb", "ccc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Measure() != 6 {
		t.Fatalf("expected measure 1+2+3 = 6, got %d", tree.Measure())
	}
	s := tree.SplitWith(func(m int) bool { return m > 3 })
	if !s.HasPivot || s.Pivot != "ccc" {
		t.Fatalf("expected pivot 'ccc', got %q (found=%v)", s.Pivot, s.HasPivot)
	}
	if diff := cmp.Diff([]string{"a", "bb"}, s.Left.ToSlice()); diff != "" {
		t.Errorf("left mismatch (-want +got):\n%s", diff)
	}
	if !s.Right.IsEmpty() {
		t.Errorf("expected empty right, got %v", s.Right.ToSlice())
	}
	if err := s.Left.CheckMeasures(eqInt); err != nil {
		t.Errorf("left measures broken: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 8, 9, 17, 100, 1000} {
		xs := intRange(0, n)
		tree := intTree(t, xs)
		if diff := cmp.Diff(xs, tree.ToSlice(), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("round trip of %d items failed (-want +got):\n%s", n, diff)
		}
		if tree.Measure() != n {
			t.Fatalf("expected size %d, got %d", n, tree.Measure())
		}
		if err := tree.CheckMeasures(eqInt); err != nil {
			t.Fatalf("measure check failed for %d items: %v", n, err)
		}
	}
}

func TestPushPopDuality(t *testing.T) {
	for _, n := range []int{0, 1, 4, 5, 13, 64} {
		tree := intTree(t, intRange(0, n))
		head, rest, ok := tree.PushL(-1).PopL()
		if !ok || head != -1 {
			t.Fatalf("PopL(PushL) returned %d, %v", head, ok)
		}
		if !cmp.Equal(rest.ToSlice(), tree.ToSlice()) {
			t.Fatalf("PopL(PushL) rest mismatch for n=%d", n)
		}
		rest, last, ok := tree.PushR(-2).PopR()
		if !ok || last != -2 {
			t.Fatalf("PopR(PushR) returned %d, %v", last, ok)
		}
		if !cmp.Equal(rest.ToSlice(), tree.ToSlice()) {
			t.Fatalf("PopR(PushR) rest mismatch for n=%d", n)
		}
	}
}

func TestDrainFromBothEnds(t *testing.T) {
	const n = 300
	tree := intTree(t, intRange(0, n))
	for i := 0; i < n; i++ {
		var x int
		var ok bool
		x, tree, ok = tree.PopL()
		if !ok || x != i {
			t.Fatalf("PopL #%d returned %d, %v", i, x, ok)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("check after PopL #%d failed: %v", i, err)
		}
		if tree.Measure() != n-i-1 {
			t.Fatalf("measure after PopL #%d is %d", i, tree.Measure())
		}
	}
	tree = intTree(t, intRange(0, n))
	for i := n - 1; i >= 0; i-- {
		var x int
		var ok bool
		tree, x, ok = tree.PopR()
		if !ok || x != i {
			t.Fatalf("PopR returned %d, %v, expected %d", x, ok, i)
		}
		if err := tree.CheckMeasures(eqInt); err != nil {
			t.Fatalf("check after PopR failed: %v", err)
		}
	}
	if !tree.IsEmpty() {
		t.Fatalf("expected tree to be drained")
	}
}

func TestPushLBuildsDeepTree(t *testing.T) {
	tree, _ := New(BySize[int]())
	for i := 99; i >= 0; i-- {
		tree = tree.PushL(i)
	}
	if err := tree.CheckMeasures(eqInt); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if !cmp.Equal(intRange(0, 100), tree.ToSlice()) {
		t.Fatalf("unexpected order: %v", tree.ToSlice())
	}
	if _, ok := tree.root.(*deep[int]).middle.(*deep[int]); !ok {
		t.Fatalf("expected 100 pushes to create at least two spine levels")
	}
}

func TestPersistence(t *testing.T) {
	base := intTree(t, intRange(0, 50))
	snapshot := base.ToSlice()
	_ = base.PushL(-1)
	_ = base.PushR(100)
	_, _, _ = base.PopL()
	_, _, _ = base.PopR()
	_ = base.Concat(base)
	_ = base.SplitWith(func(m int) bool { return m > 20 })
	_ = base.Reverse()
	if !cmp.Equal(snapshot, base.ToSlice()) {
		t.Fatalf("base tree changed by derived operations")
	}
	if base.Measure() != 50 {
		t.Fatalf("base measure changed: %d", base.Measure())
	}
}

func TestFirstLast(t *testing.T) {
	tree := intTree(t, intRange(3, 40))
	if x, ok := tree.First(); !ok || x != 3 {
		t.Fatalf("First returned %d, %v", x, ok)
	}
	if x, ok := tree.Last(); !ok || x != 39 {
		t.Fatalf("Last returned %d, %v", x, ok)
	}
}

func TestForEachStopsEarly(t *testing.T) {
	tree := intTree(t, intRange(0, 30))
	var seen []int
	tree.ForEach(func(x int) bool {
		seen = append(seen, x)
		return x < 4
	})
	if !cmp.Equal([]int{0, 1, 2, 3, 4}, seen) {
		t.Fatalf("unexpected items visited: %v", seen)
	}
	sum := 0
	for x := range tree.Range() {
		sum += x
	}
	if sum != 29*30/2 {
		t.Fatalf("Range visited wrong items, sum = %d", sum)
	}
}

// concatMonoid is a non-commutative monoid: string concatenation.
type concatMonoid struct{}

func (concatMonoid) Empty() string                     { return "" }
func (concatMonoid) Combine(left, right string) string { return left + right }

func TestReverse(t *testing.T) {
	cfg := Measured[string, string]{
		Monoid:  concatMonoid{},
		Measure: func(s string) string { return s },
	}
	letters := strings.Split("abcdefghijklmnopqrstuvwxyz", "")
	tree, err := FromSlice(cfg, letters)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rev := tree.Reverse()
	if rev.Measure() != "zyxwvutsrqponmlkjihgfedcba" {
		t.Fatalf("unexpected reversed measure %q", rev.Measure())
	}
	if err := rev.CheckMeasures(func(a, b string) bool { return a == b }); err != nil {
		t.Fatalf("reversed tree is inconsistent: %v", err)
	}
	if tree.Measure() != strings.Join(letters, "") {
		t.Fatalf("original tree changed to %q", tree.Measure())
	}
}

func TestPairMonoid(t *testing.T) {
	cfg := Measured[float64, Pair[int, float64]]{
		Monoid: PairMonoid[int, float64]{First: Sum[int]{}, Second: Min{}},
		Measure: func(x float64) Pair[int, float64] {
			return Pair[int, float64]{First: 1, Second: x}
		},
	}
	tree, err := FromSlice(cfg, []float64{4, 2.5, 7, -1, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := tree.Measure()
	if m.First != 5 || m.Second != -1 {
		t.Fatalf("unexpected pair measure %+v", m)
	}
}

func TestArithmeticMonoids(t *testing.T) {
	prod, _ := FromSlice(Measured[int, int]{Monoid: Product[int]{}, Measure: func(x int) int { return x }},
		[]int{1, 2, 3, 4, 5})
	if prod.Measure() != 120 {
		t.Errorf("expected product 120, got %d", prod.Measure())
	}
	empty, _ := New(Measured[int, int]{Monoid: Product[int]{}, Measure: func(x int) int { return x }})
	if empty.Measure() != 1 {
		t.Errorf("expected empty product 1, got %d", empty.Measure())
	}
	id := func(x float64) float64 { return x }
	hi, _ := FromSlice(Measured[float64, float64]{Monoid: Max{}, Measure: id}, []float64{3, 9, -2})
	if hi.Measure() != 9 {
		t.Errorf("expected max 9, got %v", hi.Measure())
	}
	lo, _ := FromSlice(Measured[float64, float64]{Monoid: Min{}, Measure: id}, []float64{3, 9, -2})
	if lo.Measure() != -2 {
		t.Errorf("expected min -2, got %v", lo.Measure())
	}
}

func TestMaxMinSkipNaN(t *testing.T) {
	id := func(x float64) float64 { return x }
	nan := math.NaN()
	for _, xs := range [][]float64{{nan, 1, 2}, {1, nan, 2}, {1, 2, nan}, {nan, nan, 2, 1, nan}} {
		hi, _ := FromSlice(Measured[float64, float64]{Monoid: Max{}, Measure: id}, xs)
		if hi.Measure() != 2 {
			t.Errorf("max of %v: expected 2, got %v", xs, hi.Measure())
		}
		lo, _ := FromSlice(Measured[float64, float64]{Monoid: Min{}, Measure: id}, xs)
		if lo.Measure() != 1 {
			t.Errorf("min of %v: expected 1, got %v", xs, lo.Measure())
		}
	}
}

type task struct {
	name string
	cost float64
}

func (t task) Cost() float64 { return t.cost }

func TestByMaxCost(t *testing.T) {
	tree, err := FromSlice(ByMaxCost[task](), []task{{"a", 1}, {"b", 5}, {"c", 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Measure() != 5 {
		t.Fatalf("expected max cost 5, got %v", tree.Measure())
	}
	x, _, ok := tree.Find(func(m float64) bool { return m >= 5 })
	if !ok || x.name != "b" {
		t.Fatalf("expected to find task b, got %v", x)
	}
}

func TestToDotAndDump(t *testing.T) {
	tree := intTree(t, intRange(0, 40))
	var dot bytes.Buffer
	if err := ToDot(tree, &dot); err != nil {
		t.Fatalf("ToDot failed: %v", err)
	}
	if !strings.HasPrefix(dot.String(), "strict digraph {") {
		t.Fatalf("unexpected DOT output:\n%s", dot.String())
	}
	if strings.Count(dot.String(), "shape=box") != 40 {
		t.Errorf("expected 40 leaf boxes in DOT output")
	}
	var dump bytes.Buffer
	if err := Dump(tree, &dump); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}
	out := dump.String()
	if !strings.HasPrefix(out, "deep ‹40›") {
		t.Fatalf("unexpected dump header:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no color codes when not writing to a terminal")
	}
	t.Logf("\n%s", out)
}
