package fingertree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestConcatEmpty(t *testing.T) {
	empty := intTree(t, nil)
	full := intTree(t, intRange(0, 10))
	if got := empty.Concat(full); !cmp.Equal(intRange(0, 10), got.ToSlice()) {
		t.Errorf("empty ++ full = %v", got.ToSlice())
	}
	if got := full.Concat(empty); got != full {
		t.Errorf("full ++ empty should return the receiver")
	}
	if got := full.Concat(nil); got != full {
		t.Errorf("full ++ nil should return the receiver")
	}
}

func TestConcatSizes(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 12, 20, 33, 100}
	for _, a := range sizes {
		for _, b := range sizes {
			left := intTree(t, intRange(0, a))
			right := intTree(t, intRange(a, a+b))
			joined := left.Concat(right)
			if err := joined.CheckMeasures(eqInt); err != nil {
				t.Fatalf("%d ++ %d is invalid: %v", a, b, err)
			}
			if diff := cmp.Diff(intRange(0, a+b), joined.ToSlice(), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("%d ++ %d mismatch (-want +got):\n%s", a, b, diff)
			}
		}
	}
}

// Concatenating two deep trees whose inner digits hold 4 elements in total
// must regroup them as two 2-nodes; no element may be duplicated.
func TestConcatRegroupsWithoutDuplicates(t *testing.T) {
	left := intTree(t, intRange(0, 4))
	right := intTree(t, intRange(4, 6))
	o := left.ops()
	ld, rd := left.root.(*deep[int]), right.root.(*deep[int])
	inner := len(ld.suffix.items) + len(rd.prefix.items)
	for _, n := range []int{2, 3, 4, 5, 7, 10} {
		items := make([]element[int], n)
		for i := range items {
			items[i] = leaf[int, int]{value: i, m: 1}
		}
		grouped := o.nodes(items)
		total := 0
		for _, g := range grouped {
			arity := len(g.(*node[int]).items)
			if arity != 2 && arity != 3 {
				t.Fatalf("nodes(%d) produced a node of arity %d", n, arity)
			}
			total += g.measure()
		}
		if total != n {
			t.Fatalf("nodes(%d) regrouped into %d elements", n, total)
		}
	}
	joined := left.Concat(right)
	if joined.Measure() != 6 {
		t.Fatalf("expected 6 elements after concat (inner digits held %d), got %d", inner, joined.Measure())
	}
	if !cmp.Equal(intRange(0, 6), joined.ToSlice()) {
		t.Fatalf("unexpected concat result %v", joined.ToSlice())
	}
}

func TestConcatAssociativity(t *testing.T) {
	a := intTree(t, intRange(0, 17))
	b := intTree(t, intRange(17, 20))
	c := intTree(t, intRange(20, 93))
	leftFirst := a.Concat(b).Concat(c)
	rightFirst := a.Concat(b.Concat(c))
	if !cmp.Equal(leftFirst.ToSlice(), rightFirst.ToSlice()) {
		t.Fatalf("concat is not associative")
	}
	if err := leftFirst.Check(); err != nil {
		t.Fatalf("(a++b)++c invalid: %v", err)
	}
	if err := rightFirst.Check(); err != nil {
		t.Fatalf("a++(b++c) invalid: %v", err)
	}
}

func TestConcatSelfRepeatedly(t *testing.T) {
	tree := intTree(t, intRange(0, 3))
	for i := 0; i < 10; i++ {
		tree = tree.Concat(tree)
	}
	if tree.Measure() != 3*1024 {
		t.Fatalf("expected %d elements, got %d", 3*1024, tree.Measure())
	}
	if err := tree.CheckMeasures(eqInt); err != nil {
		t.Fatalf("invalid tree after repeated self-concat: %v", err)
	}
	i := 0
	tree.ForEach(func(x int) bool {
		if x != i%3 {
			t.Fatalf("element %d is %d", i, x)
		}
		i++
		return true
	})
}
