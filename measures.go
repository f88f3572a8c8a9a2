package fingertree

// StringLength measures a string by its length in bytes.
func StringLength(s string) int {
	return len(s)
}

// Size measures every element as 1. Summed up, it yields element counts.
func Size[T any](T) int {
	return 1
}

// Coster is implemented by elements which carry a cost or priority.
type Coster interface {
	Cost() float64
}

// CostOf projects an element to its cost.
func CostOf[T Coster](x T) float64 {
	return x.Cost()
}

// ByLength configures a tree of strings measured by their summed length.
func ByLength() Measured[string, int] {
	return Measured[string, int]{
		Monoid:  Sum[int]{},
		Measure: StringLength,
	}
}

// BySize configures a tree measured by its number of elements.
func BySize[T any]() Measured[T, int] {
	return Measured[T, int]{
		Monoid:  Sum[int]{},
		Measure: Size[T],
	}
}

// ByMaxCost configures a tree measured by the maximum cost of its elements.
func ByMaxCost[T Coster]() Measured[T, float64] {
	return Measured[T, float64]{
		Monoid:  Max{},
		Measure: CostOf[T],
	}
}
