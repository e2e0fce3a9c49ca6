package tree

import "cmp"

// Sort returns a new slice with the values in ascending order.
// It inserts every value in a Tree in the order in which they
// are provided and reads them back with an in order traversal.
// The tree is not balanced, so values that are already sorted
// take quadratic time
func Sort[T cmp.Ordered](values []T) []T {
	return SortFunc[T](values, OrderedLesser[T]{})
}

// SortFunc is the same operation as Sort but the values
// are ordered by lesser
func SortFunc[T any](values []T, lesser Lesser[T]) []T {
	t := NewWithLesser(lesser)

	for _, v := range values {
		t.Insert(v)
	}

	return t.ToList()
}
