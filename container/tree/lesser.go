package tree

import "cmp"

// Lesser compares two values
type Lesser[T any] interface {
	// Less returns
	//  -1 if a < b
	//   0 if a == b
	//   1 if a > b
	Less(a, b T) int
}

// OrderedLesser implementation of the Lesser interface for
// any type that supports the < operator. Floating point NaN
// values are ordered before any other value
type OrderedLesser[T cmp.Ordered] struct{}

// Less returns
//  -1 if a < b
//   0 if a == b
//   1 if a > b
func (OrderedLesser[T]) Less(a, b T) int {
	return cmp.Compare(a, b)
}

// IntLesser implementation of the Lesser interface for
// integers
type IntLesser = OrderedLesser[int]

// LesserFunc allows a three-way comparison function to act
// as a Lesser
type LesserFunc[T any] func(a, b T) int

// Less implementation of Lesser for LesserFunc
func (f LesserFunc[T]) Less(a, b T) int {
	return f(a, b)
}
