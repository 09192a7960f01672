package predicate

import (
	"cmp"
	"fmt"
)

// Comparison predicates for types ordered by the < operator.
//
// For element types carrying their own ordering function use [ByOrdering];
// to compare a single field of a struct element use [ByAccessor].

// LessThan returns a predicate that is true when a value is < bound.
func LessThan[T cmp.Ordered](bound T) Predicate[T] {
	return func(v T) bool { return v < bound }
}

// GreaterThan returns a predicate that is true when a value is > bound.
func GreaterThan[T cmp.Ordered](bound T) Predicate[T] {
	return func(v T) bool { return v > bound }
}

// LessThanOrEqual returns a predicate that is true when a value is <= bound.
func LessThanOrEqual[T cmp.Ordered](bound T) Predicate[T] {
	return func(v T) bool { return v <= bound }
}

// GreaterThanOrEqual returns a predicate that is true when a value is >= bound.
func GreaterThanOrEqual[T cmp.Ordered](bound T) Predicate[T] {
	return func(v T) bool { return v >= bound }
}

// Between is an alias for [InRangeOpen]: both bounds are exclusive.
func Between[T cmp.Ordered](low, high T) Predicate[T] {
	return InRangeOpen(low, high)
}

// InRangeOpen returns a predicate that is true when low < value < high.
// Panics with an error wrapping [ErrInvalidRange] when low > high.
func InRangeOpen[T cmp.Ordered](low, high T) Predicate[T] {
	checkRange(low, high)
	return func(v T) bool { return v > low && v < high }
}

// InRangeClosed returns a predicate that is true when low <= value <= high.
// Panics with an error wrapping [ErrInvalidRange] when low > high.
func InRangeClosed[T cmp.Ordered](low, high T) Predicate[T] {
	checkRange(low, high)
	return func(v T) bool { return v >= low && v <= high }
}

// checkRange panics when (low, high) is not a valid range under <.
func checkRange[T cmp.Ordered](low, high T) {
	if low > high {
		panic(fmt.Errorf("%w: (%v, %v)", ErrInvalidRange, low, high))
	}
}
