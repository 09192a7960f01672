package predicate

import (
	"cmp"
	"fmt"
)

// Ordering builds comparison predicates for element types that carry no
// natural order, using an explicit three-way ordering function.
//
// Method expressions of standard-library Compare methods slot in directly:
//
//	byTime := predicate.ByOrdering(time.Time.Compare)
//	recent := byTime.GreaterThan(cutoff)
//
// Range predicates are composed from the single-bound predicates, so the
// ordering function runs once per bound:
//
//	thisQuarter := byTime.InRangeClosed(start, end)
//
// An Ordering performs no nil handling of its own: the ordering function
// receives elements exactly as they appear. Filter out nil elements first
// (for example with [NotNil] or seqs.NonNull) when the ordering function
// cannot tolerate them.
type Ordering[T any] struct {
	compare func(a, b T) int
}

// ByOrdering returns an [Ordering] built from compare, which must return a
// negative number when a orders before b, zero when the two are
// equivalent, and a positive number when a orders after b.
func ByOrdering[T any](compare func(a, b T) int) Ordering[T] {
	return Ordering[T]{compare: compare}
}

// Comparing returns an [Ordering] that orders elements by the naturally
// ordered key extracted by key.
//
//	bySurname := predicate.Comparing(func(u User) string { return u.Surname })
func Comparing[S any, T cmp.Ordered](key func(S) T) Ordering[S] {
	return Ordering[S]{compare: func(a, b S) int { return cmp.Compare(key(a), key(b)) }}
}

// Natural returns an [Ordering] over T's own < order. It is the builder
// counterpart of the package-level comparison functions, useful when an
// [Ordering] value is required.
func Natural[T cmp.Ordered]() Ordering[T] {
	return Ordering[T]{compare: cmp.Compare[T]}
}

// LessThan returns a predicate that is true when an element orders
// strictly before value.
func (o Ordering[T]) LessThan(value T) Predicate[T] {
	return func(v T) bool { return o.compare(v, value) < 0 }
}

// GreaterThan returns a predicate that is true when an element orders
// strictly after value.
func (o Ordering[T]) GreaterThan(value T) Predicate[T] {
	return func(v T) bool { return o.compare(v, value) > 0 }
}

// LessThanOrEqual returns a predicate that is true when an element orders
// before, or the same as, value.
func (o Ordering[T]) LessThanOrEqual(value T) Predicate[T] {
	return func(v T) bool { return o.compare(v, value) <= 0 }
}

// GreaterThanOrEqual returns a predicate that is true when an element
// orders after, or the same as, value.
func (o Ordering[T]) GreaterThanOrEqual(value T) Predicate[T] {
	return func(v T) bool { return o.compare(v, value) >= 0 }
}

// Between is an alias for [Ordering.InRangeOpen].
func (o Ordering[T]) Between(low, high T) Predicate[T] {
	return o.InRangeOpen(low, high)
}

// InRangeOpen returns a predicate that is true when low < element < high
// under the ordering. Panics with an error wrapping [ErrInvalidRange] when
// low orders after high.
func (o Ordering[T]) InRangeOpen(low, high T) Predicate[T] {
	o.checkRange(low, high)
	return o.GreaterThan(low).And(o.LessThan(high))
}

// InRangeClosed returns a predicate that is true when
// low <= element <= high under the ordering. Panics with an error wrapping
// [ErrInvalidRange] when low orders after high.
func (o Ordering[T]) InRangeClosed(low, high T) Predicate[T] {
	o.checkRange(low, high)
	return o.GreaterThanOrEqual(low).And(o.LessThanOrEqual(high))
}

// checkRange panics when (low, high) is not a valid range under the ordering.
func (o Ordering[T]) checkRange(low, high T) {
	if o.compare(low, high) > 0 {
		panic(fmt.Errorf("%w: (%v, %v)", ErrInvalidRange, low, high))
	}
}
