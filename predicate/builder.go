package predicate

// Builder constructs comparison predicates for elements of type S, measured
// against reference values of type T.
//
// Two implementations ship with this package:
//
//   - [Ordering] compares whole elements through an explicit three-way
//     ordering function (S and T are the same type).
//   - [Accessor] extracts a single naturally ordered field from each
//     element and compares it against values of the field's type.
//
// For element types that are themselves ordered by <, the package-level
// functions ([LessThan], [InRangeClosed], …) cover the same operations
// without a builder value.
type Builder[S, T any] interface {
	// LessThan returns a predicate that is true when an element orders
	// strictly before value.
	LessThan(value T) Predicate[S]

	// GreaterThan returns a predicate that is true when an element orders
	// strictly after value.
	GreaterThan(value T) Predicate[S]

	// LessThanOrEqual returns a predicate that is true when an element
	// orders before, or the same as, value.
	LessThanOrEqual(value T) Predicate[S]

	// GreaterThanOrEqual returns a predicate that is true when an element
	// orders after, or the same as, value.
	GreaterThanOrEqual(value T) Predicate[S]

	// Between is an alias for InRangeOpen.
	Between(low, high T) Predicate[S]

	// InRangeOpen returns a predicate that is true when
	// low < element < high. Panics with an error wrapping
	// [ErrInvalidRange] when low orders after high.
	InRangeOpen(low, high T) Predicate[S]

	// InRangeClosed returns a predicate that is true when
	// low <= element <= high. Panics with an error wrapping
	// [ErrInvalidRange] when low orders after high.
	InRangeClosed(low, high T) Predicate[S]
}
