package predicate

import "cmp"

// Accessor builds comparison predicates for elements of type S by
// extracting a single naturally ordered value of type T from each element
// and comparing it against reference values.
//
//	adults := predicate.ByAccessor(func(u User) int { return u.Age }).
//	    GreaterThanOrEqual(18)
//
// When the extracted value may be missing, build the Accessor with
// [ByAccessorOK]: elements whose key function reports no value satisfy
// none of the comparison predicates, without being an error.
type Accessor[S any, T cmp.Ordered] struct {
	key func(S) (T, bool)
}

// ByAccessor returns an [Accessor] that extracts a comparison key from
// every element with key. The key function is total: every element is
// assumed to carry a value.
func ByAccessor[S any, T cmp.Ordered](key func(S) T) Accessor[S, T] {
	return Accessor[S, T]{key: func(s S) (T, bool) { return key(s), true }}
}

// ByAccessorOK returns an [Accessor] whose key function reports,
// comma-ok style, whether the element carries a value at all. Elements
// reported as carrying no value fail every comparison, including
// [Accessor.EqualTo].
//
//	due := predicate.ByAccessorOK(func(i Invoice) (int64, bool) {
//	    if i.DueDate == nil {
//	        return 0, false
//	    }
//	    return i.DueDate.Unix(), true
//	}).LessThan(now.Unix())
func ByAccessorOK[S any, T cmp.Ordered](key func(S) (T, bool)) Accessor[S, T] {
	return Accessor[S, T]{key: key}
}

// LessThan returns a predicate that is true when the extracted key is
// < value.
func (a Accessor[S, T]) LessThan(value T) Predicate[S] {
	return func(s S) bool {
		v, ok := a.key(s)
		return ok && v < value
	}
}

// GreaterThan returns a predicate that is true when the extracted key is
// > value.
func (a Accessor[S, T]) GreaterThan(value T) Predicate[S] {
	return func(s S) bool {
		v, ok := a.key(s)
		return ok && v > value
	}
}

// LessThanOrEqual returns a predicate that is true when the extracted key
// is <= value.
func (a Accessor[S, T]) LessThanOrEqual(value T) Predicate[S] {
	return func(s S) bool {
		v, ok := a.key(s)
		return ok && v <= value
	}
}

// GreaterThanOrEqual returns a predicate that is true when the extracted
// key is >= value.
func (a Accessor[S, T]) GreaterThanOrEqual(value T) Predicate[S] {
	return func(s S) bool {
		v, ok := a.key(s)
		return ok && v >= value
	}
}

// Between is an alias for [Accessor.InRangeOpen].
func (a Accessor[S, T]) Between(low, high T) Predicate[S] {
	return a.InRangeOpen(low, high)
}

// InRangeOpen returns a predicate that is true when the extracted key
// falls strictly inside (low, high). Panics with an error wrapping
// [ErrInvalidRange] when low > high.
func (a Accessor[S, T]) InRangeOpen(low, high T) Predicate[S] {
	checkRange(low, high)
	return func(s S) bool {
		v, ok := a.key(s)
		return ok && v > low && v < high
	}
}

// InRangeClosed returns a predicate that is true when the extracted key
// falls inside [low, high]. Panics with an error wrapping
// [ErrInvalidRange] when low > high.
func (a Accessor[S, T]) InRangeClosed(low, high T) Predicate[S] {
	checkRange(low, high)
	return func(s S) bool {
		v, ok := a.key(s)
		return ok && v >= low && v <= high
	}
}

// EqualTo returns a predicate that is true when the extracted key equals
// value. Elements carrying no value never match.
func (a Accessor[S, T]) EqualTo(value T) Predicate[S] {
	return func(s S) bool {
		v, ok := a.key(s)
		return ok && v == value
	}
}
