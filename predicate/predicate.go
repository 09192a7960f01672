package predicate

import "reflect"

// Predicate reports whether a value of type T satisfies a condition.
//
// A Predicate is a plain function type, so any func(T) bool converts
// directly and the result of every constructor in this package can be
// passed wherever a func(T) bool is expected (for example to
// [github.com/hasbyte1/go-seq-utils/seqs.Filter]).
//
// The combinator methods build composite conditions fluently:
//
//	keep := predicate.NotEmpty().And(predicate.MaxLength(12))
//	skip := keep.Negate()
type Predicate[T any] func(T) bool

// And returns a predicate that is true when both p and q are true.
// q is not evaluated when p returns false.
func (p Predicate[T]) And(q Predicate[T]) Predicate[T] {
	return func(v T) bool { return p(v) && q(v) }
}

// Or returns a predicate that is true when p or q is true.
// q is not evaluated when p returns true.
func (p Predicate[T]) Or(q Predicate[T]) Predicate[T] {
	return func(v T) bool { return p(v) || q(v) }
}

// Negate returns the logical complement of p.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// EqualTo returns a predicate that is true for values equal to value.
func EqualTo[T comparable](value T) Predicate[T] {
	return func(v T) bool { return v == value }
}

// Nil returns a predicate that is true for nil values.
//
// Only pointer, map, slice, channel, function and interface values can be
// nil; for every other kind the predicate is always false. A typed nil
// pointer stored in an interface element counts as nil.
func Nil[T any]() Predicate[T] {
	return func(v T) bool { return isNil(v) }
}

// NotNil returns a predicate that is true for non-nil values.
// It is the complement of [Nil].
func NotNil[T any]() Predicate[T] {
	return Nil[T]().Negate()
}

// isNil reports whether v holds a nil value of a nilable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
