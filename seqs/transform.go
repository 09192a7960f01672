package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Lazy element-wise stages. Like the set-algebra combinators, nothing runs
// until the returned sequence is consumed.

// Filter returns the elements of s for which keep returns true.
func Filter[T any](s iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if !keep(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Reject returns the elements of s for which drop returns false.
// It is the complement of [Filter].
func Reject[T any](s iter.Seq[T], drop func(T) bool) iter.Seq[T] {
	return Filter(s, func(v T) bool { return !drop(v) })
}

// WithoutNull returns s with nil elements dropped. The slice-sourced
// counterpart is [NonNull].
func WithoutNull[T any](s iter.Seq[T]) iter.Seq[T] {
	return Filter(s, func(v T) bool { return !isNil(v) })
}

// Map returns s transformed element-wise by fn.
func Map[T, U any](s iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// OfType returns the elements of s that are of concrete type U, as U
// values. Elements of any other type are dropped.
//
//	msgs := seqs.Of[Message](rcs, sms, mms)
//	rcsOnly := seqs.OfType[RcsMessage](msgs)
func OfType[U, T any](s iter.Seq[T]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			u, ok := any(v).(U)
			if !ok {
				continue
			}
			if !yield(u) {
				return
			}
		}
	}
}

// Range returns the integers from start up to, but not including, stop.
// An empty sequence is returned when stop <= start.
func Range[T constraints.Integer](start, stop T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := start; v < stop; v++ {
			if !yield(v) {
				return
			}
		}
	}
}
