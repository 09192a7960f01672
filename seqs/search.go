package seqs

import "iter"

// Searching terminals. First, FirstOrFail, Contains and ContainsValue stop
// pulling from the sequence as soon as the answer is known; the Last
// variants drain it.

// First returns the first element of s, or the first element matching
// match[0] when a condition is given. It returns the zero value and false
// when no element qualifies.
func First[T any](s iter.Seq[T], match ...func(T) bool) (T, bool) {
	for v := range s {
		if len(match) > 0 && !match[0](v) {
			continue
		}
		return v, true
	}
	var zero T
	return zero, false
}

// FirstOrFail is [First] returning [ErrNoMatchingElement] in place of false.
func FirstOrFail[T any](s iter.Seq[T], match ...func(T) bool) (T, error) {
	v, ok := First(s, match...)
	if !ok {
		return v, ErrNoMatchingElement
	}
	return v, nil
}

// Last returns the last element of s, or the last element matching
// match[0] when a condition is given. It returns the zero value and false
// when no element qualifies.
func Last[T any](s iter.Seq[T], match ...func(T) bool) (T, bool) {
	var last T
	found := false
	for v := range s {
		if len(match) > 0 && !match[0](v) {
			continue
		}
		last, found = v, true
	}
	return last, found
}

// LastOrFail is [Last] returning [ErrNoMatchingElement] in place of false.
func LastOrFail[T any](s iter.Seq[T], match ...func(T) bool) (T, error) {
	v, ok := Last(s, match...)
	if !ok {
		return v, ErrNoMatchingElement
	}
	return v, nil
}

// Contains reports whether at least one element of s satisfies fn.
func Contains[T any](s iter.Seq[T], fn func(T) bool) bool {
	_, ok := First(s, fn)
	return ok
}

// ContainsValue reports whether s yields value.
func ContainsValue[T comparable](s iter.Seq[T], value T) bool {
	return Contains(s, func(v T) bool { return v == value })
}
