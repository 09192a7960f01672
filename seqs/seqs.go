package seqs

import (
	"iter"
	"reflect"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sources
// ─────────────────────────────────────────────────────────────────────────────

// Of returns a sequence over the given values, in order.
func Of[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// Empty returns a sequence that yields nothing.
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// NonNull returns a sequence over items with nil elements dropped.
//
//	rows := []*Row{r1, nil, r2, nil}
//	for r := range seqs.NonNull(rows) { … } // r1, r2
func NonNull[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range items {
			if isNil(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// MapNonNull returns a sequence over items with nil elements dropped,
// transformed by fn, with nil results dropped as well. fn runs lazily,
// when the sequence is consumed.
func MapNonNull[T, U any](items []T, fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for _, v := range items {
			if isNil(v) {
				continue
			}
			u := fn(v)
			if isNil(u) {
				continue
			}
			if !yield(u) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Set algebra
// ─────────────────────────────────────────────────────────────────────────────
//
// The combinators below are lazy: no input sequence is iterated and no
// membership set is built until the returned sequence is consumed. Each
// consumption re-derives from the inputs, so the results are as restartable
// as the sequences they were built from.

// Concat returns the concatenation of the given sequences: every element
// of every input in order, duplicates preserved.
func Concat[T any](in ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range in {
			for v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// ConcatSlices is [Concat] for in-memory slices.
func ConcatSlices[T any](in ...[]T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, items := range in {
			for _, v := range items {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Distinct returns the concatenation of the given sequences with
// duplicates removed. The first occurrence of each value wins, so the
// output preserves encounter order.
func Distinct[T comparable](in ...iter.Seq[T]) iter.Seq[T] {
	all := Concat(in...)
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range all {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// Intersection returns the elements common to all given sequences, as a
// left fold of pairwise intersections.
//
// Each pairwise step keeps those elements of its left operand that are
// members of its right operand, so the multiplicity and order of the
// FIRST sequence carry through to the result; duplicates in later
// sequences never multiply the output.
//
// With no arguments the result is empty; with one argument it is that
// sequence unchanged.
func Intersection[T comparable](in ...iter.Seq[T]) iter.Seq[T] {
	if len(in) == 0 {
		return Empty[T]()
	}
	out := in[0]
	for _, s := range in[1:] {
		out = intersect(out, s)
	}
	return out
}

// intersect keeps the elements of a that are members of b. b is
// materialized into a membership set when the result is consumed.
func intersect[T comparable](a, b iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		members := collectSet(b)
		for v := range a {
			if _, ok := members[v]; !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Difference returns the elements of the first sequence that appear in
// none of the remaining sequences, preserving the first sequence's order
// and multiplicity.
//
// With no arguments the result is empty; with one argument it is that
// sequence unchanged.
func Difference[T comparable](in ...iter.Seq[T]) iter.Seq[T] {
	if len(in) == 0 {
		return Empty[T]()
	}
	if len(in) == 1 {
		return in[0]
	}
	first, rest := in[0], in[1:]
	return func(yield func(T) bool) {
		members := collectSet(Concat(rest...))
		for v := range first {
			if _, ok := members[v]; ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// collectSet drains s into a membership set.
func collectSet[T comparable](s iter.Seq[T]) map[T]struct{} {
	members := make(map[T]struct{})
	for v := range s {
		members[v] = struct{}{}
	}
	return members
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
