package seqs

import (
	"fmt"
	"iter"
	"strings"
)

// Terminals. Each one drains the sequence it is given; pair them with
// [slices.Collect] and [slices.Sorted] from the standard library for the
// slice-producing terminals.

// Join concatenates the elements of s into a single string separated by
// sep, rendering each element with [fmt.Sprint], in encounter order.
func Join[T any](s iter.Seq[T], sep string) string {
	return JoinFunc(s, sep, func(v T) string { return fmt.Sprint(v) })
}

// JoinFunc concatenates the elements of s into a single string separated
// by sep, rendering each element with format.
func JoinFunc[T any](s iter.Seq[T], sep string, format func(T) string) string {
	var b strings.Builder
	first := true
	for v := range s {
		if !first {
			b.WriteString(sep)
		}
		b.WriteString(format(v))
		first = false
	}
	return b.String()
}

// Count drains s and returns the number of elements it yielded.
func Count[T any](s iter.Seq[T]) int {
	n := 0
	for range s {
		n++
	}
	return n
}
