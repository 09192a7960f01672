package seqs_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/hasbyte1/go-seq-utils/seqs"
)

// benchInput builds n strings with roughly n/4 distinct values.
func benchInput(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = strconv.Itoa(i % (n / 4))
	}
	return items
}

func BenchmarkConcat(b *testing.B) {
	a := benchInput(5_000)
	c := benchInput(5_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seqs.Count(seqs.ConcatSlices(a, c))
	}
}

func BenchmarkDistinct(b *testing.B) {
	items := benchInput(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seqs.Count(seqs.Distinct(slices.Values(items)))
	}
}

func BenchmarkIntersection(b *testing.B) {
	left := benchInput(10_000)
	right := benchInput(5_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seqs.Count(seqs.Intersection(slices.Values(left), slices.Values(right)))
	}
}

func BenchmarkDifference(b *testing.B) {
	left := benchInput(10_000)
	right := benchInput(5_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seqs.Count(seqs.Difference(slices.Values(left), slices.Values(right)))
	}
}

func BenchmarkFilterMap(b *testing.B) {
	var keep int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		evens := seqs.Filter(seqs.Range(0, 10_000), func(n int) bool { return n%2 == 0 })
		keep = seqs.Count(seqs.Map(evens, func(n int) int { return n * n }))
	}
	_ = keep
}

func BenchmarkJoin(b *testing.B) {
	items := benchInput(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seqs.Join(slices.Values(items), ", ")
	}
}
