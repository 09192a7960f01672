package predicate

import (
	"regexp"
	"strings"
)

// String predicates. Individually most are one-liners over the strings
// package; their value shows when composed:
//
//	keep := predicate.NotEmpty().And(predicate.MaxLength(12))
//
// instead of:
//
//	keep := func(s string) bool { return s != "" && len(s) <= 12 }
//
// All length predicates measure length in bytes, like the built-in len.

// Empty returns a predicate that is true for the empty string.
func Empty() Predicate[string] {
	return func(s string) bool { return s == "" }
}

// NotEmpty returns a predicate that is true for non-empty strings.
func NotEmpty() Predicate[string] {
	return Empty().Negate()
}

// LongerThan returns a predicate that is true when len(s) > n.
func LongerThan(n int) Predicate[string] {
	return func(s string) bool { return len(s) > n }
}

// ShorterThan returns a predicate that is true when len(s) < n.
func ShorterThan(n int) Predicate[string] {
	return func(s string) bool { return len(s) < n }
}

// MinLength returns a predicate that is true when len(s) >= n.
func MinLength(n int) Predicate[string] {
	return LongerThan(n - 1)
}

// MaxLength returns a predicate that is true when len(s) <= n.
func MaxLength(n int) Predicate[string] {
	return ShorterThan(n + 1)
}

// Contains returns a predicate that is true when the string contains sub.
func Contains(sub string) Predicate[string] {
	return func(s string) bool { return strings.Contains(s, sub) }
}

// ContainsFold returns a predicate that is true when the string contains
// sub, ignoring case.
func ContainsFold(sub string) Predicate[string] {
	sub = strings.ToLower(sub)
	return func(s string) bool { return strings.Contains(strings.ToLower(s), sub) }
}

// EqualFold returns a predicate that is true when the string equals match
// under Unicode case-folding, as defined by [strings.EqualFold].
func EqualFold(match string) Predicate[string] {
	return func(s string) bool { return strings.EqualFold(s, match) }
}

// Matches returns a predicate that is true when the entire string matches
// the regular expression pattern. The pattern is compiled once, when the
// predicate is built; an invalid pattern panics, as with
// [regexp.MustCompile].
func Matches(pattern string) Predicate[string] {
	re := regexp.MustCompile(`\A(?:` + pattern + `)\z`)
	return re.MatchString
}
