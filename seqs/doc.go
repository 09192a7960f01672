// Package seqs provides set algebra, element-wise stages and draining
// terminals over the standard library's lazy sequence type, [iter.Seq].
//
// # Sources
//
// Sequences come from variadic values, slices, or integer ranges:
//
//	seqs.Of("a", "b", "c")
//	seqs.ConcatSlices(left, right)      // []T sources
//	seqs.NonNull(rows)                  // []T source, nils dropped
//	seqs.Range(0, 10)                   // 0 … 9
//
// slices.Values adapts any existing slice, and slices.Collect /
// slices.Sorted bring a sequence back into a slice.
//
// # Set algebra
//
// [Concat], [Distinct], [Intersection] and [Difference] combine any number
// of sequences:
//
//	common := seqs.Intersection(teamA, teamB, training)
//	onlyA  := seqs.Difference(teamA, teamB, training)
//
// Intersection and Difference build their membership sets from the second
// and later operands; the first operand streams through, keeping its own
// order and multiplicity.
//
// # Laziness
//
// Every combinator is lazy. Building a pipeline runs none of the inputs
// and none of the callbacks; only consuming it does — with a range loop,
// or eagerly through a terminal such as [Join] or [Count]. Consuming the
// same derived sequence again re-derives it from its sources, so a
// sequence over mutable state observes that state as of each consumption,
// and a callback that panics does so at consumption time, not at
// construction time.
//
// # Collectors
//
//	seqs.Join(ids, ", ")                     // fmt.Sprint each element
//	seqs.JoinFunc(rows, "; ", Row.Summary)   // custom rendering
//	seqs.Count(filtered)
//
// # Searching
//
// [First], [Last] and their OrFail forms search a sequence, optionally
// under a condition; [Contains] and [ContainsValue] test membership.
// First, Contains and ContainsValue stop pulling from the sequence at
// the first hit:
//
//	admin, ok := seqs.First(users, isAdmin)
//	oldest, err := seqs.LastOrFail(users, isAdmin)  // ErrNoMatchingElement
//
// # Portability
//
// The operations correspond one-to-one to Java's Stream.concat /
// distinct / filter / map / Collectors.joining family, C# LINQ's Concat /
// Distinct / Intersect / Except, and Python's itertools.chain with set
// filtering.
package seqs
