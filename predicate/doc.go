// Package predicate provides generic, composable comparison predicates for
// filtering sequences and slices, built once and applied element by element.
//
// # Natural-order comparisons
//
// For any type ordered by < (numbers, strings), the package-level functions
// build predicates directly:
//
//	within := predicate.InRangeClosed("D", "N")   // "D" <= s <= "N"
//	small  := predicate.LessThan(10)
//
// # Custom orderings
//
// Types without a natural order get an [Ordering] built from a three-way
// comparison function, or from a key extractor via [Comparing]:
//
//	byDate := predicate.ByOrdering(time.Time.Compare)
//	late   := byDate.GreaterThan(deadline)
//
//	byAge  := predicate.Comparing(func(u User) int { return u.Age })
//	minors := byAge.LessThan(refUser)
//
// # Field accessors
//
// [Accessor] compares one field of each element against values of the
// field's type, so the reference values need not be whole elements:
//
//	overdue := predicate.ByAccessor(func(i Invoice) int64 { return i.Due }).
//	    LessThan(now)
//
// [ByAccessorOK] handles optional fields: elements whose field is absent
// fail every comparison instead of panicking.
//
// # Composition
//
// Every predicate composes with [Predicate.And], [Predicate.Or] and
// [Predicate.Negate], evaluated left to right with short-circuiting:
//
//	keep := predicate.NotEmpty().
//	    And(predicate.Between("A", "M")).
//	    And(predicate.MaxLength(12))
//
// # Range validation
//
// Every range constructor (Between, InRangeOpen, InRangeClosed — on the
// package level, on [Ordering] and on [Accessor]) validates its bounds up
// front and panics with an error wrapping [ErrInvalidRange] when
// low > high. An inverted range is a programming error at the call site,
// never a data-dependent condition, so it surfaces before a single element
// is evaluated.
package predicate
