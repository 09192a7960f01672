package nullsafe

import "reflect"

// Chain carries a value of type T through a pipeline of accessor calls,
// short-circuiting as soon as any step produces nil.
//
// A Chain is in one of two states: present, holding a non-nil value, or
// absent. Every operation on an absent chain skips its callback and stays
// absent, so a nil anywhere in a navigation path surfaces as one default
// or error at the end instead of a panic in the middle.
//
// Chain values are immutable: each step returns a new Chain, and a Chain
// may be stored or reused freely.
type Chain[T any] struct {
	value   T
	present bool
}

// Of returns a present Chain wrapping v, or an absent Chain when v is nil.
//
// Nil-ness follows the kind of T: pointer, map, slice, channel, function
// and interface values can be nil; values of any other kind are always
// present (including zero values — Of(0) and Of("") are present).
func Of[T any](v T) Chain[T] {
	if isNil(v) {
		return Chain[T]{}
	}
	return Chain[T]{value: v, present: true}
}

// Call applies fn to the wrapped value and wraps the result. When c is
// absent, fn is not invoked and the result is absent; when fn returns
// nil, the result is absent.
//
// The method form keeps the element type; use the package-level [Call]
// when fn changes it.
func (c Chain[T]) Call(fn func(T) T) Chain[T] {
	return Call(c, fn)
}

// Call applies fn to the wrapped value and wraps the result, changing the
// element type from T to U. When c is absent, fn is not invoked and the
// result is absent; when fn returns nil, the result is absent.
//
// Go methods cannot introduce new type parameters, so type-changing steps
// are package-level:
//
//	domain := nullsafe.Call(
//	    nullsafe.Call(nullsafe.Of(user), (*User).Email),
//	    (*Email).Domain,
//	)
func Call[T, U any](c Chain[T], fn func(T) U) Chain[U] {
	if !c.present {
		return Chain[U]{}
	}
	return Of(fn(c.value))
}

// Get returns the wrapped value: the zero value of T when c is absent.
// Use [Chain.IsPresent] to tell a wrapped zero value from absence.
func (c Chain[T]) Get() T {
	return c.value
}

// Get applies fn to the wrapped value and returns the result, or the zero
// value of U when c is absent (fn is not invoked). It is shorthand for a
// final [Call] followed by [Chain.Get]:
//
//	email := nullsafe.Get(nullsafe.Of(user), (*User).Email)
func Get[T, U any](c Chain[T], fn func(T) U) U {
	if !c.present {
		var zero U
		return zero
	}
	return fn(c.value)
}

// GetOrDefault returns the wrapped value, or fallback when c is absent.
func (c Chain[T]) GetOrDefault(fallback T) T {
	if !c.present {
		return fallback
	}
	return c.value
}

// GetOrFail returns the wrapped value, or the zero value of T together
// with err when c is absent. The error is returned exactly as supplied,
// so it stays matchable with errors.Is at the call site.
func (c Chain[T]) GetOrFail(err error) (T, error) {
	if !c.present {
		var zero T
		return zero, err
	}
	return c.value, nil
}

// IsPresent reports whether c holds a value.
func (c Chain[T]) IsPresent() bool {
	return c.present
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
