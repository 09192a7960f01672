package predicate

import "errors"

// Sentinel errors carried by panics raised from predicate constructors.
var (
	// ErrInvalidRange is the cause carried by the panic raised when a range
	// constructor receives a low bound that orders after its high bound.
	// Recoverable via errors.Is on the panic value.
	ErrInvalidRange = errors.New("predicate: low bound must not exceed high bound")
)
