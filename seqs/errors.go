package seqs

import "errors"

// Sentinel errors returned by the searching terminals.
var (
	// ErrNoMatchingElement is returned by FirstOrFail and LastOrFail when
	// the sequence yields no element satisfying the condition.
	ErrNoMatchingElement = errors.New("seqs: no element matches the given condition")
)
