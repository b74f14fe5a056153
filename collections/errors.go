package collections

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrNoMatchingItems is returned by FirstOrFail when no item satisfies
	// the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")
)
