package collections

import "github.com/hasbyte1/go-shaping-utils/shape"

// Enumerable is the read-and-shape surface of [Collection][T].
//
// Accept Enumerable in your own functions so that callers can pass
// alternative implementations.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Count returns the number of items.
	Count() int

	// Filter returns a new collection containing only items for which
	// fn returns true.
	Filter(fn func(T, int) bool) *Collection[T]

	// OrderBy returns a new, stably ordered collection.
	OrderBy(p *shape.SortingPredicate[T]) *Collection[T]

	// GroupBy buckets the items.
	GroupBy(p *shape.GroupingPredicate[T]) []shape.Group[T]
}

var _ Enumerable[int] = (*Collection[int])(nil)
