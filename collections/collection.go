package collections

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hasbyte1/go-shaping-utils/arr"
	"github.com/hasbyte1/go-shaping-utils/shape"
)

// Collection is a copy-on-write wrapper around a slice of T.
//
// Every method that transforms the collection returns a new Collection and
// leaves the receiver unchanged. In particular [Collection.OrderBy] never
// reorders the slice the collection was built from.
//
// Operations that change the element type are package-level functions
// ([Map], [Pluck], [Reduce], [KeyBy]).
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// Get returns the item at index together with a presence flag.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection.
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally matching fns[0].
func (c *Collection[T]) First(fns ...func(T) bool) (T, bool) {
	return arr.First(c.items, fns...)
}

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := c.First(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// FirstOrDefault returns the first item matching cond, or the first item
// when nothing matches.
func (c *Collection[T]) FirstOrDefault(cond func(T) bool) (T, bool) {
	return arr.FirstOrDefault(c.items, cond)
}

// SingleOrDefault returns the only item matching cond.
func (c *Collection[T]) SingleOrDefault(cond func(T) bool) (T, bool) {
	return arr.SingleOrDefault(c.items, cond)
}

// Last returns the last item, optionally matching fns[0].
func (c *Collection[T]) Last(fns ...func(T) bool) (T, bool) {
	var zero T
	for i := len(c.items) - 1; i >= 0; i-- {
		if len(fns) == 0 || fns[0](c.items[i]) {
			return c.items[i], true
		}
	}
	return zero, false
}

// Contains reports whether at least one item satisfies fn.
func (c *Collection[T]) Contains(fn func(T) bool) bool {
	_, ok := c.First(fn)
	return ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the items for which fn(item, index) returns true.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	return &Collection[T]{items: arr.Filter(c.items, fn)}
}

// Reject is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T, int) bool) *Collection[T] {
	return c.Filter(func(item T, i int) bool { return !fn(item, i) })
}

// Unique removes duplicates decided by eq, keeping the first occurrence.
func (c *Collection[T]) Unique(eq func(a, b T) bool) *Collection[T] {
	return &Collection[T]{items: arr.UniqueFunc(c.items, eq)}
}

// Reverse returns the items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] {
	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[len(out)-1-i] = item
	}
	return &Collection[T]{items: out}
}

// Take returns at most n items from the start.
// A negative n returns items from the end (Take(-3) is the last 3 items).
func (c *Collection[T]) Take(n int) *Collection[T] {
	switch {
	case n < 0:
		n = max(len(c.items)+n, 0)
		return From(c.items[n:])
	case n > len(c.items):
		n = len(c.items)
	}
	return From(c.items[:n])
}

// Skip returns the items after the first n.
func (c *Collection[T]) Skip(n int) *Collection[T] {
	n = min(max(n, 0), len(c.items))
	return From(c.items[n:])
}

// Chunk splits the collection into consecutive slices of size.
// Returns an empty [][]T if size <= 0.
func (c *Collection[T]) Chunk(size int) [][]T {
	out := make([][]T, 0)
	if size <= 0 {
		return out
	}
	for start := 0; start < len(c.items); start += size {
		end := min(start+size, len(c.items))
		chunk := make([]T, end-start)
		copy(chunk, c.items[start:end])
		out = append(out, chunk)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering & grouping
// ─────────────────────────────────────────────────────────────────────────────

// OrderBy returns the items stably ordered by the predicate chain p.
//
//	people.OrderBy(shape.SortBy(dept).ThenBy(shape.SortBy(age).Desc()))
func (c *Collection[T]) OrderBy(p *shape.SortingPredicate[T]) *Collection[T] {
	return &Collection[T]{items: shape.Sorted(c.items, p)}
}

// IsOrdered reports whether the items already satisfy p.
func (c *Collection[T]) IsOrdered(p *shape.SortingPredicate[T]) bool {
	return shape.IsOrdered(c.items, p)
}

// GroupBy buckets the items by p; see [shape.GroupBy].
//
// The buckets share records with the collection, so a predicate with
// shape.DeleteGroupField strips fields from records the collection still
// holds when T is a map or pointer type.
func (c *Collection[T]) GroupBy(p *shape.GroupingPredicate[T]) []shape.Group[T] {
	return shape.GroupBy(c.All(), p)
}

// Partition splits the items into those satisfying fn and the rest.
func (c *Collection[T]) Partition(fn func(T) bool) (*Collection[T], *Collection[T]) {
	pass, fail := Empty[T](), Empty[T]()
	for _, item := range c.items {
		if fn(item) {
			pass.items = append(pass.items, item)
		} else {
			fail.items = append(fail.items, item)
		}
	}
	return pass, fail
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of the values extracted by fn.
func (c *Collection[T]) Sum(fn func(T) float64) float64 {
	var total float64
	for _, item := range c.items {
		total += fn(item)
	}
	return total
}

// Implode joins the string form of each item with sep.
func (c *Collection[T]) Implode(sep string, fn func(T) string) string {
	return strings.Join(arr.Pluck(c.items, fn), sep)
}
