package collections

import "github.com/hasbyte1/go-shaping-utils/arr"

// This file contains package-level generic functions for operations that
// transform a Collection[T] into something other than a Collection[T].
// Methods cannot introduce their own type parameters.

// Map applies fn to every item and returns a new Collection[U].
//
//	labels := collections.Map(collections.New(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n * 2) })
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	return &Collection[U]{items: arr.Map(c.items, fn)}
}

// Pluck extracts a single value U from every item.
//
//	names := collections.Pluck(people, func(p Person) string { return p.Name })
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return &Collection[U]{items: arr.Pluck(c.items, fn)}
}

// Reduce folds the collection into a single value of type U.
//
//	total := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc int, n, _ int) int { return acc + n }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range c.items {
		result = fn(result, item, i)
	}
	return result
}

// KeyBy builds a map keyed by the value extracted by fn.
// When several items share a key, the last one wins.
func KeyBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]T {
	out := make(map[K]T, len(c.items))
	for _, item := range c.items {
		out[fn(item)] = item
	}
	return out
}

// UniqueBy removes items whose key was already seen, keeping the first.
func UniqueBy[T any, K comparable](c *Collection[T], fn func(T) K) *Collection[T] {
	return &Collection[T]{items: arr.UniqueBy(c.items, fn)}
}
