// Package shape groups and orders in-memory sequences of uniformly typed
// records by derived keys.
//
// # Overview
//
// Two entry points sit on top of one comparator:
//
//   - [GroupBy] partitions a slice into buckets keyed by a derived field,
//     optionally grouping each bucket again or ordering it.
//   - [OrderBy] sorts a slice in place by a chain of sorting predicates.
//   - [Compare] is the shared comparator; it walks a predicate chain and
//     only consults the next level when the current one ties.
//
// Records are never inspected by name at runtime. A [Field] carries an
// explicit accessor, built from a closure ([FieldOf]), a dot-notation path
// into map[string]any records ([MapField]) or an exported struct field
// ([StructField]):
//
//	age := shape.MustStructField[*Person]("Age")
//	name := shape.MustStructField[*Person]("Name")
//
//	shape.OrderBy(people, shape.SortBy(age).Desc().ThenBy(shape.SortBy(name)))
//
//	groups := shape.GroupBy(people, shape.GroupOn(age).
//	    Labeled("age").
//	    ThenOrderBy(shape.SortBy(name)))
//
// # Mutation
//
// Both operations may touch caller-owned data:
//
//   - [OrderBy] reorders the given slice in place and returns it. Use
//     [Sorted] to get an ordered copy instead.
//   - [GroupBy] with [DeleteGroupField] strips the grouped field from every
//     member record as it is bucketed. Copy the records first if the
//     originals are still needed.
//
// Nothing in this package is safe for concurrent use on shared records.
//
// # Custom ranks
//
// [RankTable] maps a closed set of names to small integer ranks. Feed
// [RankDerive] into a sorting predicate to get "named priorities first,
// then the one specific value, then everything else":
//
//	p := shape.SortBy(kind).DeriveWith(shape.RankDerive(shape.DefaultRanks, current, "Kind"))
package shape
