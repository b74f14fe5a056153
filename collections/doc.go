// Package collections provides a generic, fluent Collection type for
// filtering, ordering and grouping slices of records.
//
//	adults := collections.From(people).
//	    Filter(func(p Person, _ int) bool { return p.Age >= 18 }).
//	    OrderBy(shape.SortBy(age).Desc().ThenBy(shape.SortBy(name)))
//
//	byDept := adults.GroupBy(shape.GroupOn(dept).Labeled("department"))
//
// Ordering and grouping delegate to package shape; the slice helpers
// delegate to package arr. Unlike shape.OrderBy, which reorders in place,
// every Collection method works on a copy.
//
// Package-level functions: [Map], [Pluck], [Reduce], [KeyBy], [UniqueBy].
package collections
