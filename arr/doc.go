// Package arr provides standalone helper functions for Go slices and
// dot-notation access to map[string]any records.
//
// # Slice helpers
//
// All slice helpers are generic and operate on plain []T values, no wrapper
// type required:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	names := arr.Pluck(users, func(u User) string { return u.Name })
//	home, _ := arr.FirstOrDefault(addresses, func(a Address) bool { return a.IsDefault })
//	rows = arr.UniqueFunc(rows, func(a, b Row) bool { return a.Key == b.Key })
//
// # Dot-notation map access
//
// Records decoded from JSON or YAML are nested map[string]any values.
// [Get], [Lookup], [Has], [Set] and [Forget] address their fields by
// dot-separated paths:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//	arr.Get(m, "user.address.city")          // → "London"
//	arr.Set(m, "user.address.postcode", "EC1")
//	arr.Has(m, "user.name")                  // → true
//	arr.Forget(m, "user.address")
//
// Package shape builds its map-record fields (shape.MapField) on these
// helpers.
package arr
