package arr

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// FirstOrDefault returns the first element satisfying cond, falling back to
// the first element of items when nothing matches. A nil cond matches
// nothing, so the first element is returned.
// Returns the zero value and false only when items is empty.
//
//	arr.FirstOrDefault(addresses, func(a Address) bool { return a.IsDefault })
func FirstOrDefault[T any](items []T, cond func(T) bool) (T, bool) {
	if cond != nil {
		if item, ok := First(items, cond); ok {
			return item, true
		}
	}
	return First(items)
}

// SingleOrDefault returns the only element satisfying cond. When no element
// or more than one element matches, it returns the zero value and false.
// A nil cond matches nothing.
func SingleOrDefault[T any](items []T, cond func(T) bool) (T, bool) {
	var zero T
	if cond == nil {
		return zero, false
	}
	var found T
	matches := 0
	for _, item := range items {
		if cond(item) {
			found = item
			matches++
			if matches > 1 {
				return zero, false
			}
		}
	}
	if matches == 0 {
		return zero, false
	}
	return found, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Pluck extracts a value of type U from each element of type T.
func Pluck[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Duplicates
// ─────────────────────────────────────────────────────────────────────────────

// UniqueBy returns elements with duplicates removed using a key function.
// The first occurrence of each key is kept.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// UniqueFunc removes duplicates decided by eq, keeping the first occurrence.
// Use it when elements are not comparable or equality depends on more than
// one field:
//
//	arr.UniqueFunc(rows, func(a, b Row) bool {
//	    return a.Key == b.Key && a.Region == b.Region
//	})
//
// eq is called against every element kept so far, so the cost is quadratic.
func UniqueFunc[T any](items []T, eq func(a, b T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		dup := false
		for _, kept := range out {
			if eq(item, kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, item)
		}
	}
	return out
}
