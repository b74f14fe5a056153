package shape

import "slices"

// OrderBy sorts data in place by the chain rooted at p and returns data.
//
// The sort is stable: records that compare equal on every level keep their
// relative input order. A nil predicate leaves data as it is.
func OrderBy[T any](data []T, p *SortingPredicate[T]) []T {
	if len(data) < 2 || !p.active() {
		return data
	}
	slices.SortStableFunc(data, Comparator(p))
	return data
}

// Sorted is the copy-on-write variant of [OrderBy]: it returns an ordered
// copy and leaves data untouched.
func Sorted[T any](data []T, p *SortingPredicate[T]) []T {
	return OrderBy(slices.Clone(data), p)
}

// IsOrdered reports whether every adjacent pair (x, y) of data satisfies
// Compare(p, x, y) <= 0.
func IsOrdered[T any](data []T, p *SortingPredicate[T]) bool {
	for i := 1; i < len(data); i++ {
		if Compare(p, data[i-1], data[i]) > 0 {
			return false
		}
	}
	return true
}
