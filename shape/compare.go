package shape

import (
	"cmp"
	"math"
	"reflect"
	"time"
)

// Compare orders a and b by the chain rooted at p.
//
// It returns a negative number when a sorts before b, a positive number when
// it sorts after, and 0 when every level ties. A nil predicate, or a level
// with the zero Field, yields 0.
//
// Keys are compared with [CompareValues]. Keys without a defined ordering
// (nil, a string against a number, structs, NaN) tie at that level, so the
// next level decides.
func Compare[T any](p *SortingPredicate[T], a, b T) int {
	for ; p.active(); p = p.Next {
		if c, ok := CompareValues(p.key(a), p.key(b)); ok && c != 0 {
			return c * p.Order.sign()
		}
	}
	return 0
}

// Comparator binds p into a func usable with slices.SortFunc and friends.
func Comparator[T any](p *SortingPredicate[T]) func(a, b T) int {
	return func(a, b T) int { return Compare(p, a, b) }
}

// CompareValues applies natural ordering to two dynamically typed keys.
// ok is false when the pair has no defined ordering.
//
//   - Integers, unsigned integers and floats compare numerically across
//     kinds (int 2 < float64 2.5 < uint8 3). Integers above 2^53 lose
//     precision when compared against a float.
//   - Strings compare bytewise.
//   - Bools order false before true.
//   - time.Time compares chronologically.
//   - Named types compare by their underlying kind (time.Duration as int64).
//
// Strings are never parsed as numbers. NaN has no ordering.
func CompareValues(a, b any) (c int, ok bool) {
	if a == nil || b == nil {
		return 0, false
	}
	if ta, isTime := a.(time.Time); isTime {
		if tb, isTime := b.(time.Time); isTime {
			return ta.Compare(tb), true
		}
		return 0, false
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	ka, kb := va.Kind(), vb.Kind()
	switch {
	case isNumber(ka) && isNumber(kb):
		return compareNumbers(va, vb)
	case ka == reflect.String && kb == reflect.String:
		return cmp.Compare(va.String(), vb.String()), true
	case ka == reflect.Bool && kb == reflect.Bool:
		return compareBools(va.Bool(), vb.Bool()), true
	}
	return 0, false
}

func compareNumbers(a, b reflect.Value) (int, bool) {
	ka, kb := a.Kind(), b.Kind()
	switch {
	case isFloat(ka) || isFloat(kb):
		fa, fb := toFloat(a), toFloat(b)
		if math.IsNaN(fa) || math.IsNaN(fb) {
			return 0, false
		}
		return cmp.Compare(fa, fb), true
	case isInt(ka) && isInt(kb):
		return cmp.Compare(a.Int(), b.Int()), true
	case isUint(ka) && isUint(kb):
		return cmp.Compare(a.Uint(), b.Uint()), true
	case isInt(ka):
		if a.Int() < 0 {
			return -1, true
		}
		return cmp.Compare(uint64(a.Int()), b.Uint()), true
	default:
		if b.Int() < 0 {
			return 1, true
		}
		return cmp.Compare(a.Uint(), uint64(b.Int())), true
	}
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumber(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || isFloat(k)
}

func toFloat(v reflect.Value) float64 {
	switch k := v.Kind(); {
	case isInt(k):
		return float64(v.Int())
	case isUint(k):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}
