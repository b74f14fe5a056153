package shape

import (
	"cmp"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-shaping-utils/arr"
)

// Rank is a sort priority: lower ranks sort first in ascending order.
type Rank int

// Reserved ranks, outside the range of any named rank.
const (
	// RankSpecific is returned for the value held by the reference record.
	RankSpecific Rank = 98
	// RankOther is returned for every value that is neither named nor
	// specific.
	RankOther Rank = 99
)

// RankTable is a closed mapping from names to ranks. Several names may share
// a rank. The zero RankTable knows no names.
type RankTable struct {
	ranks map[string]Rank
}

// DefaultRanks is the built-in rank table.
var DefaultRanks = RankTable{ranks: map[string]Rank{
	"KEY_A": 1,
	"KEY_B": 1,
	"KEY_C": 2,
	"KEY_D": 3,
	"KEY_E": 3,
}}

// NewRankTable validates ranks and copies them into a RankTable. Every rank
// must be at least 1 and below [RankSpecific].
func NewRankTable(ranks map[string]Rank) (RankTable, error) {
	for name, r := range ranks {
		if r < 1 || r >= RankSpecific {
			return RankTable{}, fmt.Errorf("%w: %q has rank %d, want 1..%d", ErrRankOutOfRange, name, r, RankSpecific-1)
		}
	}
	return RankTable{ranks: maps.Clone(ranks)}, nil
}

// Rank returns the rank of name and whether name is in the table.
func (t RankTable) Rank(name string) (Rank, bool) {
	r, ok := t.ranks[name]
	return r, ok
}

// Len returns the number of names in the table.
func (t RankTable) Len() int { return len(t.ranks) }

// Names returns the table's names ordered by rank, then by name.
func (t RankTable) Names() []string {
	names := slices.Collect(maps.Keys(t.ranks))
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(t.ranks[a], t.ranks[b]); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return names
}

// Resolve ranks candidate.
//
// A named candidate gets its table rank. Otherwise, when the reference
// record's referenceField loosely equals candidate (see [LooseEqual]), the
// result is [RankSpecific]. Everything else is [RankOther].
//
// reference may be a map[string]any (referenceField is then a dot-notation
// path), any other string-keyed map, or a struct or pointer to struct
// (referenceField is an exported field name). A nil reference or a missing
// field never matches.
func (t RankTable) Resolve(candidate string, reference any, referenceField string) Rank {
	if r, ok := t.ranks[candidate]; ok {
		return r
	}
	if v, ok := lookup(reference, referenceField); ok && LooseEqual(candidate, v) {
		return RankSpecific
	}
	return RankOther
}

// CustomOrder resolves candidate against [DefaultRanks].
//
//	shape.CustomOrder("KEY_A", map[string]any{"type": "KEY_Z"}, "type")   // 1
//	shape.CustomOrder("unknown", map[string]any{"type": "unknown"}, "type") // RankSpecific
//	shape.CustomOrder("unknown", map[string]any{"type": "other"}, "type")   // RankOther
func CustomOrder(candidate string, reference any, referenceField string) Rank {
	return DefaultRanks.Resolve(candidate, reference, referenceField)
}

// RankDerive returns a Derive function for sorting predicates that replaces
// a field value with its rank in t. Non-string values are formatted with
// fmt first; nil becomes the empty string.
func RankDerive(t RankTable, reference any, referenceField string) func(any) any {
	return func(v any) any {
		var s string
		switch x := v.(type) {
		case nil:
		case string:
			s = x
		default:
			s = fmt.Sprint(x)
		}
		return t.Resolve(s, reference, referenceField)
	}
}

// LooseEqual reports whether v loosely equals the string candidate.
//
//   - strings (and named string types) match by value;
//   - numbers match when candidate parses to the same number ("30" == 30,
//     "2.50" == 2.5);
//   - bools match the strconv.ParseBool spellings ("true", "1", "F", …);
//   - fmt.Stringer values match by String();
//   - nil and everything else never match.
//
// An empty or blank candidate never matches a number.
func LooseEqual(candidate string, v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x == candidate
	case fmt.Stringer:
		return x.String() == candidate
	}

	rv := reflect.ValueOf(v)
	switch k := rv.Kind(); {
	case k == reflect.String:
		return rv.String() == candidate
	case k == reflect.Bool:
		b, err := strconv.ParseBool(candidate)
		return err == nil && b == rv.Bool()
	case isNumber(k):
		f, err := strconv.ParseFloat(strings.TrimSpace(candidate), 64)
		return err == nil && f == toFloat(rv)
	}
	return false
}

func lookup(reference any, field string) (any, bool) {
	if m, ok := reference.(map[string]any); ok {
		return arr.Lookup(m, field)
	}

	v := reflect.ValueOf(reference)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := v.MapIndex(reflect.ValueOf(field).Convert(v.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		sf, ok := v.Type().FieldByName(field)
		if !ok || !sf.IsExported() {
			return nil, false
		}
		fv, err := v.FieldByIndexErr(sf.Index)
		if err != nil {
			return nil, false
		}
		return fv.Interface(), true
	}
	return nil, false
}
