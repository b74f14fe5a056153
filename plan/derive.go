package plan

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hasbyte1/go-shaping-utils/shape"
)

// Derive names accepted in plan documents.
const (
	DeriveIdentity = "identity"
	DeriveLower    = "lower"
	DeriveUpper    = "upper"
	DeriveFold     = "fold"
	DeriveTitle    = "title"
	DeriveNumber   = "number"
	DeriveLength   = "length"
	DeriveRank     = "rank"
)

// Derives lists the built-in derive names.
var Derives = []string{
	DeriveIdentity, DeriveLower, DeriveUpper, DeriveFold,
	DeriveTitle, DeriveNumber, DeriveLength, DeriveRank,
}

func checkDerive(name string) error {
	if name == "" {
		return nil
	}
	for _, d := range Derives {
		if d == name {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownDerive, name)
}

// deriver builds derive functions for one compiled plan.
type deriver struct {
	tag   language.Tag
	ranks shape.RankTable
	ref   any
	field string
}

// lookup returns nil for the identity derive.
func (d deriver) lookup(name string) (func(any) any, error) {
	switch name {
	case "", DeriveIdentity:
		return nil, nil
	case DeriveLower:
		return d.caser(func() cases.Caser { return cases.Lower(d.tag) }), nil
	case DeriveUpper:
		return d.caser(func() cases.Caser { return cases.Upper(d.tag) }), nil
	case DeriveFold:
		return d.caser(func() cases.Caser { return cases.Fold() }), nil
	case DeriveTitle:
		return d.caser(func() cases.Caser { return cases.Title(d.tag) }), nil
	case DeriveNumber:
		return toNumber, nil
	case DeriveLength:
		return length, nil
	case DeriveRank:
		return shape.RankDerive(d.ranks, d.ref, d.field), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDerive, name)
}

// caser applies a fresh Caser per call; a Caser keeps state between calls.
// Non-string values pass through unchanged.
func (d deriver) caser(newCaser func() cases.Caser) func(any) any {
	return func(v any) any {
		s, ok := v.(string)
		if !ok {
			return v
		}
		c := newCaser()
		return c.String(s)
	}
}

// toNumber converts numbers and numeric strings to float64. Anything else
// becomes nil, which ties with every other key.
func toNumber(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil
		}
		return f
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return nil
}

// length is the rune count of strings and the element count of slices,
// arrays and maps. Anything else becomes nil.
func length(v any) any {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len()
	}
	return nil
}
