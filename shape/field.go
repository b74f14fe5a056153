package shape

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-shaping-utils/arr"
)

// Field describes one value carried by records of type T.
//
// Get reads the raw value. Delete strips the value from the record in place
// and is optional: a Field without Delete cannot be removed, and grouping
// with [DeleteGroupField] leaves such records untouched.
//
// The zero Field (nil Get) is "no field". A sorting predicate on the zero
// Field compares everything as equal and ends the chain.
type Field[T any] struct {
	Name   string
	Get    func(T) any
	Delete func(T)
}

// IsZero reports whether f has no accessor.
func (f Field[T]) IsZero() bool { return f.Get == nil }

// WithDelete returns a copy of f that strips the value using fn.
func (f Field[T]) WithDelete(fn func(T)) Field[T] {
	f.Delete = fn
	return f
}

// FieldOf builds a read-only Field from an accessor.
//
//	dept := shape.FieldOf("dept", func(e Employee) any { return e.Dept })
func FieldOf[T any](name string, get func(T) any) Field[T] {
	return Field[T]{Name: name, Get: get}
}

// MapField addresses a value inside map[string]any records by a
// dot-notation path ("user.address.city").
//
// A missing key reads as nil. Deleting removes the last path segment from
// its parent map; intermediate maps are kept.
func MapField(path string) Field[map[string]any] {
	return Field[map[string]any]{
		Name:   path,
		Get:    func(m map[string]any) any { return arr.Get(m, path) },
		Delete: func(m map[string]any) { arr.Forget(m, path) },
	}
}

// StructField addresses an exported field of a struct record type, looked
// up by name (promoted fields of embedded structs included).
//
// T may be a struct or a pointer to a struct. Only pointer records can have
// the field deleted; deletion resets it to its zero value. A nil pointer
// record, or a nil embedded pointer on the way to the field, reads as nil.
//
// Returns [ErrNotStruct] or [ErrUnknownField] when the field cannot be
// resolved for T.
func StructField[T any](name string) (Field[T], error) {
	typ := reflect.TypeFor[T]()
	isPtr := typ.Kind() == reflect.Pointer
	if isPtr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return Field[T]{}, fmt.Errorf("%w: %s", ErrNotStruct, typ)
	}
	sf, ok := typ.FieldByName(name)
	if !ok || !sf.IsExported() {
		return Field[T]{}, fmt.Errorf("%w: %q on %s", ErrUnknownField, name, typ)
	}

	index := sf.Index
	base := func(item T) (reflect.Value, bool) {
		v := reflect.ValueOf(item)
		if isPtr {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		fv, err := v.FieldByIndexErr(index)
		if err != nil {
			return reflect.Value{}, false
		}
		return fv, true
	}

	f := Field[T]{
		Name: name,
		Get: func(item T) any {
			fv, ok := base(item)
			if !ok {
				return nil
			}
			return fv.Interface()
		},
	}
	if isPtr {
		f.Delete = func(item T) {
			if fv, ok := base(item); ok && fv.CanSet() {
				fv.SetZero()
			}
		}
	}
	return f, nil
}

// MustStructField is like [StructField] but panics on error. Intended for
// package-level field declarations.
func MustStructField[T any](name string) Field[T] {
	f, err := StructField[T](name)
	if err != nil {
		panic(err)
	}
	return f
}
