package arr

import (
	"fmt"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for map[string]any records
//
// Records decoded from JSON or YAML are nested map[string]any values. These
// helpers read, write and strip fields of such records by dot-separated
// paths:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	Get(m, "user.address.city")  → "London"
//	Set(m, "user.age", 30)
//	Has(m, "user.name")          → true
//	Forget(m, "user.address")
// ─────────────────────────────────────────────────────────────────────────────

// Lookup walks m along the dot-notation key and returns the value found
// there together with a presence flag. A stored nil is reported as present.
func Lookup(m map[string]any, key string) (any, bool) {
	current := m
	segments := strings.Split(key, ".")
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// Get retrieves a value from m using a dot-notation key.
// Returns def[0] (or nil) when the key does not exist.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, key string, def ...any) any {
	if val, ok := Lookup(m, key); ok {
		return val
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether the dot-notation key exists in m.
func Has(m map[string]any, key string) bool {
	_, ok := Lookup(m, key)
	return ok
}

// Set writes value into m at the dot-notation key, creating intermediate
// maps as needed. A scalar in the way is replaced by a map.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m map[string]any, key string, value any) {
	seg, rest, nested := strings.Cut(key, ".")
	if !nested {
		m[key] = value
		return
	}
	child, ok := m[seg].(map[string]any)
	if !ok {
		child = make(map[string]any)
		m[seg] = child
	}
	Set(child, rest, value)
}

// Forget removes the dot-notation key from m.
// Intermediate maps are not cleaned up; a missing path is a no-op.
func Forget(m map[string]any, key string) {
	seg, rest, nested := strings.Cut(key, ".")
	if !nested {
		delete(m, key)
		return
	}
	if child, ok := m[seg].(map[string]any); ok {
		Forget(child, rest)
	}
}

// Stringify replaces every leaf value of m, at any depth, with its fmt
// representation. Nested maps and []any slices are walked, not
// stringified; slice elements are replaced in place. m is modified in place
// and returned.
//
//	Stringify(map[string]any{"n": 1, "o": map[string]any{"b": true}, "l": []any{2}})
//	// → map[string]any{"n": "1", "o": map[string]any{"b": "true"}, "l": []any{"2"}}
func Stringify(m map[string]any) map[string]any {
	for k, v := range m {
		m[k] = stringifyValue(v)
	}
	return m
}

func stringifyValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return Stringify(x)
	case []any:
		for i, item := range x {
			x[i] = stringifyValue(item)
		}
		return x
	case []map[string]any:
		for _, item := range x {
			Stringify(item)
		}
		return x
	}
	return fmt.Sprint(v)
}
