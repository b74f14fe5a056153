package arr_test

import (
	"reflect"
	"testing"

	"github.com/hasbyte1/go-shaping-utils/arr"
)

func makeNested() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name": "Alice",
			"address": map[string]any{
				"city":    "London",
				"country": "UK",
			},
		},
		"score": 42,
		"note":  nil,
	}
}

func TestGet(t *testing.T) {
	m := makeNested()
	if v := arr.Get(m, "user.name"); v != "Alice" {
		t.Fatalf("Get user.name = %v; want Alice", v)
	}
	if v := arr.Get(m, "user.address.city"); v != "London" {
		t.Fatalf("Get city = %v; want London", v)
	}
	if v := arr.Get(m, "score"); v != 42 {
		t.Fatalf("Get score = %v; want 42", v)
	}
	if v := arr.Get(m, "missing"); v != nil {
		t.Fatalf("Get missing = %v; want nil", v)
	}
	if v := arr.Get(m, "missing", "default"); v != "default" {
		t.Fatalf("Get missing default = %v; want default", v)
	}
	if v := arr.Get(m, "score.deep", "default"); v != "default" {
		t.Fatalf("Get through scalar = %v; want default", v)
	}
}

func TestGetNilMap(t *testing.T) {
	if v := arr.Get(nil, "a.b"); v != nil {
		t.Fatalf("Get on nil map = %v; want nil", v)
	}
}

func TestLookup(t *testing.T) {
	m := makeNested()
	v, ok := arr.Lookup(m, "user.address.country")
	if !ok || v != "UK" {
		t.Fatalf("Lookup country = %v, %v; want UK, true", v, ok)
	}
	v, ok = arr.Lookup(m, "note")
	if !ok || v != nil {
		t.Fatalf("Lookup stored nil = %v, %v; want nil, true", v, ok)
	}
	if _, ok = arr.Lookup(m, "user.phone"); ok {
		t.Fatal("Lookup user.phone should report absence")
	}
}

func TestSet(t *testing.T) {
	m := map[string]any{}
	arr.Set(m, "a.b.c", 42)
	if got := arr.Get(m, "a.b.c"); got != 42 {
		t.Fatalf("Set/Get a.b.c = %v; want 42", got)
	}
}

func TestSetOverwritesExisting(t *testing.T) {
	m := makeNested()
	arr.Set(m, "user.name", "Bob")
	if arr.Get(m, "user.name") != "Bob" {
		t.Fatal("Set did not overwrite")
	}
}

func TestSetReplacesScalarOnPath(t *testing.T) {
	m := makeNested()
	arr.Set(m, "score.value", 7)
	if arr.Get(m, "score.value") != 7 {
		t.Fatal("Set should replace a scalar in the way with a map")
	}
}

func TestHas(t *testing.T) {
	m := makeNested()
	if !arr.Has(m, "user.name") {
		t.Fatal("Has user.name should be true")
	}
	if !arr.Has(m, "user.address.city") {
		t.Fatal("Has user.address.city should be true")
	}
	if arr.Has(m, "user.missing") {
		t.Fatal("Has user.missing should be false")
	}
	if arr.Has(m, "user.name.deep") {
		t.Fatal("Has beyond scalar should be false")
	}
}

func TestForget(t *testing.T) {
	m := makeNested()
	arr.Forget(m, "user.address.city")
	if arr.Has(m, "user.address.city") {
		t.Fatal("Forget did not remove key")
	}
	if !arr.Has(m, "user.address.country") {
		t.Fatal("Forget removed sibling key")
	}
}

func TestForgetTopLevel(t *testing.T) {
	m := map[string]any{"a": 1, "b": 2}
	arr.Forget(m, "a")
	if arr.Has(m, "a") {
		t.Fatal("Forget top-level failed")
	}
	if !arr.Has(m, "b") {
		t.Fatal("Forget removed wrong key")
	}
}

func TestForgetMissingPath(t *testing.T) {
	m := makeNested()
	arr.Forget(m, "score.deep")
	arr.Forget(m, "nope.nope")
	if arr.Get(m, "score") != 42 {
		t.Fatal("Forget on a missing path should be a no-op")
	}
}

func TestStringify(t *testing.T) {
	m := arr.Stringify(makeNested())
	if m["score"] != "42" {
		t.Fatalf("Stringify score = %#v; want \"42\"", m["score"])
	}
	if arr.Get(m, "user.name") != "Alice" {
		t.Fatal("Stringify should keep strings")
	}
	if _, ok := m["user"].(map[string]any); !ok {
		t.Fatal("Stringify should walk nested maps, not stringify them")
	}
}

func TestStringifyWalksSlices(t *testing.T) {
	m := arr.Stringify(map[string]any{
		"tags": []any{1, true, map[string]any{"n": 2}, []any{3.5}},
		"rows": []map[string]any{{"id": 7}},
	})

	want := map[string]any{
		"tags": []any{"1", "true", map[string]any{"n": "2"}, []any{"3.5"}},
		"rows": []map[string]any{{"id": "7"}},
	}
	if !reflect.DeepEqual(m, want) {
		t.Fatalf("Stringify = %#v; want %#v", m, want)
	}
}
