package shape

import (
	"math"
	"reflect"
)

// Group is one bucket produced by [GroupBy].
//
// Exactly one of Items and Groups is populated: Groups when the predicate
// had a NextGroupBy, Items otherwise. LabelName and SubListName carry the
// output names resolved from the predicate; they are applied only when the
// group is rendered (see package render).
type Group[T any] struct {
	Key         any
	LabelName   string
	SubListName string
	Items       []T
	Groups      []Group[T]
}

// Nested reports whether g holds sub-groups rather than records.
func (g Group[T]) Nested() bool { return g.Groups != nil }

// Len returns the number of records in g, across all nesting levels.
func (g Group[T]) Len() int {
	if !g.Nested() {
		return len(g.Items)
	}
	n := 0
	for _, sub := range g.Groups {
		n += sub.Len()
	}
	return n
}

// Members returns every record in g, walking nested groups depth-first.
func (g Group[T]) Members() []T {
	if !g.Nested() {
		return g.Items
	}
	out := make([]T, 0, g.Len())
	for _, sub := range g.Groups {
		out = append(out, sub.Members()...)
	}
	return out
}

// Flatten concatenates the members of groups in bucket order.
func Flatten[T any](groups []Group[T]) []T {
	n := 0
	for _, g := range groups {
		n += g.Len()
	}
	out := make([]T, 0, n)
	for _, g := range groups {
		out = append(out, g.Members()...)
	}
	return out
}

// GroupBy partitions data into buckets keyed by p's derived field value.
//
// Buckets appear in the order their key was first seen and keep the input
// order of their members. Records whose field is missing share the nil
// bucket. Comparable keys are matched with ==, so 30 and "30" land in
// different buckets; slices, maps and other non-comparable keys are matched
// with reflect.DeepEqual.
//
// With [DeleteGroupField] each member has its field stripped right after
// its key is read, which mutates the caller's records.
//
// Each bucket is then grouped again by p.NextGroupBy, or, failing that,
// ordered in place by p.NextOrderBy.
//
// An empty input yields an empty, non-nil slice. A nil predicate puts every
// record into a single nil bucket. Panics raised by Derive propagate.
func GroupBy[T any](data []T, p *GroupingPredicate[T]) []Group[T] {
	if p == nil {
		p = &GroupingPredicate[T]{}
	}
	out := make([]Group[T], 0)
	var b buckets
	for _, item := range data {
		key := p.key(item)
		i, ok := b.find(key)
		if !ok {
			i = len(out)
			b.add(key, i)
			out = append(out, Group[T]{
				Key:         key,
				LabelName:   p.labelName(),
				SubListName: p.subListName(),
			})
		}
		if p.AfterGrouping == DeleteGroupField && p.Field.Delete != nil {
			p.Field.Delete(item)
		}
		out[i].Items = append(out[i].Items, item)
	}

	for i := range out {
		switch {
		case p.NextGroupBy != nil:
			out[i].Groups = GroupBy(out[i].Items, p.NextGroupBy)
			out[i].Items = nil
		case p.NextOrderBy != nil:
			OrderBy(out[i].Items, p.NextOrderBy)
		}
	}
	return out
}

// buckets maps keys to bucket indexes. Keys usable as map keys go through
// index; the rest are scanned linearly.
type buckets struct {
	index map[any]int
	other []otherKey
}

type otherKey struct {
	key any
	i   int
}

// nanKey stands in for NaN, which never equals itself.
type nanKey struct{ typ reflect.Type }

func (b *buckets) find(key any) (int, bool) {
	if id, ok := hashable(key); ok {
		i, found := b.index[id]
		return i, found
	}
	for _, o := range b.other {
		if reflect.DeepEqual(o.key, key) {
			return o.i, true
		}
	}
	return 0, false
}

func (b *buckets) add(key any, i int) {
	if id, ok := hashable(key); ok {
		if b.index == nil {
			b.index = make(map[any]int)
		}
		b.index[id] = i
		return
	}
	b.other = append(b.other, otherKey{key: key, i: i})
}

func hashable(key any) (any, bool) {
	if key == nil {
		return nil, true
	}
	v := reflect.ValueOf(key)
	if isFloat(v.Kind()) && math.IsNaN(v.Float()) {
		return nanKey{typ: v.Type()}, true
	}
	if v.Comparable() {
		return key, true
	}
	return nil, false
}
