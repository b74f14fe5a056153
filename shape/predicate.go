package shape

// Order is the direction of one sorting level. The zero value sorts
// ascending.
type Order int

const (
	// Ascending puts smaller keys first.
	Ascending Order = 1
	// Descending puts larger keys first.
	Descending Order = -1
)

func (o Order) sign() int {
	if o == Descending {
		return -1
	}
	return 1
}

// String returns "asc" or "desc".
func (o Order) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// AfterGrouping selects what GroupBy does to a member record once it has
// been placed into its bucket.
type AfterGrouping int

const (
	// DoNothing leaves member records untouched.
	DoNothing AfterGrouping = iota
	// DeleteGroupField strips the grouped field from every member record.
	// This mutates the caller's records.
	DeleteGroupField
)

// String returns the symbolic name of a.
func (a AfterGrouping) String() string {
	if a == DeleteGroupField {
		return "DELETE_GROUP_FIELD"
	}
	return "DO_NOTHING"
}

// DefaultSubListName is the member-list name used when a grouping predicate
// does not set one.
const DefaultSubListName = "subList"

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// SortingPredicate is one level of a sort chain.
//
// The key of a record is Derive(Field.Get(record)), or the raw field value
// when Derive is nil. Next is consulted only when two records tie on this
// level. A nil predicate, or one with the zero Field, ends the chain.
type SortingPredicate[T any] struct {
	Field  Field[T]
	Order  Order
	Derive func(any) any
	Next   *SortingPredicate[T]
}

// SortBy starts an ascending sort chain on field.
func SortBy[T any](field Field[T]) *SortingPredicate[T] {
	return &SortingPredicate[T]{Field: field, Order: Ascending}
}

// Asc sets this level to ascending order and returns p.
func (p *SortingPredicate[T]) Asc() *SortingPredicate[T] {
	p.Order = Ascending
	return p
}

// Desc sets this level to descending order and returns p.
func (p *SortingPredicate[T]) Desc() *SortingPredicate[T] {
	p.Order = Descending
	return p
}

// DeriveWith sets the key derivation of this level and returns p.
func (p *SortingPredicate[T]) DeriveWith(fn func(any) any) *SortingPredicate[T] {
	p.Derive = fn
	return p
}

// ThenBy appends next to the end of the chain and returns the head p, so
// that calls read in priority order:
//
//	shape.SortBy(dept).ThenBy(shape.SortBy(age).Desc()).ThenBy(shape.SortBy(name))
func (p *SortingPredicate[T]) ThenBy(next *SortingPredicate[T]) *SortingPredicate[T] {
	last := p
	for last.Next != nil {
		last = last.Next
	}
	last.Next = next
	return p
}

// Depth returns the number of effective levels in the chain.
func (p *SortingPredicate[T]) Depth() int {
	n := 0
	for ; p.active(); p = p.Next {
		n++
	}
	return n
}

func (p *SortingPredicate[T]) active() bool {
	return p != nil && !p.Field.IsZero()
}

func (p *SortingPredicate[T]) key(item T) any {
	v := p.Field.Get(item)
	if p.Derive != nil {
		return p.Derive(v)
	}
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// GroupingPredicate describes one level of grouping.
//
// LabelName and SubListName only matter when a [Group] is rendered; they
// default to Field.Name and [DefaultSubListName]. When both NextGroupBy and
// NextOrderBy are set, NextGroupBy wins.
type GroupingPredicate[T any] struct {
	Field         Field[T]
	Derive        func(any) any
	LabelName     string
	SubListName   string
	AfterGrouping AfterGrouping
	NextGroupBy   *GroupingPredicate[T]
	NextOrderBy   *SortingPredicate[T]
}

// GroupOn starts a grouping predicate on field.
func GroupOn[T any](field Field[T]) *GroupingPredicate[T] {
	return &GroupingPredicate[T]{Field: field}
}

// Labeled sets the output name of the bucket key and returns p.
func (p *GroupingPredicate[T]) Labeled(name string) *GroupingPredicate[T] {
	p.LabelName = name
	return p
}

// SubList sets the output name of the member list and returns p.
func (p *GroupingPredicate[T]) SubList(name string) *GroupingPredicate[T] {
	p.SubListName = name
	return p
}

// DeleteField makes GroupBy strip the grouped field from member records
// and returns p.
func (p *GroupingPredicate[T]) DeleteField() *GroupingPredicate[T] {
	p.AfterGrouping = DeleteGroupField
	return p
}

// DeriveWith sets the bucket key derivation and returns p.
func (p *GroupingPredicate[T]) DeriveWith(fn func(any) any) *GroupingPredicate[T] {
	p.Derive = fn
	return p
}

// ThenGroupBy groups every bucket again with next and returns p.
func (p *GroupingPredicate[T]) ThenGroupBy(next *GroupingPredicate[T]) *GroupingPredicate[T] {
	p.NextGroupBy = next
	return p
}

// ThenOrderBy orders every bucket's members with next and returns p.
// Ignored when a NextGroupBy is also set.
func (p *GroupingPredicate[T]) ThenOrderBy(next *SortingPredicate[T]) *GroupingPredicate[T] {
	p.NextOrderBy = next
	return p
}

func (p *GroupingPredicate[T]) key(item T) any {
	if p.Field.IsZero() {
		return nil
	}
	v := p.Field.Get(item)
	if p.Derive != nil {
		return p.Derive(v)
	}
	return v
}

func (p *GroupingPredicate[T]) labelName() string {
	if p.LabelName != "" {
		return p.LabelName
	}
	return p.Field.Name
}

func (p *GroupingPredicate[T]) subListName() string {
	if p.SubListName != "" {
		return p.SubListName
	}
	return DefaultSubListName
}
