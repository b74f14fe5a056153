package plan

import (
	"maps"
	"slices"

	"golang.org/x/text/language"

	"github.com/hasbyte1/go-shaping-utils/shape"
)

// Record is the record type plans operate on.
type Record = map[string]any

// Compiled holds the predicates built from a plan. Either may be nil.
// Defaults lists the fill-in values in path order.
type Compiled struct {
	Group    *shape.GroupingPredicate[Record]
	Order    *shape.SortingPredicate[Record]
	Defaults []Default
}

// Default is a value written at Path into records that lack it.
type Default struct {
	Path  string
	Value any
}

// Compile validates p and builds its predicates.
func (p *Plan) Compile() (*Compiled, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	d := deriver{tag: language.Und, ranks: shape.DefaultRanks}
	if p.Language != "" {
		d.tag = language.MustParse(p.Language)
	}
	if p.Ranks != nil {
		if p.Ranks.Table != nil {
			// Already checked by Validate.
			d.ranks, _ = shape.NewRankTable(toRanks(p.Ranks.Table))
		}
		if p.Ranks.Reference != nil {
			d.ref = p.Ranks.Reference
		}
		d.field = p.Ranks.ReferenceField
	}

	order, err := buildSorting(d, p.OrderBy)
	if err != nil {
		return nil, err
	}
	group, err := buildGrouping(d, p.GroupBy)
	if err != nil {
		return nil, err
	}
	defaults := make([]Default, 0, len(p.Defaults))
	for _, path := range slices.Sorted(maps.Keys(p.Defaults)) {
		defaults = append(defaults, Default{Path: path, Value: p.Defaults[path]})
	}
	return &Compiled{Group: group, Order: order, Defaults: defaults}, nil
}

func buildGrouping(d deriver, g *Grouping) (*shape.GroupingPredicate[Record], error) {
	if g == nil {
		return nil, nil
	}
	derive, err := d.lookup(g.Derive)
	if err != nil {
		return nil, err
	}
	gp := shape.GroupOn(shape.MapField(g.Field)).DeriveWith(derive)
	if g.Label != "" {
		gp.Labeled(g.Label)
	}
	if g.SubList != "" {
		gp.SubList(g.SubList)
	}
	if g.DeleteField {
		gp.DeleteField()
	}

	next, err := buildGrouping(d, g.Then)
	if err != nil {
		return nil, err
	}
	if next != nil {
		gp.ThenGroupBy(next)
	}
	order, err := buildSorting(d, g.OrderBy)
	if err != nil {
		return nil, err
	}
	if order != nil {
		gp.ThenOrderBy(order)
	}
	return gp, nil
}

func buildSorting(d deriver, steps []Sorting) (*shape.SortingPredicate[Record], error) {
	var head *shape.SortingPredicate[Record]
	for _, s := range steps {
		order, err := parseOrder(s.Order)
		if err != nil {
			return nil, err
		}
		derive, err := d.lookup(s.Derive)
		if err != nil {
			return nil, err
		}
		sp := shape.SortBy(shape.MapField(s.Field)).DeriveWith(derive)
		sp.Order = order
		if head == nil {
			head = sp
		} else {
			head.ThenBy(sp)
		}
	}
	return head, nil
}
