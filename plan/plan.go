package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-shaping-utils/shape"
)

// Plan is the decoded form of a plan document.
type Plan struct {
	// Language is the BCP 47 tag used by the title derive. Defaults to und.
	Language string `yaml:"language,omitempty"`

	// GroupBy groups the records, recursively through Then.
	GroupBy *Grouping `yaml:"groupBy,omitempty"`

	// OrderBy orders the records. With GroupBy it runs first, so it decides
	// the order in which buckets are first seen.
	OrderBy []Sorting `yaml:"orderBy,omitempty"`

	// Ranks configures the rank derive. Without it the rank derive uses
	// shape.DefaultRanks and no reference record.
	Ranks *Ranks `yaml:"ranks,omitempty"`

	// Defaults fills dot-notation paths that a record lacks before the
	// records are ordered and grouped, so that they land in a named bucket
	// instead of the nil one.
	Defaults map[string]any `yaml:"defaults,omitempty"`
}

// Grouping is one level of grouping. OrderBy orders the members of each
// bucket and is ignored when Then is set.
type Grouping struct {
	Field       string    `yaml:"field"`
	Label       string    `yaml:"label,omitempty"`
	SubList     string    `yaml:"subList,omitempty"`
	Derive      string    `yaml:"derive,omitempty"`
	DeleteField bool      `yaml:"deleteField,omitempty"`
	Then        *Grouping `yaml:"then,omitempty"`
	OrderBy     []Sorting `yaml:"orderBy,omitempty"`
}

// Sorting is one level of a sort chain.
type Sorting struct {
	Field  string `yaml:"field"`
	Order  string `yaml:"order,omitempty"`
	Derive string `yaml:"derive,omitempty"`
}

// Ranks configures a custom rank table and the reference record used to
// detect the specific value.
type Ranks struct {
	Table          map[string]int `yaml:"table,omitempty"`
	Reference      map[string]any `yaml:"reference,omitempty"`
	ReferenceField string         `yaml:"referenceField,omitempty"`
}

// Load reads and decodes the plan file at path.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("plan: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML or JSON plan document. Unknown keys are rejected.
func Parse(data []byte) (*Plan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, ErrEmptyPlan)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	return &p, nil
}

// Validate checks p and returns every problem found, joined and wrapped in
// [ErrInvalidPlan].
func (p *Plan) Validate() error {
	var errs []error
	if p.GroupBy == nil && len(p.OrderBy) == 0 {
		errs = append(errs, ErrEmptyPlan)
	}
	if p.Language != "" {
		if _, err := language.Parse(p.Language); err != nil {
			errs = append(errs, fmt.Errorf("language %q: %w", p.Language, err))
		}
	}
	if p.Ranks != nil {
		if _, err := shape.NewRankTable(toRanks(p.Ranks.Table)); err != nil {
			errs = append(errs, fmt.Errorf("ranks: %w", err))
		}
	}
	for i, g := 0, p.GroupBy; g != nil; i, g = i+1, g.Then {
		path := "groupBy" + strings.Repeat(".then", i)
		if g.Field == "" {
			errs = append(errs, fmt.Errorf("%s: %w", path, ErrMissingField))
		}
		if err := checkDerive(g.Derive); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
		errs = append(errs, validateSorting(path+".orderBy", g.OrderBy)...)
	}
	errs = append(errs, validateSorting("orderBy", p.OrderBy)...)
	if _, ok := p.Defaults[""]; ok {
		errs = append(errs, fmt.Errorf("defaults: %w", ErrMissingField))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, errors.Join(errs...))
	}
	return nil
}

func validateSorting(path string, steps []Sorting) []error {
	var errs []error
	for i, s := range steps {
		if s.Field == "" {
			errs = append(errs, fmt.Errorf("%s[%d]: %w", path, i, ErrMissingField))
		}
		if _, err := parseOrder(s.Order); err != nil {
			errs = append(errs, fmt.Errorf("%s[%d]: %w", path, i, err))
		}
		if err := checkDerive(s.Derive); err != nil {
			errs = append(errs, fmt.Errorf("%s[%d]: %w", path, i, err))
		}
	}
	return errs
}

func parseOrder(s string) (shape.Order, error) {
	switch strings.ToLower(s) {
	case "", "asc", "ascending":
		return shape.Ascending, nil
	case "desc", "descending":
		return shape.Descending, nil
	}
	return shape.Ascending, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

func toRanks(table map[string]int) map[string]shape.Rank {
	out := make(map[string]shape.Rank, len(table))
	for name, r := range table {
		out[name] = shape.Rank(r)
	}
	return out
}
