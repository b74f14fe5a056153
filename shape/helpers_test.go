package shape_test

import "github.com/hasbyte1/go-shaping-utils/shape"

type person struct {
	ID     string
	Name   string
	Age    int
	Dept   string
	Height float64
	Kind   string
}

var (
	pAge    = shape.MustStructField[*person]("Age")
	pName   = shape.MustStructField[*person]("Name")
	pDept   = shape.MustStructField[*person]("Dept")
	pHeight = shape.MustStructField[*person]("Height")
	pKind   = shape.MustStructField[*person]("Kind")
)

// sample is the canonical three-record fixture: A and C share an age.
func sample() []*person {
	return []*person{
		{Name: "A", Age: 30},
		{Name: "B", Age: 25},
		{Name: "C", Age: 30},
	}
}

func names(people []*person) []string {
	out := make([]string, len(people))
	for i, p := range people {
		out[i] = p.Name
	}
	return out
}

func records() []map[string]any {
	return []map[string]any{
		{"name": "Ada", "dept": "eng", "age": 36, "meta": map[string]any{"team": "core"}},
		{"name": "Bob", "dept": "ops", "age": 29, "meta": map[string]any{"team": "infra"}},
		{"name": "Cy", "dept": "eng", "age": 29, "meta": map[string]any{"team": "core"}},
		{"name": "Di", "dept": "eng", "age": 41},
	}
}
