package shape_test

import (
	"fmt"

	"github.com/hasbyte1/go-shaping-utils/shape"
)

type Person struct {
	Name string
	Age  int
}

func ExampleGroupBy() {
	people := []*Person{{"A", 30}, {"B", 25}, {"C", 30}}
	age := shape.MustStructField[*Person]("Age")

	for _, g := range shape.GroupBy(people, shape.GroupOn(age).Labeled("age")) {
		fmt.Print(g.LabelName, "=", g.Key, ":")
		for _, p := range g.Items {
			fmt.Print(" ", p.Name)
		}
		fmt.Println()
	}
	// Output:
	// age=30: A C
	// age=25: B
}

func ExampleOrderBy() {
	people := []*Person{{"A", 30}, {"B", 25}, {"C", 30}}
	age := shape.MustStructField[*Person]("Age")
	name := shape.MustStructField[*Person]("Name")

	shape.OrderBy(people, shape.SortBy(age).Desc().ThenBy(shape.SortBy(name).Desc()))
	for _, p := range people {
		fmt.Println(p.Name, p.Age)
	}
	// Output:
	// C 30
	// A 30
	// B 25
}

func ExampleGroupBy_mapRecords() {
	rows := []map[string]any{
		{"team": map[string]any{"name": "core"}, "user": "ada"},
		{"team": map[string]any{"name": "infra"}, "user": "bob"},
		{"team": map[string]any{"name": "core"}, "user": "cy"},
	}
	p := shape.GroupOn(shape.MapField("team.name")).
		DeleteField().
		ThenOrderBy(shape.SortBy(shape.MapField("user")).Desc())

	for _, g := range shape.GroupBy(rows, p) {
		fmt.Println(g.Key, g.Items)
	}
	// Output:
	// core [map[team:map[] user:cy] map[team:map[] user:ada]]
	// infra [map[team:map[] user:bob]]
}

func ExampleCustomOrder() {
	current := map[string]any{"type": "mine"}
	fmt.Println(shape.CustomOrder("KEY_C", current, "type"))
	fmt.Println(shape.CustomOrder("mine", current, "type") == shape.RankSpecific)
	fmt.Println(shape.CustomOrder("yours", current, "type") == shape.RankOther)
	// Output:
	// 2
	// true
	// true
}
