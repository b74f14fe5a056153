// Package render turns [shape.Group] results into documents.
//
// A group is a fixed two-field structure in package shape (Key plus
// Items or Groups). The output names of those two fields are chosen per
// grouping predicate (LabelName and SubListName) and are applied here, at
// the serialization boundary:
//
//	groups := shape.GroupBy(rows, shape.GroupOn(shape.MapField("dept")).
//	    Labeled("department").
//	    SubList("people"))
//
//	out, _ := render.JSON(groups)
//	// [{"department":"eng","people":[...]},{"department":"ops","people":[...]}]
//
// Every document keeps the label before the member list. When both names
// are equal the member list wins, the label is dropped.
//
// [Digest] fingerprints rendered output so that two runs of the same plan
// over the same input can be compared cheaply.
package render
