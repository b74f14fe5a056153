// Package plan declares grouping and ordering of map[string]any records in
// YAML (or JSON) and compiles the declaration into package shape
// predicates.
//
//	language: en
//	groupBy:
//	  field: dept
//	  label: department
//	  subList: people
//	  derive: fold
//	  deleteField: true
//	  then:
//	    field: meta.team
//	    orderBy:
//	      - field: age
//	        order: desc
//	orderBy:
//	  - field: kind
//	    derive: rank
//	ranks:
//	  table: {gold: 1, silver: 2}
//	  reference: {kind: bronze}
//	  referenceField: kind
//	defaults:
//	  meta.team: unassigned
//
// Fields are dot-notation paths into the records. Derive names one of the
// built-in key derivations: identity, lower, upper, fold, title, number,
// length and rank.
//
// Load and Parse only decode. Validate reports every problem at once;
// Compile validates and builds the predicates; a [Runner] executes them.
package plan
