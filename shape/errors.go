package shape

import "errors"

// Sentinel errors returned by field and rank constructors.
var (
	// ErrUnknownField is returned when a struct type has no exported field
	// with the requested name.
	ErrUnknownField = errors.New("shape: unknown field")

	// ErrNotStruct is returned by StructField when the record type is
	// neither a struct nor a pointer to one.
	ErrNotStruct = errors.New("shape: record type is not a struct")

	// ErrRankOutOfRange is returned by NewRankTable for ranks that collide
	// with the reserved sentinel range.
	ErrRankOutOfRange = errors.New("shape: rank out of range")
)
