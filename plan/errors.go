package plan

import "errors"

// Sentinel errors returned by plan loading and validation.
var (
	// ErrInvalidPlan wraps every validation failure. The wrapped error joins
	// the individual problems.
	ErrInvalidPlan = errors.New("plan: invalid plan")

	// ErrEmptyPlan is returned when a document declares neither groupBy
	// nor orderBy.
	ErrEmptyPlan = errors.New("plan: nothing to do")

	// ErrUnknownDerive is returned for a derive name that is not built in.
	ErrUnknownDerive = errors.New("plan: unknown derive")

	// ErrUnknownOrder is returned for an order other than asc or desc.
	ErrUnknownOrder = errors.New("plan: unknown order")

	// ErrMissingField is returned when a grouping or sorting step has no
	// field.
	ErrMissingField = errors.New("plan: missing field")
)
