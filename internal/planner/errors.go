package planner

import "errors"

var (
	// ErrLayoutNotFound indicates a required layout-strategy role could
	// not be resolved by name or category fallback. Fatal to the whole
	// conversion.
	ErrLayoutNotFound = errors.New("layout not found")

	// ErrPlanInvalid indicates resolution completed but recorded errors.
	// The returned plan is still complete and carries every diagnostic.
	ErrPlanInvalid = errors.New("plan validation failed")
)
