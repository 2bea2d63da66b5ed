package core

import "errors"

// Validation failures are deterministic and fatal to the construction
// attempt that raised them; retrying with the same input always fails the
// same way.
var (
	// ErrInvalidType reports a state element of the wrong primitive kind,
	// such as a dense cell byte outside {0, 1}.
	ErrInvalidType = errors.New("invalid cell type")

	// ErrInvalidShape reports a malformed state layout: dense rows of
	// unequal length, or a coordinate pair that is not two components.
	ErrInvalidShape = errors.New("invalid state shape")

	// ErrValueOutOfRange reports a driver-level configuration value that
	// does not fit the display, such as a negative cell size.
	ErrValueOutOfRange = errors.New("value out of range")
)
