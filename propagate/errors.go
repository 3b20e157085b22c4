package propagate

import "errors"

// Sentinel errors for propagation.
var (
	// ErrUnknownCorrelationFunction is returned for an unregistered combine
	// policy name.
	ErrUnknownCorrelationFunction = errors.New("propagate: unknown correlation function")

	// ErrSeedOutOfRange is returned when a seed index is not a valid entity
	// index of the source node set.
	ErrSeedOutOfRange = errors.New("propagate: seed index out of range")

	// ErrInvalidSeedWeight is returned for a negative, NaN or infinite seed
	// weight, or when weights and indices differ in length.
	ErrInvalidSeedWeight = errors.New("propagate: invalid seed weight")

	// ErrPathNil is returned if a nil path is passed.
	ErrPathNil = errors.New("propagate: path is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("propagate: invalid option supplied")
)
