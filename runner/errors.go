package runner

import "errors"

var (
	// ErrRequestShape is returned when required parameters are missing or
	// malformed. It is always detected before any file access, except for a
	// query index beyond the source node set, which needs the loaded graph.
	ErrRequestShape = errors.New("runner: invalid request")

	// ErrUnknownEntity is returned when a query name is not a label of the
	// source node set.
	ErrUnknownEntity = errors.New("runner: unknown entity")
)
