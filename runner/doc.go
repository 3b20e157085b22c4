// Package runner is the entry point of a propagation request.
//
// A Runner validates a Config/Request pair, then performs, in strict order:
//
//	load (Loader) → query resolution → propagate (Propagator) → rank → save (Sink)
//
// Nothing is read from disk before the request shape is known to be valid,
// and the Sink is called at most once, with the complete RankedList, after
// every earlier stage succeeded.
//
// Queries are a tagged variant, QuerySelector = ByIndex | ByName. A name is
// resolved against the labels of the source node set once, here; the engine
// only ever sees indices.
//
// Run maps the outcome to a status (StatusOK / StatusFailure) and writes the
// diagnostic to the injected logger. Execute returns the error itself; match
// it with errors.Is against ErrRequestShape, network.ErrDataLoad,
// ErrUnknownEntity, route.ErrNoPath or propagate.ErrUnknownCorrelationFunction.
package runner
