// Package chain provides a fluent wrapper around outcome.Result[T, E]
// for building synchronous chains of fallible steps.
//
// It composes Map, AndThen, Try, and Match behind a convenient Chain[T, E]
// type. Each chain carries a context for its callbacks plus an id and start
// time for tracing, so pipelines can be correlated in side effects without
// the Result itself carrying metadata.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or value
// - Then: switch to a new Result via a result-returning function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
