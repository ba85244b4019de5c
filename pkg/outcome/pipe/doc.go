// Package pipe lifts the outcome combinators over channels for
// fan-out/fan-in flows. Stages invoke their supplied functions synchronously
// inside worker goroutines; there is no deferred-result or promise concept,
// only channel plumbing around the same Map/AndThen semantics.
//
// Common usage:
//   - Source: feed values into a channel of successful results
//   - Run/Turnout: execute a stage over an input channel with a fixed number
//     of workers (Turnout switches the value type)
//   - MapStage/AndThenStage/TryStage: build stages from plain functions
//   - Finally: collapse Result[In, E] to Out on the way out
//   - Collect: drain a channel into a slice
//
// Cancellation follows the context: once ctx is done, workers stop and
// remaining inputs are left unconsumed.
package pipe
