// Package outcome provides Result[T, E], a container holding either a
// success value of type T or a failure value of type E. Functions return
// failures as data instead of unwinding the call stack, and chains of
// Map/AndThen propagate the first failure untouched to the end of the chain.
//
// Highlights:
// - Success/Failure: construct a Result in one of its two states
// - Try: bridge a Go (value, error) pair into a Result
// - HasValue/IsFailure: state inspection
// - Unwrap/MustValue/Err/ValueOr: value and failure access
// - Map/AndThen/AndThenInto/MapError: composition without branching
// - Match: exhaustive dispatch on the active state
// - Equal/EqualsValue/EqualsError: equality for comparable instantiations
//
// A Result is a plain value: assignment replaces the whole payload, the zero
// value is a success holding the zero value of T, and no operation blocks or
// synchronizes. Instances shared across goroutines follow the usual rule:
// concurrent reads are fine as long as no goroutine writes.
package outcome
