// Package variant implements a closed tagged union over exactly two
// alternatives. It is the storage primitive behind outcome.Result: at any
// time exactly one alternative is active, and dispatch is driven by the
// active tag rather than by the caller branching on state.
//
// Highlights:
//   - First/Second: construct an Of2 holding one alternative
//   - Active: report which alternative is stored
//   - Match: exhaustive dispatch returning a common type
//   - TryFirst/TrySecond: dispatch for one alternative, failing with
//     ErrAlternative when the other one is stored
//
// The zero value of Of2 holds the first alternative with its zero value.
package variant
