package outcome

import "github.com/ib-77/outcome/pkg/outcome/variant"

// Map applies fn to the stored value and wraps the outcome as a success. A
// failure passes through unchanged and fn is never invoked.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	return Match(r,
		func(v T) Result[U, E] { return Success[U, E](fn(v)) },
		Failure[U, E])
}

// Map is the same-type form; use the package-level Map to change the value
// type.
func (r Result[T, E]) Map(fn func(T) T) Result[T, E] {
	return Map(r, fn)
}

// AndThen invokes fn with the stored value and returns its Result directly.
// A failure short-circuits: fn is never invoked and the payload passes
// through unchanged. This is the monadic bind for the common E2 = E case.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	return Match(r, fn, Failure[U, E])
}

// AndThen is the same-type form; use the package-level AndThen to change the
// value type.
func (r Result[T, E]) AndThen(fn func(T) Result[T, E]) Result[T, E] {
	return AndThen(r, fn)
}

// AndThenInto is the cross-error-type bind: a failure is carried into the
// E2 lane through convert, a success flows through fn. Exactly one of
// {fn invoked once, failure converted} happens.
func AndThenInto[T, U, E, E2 any](r Result[T, E], convert func(E) E2, fn func(T) Result[U, E2]) Result[U, E2] {
	return Match(r, fn,
		func(e E) Result[U, E2] { return Failure[U, E2](convert(e)) })
}

// MapError transforms the failure payload, leaving a success untouched.
func MapError[T, E, E2 any](r Result[T, E], fn func(E) E2) Result[T, E2] {
	return Match(r, Success[T, E2],
		func(e E) Result[T, E2] { return Failure[T, E2](fn(e)) })
}

// Match dispatches to the handler selected by the active state and returns
// its outcome. Exactly one handler runs, exactly once.
func Match[T, E, R any](r Result[T, E], onValue func(T) R, onFailure func(E) R) R {
	return variant.Match(r.alt, onValue, onFailure)
}
