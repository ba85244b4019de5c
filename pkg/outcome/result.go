package outcome

import (
	"reflect"

	"github.com/ib-77/outcome/pkg/outcome/variant"
)

// Result holds exactly one active payload: a success value of type T or a
// failure value of type E. T and E must be distinct types; constructing a
// Result over identical type arguments is a contract violation and panics.
//
// The zero value is a success holding the zero value of T.
type Result[T, E any] struct {
	alt variant.Of2[T, E]
}

// Unit is the "no value" marker. Result[Unit, E] reports only whether an
// operation completed; use Done to construct its success state.
type Unit struct{}

func Success[T, E any](v T) Result[T, E] {
	assertDistinct[T, E]()
	return Result[T, E]{alt: variant.First[T, E](v)}
}

func Failure[T, E any](e E) Result[T, E] {
	assertDistinct[T, E]()
	return Result[T, E]{alt: variant.Second[T, E](e)}
}

// Done returns the success state of the no-value specialization.
func Done[E any]() Result[Unit, E] {
	return Success[Unit, E](Unit{})
}

// Try converts a conventional (value, error) pair into a Result. A nil error
// yields a success carrying v.
func Try[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Failure[T, error](err)
	}
	return Success[T, error](v)
}

// HasValue reports whether the success state is active.
func (r Result[T, E]) HasValue() bool {
	return r.alt.Active() == variant.TagFirst
}

// IsFailure reports whether the failure state is active.
func (r Result[T, E]) IsFailure() bool {
	return !r.HasValue()
}

func assertDistinct[T, E any]() {
	t := reflect.TypeOf((*T)(nil)).Elem()
	e := reflect.TypeOf((*E)(nil)).Elem()
	if t == e {
		panic("outcome: success and failure types must differ (got " + t.String() + " for both)")
	}
}
