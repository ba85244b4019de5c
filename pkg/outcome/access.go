package outcome

// Unwrap returns the stored value, or the failure converted to an error. A
// failure payload that satisfies error is returned as-is, identity preserved;
// any other payload arrives wrapped in *FailureError[E]. Exactly one of the
// two return values is meaningful.
func (r Result[T, E]) Unwrap() (T, error) {
	if v, err := r.alt.TryFirst(); err == nil {
		return v, nil
	}
	e, _ := r.alt.TrySecond()
	var zero T
	return zero, failureAsError(e)
}

// MustValue returns the stored value and panics on a failure state, using the
// same error conversion as Unwrap.
func (r Result[T, E]) MustValue() T {
	v, err := r.Unwrap()
	if err != nil {
		panic(err)
	}
	return v
}

// Err returns the stored failure payload. Calling it on a success state is a
// contract violation and panics; inspect HasValue first.
func (r Result[T, E]) Err() E {
	e, err := r.alt.TrySecond()
	if err != nil {
		panic("outcome: Err called on a success result")
	}
	return e
}

// ValueOr returns the stored value if present, else def. It never panics.
// Not meaningful for Result[Unit, E].
func (r Result[T, E]) ValueOr(def T) T {
	if v, err := r.alt.TryFirst(); err == nil {
		return v
	}
	return def
}
