package outcome

// Equal reports whether two Results of the same instantiation hold the same
// state with equal payloads. Payload equality is the payload type's own ==;
// cross-state comparisons are false, never an error.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	return Match(a,
		func(av T) bool { return EqualsValue(b, av) },
		func(ae E) bool { return EqualsError(b, ae) })
}

// EqualsValue reports whether r is a success holding a value equal to v.
func EqualsValue[T, E comparable](r Result[T, E], v T) bool {
	got, err := r.alt.TryFirst()
	return err == nil && got == v
}

// EqualsError reports whether r is a failure holding a payload equal to e.
func EqualsError[T, E comparable](r Result[T, E], e E) bool {
	got, err := r.alt.TrySecond()
	return err == nil && got == e
}
