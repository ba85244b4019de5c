package outcome

import "fmt"

// FailureError carries a failure payload whose type does not itself satisfy
// error. Unwrap of a failed Result returns it so callers can recover the
// original E.
type FailureError[E any] struct {
	Payload E
}

func (e *FailureError[E]) Error() string {
	return fmt.Sprintf("outcome: failure: %v", e.Payload)
}

// failureAsError converts a failure payload to an error: E values already
// satisfying error keep their identity, anything else is wrapped.
func failureAsError[E any](e E) error {
	if err, ok := any(e).(error); ok && err != nil {
		return err
	}
	return &FailureError[E]{Payload: e}
}
