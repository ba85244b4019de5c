package variant

import "errors"

// ErrAlternative reports a try-match against an alternative that is not the
// active one.
var ErrAlternative = errors.New("variant: stored alternative does not match")

// Tag identifies the active alternative of an Of2.
type Tag uint8

const (
	TagFirst Tag = iota
	TagSecond
)

// Of2 stores exactly one of two alternative types at a time. The zero value
// holds the first alternative with the zero value of A.
type Of2[A, B any] struct {
	first  A
	second B
	tag    Tag
}

// First returns an Of2 holding a as the active alternative.
func First[A, B any](a A) Of2[A, B] {
	return Of2[A, B]{first: a, tag: TagFirst}
}

// Second returns an Of2 holding b as the active alternative.
func Second[A, B any](b B) Of2[A, B] {
	return Of2[A, B]{second: b, tag: TagSecond}
}

// Active returns the tag of the stored alternative.
func (v Of2[A, B]) Active() Tag {
	return v.tag
}

// TryFirst returns the first alternative, or ErrAlternative if the second
// one is active.
func (v Of2[A, B]) TryFirst() (A, error) {
	if v.tag != TagFirst {
		var zero A
		return zero, ErrAlternative
	}
	return v.first, nil
}

// TrySecond returns the second alternative, or ErrAlternative if the first
// one is active.
func (v Of2[A, B]) TrySecond() (B, error) {
	if v.tag != TagSecond {
		var zero B
		return zero, ErrAlternative
	}
	return v.second, nil
}

// Match dispatches to the handler selected by the active alternative. Exactly
// one handler runs, exactly once.
func Match[A, B, R any](v Of2[A, B], onFirst func(A) R, onSecond func(B) R) R {
	if v.tag == TagSecond {
		return onSecond(v.second)
	}
	return onFirst(v.first)
}
