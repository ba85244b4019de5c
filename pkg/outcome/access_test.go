package outcome

import (
	"errors"
	"testing"
)

func TestUnwrapSuccess(t *testing.T) {
	t.Parallel()
	v, err := Success[int, error](3).Unwrap()
	if err != nil || v != 3 {
		t.Fatalf("expected (3, nil), got: (%v, %v)", v, err)
	}
}

func TestUnwrapFailureKeepsErrorIdentity(t *testing.T) {
	t.Parallel()
	orig := errors.New("boom")
	v, err := Failure[int](orig).Unwrap()

	if v != 0 {
		t.Fatalf("expected zero value alongside the error, got: %v", v)
	}
	if err != orig {
		t.Fatalf("expected the original error, identity preserved, got: %v", err)
	}
}

func TestUnwrapWrapsNonErrorPayload(t *testing.T) {
	t.Parallel()
	_, err := Failure[int, string]("code-7").Unwrap()

	var carrier *FailureError[string]
	if !errors.As(err, &carrier) {
		t.Fatalf("expected a *FailureError[string], got: %T", err)
	}
	if carrier.Payload != "code-7" {
		t.Fatalf("expected payload code-7, got: %q", carrier.Payload)
	}
}

func TestMustValuePanicsWithOriginalError(t *testing.T) {
	t.Parallel()
	orig := errors.New("must fail")

	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatalf("expected MustValue on a failure to panic")
		}
		if rec != orig {
			t.Fatalf("expected the original error as the panic value, got: %v", rec)
		}
	}()

	Failure[int](orig).MustValue()
}

func TestErrOnSuccessIsContractViolation(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Err on a success result to panic")
		}
	}()

	Success[int, error](1).Err()
}

func TestValueOr(t *testing.T) {
	t.Parallel()
	if got := Success[int, error](9).ValueOr(-1); got != 9 {
		t.Fatalf("expected stored value 9, got: %v", got)
	}
	if got := Failure[int](errors.New("gone")).ValueOr(-1); got != -1 {
		t.Fatalf("expected default -1, got: %v", got)
	}
}
