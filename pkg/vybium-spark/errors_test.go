package vybiumspark

import (
	"errors"
	"fmt"
	"testing"
)

func TestArgumentErrorMessage(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := &ArgumentError{Code: ErrInvalidInput, Message: "bad length"}
		got := err.Error()
		want := "vybium-spark error [3]: bad length"
		if got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("with cause", func(t *testing.T) {
		cause := fmt.Errorf("underlying failure")
		err := &ArgumentError{Code: ErrProofVerification, Message: "check failed", Cause: cause}
		got := err.Error()
		want := "vybium-spark error [5]: check failed (caused by: underlying failure)"
		if got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})
}

func TestArgumentErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := &ArgumentError{Code: ErrUnknown, Message: "wrapped", Cause: cause}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
}

func TestArgumentErrorIs(t *testing.T) {
	a := &ArgumentError{Code: ErrProofGeneration, Message: "first"}
	b := &ArgumentError{Code: ErrProofGeneration, Message: "second"}
	c := &ArgumentError{Code: ErrProofVerification, Message: "third"}

	if !errors.Is(a, b) {
		t.Errorf("errors with the same code should match via Is")
	}
	if errors.Is(a, c) {
		t.Errorf("errors with different codes should not match via Is")
	}
	if errors.Is(a, fmt.Errorf("plain error")) {
		t.Errorf("an ArgumentError should not match a plain error")
	}
}
