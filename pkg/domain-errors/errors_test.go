package domainerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	t.Run("extracts code from chain", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", New(CodeConflict, "lost the race"))
		if got := CodeOf(err); got != CodeConflict {
			t.Fatalf("CodeOf = %s, want %s", got, CodeConflict)
		}
	})

	t.Run("defaults to internal", func(t *testing.T) {
		if got := CodeOf(errors.New("plain")); got != CodeInternal {
			t.Fatalf("CodeOf = %s, want %s", got, CodeInternal)
		}
	})
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, CodePersistence, "transaction failed")

	if !errors.Is(err, cause) {
		t.Fatal("wrapped cause must remain in the chain")
	}
	if !HasCode(err, CodePersistence) {
		t.Fatal("expected persistence code")
	}
	if MessageOf(err) != "transaction failed" {
		t.Fatalf("MessageOf = %q", MessageOf(err))
	}
	// The safe message never contains the cause; Error() does.
	if err.Message() == err.Error() {
		t.Fatal("Error() should include the cause, Message() should not")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := Newf(CodeNotFound, "applicant %s not found", "abc")
	if !errors.Is(err, New(CodeNotFound, "")) {
		t.Fatal("errors with the same code must match")
	}
	if errors.Is(err, New(CodeConflict, "")) {
		t.Fatal("errors with different codes must not match")
	}
}
