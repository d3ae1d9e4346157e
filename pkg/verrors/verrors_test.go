package verrors

import (
	"errors"
	"strings"
	"testing"
)

func TestIsMatchesKind(t *testing.T) {
	err := New(Malformed, "test.op", nil)
	if !Is(err, Malformed) {
		t.Error("Is(err, Malformed) = false, want true")
	}
	if Is(err, Io) {
		t.Error("Is(err, Io) = true, want false")
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("underlying failure")
	err := New(Io, "test.op", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is should see through Unwrap to the cause")
	}
}

func TestErrorStringIncludesOpAndKind(t *testing.T) {
	err := New(Codec, "test.op", nil)
	msg := err.Error()
	if msg == "" {
		t.Fatal("Error() returned an empty string")
	}
	if !strings.Contains(msg, "test.op") || !strings.Contains(msg, Codec.String()) {
		t.Errorf("Error() = %q, want it to include the op %q and the kind %q", msg, "test.op", Codec.String())
	}
}
