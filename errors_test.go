package sm2

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrorIsCheck(t *testing.T) {
	// Wrapping with fmt.Errorf %w preserves the errors.Is chain.
	wrapped := fmt.Errorf("context: %w", ErrInvalidQuality)
	if !errors.Is(wrapped, ErrInvalidQuality) {
		t.Error("errors.Is(wrapped, ErrInvalidQuality) = false, want true")
	}
}

func TestSentinelErrorPrefix(t *testing.T) {
	msg := ErrInvalidQuality.Error()
	prefix := "sm2: "
	if len(msg) < len(prefix) || msg[:len(prefix)] != prefix {
		t.Errorf("%v should start with %q, got %q", ErrInvalidQuality, prefix, msg)
	}
}
