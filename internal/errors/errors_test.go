package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are distinct and
// can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN},
		{"ErrInvalidSquare", ErrInvalidSquare},
		{"ErrIllegalMove", ErrIllegalMove},
		{"ErrIllegalMoveText", ErrIllegalMoveText},
		{"ErrNoMatchingMove", ErrNoMatchingMove},
		{"ErrAmbiguousMove", ErrAmbiguousMove},
		{"ErrInvalidConfig", ErrInvalidConfig},
	}

	for i, a := range sentinels {
		t.Run(a.name, func(t *testing.T) {
			if !Is(a.err, a.err) {
				t.Errorf("Is(%v, %v) = false, want true", a.err, a.err)
			}
			for j, b := range sentinels {
				if i != j && errors.Is(a.err, b.err) {
					t.Errorf("errors.Is(%v, %v) = true, want false", a.err, b.err)
				}
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to load position: %w", ErrInvalidFEN)

	if !Is(wrapped, ErrInvalidFEN) {
		t.Errorf("Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

type candidateError struct {
	err   error
	count int
}

func (e *candidateError) Error() string { return fmt.Sprintf("%v (%d)", e.err, e.count) }
func (e *candidateError) Unwrap() error { return e.err }

// TestAs verifies that As reaches structured errors through wrapping
func TestAs(t *testing.T) {
	wrapped := Wrap(&candidateError{err: ErrAmbiguousMove, count: 2}, "resolving Nd2")

	var target *candidateError
	if !As(wrapped, &target) {
		t.Fatal("As() could not extract candidateError")
	}
	if target.count != 2 {
		t.Errorf("target.count = %d, want 2", target.count)
	}
	if !Is(wrapped, ErrAmbiguousMove) {
		t.Error("Is(wrapped, ErrAmbiguousMove) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %s at ply %d", "e2e5", 3)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "move e2e5 at ply 3") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}

	if Wrapf(nil, "move %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
