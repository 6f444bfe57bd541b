// Package errors provides sentinel errors and error helpers for the chess
// rules engine. It defines the common failure conditions so callers can
// inspect them with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates square text outside a1..h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrIllegalMoveText indicates SAN text that cannot be parsed.
	ErrIllegalMoveText = errors.New("illegal move text")

	// ErrNoMatchingMove indicates SAN text with no legal realization
	// in the current position.
	ErrNoMatchingMove = errors.New("no matching move")

	// ErrAmbiguousMove indicates SAN text matching more than one legal move.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Is reports whether any error in err's tree matches target.
// It lets importers of this package avoid also importing the standard errors.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
