package chess

import (
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square is a board index 0..63 computed as rank*8+file, with file 0 = 'a'
// and rank 0 = '1'.
type Square int

// NoSquare is returned when a square does not exist, e.g. a missing king.
const NoSquare Square = -1

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Corner squares the rooks start on.
const (
	A1 Square = 0
	E1 Square = 4
	H1 Square = 7
	A8 Square = 56
	E8 Square = 60
	H8 Square = 63
)

// NewSquare builds a square from zero-based file and rank.
// It returns NoSquare when either is off the board.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// ParseSquare converts algebraic text such as "e4" to a square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, errors.Wrapf(errors.ErrInvalidSquare, "%q", text)
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, errors.Wrapf(errors.ErrInvalidSquare, "%q", text)
	}
	return NewSquare(int(file-FileBase), int(rank-RankBase)), nil
}

// MustSquare is like ParseSquare but panics on malformed input.
// It is intended for constants and tests.
func MustSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// File returns the zero-based file (0 = 'a').
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the zero-based rank (0 = '1').
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// FileLetter returns the file as a letter 'a'..'h'.
func (s Square) FileLetter() byte {
	return byte(FileBase + s.File())
}

// RankDigit returns the rank as a digit '1'..'8'.
func (s Square) RankDigit() byte {
	return byte(RankBase + s.Rank())
}

// String returns the algebraic name of the square, or "-" if invalid.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.FileLetter(), s.RankDigit()})
}
