package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Positions shared by several test suites.
const (
	// FoolsMateFEN is the final position of 1. f3 e5 2. g4 Qh4#.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1"

	// StalemateFEN has Black's lone king on a8 with no move and not in check.
	StalemateFEN = "k7/8/1QK5/8/8/8/8/8 b - - 0 1"

	// CastlingFEN has both kings and all four rooks on their home squares.
	CastlingFEN = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	// TwoKnightsFEN has two white knights that can both reach d2.
	TwoKnightsFEN = "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1"
)

// ParseTestBoard loads a FEN position, or returns nil if it is malformed.
// Use this for tests where a load failure is an acceptable outcome.
func ParseTestBoard(fen string) *chess.Board {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil
	}
	return board
}

// MustBoard loads a FEN position and calls t.Fatal if it is malformed.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to load FEN %q: %v", fen, err)
	}
	return board
}

// MustPlay applies coordinate moves such as "e2e4" to the board in order
// and calls t.Fatal on the first one that is malformed or illegal.
func MustPlay(t *testing.T, board *chess.Board, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if len(text) != 4 {
			t.Fatalf("malformed coordinate move %q", text)
		}
		from, err := chess.ParseSquare(text[:2])
		if err != nil {
			t.Fatalf("move %q: %v", text, err)
		}
		to, err := chess.ParseSquare(text[2:])
		if err != nil {
			t.Fatalf("move %q: %v", text, err)
		}
		if err := engine.ApplyMove(board, chess.NewMove(from, to, chess.Normal)); err != nil {
			t.Fatalf("move %q: %v", text, err)
		}
	}
}
