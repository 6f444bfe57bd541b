package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

func TestFixturesLoad(t *testing.T) {
	for _, fen := range []string{FoolsMateFEN, StalemateFEN, CastlingFEN, TwoKnightsFEN} {
		if ParseTestBoard(fen) == nil {
			t.Errorf("fixture %q does not load", fen)
		}
	}
	if ParseTestBoard("not a fen") != nil {
		t.Error("ParseTestBoard accepted a malformed FEN")
	}
}

func TestMustPlay(t *testing.T) {
	board := MustBoard(t, engine.InitialFEN)
	MustPlay(t, board, "e2e4", "e7e5", "g1f3")

	AssertEqual(t, len(board.History), 3)
	AssertEqual(t, board.ToMove, chess.Black)
	AssertEqual(t, engine.BoardToFEN(board), "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 1")
}
