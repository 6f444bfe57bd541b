package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnViolation checks the movement pattern of a pawn.
//
// A pawn captures one square diagonally forward onto an occupied square.
// Onto an empty square it pushes one square forward, or two from its start
// rank when the square it passes over is empty too. Promotion and en passant
// are not modelled.
func pawnViolation(board *chess.Board, colour chess.Colour, from, to chess.Square) Violation {
	dir := chess.ColourOffset(colour)
	dx := to.File() - from.File()
	dy := to.Rank() - from.Rank()

	if board.Get(to) != chess.Empty {
		if abs(dx) == 1 && dy == dir {
			return NoViolation
		}
		return InvalidGeometry
	}

	if dx != 0 {
		return InvalidGeometry
	}

	switch {
	case dy == dir:
		return NoViolation

	case dy == 2*dir && from.Rank() == chess.PawnStartRank(colour):
		passed := chess.NewSquare(from.File(), from.Rank()+dir)
		if board.Get(passed) != chess.Empty {
			return PathBlocked
		}
		return NoViolation
	}

	return InvalidGeometry
}
