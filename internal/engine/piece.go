package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// movementViolation checks whether a piece can make a normal (non-castling)
// move from one square to another, ignoring king safety.
func movementViolation(board *chess.Board, piece chess.Piece, from, to chess.Square) Violation {
	colDiff := abs(to.File() - from.File())
	rankDiff := abs(to.Rank() - from.Rank())

	var ok bool
	switch piece.Type() {
	case chess.Pawn:
		return pawnViolation(board, piece.Colour(), from, to)

	case chess.Knight:
		ok = (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		ok = colDiff == rankDiff

	case chess.Rook:
		ok = (colDiff == 0) != (rankDiff == 0)

	case chess.Queen:
		ok = colDiff == rankDiff || (colDiff == 0) != (rankDiff == 0)

	case chess.King:
		ok = colDiff <= 1 && rankDiff <= 1
	}

	if !ok {
		return InvalidGeometry
	}
	if piece.Type().IsSliding() && !isPathClear(board, from, to) {
		return PathBlocked
	}
	return NoViolation
}
