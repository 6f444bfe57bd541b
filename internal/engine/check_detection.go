package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A colour without a king on the board is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)
	if king == chess.NoSquare {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour attacks the square.
// Every square is scanned and the first attacker found ends the search. The
// board is only read.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	if !sq.Valid() {
		return false
	}

	for from := chess.Square(0); from < chess.NumSquares; from++ {
		piece := board.Squares[from]
		if piece == chess.Empty || piece.Colour() != byColour || from == sq {
			continue
		}
		if attacks(board, piece, from, sq) {
			return true
		}
	}

	return false
}

// attacks applies the geometric attack test of one piece against a target.
func attacks(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	dx := to.File() - from.File()
	dy := to.Rank() - from.Rank()
	colDiff, rankDiff := abs(dx), abs(dy)

	switch piece.Type() {
	case chess.Rook:
		return (colDiff == 0 || rankDiff == 0) && isPathClear(board, from, to)

	case chess.Bishop:
		return colDiff == rankDiff && isPathClear(board, from, to)

	case chess.Queen:
		return isLine(from, to) && isPathClear(board, from, to)

	case chess.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.King:
		return colDiff <= 1 && rankDiff <= 1

	case chess.Pawn:
		// Pawns only attack diagonally forward, never straight ahead.
		return colDiff == 1 && dy == chess.ColourOffset(piece.Colour())
	}

	return false
}
