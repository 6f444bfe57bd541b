package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns every legal move for the side to move, castling
// included. Moves are ordered by source then destination square, with
// castling moves last.
func LegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move

	forEachCandidate(board, func(from, to chess.Square) bool {
		if IsLegal(board, from, to, chess.Normal) {
			moves = append(moves, chess.NewMove(from, to, chess.Normal))
		}
		return true
	})

	for _, kingSide := range []bool{true, false} {
		castle := CastleMove(board.ToMove, kingSide)
		if Classify(board, castle) == NoViolation {
			moves = append(moves, castle)
		}
	}

	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal
// move. Castling is not considered: whenever castling is legal the king
// could also step one square towards the rook.
func HasLegalMoves(board *chess.Board) bool {
	found := false
	forEachCandidate(board, func(from, to chess.Square) bool {
		if IsLegalForCheckmateSearch(board, from, to) {
			found = true
			return false
		}
		return true
	})
	return found
}

// forEachCandidate calls fn for every pair of a square holding a piece of
// the side to move and any other square. Iteration stops when fn returns
// false.
func forEachCandidate(board *chess.Board, fn func(from, to chess.Square) bool) {
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		piece := board.Squares[from]
		if piece == chess.Empty || piece.Colour() != board.ToMove {
			continue
		}
		for to := chess.Square(0); to < chess.NumSquares; to++ {
			if to == from {
				continue
			}
			if !fn(from, to) {
				return
			}
		}
	}
}
