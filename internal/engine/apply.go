package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ApplyMove validates a move and, if it is legal, plays it on the board:
// pieces are moved (the rook too when castling), castling rights are
// updated, the side to move flips and the move is appended to the history.
// An illegal move returns an error and leaves the board untouched.
func ApplyMove(board *chess.Board, move chess.Move) error {
	if err := CheckMove(board, move); err != nil {
		return err
	}
	applyUnchecked(board, move)
	return nil
}

// applyUnchecked plays a move already known to be legal.
func applyUnchecked(board *chess.Board, move chess.Move) {
	piece := board.Get(move.From)
	captured := board.Get(move.To)

	movePieces(board, move)
	updateCastlingRights(board, move, piece, captured)

	board.ToMove = board.ToMove.Opposite()
	board.History = append(board.History, move)
}

// movePieces relocates the moving piece, and the rook for castling. Nothing
// else about the board changes.
func movePieces(board *chess.Board, move chess.Move) {
	piece := board.Get(move.From)
	board.Set(move.From, chess.Empty)
	board.Set(move.To, piece)

	if move.IsCastle() {
		squares := CastlingSquares(piece.Colour(), move.Type == chess.CastleKingSide)
		rook := board.Get(squares.RookFrom)
		board.Set(squares.RookFrom, chess.Empty)
		board.Set(squares.RookTo, rook)
	}
}

// PlayOnCopy returns a simulation copy of the board with the move played
// and the side to move flipped. The move is not validated.
func PlayOnCopy(board *chess.Board, move chess.Move) *chess.Board {
	sim := board.Simulate()
	piece := sim.Get(move.From)
	captured := sim.Get(move.To)
	movePieces(sim, move)
	if piece != chess.Empty {
		updateCastlingRights(sim, move, piece, captured)
	}
	sim.ToMove = sim.ToMove.Opposite()
	return sim
}
