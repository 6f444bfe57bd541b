package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// CastleSquares holds the fixed squares involved in one castling move.
type CastleSquares struct {
	KingFrom chess.Square
	KingTo   chess.Square
	RookFrom chess.Square
	RookTo   chess.Square
}

// CastlingSquares returns the king and rook squares for castling.
func CastlingSquares(colour chess.Colour, kingSide bool) CastleSquares {
	rank := chess.BackRank(colour)
	if kingSide {
		return CastleSquares{
			KingFrom: chess.NewSquare(4, rank),
			KingTo:   chess.NewSquare(6, rank),
			RookFrom: chess.NewSquare(7, rank),
			RookTo:   chess.NewSquare(5, rank),
		}
	}
	return CastleSquares{
		KingFrom: chess.NewSquare(4, rank),
		KingTo:   chess.NewSquare(2, rank),
		RookFrom: chess.NewSquare(0, rank),
		RookTo:   chess.NewSquare(3, rank),
	}
}

// CastleMove builds the castling move for a colour.
func CastleMove(colour chess.Colour, kingSide bool) chess.Move {
	squares := CastlingSquares(colour, kingSide)
	moveType := chess.CastleQueenSide
	if kingSide {
		moveType = chess.CastleKingSide
	}
	return chess.NewMove(squares.KingFrom, squares.KingTo, moveType)
}

// CanCastle checks whether the side to move may castle on the given wing.
//
// The right must still be held, the king and rook must stand on their
// starting squares, every square between them must be empty, and the king
// must not be in check nor pass through or land on an attacked square.
func CanCastle(board *chess.Board, kingSide bool) bool {
	colour := board.ToMove
	if !board.Castling.Has(colour, kingSide) {
		return false
	}

	squares := CastlingSquares(colour, kingSide)
	if board.Get(squares.KingFrom) != chess.MakePiece(colour, chess.King) ||
		board.Get(squares.RookFrom) != chess.MakePiece(colour, chess.Rook) {
		return false
	}

	if !isPathClear(board, squares.KingFrom, squares.RookFrom) {
		return false
	}

	opponent := colour.Opposite()
	step := sign(squares.KingTo - squares.KingFrom)
	for sq := squares.KingFrom; ; sq += step {
		if IsSquareAttacked(board, sq, opponent) {
			return false
		}
		if sq == squares.KingTo {
			break
		}
	}

	return true
}

// updateCastlingRights removes the rights a move gives up: both rights when
// the king moves, and one wing when a rook leaves or is captured on its
// corner.
func updateCastlingRights(board *chess.Board, move chess.Move, piece, captured chess.Piece) {
	colour := piece.Colour()
	switch piece.Type() {
	case chess.King:
		board.Castling.ClearColour(colour)
	case chess.Rook:
		clearRookRight(board, move.From)
	}
	if captured != chess.Empty && captured.Type() == chess.Rook {
		clearRookRight(board, move.To)
	}
}

func clearRookRight(board *chess.Board, sq chess.Square) {
	switch sq {
	case chess.A1:
		board.Castling.Clear(chess.White, false)
	case chess.H1:
		board.Castling.Clear(chess.White, true)
	case chess.A8:
		board.Castling.Clear(chess.Black, false)
	case chess.H8:
		board.Castling.Clear(chess.Black, true)
	}
}
