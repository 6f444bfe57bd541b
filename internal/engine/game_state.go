package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Status is the state of a game at a given position.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// Result is the outcome of a position. Winner is only meaningful for
// Checkmate.
type Result struct {
	Status Status
	Winner chess.Colour
}

// String describes the result, e.g. "checkmate, Black wins".
func (r Result) String() string {
	if r.Status == Checkmate {
		return r.Status.String() + ", " + r.Winner.String() + " wins"
	}
	return r.Status.String()
}

// Token returns the PGN result token: "1-0", "0-1", "1/2-1/2" or "*".
func (r Result) Token() string {
	switch r.Status {
	case Checkmate:
		if r.Winner == chess.White {
			return "1-0"
		}
		return "0-1"
	case Stalemate:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// GameResult classifies the position for the side to move. Any legal move,
// castling included, means the game goes on. Otherwise it is checkmate when
// the side to move is in check and stalemate when it is not.
func GameResult(board *chess.Board) Result {
	if len(LegalMoves(board)) > 0 {
		return Result{Status: Ongoing}
	}
	if IsInCheck(board, board.ToMove) {
		return Result{Status: Checkmate, Winner: board.ToMove.Opposite()}
	}
	return Result{Status: Stalemate}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}
