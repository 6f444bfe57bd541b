package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Violation classifies why a move is illegal.
type Violation int

const (
	NoViolation Violation = iota
	NoPiece
	WrongSide
	SelfCapture
	InvalidGeometry
	PathBlocked
	CastlingNotAllowed
	KingInCheck
	OffBoard
)

// String returns a short description of the violation.
func (v Violation) String() string {
	switch v {
	case NoViolation:
		return "legal"
	case NoPiece:
		return "no piece on the source square"
	case WrongSide:
		return "piece does not belong to the side to move"
	case SelfCapture:
		return "destination holds a piece of the same colour"
	case InvalidGeometry:
		return "piece cannot move that way"
	case PathBlocked:
		return "path is blocked"
	case CastlingNotAllowed:
		return "castling is not allowed"
	case KingInCheck:
		return "move leaves the king in check"
	case OffBoard:
		return "square is off the board"
	default:
		return "unknown violation"
	}
}

// Classify checks a move against the position and returns the first rule it
// breaks, or NoViolation. The board is not modified.
func Classify(board *chess.Board, move chess.Move) Violation {
	return classify(board, move, true)
}

// CheckMove returns nil if the move is legal, otherwise an error wrapping
// errors.ErrIllegalMove that names the broken rule.
func CheckMove(board *chess.Board, move chess.Move) error {
	if v := Classify(board, move); v != NoViolation {
		return errors.Wrapf(errors.ErrIllegalMove, "%s: %s", move.Coordinates(), v)
	}
	return nil
}

// IsLegal reports whether the described move is legal in the position.
func IsLegal(board *chess.Board, from, to chess.Square, moveType chess.MoveType) bool {
	return Classify(board, chess.NewMove(from, to, moveType)) == NoViolation
}

// IsLegalForCheckmateSearch is IsLegal for normal moves only. Castling is
// never considered because it cannot get a king out of check.
func IsLegalForCheckmateSearch(board *chess.Board, from, to chess.Square) bool {
	return classify(board, chess.NewMove(from, to, chess.Normal), false) == NoViolation
}

func classify(board *chess.Board, move chess.Move, allowCastling bool) Violation {
	if !move.From.Valid() || !move.To.Valid() {
		return OffBoard
	}

	piece := board.Get(move.From)
	if piece == chess.Empty {
		return NoPiece
	}
	colour := piece.Colour()
	if colour != board.ToMove {
		return WrongSide
	}

	target := board.Get(move.To)
	if target != chess.Empty && target.Colour() == colour {
		return SelfCapture
	}

	if move.IsCastle() {
		if !allowCastling || piece.Type() != chess.King {
			return CastlingNotAllowed
		}
		squares := CastlingSquares(colour, move.Type == chess.CastleKingSide)
		if move.From != squares.KingFrom || move.To != squares.KingTo {
			return CastlingNotAllowed
		}
		if !CanCastle(board, move.Type == chess.CastleKingSide) {
			return CastlingNotAllowed
		}
		// CanCastle has already checked every square the king crosses.
		return NoViolation
	}

	if move.From == move.To {
		return InvalidGeometry
	}
	if v := movementViolation(board, piece, move.From, move.To); v != NoViolation {
		return v
	}

	if !leavesKingSafe(board, move) {
		return KingInCheck
	}
	return NoViolation
}

// leavesKingSafe plays the move on a simulation copy and reports whether the
// mover's king is then unattacked. A side without a king is always safe.
func leavesKingSafe(board *chess.Board, move chess.Move) bool {
	colour := board.Get(move.From).Colour()
	sim := board.Simulate()
	movePieces(sim, move)

	king := sim.KingSquare(colour)
	if king == chess.NoSquare {
		return true
	}
	return !IsSquareAttacked(sim, king, colour.Opposite())
}
