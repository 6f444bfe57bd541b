package san

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Error reports SAN text that could not be turned into a legal move.
// Err is one of errors.ErrIllegalMoveText, errors.ErrIllegalMove,
// errors.ErrNoMatchingMove or errors.ErrAmbiguousMove.
type Error struct {
	Err        error
	SAN        string
	Candidates []chess.Move
}

func (e *Error) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("%s: %v", e.SAN, e.Err)
	}
	names := make([]string, len(e.Candidates))
	for i, m := range e.Candidates {
		names[i] = m.Coordinates()
	}
	return fmt.Sprintf("%s: %v (%s)", e.SAN, e.Err, strings.Join(names, ", "))
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ResolveText parses SAN text and resolves it against the position.
func ResolveText(board *chess.Board, text string) (chess.Move, error) {
	parsed, err := Parse(text)
	if err != nil {
		return chess.Move{}, &Error{Err: err, SAN: strings.TrimSpace(text)}
	}
	return Resolve(board, parsed)
}

// Resolve finds the unique legal move of the side to move that matches the
// parsed SAN. The returned move carries the parsed text.
func Resolve(board *chess.Board, parsed Parsed) (chess.Move, error) {
	if parsed.IsCastle() {
		castle := engine.CastleMove(board.ToMove, parsed.Type == chess.CastleKingSide)
		if engine.Classify(board, castle) != engine.NoViolation {
			return chess.Move{}, &Error{Err: errors.ErrIllegalMove, SAN: parsed.Text}
		}
		return castle.WithSAN(parsed.Text), nil
	}

	candidates := Candidates(board, parsed)
	switch len(candidates) {
	case 0:
		return chess.Move{}, &Error{Err: errors.ErrNoMatchingMove, SAN: parsed.Text}
	case 1:
		return candidates[0].WithSAN(parsed.Text), nil
	default:
		return chess.Move{}, &Error{Err: errors.ErrAmbiguousMove, SAN: parsed.Text, Candidates: candidates}
	}
}

// Candidates returns every legal normal move matching the parsed piece,
// destination and hints, ordered by source square.
func Candidates(board *chess.Board, parsed Parsed) []chess.Move {
	if parsed.IsCastle() || !parsed.To.Valid() {
		return nil
	}

	piece := chess.MakePiece(board.ToMove, parsed.Piece)
	var moves []chess.Move
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		if board.Squares[from] != piece {
			continue
		}
		if parsed.File != NoHint && from.File() != parsed.File {
			continue
		}
		if parsed.Rank != NoHint && from.Rank() != parsed.Rank {
			continue
		}
		if engine.IsLegal(board, from, parsed.To, chess.Normal) {
			moves = append(moves, chess.NewMove(from, parsed.To, chess.Normal))
		}
	}
	return moves
}
