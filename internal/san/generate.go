package san

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Generate returns the canonical SAN for a move in the position, with a
// "+" or "#" suffix when it gives check or mate. It returns "" when the
// source square is empty. The move is expected to be legal.
func Generate(board *chess.Board, move chess.Move) string {
	piece := board.Get(move.From)
	if piece == chess.Empty {
		return ""
	}

	var sb strings.Builder
	switch {
	case move.Type == chess.CastleKingSide:
		sb.WriteString(KingSideCastle)
	case move.Type == chess.CastleQueenSide:
		sb.WriteString(QueenSideCastle)
	default:
		capture := board.Get(move.To) != chess.Empty
		if piece.Type() == chess.Pawn {
			if capture {
				sb.WriteByte(move.From.FileLetter())
			}
		} else {
			sb.WriteString(piece.Type().SANLetter())
			sb.WriteString(disambiguation(board, piece, move))
		}
		if capture {
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
	}

	sb.WriteString(suffix(board, move))
	return sb.String()
}

// disambiguation returns the file, rank or full square of the source when
// another piece of the same kind can also legally reach the destination.
func disambiguation(board *chess.Board, piece chess.Piece, move chess.Move) string {
	var sameFile, sameRank, others bool
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		if from == move.From || board.Squares[from] != piece {
			continue
		}
		if !engine.IsLegal(board, from, move.To, chess.Normal) {
			continue
		}
		others = true
		sameFile = sameFile || from.File() == move.From.File()
		sameRank = sameRank || from.Rank() == move.From.Rank()
	}

	switch {
	case !others:
		return ""
	case !sameFile:
		return string(move.From.FileLetter())
	case !sameRank:
		return string(move.From.RankDigit())
	default:
		return move.From.String()
	}
}

// suffix plays the move on a simulation copy and reports check or mate.
func suffix(board *chess.Board, move chess.Move) string {
	sim := engine.PlayOnCopy(board, move)
	if !engine.IsInCheck(sim, sim.ToMove) {
		return ""
	}
	if engine.HasLegalMoves(sim) {
		return "+"
	}
	return "#"
}
