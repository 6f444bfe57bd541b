// Package engine provides chess move validation and board manipulation.
package engine

import (
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenTrailer replaces the en passant and clock fields, which are not tracked.
const fenTrailer = " - 0 1"

// maxFENFields is the number of fields in a full FEN record.
const maxFENFields = 6

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.PieceType {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoPieceType
	}
}

// PieceToFENLetter returns the FEN letter for a coloured piece: uppercase
// for White, lowercase for Black.
func PieceToFENLetter(piece chess.Piece) byte {
	letter := byte('P')
	if piece.Type() != chess.Pawn {
		letter = piece.Type().SANLetter()[0]
	}
	if piece.Colour() == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string.
//
// Only the placement, side to move and castling fields are read. A missing
// side field means White to move and a missing castling field means all
// rights; "-" means none. The en passant and clock fields are accepted and
// ignored.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}
	if len(parts) > maxFENFields {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "too many fields: %d", len(parts))
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return errors.Wrapf(errors.ErrInvalidFEN, "expected %d ranks, got %d", chess.BoardSize, len(ranks))
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				pieceType := ConvertFENCharToPiece(byte(c))
				if c > unicode.MaxASCII || pieceType == chess.NoPieceType {
					return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character: %c", c)
				}
				if file >= chess.BoardSize {
					return errors.Wrapf(errors.ErrInvalidFEN, "rank %d overflows", rank+1)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.NewSquare(file, rank), chess.MakePiece(colour, pieceType))
				file++
			}
		}
		if file != chess.BoardSize {
			return errors.Wrapf(errors.ErrInvalidFEN, "rank %d has %d files", rank+1, file)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move: %s", parts[1])
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 {
		return nil
	}

	board.Castling = chess.CastlingRights{}
	if parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.Castling.WhiteKingSide = true
		case 'Q':
			board.Castling.WhiteQueenSide = true
		case 'k':
			board.Castling.BlackKingSide = true
		case 'q':
			board.Castling.BlackQueenSide = true
		default:
			return errors.Wrapf(errors.ErrInvalidFEN, "invalid castling character: %c", c)
		}
	}
	return nil
}

// BoardToFEN converts a board to a FEN string. The en passant and clock
// fields are always written as " - 0 1".
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(board.ToMove.FENLetter())
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteString(fenTrailer)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.NewSquare(file, rank))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	rights := board.Castling
	if !rights.Any() {
		sb.WriteByte('-')
		return
	}
	if rights.WhiteKingSide {
		sb.WriteByte('K')
	}
	if rights.WhiteQueenSide {
		sb.WriteByte('Q')
	}
	if rights.BlackKingSide {
		sb.WriteByte('k')
	}
	if rights.BlackQueenSide {
		sb.WriteByte('q')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
