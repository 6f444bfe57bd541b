// Package san converts between board moves and Standard Algebraic Notation.
package san

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// NoHint marks an absent file or rank disambiguator.
const NoHint = -1

// Castling texts. Both the letter O and the digit zero are accepted.
const (
	KingSideCastle  = "O-O"
	QueenSideCastle = "O-O-O"
)

// Parsed is the structured form of a SAN string. It says nothing about
// whether the move is legal in any position.
type Parsed struct {
	// Text is the input with surrounding whitespace removed.
	Text string

	// Piece is the moving piece type; Pawn when no letter was given.
	Piece chess.PieceType

	// To is the destination square, or NoSquare for castling.
	To chess.Square

	// File and Rank restrict the source square, or hold NoHint.
	File int
	Rank int

	// Capture records an 'x' in the text. It is informational only.
	Capture bool

	// Type distinguishes castling from normal moves.
	Type chess.MoveType
}

// IsCastle reports whether the text named a castling move.
func (p Parsed) IsCastle() bool {
	return p.Type.IsCastle()
}

// Parse turns SAN text such as "Nbd2", "exd5+" or "O-O-O" into its parts.
// Check and mate markers are stripped. Malformed text fails with
// errors.ErrIllegalMoveText.
func Parse(text string) (Parsed, error) {
	trimmed := strings.TrimSpace(text)
	body := strings.TrimRight(trimmed, "+#")

	parsed := Parsed{
		Text:  trimmed,
		Piece: chess.Pawn,
		To:    chess.NoSquare,
		File:  NoHint,
		Rank:  NoHint,
		Type:  chess.Normal,
	}

	switch body {
	case KingSideCastle, "0-0":
		parsed.Piece = chess.King
		parsed.Type = chess.CastleKingSide
		return parsed, nil
	case QueenSideCastle, "0-0-0":
		parsed.Piece = chess.King
		parsed.Type = chess.CastleQueenSide
		return parsed, nil
	}

	if len(body) < 2 {
		return Parsed{}, errors.Wrapf(errors.ErrIllegalMoveText, "%q", text)
	}

	to, err := chess.ParseSquare(body[len(body)-2:])
	if err != nil {
		return Parsed{}, errors.Wrapf(errors.ErrIllegalMoveText, "%q: bad destination", text)
	}
	parsed.To = to

	prefix := body[:len(body)-2]
	if prefix != "" && prefix[0] >= 'A' && prefix[0] <= 'Z' {
		parsed.Piece = chess.PieceTypeFromSAN(prefix[0])
		if parsed.Piece == chess.NoPieceType {
			return Parsed{}, errors.Wrapf(errors.ErrIllegalMoveText, "%q: unknown piece %c", text, prefix[0])
		}
		prefix = prefix[1:]
	}

	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		switch {
		case c == 'x' && !parsed.Capture:
			parsed.Capture = true
		case c >= 'a' && c <= 'h' && parsed.File == NoHint:
			parsed.File = int(c - chess.FileBase)
		case c >= '1' && c <= '8' && parsed.Rank == NoHint:
			parsed.Rank = int(c - chess.RankBase)
		default:
			return Parsed{}, errors.Wrapf(errors.ErrIllegalMoveText, "%q: unexpected %q", text, c)
		}
	}

	return parsed, nil
}
