// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// FENLetter returns the side-to-move letter used in FEN ('w' or 'b').
func (c Colour) FENLetter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PawnStartRank returns the zero-based rank pawns of the colour start on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return 6
}

// BackRank returns the zero-based rank the colour's pieces start on.
func BackRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return 7
}

// PieceType represents a chess piece type, independent of colour.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// IsSliding reports whether the piece moves along unobstructed lines.
func (p PieceType) IsSliding() bool {
	switch p {
	case Rook, Bishop, Queen:
		return true
	default:
		return false
	}
}

// SANLetter returns the SAN letter for the piece type. Pawns have none.
func (p PieceType) SANLetter() string {
	switch p {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

// PieceTypeFromSAN converts an uppercase SAN piece letter to a piece type.
// It returns NoPieceType for any other byte.
func PieceTypeFromSAN(c byte) PieceType {
	switch c {
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	default:
		return NoPieceType
	}
}

// Piece is a coloured piece. The zero value is Empty.
type Piece int

// Empty marks a square without a piece.
const Empty Piece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, piece PieceType) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece PieceType) Piece {
	return MakePiece(White, piece)
}

// B creates a black piece.
func B(piece PieceType) Piece {
	return MakePiece(Black, piece)
}

// Type extracts the piece type.
func (p Piece) Type() PieceType {
	return PieceType(p >> PieceShift)
}

// Colour extracts the colour. It is meaningless for Empty.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// IsEmpty reports whether p is the Empty marker.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// String returns e.g. "White Knight", or "Empty".
func (p Piece) String() string {
	if p == Empty {
		return "Empty"
	}
	return p.Colour().String() + " " + p.Type().String()
}

// MoveType distinguishes ordinary moves from the two castling moves.
type MoveType int

const (
	Normal MoveType = iota
	CastleKingSide
	CastleQueenSide
)

// String returns the string representation of a move type.
func (t MoveType) String() string {
	switch t {
	case Normal:
		return "normal"
	case CastleKingSide:
		return "castle king side"
	case CastleQueenSide:
		return "castle queen side"
	default:
		return "unknown"
	}
}

// IsCastle reports whether t is one of the castling move types.
func (t MoveType) IsCastle() bool {
	switch t {
	case CastleKingSide, CastleQueenSide:
		return true
	default:
		return false
	}
}
