package chess

// Move represents a single chess move. Moves are values and are not
// modified once built.
type Move struct {
	// Source square. For castling this is the king's square.
	From Square

	// Destination square. For castling this is the king's destination.
	To Square

	// Kind of move.
	Type MoveType

	// The SAN text (e.g. "Nf3", "exd5", "O-O"), when known.
	SAN string
}

// NewMove creates a move without SAN text.
func NewMove(from, to Square, moveType MoveType) Move {
	return Move{From: from, To: to, Type: moveType}
}

// WithSAN returns a copy of the move carrying the given SAN text.
func (m Move) WithSAN(san string) Move {
	m.SAN = san
	return m
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Type.IsCastle()
}

// Coordinates returns the move in long algebraic form, e.g. "e2e4".
func (m Move) Coordinates() string {
	return m.From.String() + m.To.String()
}

// SameAs reports whether two moves name the same from/to/type, ignoring
// any SAN text.
func (m Move) SameAs(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Type == other.Type
}

// String returns the SAN text when known, otherwise the coordinates.
func (m Move) String() string {
	if m.SAN != "" {
		return m.SAN
	}
	return m.Coordinates()
}
