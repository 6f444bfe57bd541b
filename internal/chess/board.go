package chess

// CastlingRights records which castling moves are still available.
// Flags only ever go from true to false during a game.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// AllCastlingRights returns rights with every flag set.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingSide:  true,
		WhiteQueenSide: true,
		BlackKingSide:  true,
		BlackQueenSide: true,
	}
}

// Has reports whether the colour may still castle on the given wing.
func (c CastlingRights) Has(colour Colour, kingSide bool) bool {
	switch {
	case colour == White && kingSide:
		return c.WhiteKingSide
	case colour == White:
		return c.WhiteQueenSide
	case kingSide:
		return c.BlackKingSide
	default:
		return c.BlackQueenSide
	}
}

// Clear removes the right to castle on one wing.
func (c *CastlingRights) Clear(colour Colour, kingSide bool) {
	switch {
	case colour == White && kingSide:
		c.WhiteKingSide = false
	case colour == White:
		c.WhiteQueenSide = false
	case kingSide:
		c.BlackKingSide = false
	default:
		c.BlackQueenSide = false
	}
}

// ClearColour removes both castling rights of a colour.
func (c *CastlingRights) ClearColour(colour Colour) {
	c.Clear(colour, true)
	c.Clear(colour, false)
}

// Any reports whether any castling right remains.
func (c CastlingRights) Any() bool {
	return c.WhiteKingSide || c.WhiteQueenSide || c.BlackKingSide || c.BlackQueenSide
}

// Board represents a chess position plus the moves that led to it.
type Board struct {
	// The board squares indexed by Square.
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling rights.
	Castling CastlingRights

	// Moves applied to this board, oldest first.
	History []Move

	// Simulation marks a throwaway copy used to probe a hypothetical move.
	Simulation bool
}

// NewBoard creates a new empty board with White to move and all castling
// rights set.
func NewBoard() *Board {
	return &Board{
		ToMove:   White,
		Castling: AllCastlingRights(),
	}
}

// Get returns the piece on the square, or Empty for an invalid square.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.Squares[sq]
}

// Set places a piece on the square. Invalid squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq] = piece
	}
}

// KingSquare returns the square of the colour's king, or NoSquare if the
// colour has no king on the board.
func (b *Board) KingSquare(colour Colour) Square {
	king := MakePiece(colour, King)
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.Squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Copy creates a deep copy of the board, including its move history.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	if b.History != nil {
		newBoard.History = make([]Move, len(b.History))
		copy(newBoard.History, b.History)
	}
	return newBoard
}

// Simulate returns a throwaway copy of the position for probing a
// hypothetical move. The copy carries no history, so nothing done to it can
// reach the original.
func (b *Board) Simulate() *Board {
	sim := &Board{
		Squares:    b.Squares,
		ToMove:     b.ToMove,
		Castling:   b.Castling,
		Simulation: true,
	}
	return sim
}

// Equal reports whether two boards hold the same position and history.
func (b *Board) Equal(other *Board) bool {
	if b.Squares != other.Squares || b.ToMove != other.ToMove ||
		b.Castling != other.Castling || b.Simulation != other.Simulation {
		return false
	}
	if len(b.History) != len(other.History) {
		return false
	}
	for i := range b.History {
		if b.History[i] != other.History[i] {
			return false
		}
	}
	return true
}
