package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.ToMove != White {
			t.Errorf("ToMove = %v; want White", b.ToMove)
		}
		if b.Castling != AllCastlingRights() {
			t.Errorf("Castling = %+v; want all rights", b.Castling)
		}
		if len(b.History) != 0 {
			t.Errorf("len(History) = %d; want 0", len(b.History))
		}
		if b.Simulation {
			t.Error("Simulation = true; want false")
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for sq := Square(0); sq < NumSquares; sq++ {
			if got := b.Get(sq); got != Empty {
				t.Errorf("Get(%v) = %v; want Empty", sq, got)
			}
		}
	})
}

func TestBoardGetSet(t *testing.T) {
	tests := []struct {
		name  string
		sq    string
		piece Piece
	}{
		{"white pawn on e4", "e4", W(Pawn)},
		{"black knight on f6", "f6", B(Knight)},
		{"white queen on d1", "d1", W(Queen)},
		{"black king on e8", "e8", B(King)},
		{"empty square", "a1", Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			sq := MustSquare(tt.sq)
			b.Set(sq, tt.piece)
			if got := b.Get(sq); got != tt.piece {
				t.Errorf("after Set(%s, %v), Get() = %v; want %v", tt.sq, tt.piece, got, tt.piece)
			}
		})
	}

	t.Run("invalid squares", func(t *testing.T) {
		b := NewBoard()
		b.Set(NoSquare, W(Queen))
		b.Set(Square(64), W(Queen))
		if got := b.Get(NoSquare); got != Empty {
			t.Errorf("Get(NoSquare) = %v; want Empty", got)
		}
		if got := b.Get(Square(64)); got != Empty {
			t.Errorf("Get(64) = %v; want Empty", got)
		}
	})
}

func TestKingSquare(t *testing.T) {
	b := NewBoard()
	b.Set(MustSquare("g1"), W(King))
	b.Set(MustSquare("c8"), B(King))

	if got := b.KingSquare(White); got != MustSquare("g1") {
		t.Errorf("KingSquare(White) = %v; want g1", got)
	}
	if got := b.KingSquare(Black); got != MustSquare("c8") {
		t.Errorf("KingSquare(Black) = %v; want c8", got)
	}

	empty := NewBoard()
	if got := empty.KingSquare(White); got != NoSquare {
		t.Errorf("KingSquare on empty board = %v; want NoSquare", got)
	}
}

func TestBoardCopy(t *testing.T) {
	original := NewBoard()
	original.Set(E1, W(King))
	original.Set(E8, B(King))
	original.ToMove = Black
	original.Castling.Clear(White, true)
	original.History = []Move{NewMove(MustSquare("e2"), MustSquare("e4"), Normal).WithSAN("e4")}

	copied := original.Copy()

	if diff := cmp.Diff(original, copied); diff != "" {
		t.Fatalf("Copy() mismatch (-original +copy):\n%s", diff)
	}

	t.Run("modifications are independent", func(t *testing.T) {
		copied.Set(MustSquare("e4"), W(Pawn))
		copied.ToMove = White
		copied.Castling.Clear(Black, false)
		copied.History[0] = NewMove(MustSquare("d2"), MustSquare("d4"), Normal)
		copied.History = append(copied.History, NewMove(MustSquare("e7"), MustSquare("e5"), Normal))

		if got := original.Get(MustSquare("e4")); got != Empty {
			t.Errorf("original e4 = %v; want Empty", got)
		}
		if original.ToMove != Black {
			t.Errorf("original ToMove = %v; want Black", original.ToMove)
		}
		if !original.Castling.BlackQueenSide {
			t.Error("original lost black queen-side right")
		}
		if len(original.History) != 1 || original.History[0].SAN != "e4" {
			t.Errorf("original History = %v; want [e4]", original.History)
		}
	})
}

func TestBoardSimulate(t *testing.T) {
	original := NewBoard()
	original.Set(E1, W(King))
	original.History = []Move{NewMove(MustSquare("e2"), MustSquare("e4"), Normal)}

	sim := original.Simulate()
	if !sim.Simulation {
		t.Error("Simulate().Simulation = false; want true")
	}
	if sim.History != nil {
		t.Errorf("Simulate().History = %v; want nil", sim.History)
	}

	sim.Set(E1, Empty)
	sim.Set(MustSquare("f1"), W(King))
	sim.ToMove = Black
	sim.Castling.ClearColour(White)

	if original.Get(E1) != W(King) || original.Get(MustSquare("f1")) != Empty {
		t.Error("mutating a simulation changed the original squares")
	}
	if original.ToMove != White || !original.Castling.WhiteKingSide {
		t.Error("mutating a simulation changed the original state")
	}
}

func TestBoardEqual(t *testing.T) {
	a := NewBoard()
	b := NewBoard()
	if !a.Equal(b) {
		t.Error("two new boards are not Equal")
	}

	b.History = append(b.History, NewMove(A1, A8, Normal))
	if a.Equal(b) {
		t.Error("boards with different history are Equal")
	}

	c := NewBoard()
	c.Set(H1, W(Rook))
	if a.Equal(c) {
		t.Error("boards with different squares are Equal")
	}
}

func TestCastlingRights(t *testing.T) {
	tests := []struct {
		name     string
		colour   Colour
		kingSide bool
	}{
		{"white king side", White, true},
		{"white queen side", White, false},
		{"black king side", Black, true},
		{"black queen side", Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rights := AllCastlingRights()
			if !rights.Has(tt.colour, tt.kingSide) {
				t.Fatalf("Has(%v, %v) = false on full rights", tt.colour, tt.kingSide)
			}
			rights.Clear(tt.colour, tt.kingSide)
			if rights.Has(tt.colour, tt.kingSide) {
				t.Errorf("Has(%v, %v) = true after Clear", tt.colour, tt.kingSide)
			}
			if !rights.Has(tt.colour.Opposite(), tt.kingSide) || !rights.Has(tt.colour, !tt.kingSide) {
				t.Error("Clear removed an unrelated right")
			}
		})
	}

	t.Run("ClearColour", func(t *testing.T) {
		rights := AllCastlingRights()
		rights.ClearColour(Black)
		want := CastlingRights{WhiteKingSide: true, WhiteQueenSide: true}
		if rights != want {
			t.Errorf("after ClearColour(Black) = %+v; want %+v", rights, want)
		}
		if !rights.Any() {
			t.Error("Any() = false; want true")
		}
		rights.ClearColour(White)
		if rights.Any() {
			t.Error("Any() = true after clearing everything")
		}
	})
}
