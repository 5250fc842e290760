package model

import "testing"

func TestShapeLegal(t *testing.T) {
	tests := []struct {
		name  string
		piece Piece
		to    string
		want  bool
	}{
		{"white pawn single", pc(t, Pawn, White, "e2"), "e3", true},
		{"white pawn double from start", pc(t, Pawn, White, "e2"), "e4", true},
		{"white pawn double off start", pc(t, Pawn, White, "e3"), "e5", false},
		{"white pawn backwards", pc(t, Pawn, White, "e3"), "e2", false},
		{"white pawn diagonal", pc(t, Pawn, White, "e2"), "d3", true},
		{"white pawn sideways", pc(t, Pawn, White, "e2"), "d2", false},
		{"black pawn single", pc(t, Pawn, Black, "e7"), "e6", true},
		{"black pawn double from start", pc(t, Pawn, Black, "e7"), "e5", true},
		{"black pawn wrong direction", pc(t, Pawn, Black, "e7"), "e8", false},
		{"knight L", pc(t, Knight, White, "g1"), "f3", true},
		{"knight long L", pc(t, Knight, White, "g1"), "e2", true},
		{"knight straight", pc(t, Knight, White, "g1"), "g3", false},
		{"bishop diagonal", pc(t, Bishop, White, "c1"), "h6", true},
		{"bishop straight", pc(t, Bishop, White, "c1"), "c4", false},
		{"rook file", pc(t, Rook, White, "a1"), "a8", true},
		{"rook rank", pc(t, Rook, White, "a1"), "h1", true},
		{"rook diagonal", pc(t, Rook, White, "a1"), "b2", false},
		{"queen diagonal", pc(t, Queen, White, "d1"), "h5", true},
		{"queen file", pc(t, Queen, White, "d1"), "d8", true},
		{"queen knight jump", pc(t, Queen, White, "d1"), "e3", false},
		{"king step", pc(t, King, White, "e1"), "f2", true},
		{"king castle shape", pc(t, King, White, "e1"), "g1", true},
		{"king two up", pc(t, King, White, "e1"), "e3", false},
		{"null move", pc(t, Queen, White, "d1"), "d1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShapeLegal(tt.piece, sq(t, tt.to)); got != tt.want {
				t.Errorf("ShapeLegal(%s %s, %s) = %v, want %v", tt.piece.Kind, tt.piece.Position, tt.to, got, tt.want)
			}
		})
	}
}

func TestShapeLegalIgnoresOtherPieces(t *testing.T) {
	// The shape predicate is pure: a rook "through" a full board is still a
	// rook-shaped move.
	b := NewBoard()
	rook, _ := b.PieceAt(sq(t, "a1"))
	if !ShapeLegal(rook, sq(t, "a8")) {
		t.Error("expected rook shape a1-a8 to be legal regardless of occupancy")
	}
}
