package model

import "testing"

// sq converts algebraic notation such as "e2" to a Position.
func sq(t *testing.T, s string) Position {
	t.Helper()
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		t.Fatalf("bad square %q", s)
	}
	return Position{File: int(s[0] - 'a'), Rank: 8 - int(s[1]-'0')}
}

func pc(t *testing.T, kind PieceKind, color Color, square string) Piece {
	t.Helper()
	return Piece{Kind: kind, Color: color, Position: sq(t, square)}
}

func mustBoard(t *testing.T, pieces ...Piece) *Board {
	t.Helper()
	b, err := NewBoardFromPieces(pieces)
	if err != nil {
		t.Fatalf("NewBoardFromPieces: %v", err)
	}
	return b
}

func mustMove(t *testing.T, b *Board, from, to string) Move {
	t.Helper()
	m, err := b.NewMove(sq(t, from), sq(t, to))
	if err != nil {
		t.Fatalf("NewMove %s-%s: %v", from, to, err)
	}
	return m
}

func playMoves(t *testing.T, g *Game, moves ...string) []Event {
	t.Helper()
	var events []Event
	for _, mv := range moves {
		evs, err := g.Move(sq(t, mv[:2]), sq(t, mv[2:]))
		if err != nil {
			t.Fatalf("move %s: %v", mv, err)
		}
		events = append(events, evs...)
	}
	return events
}

func eventTypes(events []Event) []EventType {
	types := make([]EventType, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}
