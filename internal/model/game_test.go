package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOpeningMoveFlipsTurn(t *testing.T) {
	g := NewGame(NewPlayers("Alice", "Bob"))
	events := playMoves(t, g, "e2e4")

	if g.ToMove() != Black {
		t.Errorf("expected black to move, got %s", g.ToMove())
	}
	if g.MoveCount() != 1 {
		t.Errorf("expected move count 1, got %d", g.MoveCount())
	}
	want := []EventType{EventPieceMoved, EventTurnChanged}
	if diff := cmp.Diff(want, eventTypes(events)); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
	if events[0].Captured != "" {
		t.Errorf("expected no capture, got %s", events[0].Captured)
	}
	if events[1].Color != Black {
		t.Errorf("turn_changed color = %s, want black", events[1].Color)
	}
}

func TestMoveCounterOnlyCountsAcceptedMoves(t *testing.T) {
	g := NewGame(NewPlayers("", ""))
	moves := []struct {
		from, to string
		ok       bool
	}{
		{"e2", "e5", false},
		{"e2", "e4", true},
		{"e4", "e5", false}, // black to move
		{"d8", "d6", false},
		{"e7", "e5", true},
		{"g1", "g3", false},
		{"g1", "f3", true},
	}
	count := 0
	for _, mv := range moves {
		turn := g.ToMove()
		_, err := g.Move(sq(t, mv.from), sq(t, mv.to))
		if mv.ok {
			if err != nil {
				t.Fatalf("%s-%s: %v", mv.from, mv.to, err)
			}
			count++
			if g.ToMove() != turn.Opposite() {
				t.Errorf("%s-%s: side to move did not flip", mv.from, mv.to)
			}
		} else if err == nil {
			t.Fatalf("%s-%s: expected rejection", mv.from, mv.to)
		}
		if g.MoveCount() != count {
			t.Fatalf("after %s-%s: move count %d, want %d", mv.from, mv.to, g.MoveCount(), count)
		}
	}
}

func TestSelectErrors(t *testing.T) {
	g := NewGame(NewPlayers("", ""))
	if err := g.Select(sq(t, "e4")); !errors.Is(err, ErrNoPiece) {
		t.Errorf("select empty square: got %v, want ErrNoPiece", err)
	}
	if err := g.Select(sq(t, "e7")); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("select black piece on white's turn: got %v, want ErrNotYourTurn", err)
	}
	if _, err := g.RequestMove(sq(t, "e4")); !errors.Is(err, ErrNoSelection) {
		t.Errorf("move without selection: got %v, want ErrNoSelection", err)
	}
	if err := g.Select(sq(t, "e2")); err != nil {
		t.Fatalf("select e2: %v", err)
	}
	st := g.State()
	if st.SelectedSquare == nil || *st.SelectedSquare != sq(t, "e2") {
		t.Errorf("selected square = %v", st.SelectedSquare)
	}
	if diff := cmp.Diff([]Position{sq(t, "e4"), sq(t, "e3")}, st.LegalMoves); diff != "" {
		t.Errorf("legal moves mismatch (-want +got):\n%s", diff)
	}
	if _, err := g.RequestMove(sq(t, "e5")); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("illegal target: got %v, want ErrIllegalMove", err)
	}
	if g.State().SelectedSquare != nil {
		t.Error("selection should be cleared after a rejected move")
	}
}

func TestFoolsMate(t *testing.T) {
	g := NewGame(NewPlayers("Alice", "Bob"))
	events := playMoves(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	last := events[len(events)-1]
	if last.Type != EventGameEnded {
		t.Fatalf("expected game_ended, got %v", eventTypes(events))
	}
	want := Outcome{Status: Checkmate, Winner: Black}
	if diff := cmp.Diff(want, g.Outcome()); diff != "" {
		t.Errorf("outcome mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(&want, last.Outcome); diff != "" {
		t.Errorf("event outcome mismatch (-want +got):\n%s", diff)
	}
	if last.Winner != "Bob" {
		t.Errorf("winner = %q, want Bob", last.Winner)
	}
	if got := g.Board().Evaluate(Black); got != want {
		t.Errorf("Evaluate(Black) = %v", got)
	}
	if !g.State().IsCheck {
		t.Error("white should be in check")
	}
	if _, err := g.Move(sq(t, "a2"), sq(t, "a3")); !errors.Is(err, ErrGameOver) {
		t.Errorf("move after mate: got %v, want ErrGameOver", err)
	}
}

func TestStalemateEndsGame(t *testing.T) {
	board := mustBoard(t,
		pc(t, King, White, "c5"), pc(t, Pawn, White, "a7"),
		pc(t, King, Black, "a8"), pc(t, Pawn, Black, "b7"),
	)
	g := NewGameFromBoard(NewPlayers("", ""), board, White)
	events := playMoves(t, g, "c5b6")

	if diff := cmp.Diff(Outcome{Status: Stalemate}, g.Outcome()); diff != "" {
		t.Errorf("outcome mismatch (-want +got):\n%s", diff)
	}
	last := events[len(events)-1]
	if last.Type != EventGameEnded || last.Winner != "" {
		t.Errorf("unexpected final event %+v", last)
	}
}

func promotionGame(t *testing.T) *Game {
	t.Helper()
	board := mustBoard(t,
		pc(t, King, White, "e1"), pc(t, Pawn, White, "a7"),
		pc(t, King, Black, "h5"), pc(t, Pawn, Black, "h6"),
	)
	return NewGameFromBoard(NewPlayers("", ""), board, White)
}

func TestPromotionEachKind(t *testing.T) {
	for _, kind := range PromotionChoices() {
		t.Run(string(kind), func(t *testing.T) {
			g := promotionGame(t)
			events := playMoves(t, g, "a7a8")

			last := events[len(events)-1]
			if last.Type != EventPromotionPending {
				t.Fatalf("expected promotion_pending, got %v", eventTypes(events))
			}
			if *last.Square != sq(t, "a8") || last.Color != White {
				t.Errorf("pending event square %v color %s", *last.Square, last.Color)
			}
			if diff := cmp.Diff(PromotionChoices(), last.Choices); diff != "" {
				t.Errorf("choices mismatch (-want +got):\n%s", diff)
			}
			if g.MoveCount() != 1 {
				t.Errorf("move count = %d, want 1", g.MoveCount())
			}

			resolved, err := g.SupplyPromotion(kind)
			if err != nil {
				t.Fatalf("SupplyPromotion(%s): %v", kind, err)
			}
			if resolved[0].Type != EventPromotionResolved || resolved[0].Kind != kind {
				t.Errorf("unexpected resolution event %+v", resolved[0])
			}
			if resolved[1].Type != EventTurnChanged || resolved[1].Color != Black {
				t.Errorf("expected turn change to black, got %+v", resolved[1])
			}
			p, ok := g.Board().PieceAt(sq(t, "a8"))
			if !ok || p.Kind != kind || p.Color != White {
				t.Errorf("a8 holds %+v, want white %s", p, kind)
			}
			for _, piece := range g.Board().Pieces() {
				if piece.Kind == Pawn && piece.Color == White {
					t.Errorf("pawn still on the board at %s", piece.Position)
				}
			}
			if h := g.State().MoveHistory; h[len(h)-1].Promotion != kind {
				t.Errorf("history promotion = %q", h[len(h)-1].Promotion)
			}
		})
	}
}

func TestPromotionBlocksAndRejectsInvalidChoice(t *testing.T) {
	g := promotionGame(t)
	playMoves(t, g, "a7a8")

	if _, err := g.Move(sq(t, "h5"), sq(t, "g5")); !errors.Is(err, ErrPromotionPending) {
		t.Errorf("move during promotion: got %v, want ErrPromotionPending", err)
	}
	for _, kind := range []PieceKind{King, Pawn, "dragon"} {
		if _, err := g.SupplyPromotion(kind); !errors.Is(err, ErrInvalidPromotion) {
			t.Errorf("SupplyPromotion(%s): got %v, want ErrInvalidPromotion", kind, err)
		}
	}
	st := g.State()
	if st.PromotionSquare == nil || *st.PromotionSquare != sq(t, "a8") {
		t.Fatalf("promotion should still be pending, got %v", st.PromotionSquare)
	}
	if p, _ := g.Board().PieceAt(sq(t, "a8")); p.Kind != Pawn {
		t.Errorf("a8 changed to %s before a valid choice", p.Kind)
	}
	if _, err := g.SupplyPromotion(Queen); err != nil {
		t.Fatalf("SupplyPromotion(queen): %v", err)
	}
	if _, err := g.SupplyPromotion(Queen); !errors.Is(err, ErrNoPromotionPending) {
		t.Errorf("second promotion: got %v, want ErrNoPromotionPending", err)
	}
}

func TestCaptureBookkeeping(t *testing.T) {
	g := NewGame(NewPlayers("", ""))
	events := playMoves(t, g, "e2e4", "d7d5", "e4d5")

	var captured []Event
	for _, e := range events {
		if e.Type == EventPieceCaptured {
			captured = append(captured, e)
		}
	}
	want := []Event{{Type: EventPieceCaptured, Kind: Pawn, Color: White}}
	if diff := cmp.Diff(want, captured); diff != "" {
		t.Errorf("capture events mismatch (-want +got):\n%s", diff)
	}
	st := g.State()
	if len(st.CapturedPieces.White) != 1 || st.CapturedPieces.White[0].Kind != Pawn {
		t.Errorf("white captures = %+v", st.CapturedPieces.White)
	}
	if len(st.CapturedPieces.Black) != 0 {
		t.Errorf("black captures = %+v", st.CapturedPieces.Black)
	}
	if len(g.Board().Pieces()) != 31 {
		t.Errorf("expected 31 pieces, got %d", len(g.Board().Pieces()))
	}
}

func TestNewGameResets(t *testing.T) {
	g := NewGame(NewPlayers("Alice", "Bob"))
	playMoves(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	events := g.NewGame()
	if diff := cmp.Diff([]EventType{EventTurnChanged}, eventTypes(events)); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
	if g.MoveCount() != 0 || g.ToMove() != White {
		t.Errorf("counter %d, to move %s", g.MoveCount(), g.ToMove())
	}
	if g.Outcome().Status != Ongoing {
		t.Errorf("outcome = %v", g.Outcome())
	}
	if diff := cmp.Diff(NewBoard().Pieces(), g.Board().Pieces()); diff != "" {
		t.Errorf("board not reset (-want +got):\n%s", diff)
	}
	if g.Players().White != "Alice" {
		t.Errorf("players lost: %+v", g.Players())
	}
	if len(g.State().MoveHistory) != 0 {
		t.Error("history not cleared")
	}
}

func TestPromotionChoicesIsACopy(t *testing.T) {
	choices := PromotionChoices()
	choices[0] = King
	if PromotionChoices()[0] != Queen {
		t.Fatal("mutating the returned slice changed the allowed kinds")
	}
	g := promotionGame(t)
	playMoves(t, g, "a7a8")
	if _, err := g.SupplyPromotion(King); !errors.Is(err, ErrInvalidPromotion) {
		t.Errorf("promotion to king: got %v, want ErrInvalidPromotion", err)
	}
}

func TestGameFromFinishedPosition(t *testing.T) {
	tests := []struct {
		name   string
		pieces func(t *testing.T) []Piece
		toMove Color
		want   Outcome
	}{
		{
			name: "checkmated",
			pieces: func(t *testing.T) []Piece {
				return []Piece{
					pc(t, King, White, "g1"), pc(t, Rook, White, "a8"),
					pc(t, King, Black, "h8"), pc(t, Pawn, Black, "g7"), pc(t, Pawn, Black, "h7"),
				}
			},
			toMove: Black,
			want:   Outcome{Status: Checkmate, Winner: White},
		},
		{
			name: "stalemated",
			pieces: func(t *testing.T) []Piece {
				return []Piece{
					pc(t, King, White, "b6"), pc(t, Pawn, White, "a7"),
					pc(t, King, Black, "a8"), pc(t, Pawn, Black, "b7"),
				}
			},
			toMove: Black,
			want:   Outcome{Status: Stalemate},
		},
		{
			name: "playable",
			pieces: func(t *testing.T) []Piece {
				return []Piece{
					pc(t, King, White, "e1"), pc(t, King, Black, "e8"),
				}
			},
			toMove: White,
			want:   Outcome{Status: Ongoing},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromPieces(tt.pieces(t))
			if err != nil {
				t.Fatalf("NewBoardFromPieces: %v", err)
			}
			g := NewGameFromBoard(NewPlayers("", ""), board, tt.toMove)
			if diff := cmp.Diff(tt.want, g.Outcome()); diff != "" {
				t.Errorf("outcome mismatch (-want +got):\n%s", diff)
			}
			if tt.want.Status == Ongoing {
				return
			}
			if err := g.Select(sq(t, "a8")); !errors.Is(err, ErrGameOver) {
				t.Errorf("select in finished game: got %v, want ErrGameOver", err)
			}
		})
	}
}
