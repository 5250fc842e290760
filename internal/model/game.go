package model

import "fmt"

// Game is one hot-seat chess game. It is not safe for concurrent use; callers
// serialise access.
type Game struct {
	board     *Board
	moveCount int
	players   Players

	selected         *Piece
	pendingPromotion *Position
	outcome          Outcome

	history        []Ply
	capturedPieces CapturedPieces
	lastMove       *SimpleMove
}

type GameState struct {
	Board            [][]*Piece     `json:"board"`
	ToMove           Color          `json:"toMove"`
	MoveCount        int            `json:"moveCount"`
	IsCheck          bool           `json:"isCheck"`
	SelectedSquare   *Position      `json:"selectedSquare"`
	LegalMoves       []Position     `json:"legalMoves"`
	PromotionSquare  *Position      `json:"promotionSquare"`
	PromotionChoices []PieceKind    `json:"promotionChoices,omitempty"`
	LastMove         *SimpleMove    `json:"lastMove"`
	MoveHistory      []Ply          `json:"moveHistory"`
	CapturedPieces   CapturedPieces `json:"capturedPieces"`
	Players          Players        `json:"players"`
	Outcome          Outcome        `json:"outcome"`
}

func NewGame(players Players) *Game {
	g := &Game{players: players}
	g.reset(NewBoard())
	return g
}

// NewGameFromBoard starts a game on a prepared board with toMove to play. A
// position where toMove has no legal move starts out finished.
func NewGameFromBoard(players Players, board *Board, toMove Color) *Game {
	g := &Game{players: players}
	g.reset(board)
	if toMove == Black {
		g.moveCount = 1
	}
	g.outcome = board.Evaluate(toMove.Opposite())
	return g
}

func (g *Game) reset(board *Board) {
	g.board = board
	g.moveCount = 0
	g.selected = nil
	g.pendingPromotion = nil
	g.outcome = Outcome{Status: Ongoing}
	g.history = make([]Ply, 0)
	g.capturedPieces = newCapturedPieces()
	g.lastMove = nil
}

// NewGame discards the current board and starts again from the standard
// position with the same players.
func (g *Game) NewGame() []Event {
	g.reset(NewBoard())
	return []Event{turnChanged(White)}
}

func (g *Game) Board() *Board { return g.board }

func (g *Game) MoveCount() int { return g.moveCount }

func (g *Game) Outcome() Outcome { return g.outcome }

func (g *Game) Players() Players { return g.players }

// ToMove derives the side to move from the move counter's parity.
func (g *Game) ToMove() Color {
	if g.moveCount%2 == 0 {
		return White
	}
	return Black
}

// Select chooses the piece on pos for the next move.
func (g *Game) Select(pos Position) error {
	if err := g.ready(); err != nil {
		return err
	}
	p := g.board.at(pos)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrNoPiece, pos)
	}
	if p.Color != g.ToMove() {
		return fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.ToMove())
	}
	g.selected = p
	return nil
}

// Deselect clears the selection cursor.
func (g *Game) Deselect() {
	g.selected = nil
}

// RequestMove moves the selected piece to target. The selection is cleared
// whether or not the move is accepted.
func (g *Game) RequestMove(target Position) ([]Event, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}
	if g.selected == nil {
		return nil, ErrNoSelection
	}
	p := g.selected
	g.selected = nil

	m := g.board.moveOf(p, target)
	if !g.board.IsLegal(m) {
		return nil, fmt.Errorf("%w: %s %s to %s", ErrIllegalMove, p.Kind, m.From, target)
	}
	return g.apply(m), nil
}

// Move selects the piece on from and moves it to to.
func (g *Game) Move(from, to Position) ([]Event, error) {
	if err := g.Select(from); err != nil {
		return nil, err
	}
	return g.RequestMove(to)
}

func (g *Game) ready() error {
	if g.outcome.Status != Ongoing {
		return ErrGameOver
	}
	if g.pendingPromotion != nil {
		return fmt.Errorf("%w at %s", ErrPromotionPending, *g.pendingPromotion)
	}
	return nil
}

func (g *Game) apply(m Move) []Event {
	mover := m.Piece.Color
	before := *m.Piece
	res := g.board.Apply(m)
	g.moveCount++

	ply := Ply{
		Number:        g.moveCount,
		Piece:         before,
		From:          res.From,
		To:            res.To,
		CapturedPiece: res.Captured,
	}
	events := []Event{pieceMoved(res.From, res.To, res.Captured)}
	if res.Captured != nil {
		g.capturedPieces.add(mover, *res.Captured)
		events = append(events, pieceCaptured(res.Captured.Kind, mover))
	}
	if res.RookFrom != nil {
		ply.CastleRookMove = &CastleRookMove{From: *res.RookFrom, To: *res.RookTo}
		events = append(events, castlePerformed(*res.RookFrom, *res.RookTo))
	}
	g.history = append(g.history, ply)
	g.lastMove = &SimpleMove{From: res.From, To: res.To}

	if res.PromoteDue {
		sq := res.To
		g.pendingPromotion = &sq
		return append(events, promotionPending(sq, mover))
	}
	return append(events, g.finishMove(mover)...)
}

// SupplyPromotion resolves a pending promotion with the chosen kind.
func (g *Game) SupplyPromotion(kind PieceKind) ([]Event, error) {
	if g.pendingPromotion == nil {
		return nil, ErrNoPromotionPending
	}
	if !promotionChoice(kind) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPromotion, kind)
	}
	sq := *g.pendingPromotion
	mover := g.board.at(sq).Color
	if err := g.board.Promote(sq, kind); err != nil {
		return nil, err
	}
	g.pendingPromotion = nil
	g.history[len(g.history)-1].Promotion = kind

	events := []Event{promotionResolved(sq, kind)}
	return append(events, g.finishMove(mover)...), nil
}

func (g *Game) finishMove(mover Color) []Event {
	events := []Event{turnChanged(g.ToMove())}
	g.outcome = g.board.Evaluate(mover)
	if g.outcome.Status != Ongoing {
		winner := ""
		if g.outcome.Status == Checkmate {
			winner = g.players.Name(g.outcome.Winner)
		}
		events = append(events, gameEnded(g.outcome, winner))
	}
	return events
}

// State returns a serialisable snapshot of the game.
func (g *Game) State() GameState {
	st := GameState{
		Board:          g.board.Grid(),
		ToMove:         g.ToMove(),
		MoveCount:      g.moveCount,
		IsCheck:        g.board.IsInCheck(g.ToMove()),
		LegalMoves:     make([]Position, 0),
		LastMove:       g.lastMove,
		MoveHistory:    append([]Ply{}, g.history...),
		CapturedPieces: g.capturedPieces.clone(),
		Players:        g.players,
		Outcome:        g.outcome,
	}
	if g.selected != nil {
		sq := g.selected.Position
		st.SelectedSquare = &sq
		st.LegalMoves = append(st.LegalMoves, g.board.LegalMoves(sq)...)
	}
	if g.pendingPromotion != nil {
		sq := *g.pendingPromotion
		st.PromotionSquare = &sq
		st.PromotionChoices = PromotionChoices()
	}
	return st
}
