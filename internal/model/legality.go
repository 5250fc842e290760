package model

// Move is a candidate transition of a live piece. It is built per query by
// Board.NewMove and never stored.
type Move struct {
	Piece    *Piece
	From     Position
	To       Position
	Captured *Piece
}

// NewMove builds a move of the piece on from to to, resolving any capture
// from the board.
func (b *Board) NewMove(from, to Position) (Move, error) {
	p := b.at(from)
	if p == nil {
		return Move{}, ErrNoPiece
	}
	return b.moveOf(p, to), nil
}

func (b *Board) moveOf(p *Piece, to Position) Move {
	return Move{Piece: p, From: p.Position, To: to, Captured: b.at(to)}
}

func (m Move) isCastle() bool {
	return m.Piece.Kind == King && isCastleShape(m.To.File-m.From.File, m.To.Rank-m.From.Rank)
}

// IsLegal reports whether m may be played on the current board. The board is
// left exactly as it was found.
func (b *Board) IsLegal(m Move) bool {
	if m.Piece == nil || b.at(m.From) != m.Piece {
		return false
	}
	if m.Captured != nil && m.Captured.Color == m.Piece.Color {
		return false
	}
	if m.To.File < 0 || m.To.File >= 8 {
		return false
	}
	if m.To.Rank < 0 || m.To.Rank >= 8 {
		return false
	}
	if b.at(m.To) != m.Captured {
		return false
	}
	if !ShapeLegal(*m.Piece, m.To) {
		return false
	}
	if isSliding(m.Piece.Kind) && !b.pathClear(m.From, m.To) {
		return false
	}
	switch {
	case m.Piece.Kind == Pawn:
		if !b.pawnOccupancyOK(m) {
			return false
		}
	case m.isCastle():
		if !b.canCastle(m) {
			return false
		}
	}
	return b.leavesKingSafe(m)
}

// pawnOccupancyOK enforces that pawns push into empty squares and capture
// only diagonally.
func (b *Board) pawnOccupancyOK(m Move) bool {
	if m.To.File != m.From.File {
		return m.Captured != nil
	}
	if m.Captured != nil {
		return false
	}
	if abs(m.To.Rank-m.From.Rank) == 2 {
		mid := Position{File: m.From.File, Rank: m.From.Rank + m.Piece.Color.forward()}
		return b.at(mid) == nil
	}
	return true
}

type castleSide struct {
	rookFile   int
	rookTo     int
	between    []int
	kingTravel []int
}

var (
	kingSide  = castleSide{rookFile: 7, rookTo: 5, between: []int{5, 6}, kingTravel: []int{4, 5, 6}}
	queenSide = castleSide{rookFile: 0, rookTo: 3, between: []int{1, 2, 3}, kingTravel: []int{4, 3, 2}}
)

func sideOf(m Move) castleSide {
	if m.To.File > m.From.File {
		return kingSide
	}
	return queenSide
}

// canCastle checks every castling precondition against the current board,
// before anything moves.
func (b *Board) canCastle(m Move) bool {
	king := m.Piece
	rank := king.Color.backRank()
	if king.HasMoved || king.Position != (Position{File: 4, Rank: rank}) {
		return false
	}
	side := sideOf(m)
	rook := b.at(Position{File: side.rookFile, Rank: rank})
	if rook == nil || rook.Kind != Rook || rook.Color != king.Color || rook.HasMoved {
		return false
	}
	for _, file := range side.between {
		if b.at(Position{File: file, Rank: rank}) != nil {
			return false
		}
	}
	enemy := king.Color.Opposite()
	for _, file := range side.kingTravel {
		if b.SquareAttackedBy(Position{File: file, Rank: rank}, enemy) {
			return false
		}
	}
	return true
}

// simulate plays m on the board and returns the function that restores it.
func (b *Board) simulate(m Move) (undo func()) {
	b.set(m.From, nil)
	b.set(m.To, m.Piece)
	m.Piece.Position = m.To
	return func() {
		m.Piece.Position = m.From
		b.set(m.From, m.Piece)
		b.set(m.To, m.Captured)
	}
}

func (b *Board) leavesKingSafe(m Move) bool {
	undo := b.simulate(m)
	defer undo()
	return !b.IsInCheck(m.Piece.Color)
}

// LegalMoves returns every square the piece on from may legally move to.
func (b *Board) LegalMoves(from Position) []Position {
	p := b.at(from)
	if p == nil {
		return nil
	}
	var targets []Position
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			to := Position{File: file, Rank: rank}
			if b.IsLegal(b.moveOf(p, to)) {
				targets = append(targets, to)
			}
		}
	}
	return targets
}

// HasLegalMove reports whether color has at least one legal move. It stops
// at the first one found.
func (b *Board) HasLegalMove(color Color) bool {
	for _, p := range b.piecesOf(color) {
		for rank := 0; rank < 8; rank++ {
			for file := 0; file < 8; file++ {
				if b.IsLegal(b.moveOf(p, Position{File: file, Rank: rank})) {
					return true
				}
			}
		}
	}
	return false
}

type Status string

const (
	Ongoing   Status = "ongoing"
	Checkmate Status = "checkmate"
	Stalemate Status = "stalemate"
)

type Outcome struct {
	Status Status `json:"status"`
	Winner Color  `json:"winner,omitempty"`
}

// Evaluate decides whether the side that did not just move can continue.
func (b *Board) Evaluate(justMoved Color) Outcome {
	opponent := justMoved.Opposite()
	if b.HasLegalMove(opponent) {
		return Outcome{Status: Ongoing}
	}
	if b.IsInCheck(opponent) {
		return Outcome{Status: Checkmate, Winner: justMoved}
	}
	return Outcome{Status: Stalemate}
}

// Applied describes the side effects of Board.Apply.
type Applied struct {
	From       Position
	To         Position
	Captured   *Piece
	RookFrom   *Position
	RookTo     *Position
	PromoteDue bool
}

// Apply plays a move that IsLegal accepted.
func (b *Board) Apply(m Move) Applied {
	res := Applied{From: m.From, To: m.To}
	if m.Captured != nil {
		cp := *m.Captured
		res.Captured = &cp
	}
	b.set(m.From, nil)
	b.set(m.To, m.Piece)
	m.Piece.Position = m.To
	m.Piece.HasMoved = true

	if m.isCastle() {
		side := sideOf(m)
		rank := m.From.Rank
		rookFrom := Position{File: side.rookFile, Rank: rank}
		rookTo := Position{File: side.rookTo, Rank: rank}
		rook := b.at(rookFrom)
		b.set(rookFrom, nil)
		b.set(rookTo, rook)
		rook.Position = rookTo
		rook.HasMoved = true
		res.RookFrom, res.RookTo = &rookFrom, &rookTo
	}

	if m.Piece.Kind == Pawn && m.To.Rank == m.Piece.Color.promotionRank() {
		res.PromoteDue = true
	}
	return res
}

// Promote replaces the pawn on pos with a new piece of kind.
func (b *Board) Promote(pos Position, kind PieceKind) error {
	if !promotionChoice(kind) {
		return ErrInvalidPromotion
	}
	pawn := b.at(pos)
	if pawn == nil || pawn.Kind != Pawn {
		return ErrNoPromotionPending
	}
	p := b.place(kind, pawn.Color, pos)
	p.HasMoved = true
	return nil
}

var promotionKinds = [...]PieceKind{Queen, Rook, Bishop, Knight}

// PromotionChoices lists the kinds a pawn may become. The slice is a fresh
// copy on every call.
func PromotionChoices() []PieceKind {
	return append([]PieceKind(nil), promotionKinds[:]...)
}

func promotionChoice(kind PieceKind) bool {
	return kindIn(kind, promotionKinds[:])
}
