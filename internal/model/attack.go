package model

var (
	rookDirs   = []Position{{File: 1, Rank: 0}, {File: -1, Rank: 0}, {File: 0, Rank: 1}, {File: 0, Rank: -1}}
	bishopDirs = []Position{{File: 1, Rank: 1}, {File: 1, Rank: -1}, {File: -1, Rank: 1}, {File: -1, Rank: -1}}
	knightDirs = []Position{{File: 2, Rank: 1}, {File: 2, Rank: -1}, {File: -2, Rank: 1}, {File: -2, Rank: -1}, {File: 1, Rank: 2}, {File: 1, Rank: -2}, {File: -1, Rank: 2}, {File: -1, Rank: -2}}
	kingDirs   = append(append([]Position{}, rookDirs...), bishopDirs...)
)

// SquareAttackedBy reports whether any piece of attacker could move to pos by
// its movement pattern, with sliding pieces blocked by the first occupied
// square along the ray.
func (b *Board) SquareAttackedBy(pos Position, attacker Color) bool {
	if !pos.onBoard() {
		return false
	}
	if b.rayHits(pos, rookDirs, attacker, Rook, Queen) {
		return true
	}
	if b.rayHits(pos, bishopDirs, attacker, Bishop, Queen) {
		return true
	}
	if b.offsetHits(pos, knightDirs, attacker, Knight) {
		return true
	}
	if b.offsetHits(pos, kingDirs, attacker, King) {
		return true
	}
	// A pawn attacking pos stands one step behind it, relative to the
	// attacker's direction of travel, on an adjacent file.
	back := -attacker.forward()
	pawnDirs := []Position{{File: -1, Rank: back}, {File: 1, Rank: back}}
	return b.offsetHits(pos, pawnDirs, attacker, Pawn)
}

// IsInCheck reports whether color's king is attacked.
func (b *Board) IsInCheck(color Color) bool {
	return b.SquareAttackedBy(b.kingSquare(color), color.Opposite())
}

// rayHits walks outward from origin along each direction and stops at the
// first occupied square. It reports a hit when that occupant belongs to
// color and is one of kinds.
func (b *Board) rayHits(origin Position, dirs []Position, color Color, kinds ...PieceKind) bool {
	for _, dir := range dirs {
		occupant := b.firstAlong(origin, dir)
		if occupant != nil && occupant.Color == color && kindIn(occupant.Kind, kinds) {
			return true
		}
	}
	return false
}

func (b *Board) firstAlong(origin, dir Position) *Piece {
	for pos := origin.add(dir); pos.onBoard(); pos = pos.add(dir) {
		if p := b.at(pos); p != nil {
			return p
		}
	}
	return nil
}

func (b *Board) offsetHits(origin Position, offsets []Position, color Color, kind PieceKind) bool {
	for _, off := range offsets {
		p := b.at(origin.add(off))
		if p != nil && p.Color == color && p.Kind == kind {
			return true
		}
	}
	return false
}

// pathClear reports whether every square strictly between from and to is
// empty. from and to must share a rank, file or diagonal.
func (b *Board) pathClear(from, to Position) bool {
	step := Position{File: sign(to.File - from.File), Rank: sign(to.Rank - from.Rank)}
	for pos := from.add(step); pos != to; pos = pos.add(step) {
		if b.at(pos) != nil {
			return false
		}
	}
	return true
}

func kindIn(kind PieceKind, kinds []PieceKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
