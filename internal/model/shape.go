package model

// ShapeLegal reports whether moving p to target matches the movement pattern
// of its kind. Other pieces are not consulted: occupancy, path clearance and
// check are the board's business.
func ShapeLegal(p Piece, target Position) bool {
	df := target.File - p.Position.File
	dr := target.Rank - p.Position.Rank
	if df == 0 && dr == 0 {
		return false
	}
	rule, ok := shapeRules[p.Kind]
	if !ok {
		return false
	}
	return rule(p, df, dr)
}

var shapeRules = map[PieceKind]func(p Piece, df, dr int) bool{
	Pawn:   pawnShape,
	Knight: knightShape,
	Bishop: bishopShape,
	Rook:   rookShape,
	Queen:  queenShape,
	King:   kingShape,
}

func pawnShape(p Piece, df, dr int) bool {
	fwd := p.Color.forward()
	switch {
	case dr == fwd:
		return abs(df) <= 1
	case dr == 2*fwd:
		return df == 0 && p.Position.Rank == p.Color.pawnStartRank()
	}
	return false
}

func knightShape(_ Piece, df, dr int) bool {
	af, ar := abs(df), abs(dr)
	return (af == 1 && ar == 2) || (af == 2 && ar == 1)
}

func bishopShape(_ Piece, df, dr int) bool {
	return abs(df) == abs(dr)
}

func rookShape(_ Piece, df, dr int) bool {
	return (df == 0) != (dr == 0)
}

func queenShape(p Piece, df, dr int) bool {
	return bishopShape(p, df, dr) || rookShape(p, df, dr)
}

// kingShape includes the castling pattern; whether castling is actually
// available is decided by Board.canCastle.
func kingShape(_ Piece, df, dr int) bool {
	if abs(df) <= 1 && abs(dr) <= 1 {
		return true
	}
	return isCastleShape(df, dr)
}

func isCastleShape(df, dr int) bool {
	return dr == 0 && abs(df) == 2
}

func isSliding(kind PieceKind) bool {
	return kind == Rook || kind == Bishop || kind == Queen
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
