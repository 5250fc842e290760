package model

type CastleRookMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// Ply is one accepted move in the game history.
type Ply struct {
	Number         int             `json:"number"`
	Piece          Piece           `json:"piece"`
	From           Position        `json:"from"`
	To             Position        `json:"to"`
	CapturedPiece  *Piece          `json:"capturedPiece"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	Promotion      PieceKind       `json:"promotion,omitempty"`
}

type SimpleMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// CapturedPieces lists the pieces each side has taken.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]Piece, 0),
		Black: make([]Piece, 0),
	}
}

func (c *CapturedPieces) add(by Color, p Piece) {
	switch by {
	case White:
		c.White = append(c.White, p)
	case Black:
		c.Black = append(c.Black, p)
	}
}

func (c CapturedPieces) clone() CapturedPieces {
	return CapturedPieces{
		White: append([]Piece{}, c.White...),
		Black: append([]Piece{}, c.Black...),
	}
}
