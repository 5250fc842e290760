package model

import (
	"fmt"
	"sort"
	"strings"
)

type PieceKind string

const (
	King   PieceKind = "king"
	Queen  PieceKind = "queen"
	Rook   PieceKind = "rook"
	Bishop PieceKind = "bishop"
	Knight PieceKind = "knight"
	Pawn   PieceKind = "pawn"
)

func (k PieceKind) letter() string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return "?"
}

// Letter returns the single-letter symbol of the kind, upper case for white
// and lower case for black.
func (k PieceKind) Letter(c Color) string {
	if c == Black {
		return strings.ToLower(k.letter())
	}
	return k.letter()
}

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// forward is the rank delta of a pawn step for the color.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

func (c Color) backRank() int {
	if c == White {
		return 7
	}
	return 0
}

func (c Color) pawnStartRank() int {
	if c == White {
		return 6
	}
	return 1
}

// promotionRank is the farthest rank a pawn of the color can reach.
func (c Color) promotionRank() int {
	return c.Opposite().backRank()
}

type Position struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

func (p Position) onBoard() bool {
	fileOK := p.File >= 0 && p.File < 8
	rankOK := p.Rank >= 0 && p.Rank < 8
	return fileOK && rankOK
}

func (p Position) add(d Position) Position {
	return Position{File: p.File + d.File, Rank: p.Rank + d.Rank}
}

func (p Position) String() string {
	if !p.onBoard() {
		return fmt.Sprintf("(%d,%d)", p.File, p.Rank)
	}
	return fmt.Sprintf("%c%d", 'a'+p.File, 8-p.Rank)
}

type Piece struct {
	ID       int       `json:"id"`
	Kind     PieceKind `json:"kind"`
	Color    Color     `json:"color"`
	Position Position  `json:"position"`
	HasMoved bool      `json:"hasMoved"`
}

// Board owns the live pieces. The square index is authoritative: a piece is
// on the board iff it is referenced from its square.
type Board struct {
	squares [8][8]*Piece
	nextID  int
}

var backRankOrder = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns a board in the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	for file := 0; file < 8; file++ {
		b.place(backRankOrder[file], Black, Position{File: file, Rank: 0})
		b.place(Pawn, Black, Position{File: file, Rank: 1})
		b.place(Pawn, White, Position{File: file, Rank: 6})
		b.place(backRankOrder[file], White, Position{File: file, Rank: 7})
	}
	return b
}

// NewBoardFromPieces builds a board from an arbitrary placement. IDs are
// reassigned. It fails if a square is off the board or used twice, or if a
// color does not have exactly one king.
func NewBoardFromPieces(pieces []Piece) (*Board, error) {
	b := &Board{}
	kings := map[Color]int{}
	for _, p := range pieces {
		if !p.Position.onBoard() {
			return nil, fmt.Errorf("%w: %s off the board", ErrInvalidSetup, p.Position)
		}
		if b.at(p.Position) != nil {
			return nil, fmt.Errorf("%w: %s occupied twice", ErrInvalidSetup, p.Position)
		}
		placed := b.place(p.Kind, p.Color, p.Position)
		placed.HasMoved = p.HasMoved
		if p.Kind == King {
			kings[p.Color]++
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return nil, fmt.Errorf("%w: need exactly one king per color", ErrInvalidSetup)
	}
	return b, nil
}

func (b *Board) place(kind PieceKind, color Color, pos Position) *Piece {
	b.nextID++
	p := &Piece{ID: b.nextID, Kind: kind, Color: color, Position: pos}
	b.squares[pos.Rank][pos.File] = p
	return p
}

func (b *Board) at(pos Position) *Piece {
	if !pos.onBoard() {
		return nil
	}
	return b.squares[pos.Rank][pos.File]
}

func (b *Board) set(pos Position, p *Piece) {
	b.squares[pos.Rank][pos.File] = p
}

// PieceAt returns a copy of the piece on pos.
func (b *Board) PieceAt(pos Position) (Piece, bool) {
	p := b.at(pos)
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

// Pieces returns a copy of every live piece ordered by ID.
func (b *Board) Pieces() []Piece {
	pieces := make([]Piece, 0, 32)
	b.each(func(p *Piece) {
		pieces = append(pieces, *p)
	})
	sort.Slice(pieces, func(i, j int) bool { return pieces[i].ID < pieces[j].ID })
	return pieces
}

// Grid returns a rank-major copy of the board for serialisation.
func (b *Board) Grid() [][]*Piece {
	grid := make([][]*Piece, 8)
	for rank := 0; rank < 8; rank++ {
		grid[rank] = make([]*Piece, 8)
		for file := 0; file < 8; file++ {
			if p := b.squares[rank][file]; p != nil {
				cp := *p
				grid[rank][file] = &cp
			}
		}
	}
	return grid
}

func (b *Board) each(fn func(p *Piece)) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if p := b.squares[rank][file]; p != nil {
				fn(p)
			}
		}
	}
}

func (b *Board) piecesOf(color Color) []*Piece {
	var pieces []*Piece
	b.each(func(p *Piece) {
		if p.Color == color {
			pieces = append(pieces, p)
		}
	})
	return pieces
}

// kingSquare panics when the color has no king: every later check result
// would be meaningless.
func (b *Board) kingSquare(color Color) Position {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if p := b.squares[rank][file]; p != nil && p.Kind == King && p.Color == color {
				return p.Position
			}
		}
	}
	panic(fmt.Sprintf("model: no %s king on the board", color))
}
