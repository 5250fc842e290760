// Package render draws read-only snapshots of a game for the browser UI.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/benbeisheim/checkmate-backend/internal/model"
)

const (
	TileSize = 60
	boardPx  = TileSize * 8

	lightTile  = "fill:#eeeed2"
	darkTile   = "fill:#769656"
	selectTile = "fill:#f6f669;fill-opacity:0.6"
	lastTile   = "fill:#baca44;fill-opacity:0.5"
	targetDot  = "fill:#000000;fill-opacity:0.25"
	checkTile  = "fill:#ff453a;fill-opacity:0.6"
)

var pieceGlyphs = map[model.Color]map[model.PieceKind]string{
	model.White: {model.King: "♔", model.Queen: "♕", model.Rook: "♖", model.Bishop: "♗", model.Knight: "♘", model.Pawn: "♙"},
	model.Black: {model.King: "♚", model.Queen: "♛", model.Rook: "♜", model.Bishop: "♝", model.Knight: "♞", model.Pawn: "♟"},
}

// Board writes an SVG image of state to w. Rank 0 is drawn at the top.
func Board(w io.Writer, state model.GameState) {
	canvas := svg.New(w)
	canvas.Start(boardPx, boardPx)
	defer canvas.End()

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			style := lightTile
			if (file+rank)%2 == 1 {
				style = darkTile
			}
			canvas.Rect(file*TileSize, rank*TileSize, TileSize, TileSize, style)
		}
	}

	if state.LastMove != nil {
		highlight(canvas, state.LastMove.From, lastTile)
		highlight(canvas, state.LastMove.To, lastTile)
	}
	if state.SelectedSquare != nil {
		highlight(canvas, *state.SelectedSquare, selectTile)
	}
	if state.IsCheck {
		if king := findKing(state); king != nil {
			highlight(canvas, *king, checkTile)
		}
	}

	canvas.Gstyle("font-size:48px;text-anchor:middle;dominant-baseline:central")
	for rank, row := range state.Board {
		for file, p := range row {
			if p == nil {
				continue
			}
			x, y := center(model.Position{File: file, Rank: rank})
			canvas.Text(x, y, pieceGlyphs[p.Color][p.Kind], fmt.Sprintf(`id="piece-%d"`, p.ID))
		}
	}
	canvas.Gend()

	for _, pos := range state.LegalMoves {
		x, y := center(pos)
		canvas.Circle(x, y, TileSize/6, targetDot)
	}
}

func highlight(canvas *svg.SVG, pos model.Position, style string) {
	canvas.Rect(pos.File*TileSize, pos.Rank*TileSize, TileSize, TileSize, style)
}

func center(pos model.Position) (int, int) {
	return pos.File*TileSize + TileSize/2, pos.Rank*TileSize + TileSize/2
}

func findKing(state model.GameState) *model.Position {
	for _, row := range state.Board {
		for _, p := range row {
			if p != nil && p.Kind == model.King && p.Color == state.ToMove {
				pos := p.Position
				return &pos
			}
		}
	}
	return nil
}
