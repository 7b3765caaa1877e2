package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/benbeisheim/hotseat-chess/internal/model"
)

const (
	SquareSize = 64
	BoardSize  = SquareSize * 8

	lightSquare = "fill:rgb(235,235,208)"
	darkSquare  = "fill:rgb(119,148,85)"
	markSquare  = "fill:rgb(246,246,105);fill-opacity:0.6"
)

var glyphs = map[model.PieceType]string{
	model.King:   "♚",
	model.Queen:  "♛",
	model.Rook:   "♜",
	model.Bishop: "♝",
	model.Knight: "♞",
	model.Pawn:   "♟",
}

// SVG draws board with row 0 at the top, optionally tinting marked squares.
func SVG(w io.Writer, board *model.Board, marked []model.Square) {
	canvas := svg.New(w)
	canvas.Start(BoardSize, BoardSize)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			style := lightSquare
			if (row+col)%2 == 1 {
				style = darkSquare
			}
			canvas.Rect(col*SquareSize, row*SquareSize, SquareSize, SquareSize, style)
		}
	}
	for _, sq := range marked {
		if sq.InBounds() {
			canvas.Rect(sq.Col*SquareSize, sq.Row*SquareSize, SquareSize, SquareSize, markSquare)
		}
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := board[row][col]
			if piece.IsEmpty() {
				continue
			}
			x := col*SquareSize + SquareSize/2
			y := row*SquareSize + SquareSize*3/4
			canvas.Text(x, y, glyphs[piece.Type], pieceStyle(piece.Color), fmt.Sprintf("data-piece=%q", piece.Code()))
		}
	}
	canvas.End()
}

func pieceStyle(color model.PlayerColor) string {
	if color == model.PlayerColorWhite {
		return "text-anchor:middle;font-size:48px;fill:white;stroke:black;stroke-width:1"
	}
	return "text-anchor:middle;font-size:48px;fill:black"
}
