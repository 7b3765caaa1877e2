package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/benbeisheim/hotseat-chess/internal/model"
)

// Terminal writes board to w as eight ranked rows with file letters below.
// White pieces are upper case and black pieces lower case so the board stays
// readable when color output is disabled.
func Terminal(w io.Writer, board *model.Board, marked []model.Square) error {
	isMarked := make(map[model.Square]bool, len(marked))
	for _, sq := range marked {
		isMarked[sq] = true
	}
	for row := 0; row < 8; row++ {
		if _, err := fmt.Fprintf(w, "%d ", 8-row); err != nil {
			return err
		}
		for col := 0; col < 8; col++ {
			sq := model.Square{Row: row, Col: col}
			piece := board.At(sq)
			if _, err := cellColor(sq, piece, isMarked[sq]).Fprint(w, " "+pieceText(piece)+" "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	return err
}

func cellColor(sq model.Square, piece model.Piece, marked bool) *color.Color {
	c := color.New(color.BgHiWhite)
	switch {
	case marked:
		c = color.New(color.BgYellow)
	case (sq.Row+sq.Col)%2 == 1:
		c = color.New(color.BgGreen)
	}
	switch piece.Color {
	case model.PlayerColorWhite:
		c.Add(color.FgHiBlue, color.Bold)
	case model.PlayerColorBlack:
		c.Add(color.FgBlack, color.Bold)
	}
	return c
}

func pieceText(piece model.Piece) string {
	if piece.IsEmpty() {
		return " "
	}
	letter := piece.Code()[1:]
	if piece.Color == model.PlayerColorBlack {
		return strings.ToLower(letter)
	}
	return letter
}
