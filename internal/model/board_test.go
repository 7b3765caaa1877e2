package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareNotation(t *testing.T) {
	assert.Equal(t, "a8", Square{Row: 0, Col: 0}.Notation())
	assert.Equal(t, "h1", Square{Row: 7, Col: 7}.Notation())
	assert.Equal(t, "e2", Square{Row: 6, Col: 4}.Notation())
	assert.Equal(t, "d5", Square{Row: 3, Col: 3}.Notation())

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			square := Square{Row: row, Col: col}
			parsed, err := ParseSquare(square.Notation())
			require.NoError(t, err)
			assert.Equal(t, square, parsed)
		}
	}
}

func TestParseSquareRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "e", "e22", "i1", "a0", "a9", "E2", "2e"} {
		_, err := ParseSquare(input)
		assert.Error(t, err, input)
	}
}

func TestParsePiece(t *testing.T) {
	piece, err := ParsePiece("bN")
	require.NoError(t, err)
	assert.Equal(t, Piece{Type: Knight, Color: PlayerColorBlack}, piece)
	assert.Equal(t, "bN", piece.Code())

	empty, err := ParsePiece("--")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	for _, code := range []string{"", "w", "xK", "wX", "wKK"} {
		_, err := ParsePiece(code)
		assert.Error(t, err, code)
	}
}

func TestNewBoardLayout(t *testing.T) {
	board := NewBoard()
	assert.Equal(t, "bR bN bB bQ bK bB bN bR\n"+
		"bP bP bP bP bP bP bP bP\n"+
		"-- -- -- -- -- -- -- --\n"+
		"-- -- -- -- -- -- -- --\n"+
		"-- -- -- -- -- -- -- --\n"+
		"-- -- -- -- -- -- -- --\n"+
		"wP wP wP wP wP wP wP wP\n"+
		"wR wN wB wQ wK wB wN wR\n", board.String())

	assert.Equal(t, []Square{{Row: 7, Col: 4}}, board.KingSquares(PlayerColorWhite))
	assert.Equal(t, []Square{{Row: 0, Col: 4}}, board.KingSquares(PlayerColorBlack))
}

func TestParseBoardRoundTrip(t *testing.T) {
	board := NewBoard()
	var rows [8]string
	for row, codes := range board.Codes() {
		for col, code := range codes {
			if col > 0 {
				rows[row] += " "
			}
			rows[row] += code
		}
	}
	assert.Equal(t, board, mustBoard(t, rows))

	rows[3] = "-- --"
	_, err := ParseBoard(rows)
	assert.Error(t, err)
}

func TestMoveCachesPiecesAndNotation(t *testing.T) {
	board := NewBoard()
	move := NewMove(Square{Row: 6, Col: 4}, Square{Row: 4, Col: 4}, &board)
	assert.Equal(t, Piece{Type: Pawn, Color: PlayerColorWhite}, move.PieceMoved)
	assert.True(t, move.PieceCaptured.IsEmpty())
	assert.Equal(t, "e2e4", move.Notation())

	outside := NewMove(Square{Row: 8, Col: 0}, Square{Row: 0, Col: -1}, &board)
	assert.True(t, outside.PieceMoved.IsEmpty())
	assert.True(t, outside.PieceCaptured.IsEmpty())
}
