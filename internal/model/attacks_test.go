package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAttacksInitialPosition(t *testing.T) {
	board := NewBoard()
	attacks, check := ComputeAttacks(&board)
	assert.False(t, check)

	// Back rank corners are the only unattacked squares behind each pawn wall.
	expected := [8][8]Coverage{}
	for col := 0; col < 8; col++ {
		expected[1][col] = CoverBlack
		expected[2][col] = CoverBlack
		expected[5][col] = CoverWhite
		expected[6][col] = CoverWhite
	}
	for col := 1; col < 7; col++ {
		expected[0][col] = CoverBlack
		expected[7][col] = CoverWhite
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			assert.Equal(t, expected[row][col], attacks[row][col], "square %s", Square{Row: row, Col: col})
		}
	}
}

func TestComputeAttacksRayStopsAtBlocker(t *testing.T) {
	board := mustBoard(t, [8]string{
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"bP -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"wR -- -- -- -- -- -- --",
	})
	attacks, _ := ComputeAttacks(&board)

	assert.True(t, attacks.At(sq(t, "a2")).AttackedBy(PlayerColorWhite))
	assert.True(t, attacks.At(sq(t, "a3")).AttackedBy(PlayerColorWhite))
	assert.True(t, attacks.At(sq(t, "a4")).AttackedBy(PlayerColorWhite), "blocker itself is attacked")
	assert.False(t, attacks.At(sq(t, "a5")).AttackedBy(PlayerColorWhite))
	assert.False(t, attacks.At(sq(t, "a8")).AttackedBy(PlayerColorWhite))
	assert.True(t, attacks.At(sq(t, "h1")).AttackedBy(PlayerColorWhite))
	assert.True(t, attacks.At(sq(t, "b3")).AttackedBy(PlayerColorBlack))
	assert.False(t, attacks.At(sq(t, "a3")).AttackedBy(PlayerColorBlack), "pawns do not attack straight ahead")
}

func TestComputeAttacksPawnIgnoresOccupant(t *testing.T) {
	board := mustBoard(t, [8]string{
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- wN -- -- -- --",
		"-- -- -- -- wP -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
	})
	attacks, _ := ComputeAttacks(&board)

	assert.Equal(t, CoverWhite, attacks.At(sq(t, "d5")), "friendly piece is defended")
	assert.Equal(t, CoverWhite, attacks.At(sq(t, "f5")))
	assert.Equal(t, CoverNone, attacks.At(sq(t, "e5")))
}

func TestComputeAttacksStepsClipToBoard(t *testing.T) {
	board := mustBoard(t, [8]string{
		"-- -- -- -- -- -- -- bK",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"wN -- -- -- -- -- -- --",
	})
	attacks, _ := ComputeAttacks(&board)

	var white, black []string
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			square := Square{Row: row, Col: col}
			if attacks.At(square).AttackedBy(PlayerColorWhite) {
				white = append(white, square.Notation())
			}
			if attacks.At(square).AttackedBy(PlayerColorBlack) {
				black = append(black, square.Notation())
			}
		}
	}
	assert.ElementsMatch(t, []string{"b3", "c2"}, white)
	assert.ElementsMatch(t, []string{"g8", "g7", "h7"}, black)
}

func TestComputeAttacksBothColors(t *testing.T) {
	board := mustBoard(t, [8]string{
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"wR -- -- -- -- -- -- bR",
	})
	attacks, check := ComputeAttacks(&board)
	assert.False(t, check)
	for col := 1; col < 7; col++ {
		assert.Equal(t, CoverBoth, attacks[7][col])
	}
	assert.Equal(t, CoverBlack, attacks.At(sq(t, "a1")))
	assert.Equal(t, CoverWhite, attacks.At(sq(t, "h1")))
	assert.Equal(t, "both", CoverBoth.String())
}

func TestComputeAttacksDetectsCheck(t *testing.T) {
	board := mustBoard(t, [8]string{
		"-- -- -- -- bK -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- wR -- -- wK",
	})
	_, check := ComputeAttacks(&board)
	assert.True(t, check)

	board.Set(sq(t, "e4"), Piece{Type: Pawn, Color: PlayerColorBlack})
	_, check = ComputeAttacks(&board)
	assert.False(t, check, "blocked ray does not give check")

	// A king next to its own rook is defended, not checked.
	board = mustBoard(t, [8]string{
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- wR wK -- -- --",
	})
	_, check = ComputeAttacks(&board)
	assert.False(t, check)
}
