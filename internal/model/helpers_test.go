package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, rows [8]string) Board {
	t.Helper()
	board, err := ParseBoard(rows)
	require.NoError(t, err)
	return board
}

func sq(t *testing.T, notation string) Square {
	t.Helper()
	square, err := ParseSquare(notation)
	require.NoError(t, err)
	return square
}

// moveOn builds a move such as "e2e4" against the current board of gs.
func moveOn(t *testing.T, gs *GameState, notation string) Move {
	t.Helper()
	require.Len(t, notation, 4)
	return NewMove(sq(t, notation[:2]), sq(t, notation[2:]), &gs.Board)
}

// play validates and applies each move in turn, failing on the first rejection.
func play(t *testing.T, gs *GameState, notations ...string) {
	t.Helper()
	for _, notation := range notations {
		move := moveOn(t, gs, notation)
		special, err := gs.Validate(move)
		require.NoError(t, err, "move %s", notation)
		gs.ApplyMove(move, special)
	}
}

// legalMoves enumerates every accepted (start, end) pair for the side to move.
func legalMoves(gs *GameState) map[string]Special {
	moves := make(map[string]Special)
	for fromRow := 0; fromRow < 8; fromRow++ {
		for fromCol := 0; fromCol < 8; fromCol++ {
			for toRow := 0; toRow < 8; toRow++ {
				for toCol := 0; toCol < 8; toCol++ {
					move := NewMove(Square{Row: fromRow, Col: fromCol}, Square{Row: toRow, Col: toCol}, &gs.Board)
					if ok, special := gs.IsLegal(move); ok {
						moves[move.Notation()] = special
					}
				}
			}
		}
	}
	return moves
}

func keys(moves map[string]Special) []string {
	out := make([]string, 0, len(moves))
	for notation := range moves {
		out = append(out, notation)
	}
	return out
}
