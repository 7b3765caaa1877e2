package model

type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
)

func (c PlayerColor) Opponent() PlayerColor {
	if c == PlayerColorWhite {
		return PlayerColorBlack
	}
	return PlayerColorWhite
}

func (c PlayerColor) short() string {
	switch c {
	case PlayerColorWhite:
		return "w"
	case PlayerColorBlack:
		return "b"
	}
	return "-"
}

// forward is the row delta of a pawn advance for this color.
func (c PlayerColor) forward() int {
	if c == PlayerColorWhite {
		return -1
	}
	return 1
}

// pawnHomeRow is the row pawns of this color start on.
func (c PlayerColor) pawnHomeRow() int {
	if c == PlayerColorWhite {
		return 6
	}
	return 1
}

// enPassantRow is the only row a pawn of this color can capture en passant from.
func (c PlayerColor) enPassantRow() int {
	if c == PlayerColorWhite {
		return 3
	}
	return 4
}
