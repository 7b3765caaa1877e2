package model

import "fmt"

// Special marks the side effects ApplyMove must perform beyond moving one piece.
type Special int

const (
	Normal Special = iota
	EnPassant
)

func (s Special) String() string {
	switch s {
	case Normal:
		return "normal"
	case EnPassant:
		return "enPassant"
	}
	return "unknown"
}

func (s Special) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Special) UnmarshalText(text []byte) error {
	switch string(text) {
	case "normal":
		*s = Normal
	case "enPassant":
		*s = EnPassant
	default:
		return fmt.Errorf("unknown special move %q", text)
	}
	return nil
}

// Move is a proposed transition between two squares. PieceMoved and
// PieceCaptured are cached from the board the move was built against, so a
// Move must not be reused once that board changes.
type Move struct {
	Start         Square `json:"start"`
	End           Square `json:"end"`
	PieceMoved    Piece  `json:"pieceMoved"`
	PieceCaptured Piece  `json:"pieceCaptured"`
}

// NewMove builds a move against board. Out-of-range squares yield empty cached
// pieces; Validate rejects such moves before reading the board.
func NewMove(start, end Square, board *Board) Move {
	move := Move{Start: start, End: end}
	if start.InBounds() {
		move.PieceMoved = board.At(start)
	}
	if end.InBounds() {
		move.PieceCaptured = board.At(end)
	}
	return move
}

// Notation returns the coordinate pair, e.g. "e2e4".
func (m Move) Notation() string {
	return m.Start.Notation() + m.End.Notation()
}

func (m Move) String() string {
	return m.Notation()
}

func (m Move) delta() (dx, dy int) {
	return m.End.Col - m.Start.Col, m.End.Row - m.Start.Row
}

type SimpleMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}
