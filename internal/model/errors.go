package model

import (
	"errors"
	"fmt"
)

var ErrInvalidMove = errors.New("invalid move")

var (
	ErrOutOfBounds  = invalidMove("square out of bounds")
	ErrStaleMove    = invalidMove("move does not match the board")
	ErrNoOpMove     = invalidMove("start and end square are the same")
	ErrNoPiece      = invalidMove("no piece at from square")
	ErrWrongSide    = invalidMove("not your turn")
	ErrSelfCapture  = invalidMove("cannot capture own piece")
	ErrKingCapture  = invalidMove("kings cannot be captured")
	ErrIllegalShape = invalidMove("piece cannot move that way")
	ErrBlockedPath  = invalidMove("path is blocked")
	ErrEnPassant    = invalidMove("en passant not available")
	ErrUnsafeSquare = invalidMove("king cannot move onto an attacked square")
	ErrSelfCheck    = invalidMove("move leaves own king in check")
)

func invalidMove(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidMove, reason)
}
