package model

// IsLegal is the boolean form of Validate.
func (gs *GameState) IsLegal(move Move) (bool, Special) {
	special, err := gs.Validate(move)
	if err != nil {
		return false, Normal
	}
	return true, special
}

// Validate decides whether move may be played on the current board. The
// returned error is one of the Err* values in this package and wraps
// ErrInvalidMove. The board is never modified.
func (gs *GameState) Validate(move Move) (Special, error) {
	if !move.Start.InBounds() || !move.End.InBounds() {
		return Normal, ErrOutOfBounds
	}
	if gs.Board.At(move.Start) != move.PieceMoved || gs.Board.At(move.End) != move.PieceCaptured {
		return Normal, ErrStaleMove
	}
	if move.Start == move.End {
		return Normal, ErrNoOpMove
	}
	piece := move.PieceMoved
	if piece.IsEmpty() {
		return Normal, ErrNoPiece
	}
	if piece.Color != gs.SideToMove() {
		return Normal, ErrWrongSide
	}
	if target := move.PieceCaptured; !target.IsEmpty() {
		if target.Color == piece.Color {
			return Normal, ErrSelfCapture
		}
		if target.Type == King {
			return Normal, ErrKingCapture
		}
	}

	var (
		special = Normal
		err     error
	)
	switch piece.Type {
	case Pawn:
		special, err = gs.validatePawn(move)
	case Knight:
		err = validateKnight(move)
	case Bishop:
		err = gs.validateBishop(move)
	case Rook:
		err = gs.validateRook(move)
	case Queen:
		err = gs.validateQueen(move)
	case King:
		err = gs.validateKing(move)
	default:
		err = ErrIllegalShape
	}
	if err != nil {
		return Normal, err
	}

	// Probe the move on a scratch copy; the live board is untouched.
	scratch := gs.Board
	scratch.apply(move, special)
	if isKingAttacked(&scratch, piece.Color) {
		return Normal, ErrSelfCheck
	}
	return special, nil
}

func (gs *GameState) validatePawn(move Move) (Special, error) {
	color := move.PieceMoved.Color
	forward := color.forward()
	dx, dy := move.delta()

	switch {
	case abs(dx) == 1 && dy == forward:
		if !move.PieceCaptured.IsEmpty() {
			return Normal, nil
		}
		if !gs.enPassantAvailable(move) {
			return Normal, ErrEnPassant
		}
		return EnPassant, nil
	case dx == 0 && dy == forward:
		if !move.PieceCaptured.IsEmpty() {
			return Normal, ErrBlockedPath
		}
		return Normal, nil
	case dx == 0 && dy == 2*forward:
		if move.Start.Row != color.pawnHomeRow() {
			return Normal, ErrIllegalShape
		}
		passed := move.Start.offset(forward, 0)
		if !gs.Board.At(passed).IsEmpty() || !move.PieceCaptured.IsEmpty() {
			return Normal, ErrBlockedPath
		}
		return Normal, nil
	}
	return Normal, ErrIllegalShape
}

// enPassantAvailable expects a one-square diagonal pawn move onto an empty square.
func (gs *GameState) enPassantAvailable(move Move) bool {
	color := move.PieceMoved.Color
	if move.Start.Row != color.enPassantRow() || len(gs.MoveLog) == 0 {
		return false
	}
	victimSquare := Square{Row: move.Start.Row, Col: move.End.Col}
	victim := gs.Board.At(victimSquare)
	if victim.Type != Pawn || victim.Color != color.Opponent() {
		return false
	}
	last := gs.MoveLog[len(gs.MoveLog)-1]
	_, lastDy := last.delta()
	return last.PieceMoved == victim && last.End == victimSquare && abs(lastDy) == 2
}

func validateKnight(move Move) error {
	dx, dy := move.delta()
	dx, dy = abs(dx), abs(dy)
	if (dx == 1 && dy == 2) || (dx == 2 && dy == 1) {
		return nil
	}
	return ErrIllegalShape
}

func (gs *GameState) validateRook(move Move) error {
	dx, dy := move.delta()
	if dx != 0 && dy != 0 {
		return ErrIllegalShape
	}
	return gs.checkPath(move)
}

func (gs *GameState) validateBishop(move Move) error {
	dx, dy := move.delta()
	if abs(dx) != abs(dy) {
		return ErrIllegalShape
	}
	return gs.checkPath(move)
}

func (gs *GameState) validateQueen(move Move) error {
	dx, dy := move.delta()
	if dx == 0 || dy == 0 {
		return gs.validateRook(move)
	}
	return gs.validateBishop(move)
}

// validateKing accepts one-step moves and the two-file castle shape. Castling
// itself is not implemented: the shape moves only the king.
func (gs *GameState) validateKing(move Move) error {
	dx, dy := move.delta()
	if abs(dx) > 1 || abs(dy) > 1 {
		if abs(dx) != 2 || dy != 0 {
			return ErrIllegalShape
		}
	}
	attacks, _ := ComputeAttacks(&gs.Board)
	if attacks.At(move.End).AttackedBy(move.PieceMoved.Color.Opponent()) {
		return ErrUnsafeSquare
	}
	return nil
}

// checkPath requires every square strictly between start and end to be empty.
// The move must be straight or diagonal.
func (gs *GameState) checkPath(move Move) error {
	dx, dy := move.delta()
	stepRow, stepCol := sign(dy), sign(dx)
	for sq := move.Start.offset(stepRow, stepCol); sq != move.End; sq = sq.offset(stepRow, stepCol) {
		if !gs.Board.At(sq).IsEmpty() {
			return ErrBlockedPath
		}
	}
	return nil
}
