package model

// GameState owns the live board, the side to move and the log of accepted
// moves. It is not safe for concurrent use; Game serialises access for the
// server.
type GameState struct {
	Board       Board
	WhiteToMove bool
	MoveLog     []Move
}

func NewGameState() *GameState {
	return NewGameStateFrom(NewBoard(), true)
}

// NewGameStateFrom starts a game from an arbitrary position with an empty log.
func NewGameStateFrom(board Board, whiteToMove bool) *GameState {
	return &GameState{
		Board:       board,
		WhiteToMove: whiteToMove,
		MoveLog:     make([]Move, 0),
	}
}

func (gs *GameState) SideToMove() PlayerColor {
	if gs.WhiteToMove {
		return PlayerColorWhite
	}
	return PlayerColorBlack
}

// ApplyMove plays a move previously accepted by Validate. It does not re-check
// legality.
func (gs *GameState) ApplyMove(move Move, special Special) {
	gs.Board.apply(move, special)
	gs.MoveLog = append(gs.MoveLog, move)
	gs.WhiteToMove = !gs.WhiteToMove
}

// InCheck reports whether the king of color is attacked by the opponent.
func (gs *GameState) InCheck(color PlayerColor) bool {
	return isKingAttacked(&gs.Board, color)
}

// LegalTargets lists every square the piece on from may legally move to.
func (gs *GameState) LegalTargets(from Square) []Square {
	targets := make([]Square, 0)
	if !from.InBounds() {
		return targets
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			to := Square{Row: row, Col: col}
			if ok, _ := gs.IsLegal(NewMove(from, to, &gs.Board)); ok {
				targets = append(targets, to)
			}
		}
	}
	return targets
}

func (gs *GameState) MoveHistory() []string {
	history := make([]string, 0, len(gs.MoveLog))
	for _, move := range gs.MoveLog {
		history = append(history, move.Notation())
	}
	return history
}
