package model

// Coverage records which colors attack a square.
type Coverage uint8

const (
	CoverNone  Coverage = 0
	CoverWhite Coverage = 1
	CoverBlack Coverage = 2
	CoverBoth           = CoverWhite | CoverBlack
)

func coverageOf(color PlayerColor) Coverage {
	switch color {
	case PlayerColorWhite:
		return CoverWhite
	case PlayerColorBlack:
		return CoverBlack
	}
	return CoverNone
}

// AttackedBy reports whether color contributes to this coverage.
func (c Coverage) AttackedBy(color PlayerColor) bool {
	return c&coverageOf(color) != 0
}

func (c Coverage) String() string {
	switch c {
	case CoverNone:
		return "none"
	case CoverWhite:
		return "white"
	case CoverBlack:
		return "black"
	case CoverBoth:
		return "both"
	}
	return "unknown"
}

// AttackMap is derived from a Board and never stored.
type AttackMap [8][8]Coverage

func (m *AttackMap) At(sq Square) Coverage {
	return m[sq.Row][sq.Col]
}

var (
	rookDirs   = []Square{{Row: 0, Col: 1}, {Row: 0, Col: -1}, {Row: 1, Col: 0}, {Row: -1, Col: 0}}
	bishopDirs = []Square{{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}
	queenDirs  = append(append([]Square{}, rookDirs...), bishopDirs...)
	knightDirs = []Square{{Row: 2, Col: 1}, {Row: 2, Col: -1}, {Row: -2, Col: 1}, {Row: -2, Col: -1}, {Row: 1, Col: 2}, {Row: 1, Col: -2}, {Row: -1, Col: 2}, {Row: -1, Col: -2}}
	kingDirs   = queenDirs
)

// ComputeAttacks marks every square threatened by some piece on the board.
// Destination occupancy is ignored, so defended pieces count as attacked, but
// sliding rays stop at the first occupied square. checkDetected is set when a
// piece attacks the opposing king.
func ComputeAttacks(board *Board) (attacks AttackMap, checkDetected bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			from := Square{Row: row, Col: col}
			piece := board.At(from)
			if piece.IsEmpty() {
				continue
			}
			cover := coverageOf(piece.Color)
			for _, target := range attackedSquares(board, from, piece) {
				attacks[target.Row][target.Col] |= cover
				if victim := board.At(target); victim.Type == King && victim.Color != piece.Color {
					checkDetected = true
				}
			}
		}
	}
	return attacks, checkDetected
}

func attackedSquares(board *Board, from Square, piece Piece) []Square {
	switch piece.Type {
	case Pawn:
		forward := piece.Color.forward()
		return stepTargets(from, []Square{{Row: forward, Col: -1}, {Row: forward, Col: 1}})
	case Knight:
		return stepTargets(from, knightDirs)
	case King:
		return stepTargets(from, kingDirs)
	case Bishop:
		return rayTargets(board, from, bishopDirs)
	case Rook:
		return rayTargets(board, from, rookDirs)
	case Queen:
		return rayTargets(board, from, queenDirs)
	}
	return nil
}

func stepTargets(from Square, dirs []Square) []Square {
	targets := make([]Square, 0, len(dirs))
	for _, dir := range dirs {
		if target := from.offset(dir.Row, dir.Col); target.InBounds() {
			targets = append(targets, target)
		}
	}
	return targets
}

func rayTargets(board *Board, from Square, dirs []Square) []Square {
	var targets []Square
	for _, dir := range dirs {
		target := from.offset(dir.Row, dir.Col)
		for target.InBounds() {
			targets = append(targets, target)
			if !board.At(target).IsEmpty() {
				break
			}
			target = target.offset(dir.Row, dir.Col)
		}
	}
	return targets
}

// isKingAttacked reports whether any king of color stands on a square the opponent covers.
func isKingAttacked(board *Board, color PlayerColor) bool {
	attacks, _ := ComputeAttacks(board)
	for _, sq := range board.KingSquares(color) {
		if attacks.At(sq).AttackedBy(color.Opponent()) {
			return true
		}
	}
	return false
}
