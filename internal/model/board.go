package model

import (
	"fmt"
	"strings"
)

type PieceType string

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return "-"
}

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

var pieceTypesByNotation = map[byte]PieceType{
	'K': King,
	'Q': Queen,
	'R': Rook,
	'B': Bishop,
	'N': Knight,
	'P': Pawn,
}

// Piece is a value; the zero Piece is the empty square.
type Piece struct {
	Type  PieceType   `json:"type"`
	Color PlayerColor `json:"color"`
}

var Empty = Piece{}

func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Code returns the two-character form used in logs and the wire format, e.g. "wP" or "--".
func (p Piece) Code() string {
	if p.IsEmpty() {
		return "--"
	}
	return p.Color.short() + p.Type.getPieceNotation()
}

func (p Piece) String() string {
	return p.Code()
}

func ParsePiece(code string) (Piece, error) {
	if code == "--" {
		return Empty, nil
	}
	if len(code) != 2 {
		return Empty, fmt.Errorf("invalid piece code %q", code)
	}
	var color PlayerColor
	switch code[0] {
	case 'w':
		color = PlayerColorWhite
	case 'b':
		color = PlayerColorBlack
	default:
		return Empty, fmt.Errorf("invalid piece color in %q", code)
	}
	pieceType, ok := pieceTypesByNotation[code[1]]
	if !ok {
		return Empty, fmt.Errorf("invalid piece type in %q", code)
	}
	return Piece{Type: pieceType, Color: color}, nil
}

type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

var (
	colsToFiles = [8]string{"a", "b", "c", "d", "e", "f", "g", "h"}
	rowsToRanks = [8]string{"8", "7", "6", "5", "4", "3", "2", "1"}
)

func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

func (s Square) offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// Notation returns file letter plus rank digit, row 0 being rank 8.
func (s Square) Notation() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return colsToFiles[s.Col] + rowsToRanks[s.Row]
}

func (s Square) String() string {
	return s.Notation()
}

func ParseSquare(notation string) (Square, error) {
	if len(notation) != 2 {
		return Square{}, fmt.Errorf("invalid square %q", notation)
	}
	col := int(notation[0]) - 'a'
	row := '8' - int(notation[1])
	sq := Square{Row: row, Col: col}
	if !sq.InBounds() {
		return Square{}, fmt.Errorf("invalid square %q", notation)
	}
	return sq, nil
}

// Board is indexed [row][col]. Copying a Board yields an independent snapshot.
type Board [8][8]Piece

func (b *Board) At(sq Square) Piece {
	return b[sq.Row][sq.Col]
}

func (b *Board) Set(sq Square, p Piece) {
	b[sq.Row][sq.Col] = p
}

// KingSquares returns every square holding a king of the given color.
func (b *Board) KingSquares(color PlayerColor) []Square {
	var squares []Square
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b[row][col]; p.Type == King && p.Color == color {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}

// Codes returns the board as rows of piece codes for JSON and rendering.
func (b *Board) Codes() [][]string {
	codes := make([][]string, 8)
	for row := 0; row < 8; row++ {
		codes[row] = make([]string, 8)
		for col := 0; col < 8; col++ {
			codes[row][col] = b[row][col].Code()
		}
	}
	return codes
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b[row][col].Code())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// apply performs the board writes of a move without any legality checks.
func (b *Board) apply(move Move, special Special) {
	b.Set(move.Start, Empty)
	b.Set(move.End, move.PieceMoved)
	if special == EnPassant {
		b.Set(Square{Row: move.Start.Row, Col: move.End.Col}, Empty)
	}
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func NewBoard() Board {
	var board Board
	for col := 0; col < 8; col++ {
		board[0][col] = Piece{Type: backRank[col], Color: PlayerColorBlack}
		board[1][col] = Piece{Type: Pawn, Color: PlayerColorBlack}
		board[6][col] = Piece{Type: Pawn, Color: PlayerColorWhite}
		board[7][col] = Piece{Type: backRank[col], Color: PlayerColorWhite}
	}
	return board
}

// ParseBoard builds a board from eight rows of space-separated piece codes, row 0 first.
func ParseBoard(rows [8]string) (Board, error) {
	var board Board
	for row, line := range rows {
		codes := strings.Fields(line)
		if len(codes) != 8 {
			return Board{}, fmt.Errorf("row %d: expected 8 squares, got %d", row, len(codes))
		}
		for col, code := range codes {
			piece, err := ParsePiece(code)
			if err != nil {
				return Board{}, fmt.Errorf("row %d: %w", row, err)
			}
			board[row][col] = piece
		}
	}
	return board, nil
}
