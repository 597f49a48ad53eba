package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

const BoardSize = 3

// Mark identifies one of the two players. PlayerX always moves first.
type Mark uint8

const (
	PlayerX Mark = iota + 1
	PlayerO
)

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "?"
	}
}

func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) Cell() Cell {
	if that == PlayerX {
		return XCell
	}
	return OCell
}

// Cell is a single board slot: empty or holding a mark.
type Cell uint8

const (
	EmptyCell Cell = iota
	XCell
	OCell
)

// Mark reports the mark held by the cell, false for an empty cell.
func (that Cell) Mark() (Mark, bool) {
	switch that {
	case XCell:
		return PlayerX, true
	case OCell:
		return PlayerO, true
	default:
		return 0, false
	}
}

func (that Cell) String() string {
	if mark, ok := that.Mark(); ok {
		return mark.String()
	}
	return "-"
}

// Move is a (row, column) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

func (that Move) inRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

type Outcome uint8

const (
	Undecided Outcome = iota
	XWins
	OWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "undecided"
	}
}

// WinLines lists every line of three in scan order: rows, columns, main diagonal, anti-diagonal.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a row-major 3x3 grid. It is a value: ApplyMove returns a new board and
// never changes the receiver.
//
// A well-formed board holds as many X marks as O marks, or exactly one more X.
type Board [BoardSize][BoardSize]Cell

// Initial returns the empty starting board.
func Initial() Board {
	return Board{}
}

func (that Board) Cell(move Move) Cell {
	return that[move.Row][move.Col]
}

func (that Board) counts() (int, int) {
	var countX, countO int
	for _, row := range that {
		for _, cell := range row {
			switch cell {
			case XCell:
				countX++
			case OCell:
				countO++
			}
		}
	}
	return countX, countO
}

// NextPlayer returns the mark to move. The result is only meaningful for a well-formed board.
func (that Board) NextPlayer() Mark {
	countX, countO := that.counts()
	if countX == countO {
		return PlayerX
	}
	return PlayerO
}

// LegalMoves returns every empty cell in row-major order.
func (that Board) LegalMoves() []Move {
	moves := make([]Move, 0, BoardSize*BoardSize)
	for row := range that {
		for col, cell := range that[row] {
			if cell == EmptyCell {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// ApplyMove places the next player's mark on the targeted cell of a copy of the board.
func (that Board) ApplyMove(move Move) (Board, error) {
	if !move.inRange() {
		return that, fmt.Errorf("%w: cell %s is out of range", apperror.ErrInvalidMove, move)
	}

	if that.Cell(move) != EmptyCell {
		return that, fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidMove, move)
	}

	next := that
	next[move.Row][move.Col] = that.NextPlayer().Cell()

	return next, nil
}

// WinningLine returns the first completed line in scan order.
func (that Board) WinningLine() ([3]Move, bool) {
	for _, line := range WinLines {
		a, b, c := that.Cell(line[0]), that.Cell(line[1]), that.Cell(line[2])
		if a != EmptyCell && a == b && b == c {
			return line, true
		}
	}
	return [3]Move{}, false
}

func (that Board) Winner() (Mark, bool) {
	line, ok := that.WinningLine()
	if !ok {
		return 0, false
	}
	return that.Cell(line[0]).Mark()
}

func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}
	return true
}

// IsTerminal reports whether the game is over: somebody won or no empty cell remains.
func (that Board) IsTerminal() bool {
	if _, ok := that.Winner(); ok {
		return true
	}
	return that.IsFull()
}

// Utility scores a terminal board from X's side: +1 X won, -1 O won, 0 draw.
// Callers must not rely on the result for boards that are not terminal.
func (that Board) Utility() int {
	winner, ok := that.Winner()
	switch {
	case !ok:
		return 0
	case winner == PlayerX:
		return 1
	default:
		return -1
	}
}

func (that Board) Outcome() Outcome {
	if winner, ok := that.Winner(); ok {
		if winner == PlayerX {
			return XWins
		}
		return OWins
	}

	if that.IsFull() {
		return Draw
	}

	return Undecided
}

// String renders the board as three rows joined by "/", e.g. "XX-/OO-/---".
func (that Board) String() string {
	var sb strings.Builder
	for row := range that {
		if row > 0 {
			sb.WriteByte('/')
		}
		for _, cell := range that[row] {
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

// ParseBoard reads a board written the way String renders it. Separators and
// whitespace are ignored; '-', '.' and '_' mark empty cells.
func ParseBoard(s string) (Board, error) {
	var board Board

	cells := 0
	for _, r := range s {
		var cell Cell

		switch r {
		case '/', ' ', '\t', '\n', '\r':
			continue
		case 'X', 'x':
			cell = XCell
		case 'O', 'o':
			cell = OCell
		case '-', '.', '_':
			cell = EmptyCell
		default:
			return Board{}, fmt.Errorf("%w: unknown symbol %q", apperror.ErrInvalidBoard, r)
		}

		if cells >= BoardSize*BoardSize {
			return Board{}, fmt.Errorf("%w: more than %d cells", apperror.ErrInvalidBoard, BoardSize*BoardSize)
		}

		board[cells/BoardSize][cells%BoardSize] = cell
		cells++
	}

	if cells != BoardSize*BoardSize {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", apperror.ErrInvalidBoard, cells, BoardSize*BoardSize)
	}

	countX, countO := board.counts()
	if countX != countO && countX != countO+1 {
		return Board{}, fmt.Errorf("%w: %d X marks and %d O marks", apperror.ErrInvalidBoard, countX, countO)
	}

	return board, nil
}

func (that Board) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Board) UnmarshalText(text []byte) error {
	board, err := ParseBoard(string(text))
	if err != nil {
		return err
	}

	*that = board

	return nil
}
