package game

import (
	"errors"
	"fmt"
	"iter"
	"sort"
	"strings"
)

// Piece is the symbol placed in a cell. Pieces compare by symbol value.
type Piece rune

const (
	PieceNone Piece = 0
	PieceX    Piece = 'X'
	PieceO    Piece = 'O'
)

func (p Piece) String() string {
	if p == PieceNone {
		return " "
	}
	return string(rune(p))
}

// ParsePiece converts user input such as "x" or "O" into a Piece
func ParsePiece(s string) (Piece, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PieceNone, ErrInvalidPiece
	}
	switch Piece(strings.ToUpper(s)[0]) {
	case PieceX:
		return PieceX, nil
	case PieceO:
		return PieceO, nil
	default:
		return PieceNone, ErrInvalidPiece
	}
}

// Error classes. Every concrete error below wraps one of these.
var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Common errors
var (
	ErrInvalidBoardSize = fmt.Errorf("%w: board size out of range", ErrInvalidConfig)
	ErrInvalidWinLength = fmt.Errorf("%w: win length out of range", ErrInvalidConfig)
	ErrInvalidSides     = fmt.Errorf("%w: a game needs at least two sides", ErrInvalidConfig)

	ErrInvalidPosition = fmt.Errorf("%w: position out of bounds", ErrInvalidMove)
	ErrCellOccupied    = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrNotYourTurn     = fmt.Errorf("%w: not your turn", ErrInvalidMove)
	ErrGameFinished    = fmt.Errorf("%w: game is already finished", ErrInvalidMove)
	ErrSubGameDecided  = fmt.Errorf("%w: sub-game is already decided", ErrInvalidMove)
	ErrInvalidPiece    = fmt.Errorf("%w: piece must be X or O", ErrInvalidMove)
	ErrUnknownSide     = fmt.Errorf("%w: side is not part of this game", ErrInvalidMove)
)

// Coord addresses a cell on a grid
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Cell is a single grid square. Side, Turn and Actor are the provenance of the
// move that filled it and are meaningless while Piece is PieceNone.
type Cell struct {
	Coord
	Piece Piece
	Side  int
	Turn  int
	Actor string
}

// Occupied reports whether a piece has been placed on the cell
func (c Cell) Occupied() bool {
	return c.Piece != PieceNone
}

// Grid is a fixed rows x cols matrix of cells. A cell is written at most once.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates an empty grid with the given dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidBoardSize
	}

	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i] = Cell{Coord: Coord{Row: i / cols, Col: i % cols}}
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// At returns the cell at the given position
func (g *Grid) At(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, ErrInvalidPosition
	}
	return g.cells[row*g.cols+col], nil
}

// InBounds checks if the position is within the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Place writes a piece and its provenance into an empty cell
func (g *Grid) Place(row, col int, piece Piece, side, turn int, actor string) error {
	if !g.InBounds(row, col) {
		return ErrInvalidPosition
	}
	if piece == PieceNone {
		return ErrInvalidPiece
	}
	idx := row*g.cols + col
	if g.cells[idx].Occupied() {
		return ErrCellOccupied
	}
	g.cells[idx] = Cell{
		Coord: Coord{Row: row, Col: col},
		Piece: piece,
		Side:  side,
		Turn:  turn,
		Actor: actor,
	}
	return nil
}

// All yields every cell in row-major order
func (g *Grid) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range g.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// IsFull returns true if all cells are occupied
func (g *Grid) IsFull() bool {
	for _, cell := range g.cells {
		if !cell.Occupied() {
			return false
		}
	}
	return true
}

// OccupiedByTurn returns the occupied cells ordered by the turn they were placed on
func (g *Grid) OccupiedByTurn() []Cell {
	var out []Cell
	for _, cell := range g.cells {
		if cell.Occupied() {
			out = append(out, cell)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Turn < out[j].Turn
	})
	return out
}

// Clone creates a deep copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
	}
}

// String returns a compact representation of the grid
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fmt.Fprintf(&b, "[%s]", g.cells[row*g.cols+col].Piece)
		}
		b.WriteString("\n")
	}
	return b.String()
}
