package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Super Tic Tac Toe geometry
const (
	SuperSize      = 3
	SuperWinLength = 3
)

// CompositeConfig describes a grid of sub-games. The outer fields size the
// meta board, the inner fields size every sub-game.
type CompositeConfig struct {
	Rows           int
	Cols           int
	WinLength      int // 0 selects DefaultWinLength
	InnerRows      int
	InnerCols      int
	InnerWinLength int // 0 selects DefaultWinLength
	InnerRules     Rules
	Sides          []*Side
}

// SuperTicTacToeConfig returns the 3x3 of 3x3 configuration
func SuperTicTacToeConfig(sides []*Side) CompositeConfig {
	return CompositeConfig{
		Rows:           SuperSize,
		Cols:           SuperSize,
		WinLength:      SuperWinLength,
		InnerRows:      SuperSize,
		InnerCols:      SuperSize,
		InnerWinLength: SuperWinLength,
		InnerRules:     TicTacToeRules{},
		Sides:          sides,
	}
}

// CompositeMove places a piece inside the sub-game at (SubRow, SubCol)
type CompositeMove struct {
	SubRow int
	SubCol int
	Move
}

// Composite is a meta game whose cells are sub-games. A meta cell is owned by
// the side that won the sub-game bound to it.
type Composite struct {
	id        string
	number    int
	sides     []*Side
	cache     *LineCache
	lines     []Line
	winLength int

	games     []*Game
	meta      *Grid
	turn      int
	current   int
	lastMover *Side
	status    Status
	winner    *Side
	winLine   Line
}

// NewComposite creates the meta game and all of its sub-games
func NewComposite(cfg CompositeConfig) (*Composite, error) {
	if err := validateSides(cfg.Sides); err != nil {
		return nil, err
	}

	meta, err := NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}

	winLength := cfg.WinLength
	if winLength == 0 {
		winLength = DefaultWinLength(cfg.Rows, cfg.Cols)
	}

	cache := NewLineCache()
	lines, err := cache.Lines(cfg.Rows, cfg.Cols, winLength)
	if err != nil {
		return nil, err
	}

	games := make([]*Game, 0, cfg.Rows*cfg.Cols)
	for r := 0; r < cfg.Rows; r++ {
		for c := 0; c < cfg.Cols; c++ {
			sub, err := NewGame(Config{
				Rows:      cfg.InnerRows,
				Cols:      cfg.InnerCols,
				WinLength: cfg.InnerWinLength,
				Rules:     cfg.InnerRules,
				Sides:     cfg.Sides,
				Label:     SubGameLabel(r, c, cfg.Cols, cfg.Rows*cfg.Cols),
			})
			if err != nil {
				return nil, fmt.Errorf("sub-game %d,%d: %w", r, c, err)
			}
			games = append(games, sub)
		}
	}

	return &Composite{
		id:        uuid.New().String(),
		number:    1,
		sides:     cfg.Sides,
		cache:     cache,
		lines:     lines,
		winLength: winLength,
		games:     games,
		meta:      meta,
		status:    StatusInProgress,
	}, nil
}

// SubGameLabel names a sub-game: letters in row-major order while they last
func SubGameLabel(row, col, cols, total int) string {
	idx := row*cols + col
	if total <= 26 {
		return string(rune('A' + idx))
	}
	return fmt.Sprintf("%d,%d", row, col)
}

// SubGame returns the sub-game at the given meta position. Moves must go
// through the Composite so that turn order is enforced.
func (c *Composite) SubGame(row, col int) (*Game, error) {
	if !c.meta.InBounds(row, col) {
		return nil, ErrInvalidPosition
	}
	return c.games[row*c.meta.Cols()+col], nil
}

// SubGameByLabel finds a sub-game by its label
func (c *Composite) SubGameByLabel(label string) (*Game, Coord, error) {
	for i, g := range c.games {
		if g.Label() == label {
			return g, Coord{Row: i / c.meta.Cols(), Col: i % c.meta.Cols()}, nil
		}
	}
	return nil, Coord{}, ErrInvalidPosition
}

// CanPlay checks that the sub-game at (row, col) accepts moves
func (c *Composite) CanPlay(row, col int) error {
	if c.status.IsFinished() {
		return ErrGameFinished
	}
	sub, err := c.SubGame(row, col)
	if err != nil {
		return err
	}
	if sub.Status().IsFinished() {
		return ErrSubGameDecided
	}
	return nil
}

// ApplyMove delegates the move to the selected sub-game, refreshes the meta
// cell it is bound to and re-evaluates the meta game.
func (c *Composite) ApplyMove(m CompositeMove) error {
	if err := c.CanPlay(m.SubRow, m.SubCol); err != nil {
		return err
	}

	side := c.sideByID(m.Side)
	if side == nil {
		return ErrUnknownSide
	}
	if side != c.CurrentSide() {
		return ErrNotYourTurn
	}

	sub, _ := c.SubGame(m.SubRow, m.SubCol)
	if err := sub.place(m.Move, side, c.turn); err != nil {
		return err
	}
	turnIndex := c.turn
	c.turn++
	c.lastMover = side

	if out := sub.CheckOutcome(); out.Status == StatusWon {
		piece, err := SymbolFor(out.Winner.ID)
		if err != nil {
			piece = Piece('0' + out.Winner.ID)
		}
		if err := c.meta.Place(m.SubRow, m.SubCol, piece, out.Winner.ID, turnIndex, m.Actor); err != nil {
			return fmt.Errorf("claim meta cell %d,%d: %w", m.SubRow, m.SubCol, err)
		}
	}

	c.CheckOutcome()
	return nil
}

// CheckOutcome evaluates the meta game, the side that moved last first. A
// sub-game may be won by a side other than the mover, so every side is
// checked before a draw is declared. Only won sub-games count toward a line;
// drawn ones never match.
func (c *Composite) CheckOutcome() Outcome {
	if c.status.IsFinished() || c.lastMover == nil {
		return c.outcome()
	}

	for _, side := range c.checkOrder() {
		if line, ok := WinningLine(c.lines, SideMatcher(c.meta, side.ID)); ok {
			c.status = StatusWon
			c.winner = side
			c.winLine = line
			return c.outcome()
		}
	}

	if c.allDecided() {
		c.status = StatusDrawn
		return c.outcome()
	}

	c.current = c.turn % len(c.sides)
	return c.outcome()
}

func (c *Composite) checkOrder() []*Side {
	order := make([]*Side, 0, len(c.sides))
	order = append(order, c.lastMover)
	for _, s := range c.sides {
		if s != c.lastMover {
			order = append(order, s)
		}
	}
	return order
}

func (c *Composite) allDecided() bool {
	for _, g := range c.games {
		if !g.Status().IsFinished() {
			return false
		}
	}
	return true
}

func (c *Composite) outcome() Outcome {
	return Outcome{Status: c.status, Winner: c.winner, Line: c.winLine}
}

// Reset archives the meta game followed by every sub-game, then starts over
func (c *Composite) Reset() []GameRecord {
	records := make([]GameRecord, 0, len(c.games)+1)
	records = append(records, c.Record())
	for _, g := range c.games {
		records = append(records, g.reset())
	}

	meta, _ := NewGrid(c.meta.Rows(), c.meta.Cols())
	c.meta = meta
	c.id = uuid.New().String()
	c.number++
	c.turn = 0
	c.current = 0
	c.lastMover = nil
	c.status = StatusInProgress
	c.winner = nil
	c.winLine = nil

	return records
}

// Record snapshots the meta game. Its moves are the won meta cells, stamped
// with the turn and actor that decided each sub-game.
func (c *Composite) Record() GameRecord {
	return GameRecord{
		ID:         c.id,
		Number:     c.number,
		Name:       NameSuperTicTacToe,
		Status:     c.status,
		Winner:     sideName(c.winner),
		TotalTurns: c.turn,
		Rows:       c.meta.Rows(),
		Cols:       c.meta.Cols(),
		Moves:      movesFromCells(c.meta.OccupiedByTurn(), c.sides),
	}
}

func (c *Composite) sideByID(id int) *Side {
	for _, s := range c.sides {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (c *Composite) ID() string         { return c.id }
func (c *Composite) Name() string       { return NameSuperTicTacToe }
func (c *Composite) Number() int        { return c.number }
func (c *Composite) Status() Status     { return c.status }
func (c *Composite) Winner() *Side      { return c.winner }
func (c *Composite) WinningLine() Line  { return c.winLine }
func (c *Composite) Turn() int          { return c.turn }
func (c *Composite) WinLength() int     { return c.winLength }
func (c *Composite) Sides() []*Side     { return c.sides }
func (c *Composite) CurrentSide() *Side { return c.sides[c.current] }
func (c *Composite) Rows() int          { return c.meta.Rows() }
func (c *Composite) Cols() int          { return c.meta.Cols() }

// Meta returns a copy of the meta board
func (c *Composite) Meta() *Grid { return c.meta.Clone() }
