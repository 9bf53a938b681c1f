package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Status represents the current status of a game
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDrawn
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "IN_PROGRESS"
	case StatusWon:
		return "WON"
	case StatusDrawn:
		return "DRAWN"
	default:
		return "UNKNOWN"
	}
}

// IsFinished returns true if the game has ended
func (s Status) IsFinished() bool {
	return s == StatusWon || s == StatusDrawn
}

// ErrGameAlreadyStarted is returned when reconfiguring a game that has moves on it
var ErrGameAlreadyStarted = fmt.Errorf("%w: game has already started", ErrInvalidConfig)

// Outcome is the result of evaluating a game after a move
type Outcome struct {
	Status Status
	Winner *Side
	Line   Line
}

// Playable is implemented by both the single-grid Game and the Composite
type Playable interface {
	Name() string
	Status() Status
	Winner() *Side
	CurrentSide() *Side
	Sides() []*Side
	Turn() int
	Number() int
	Reset() []GameRecord
}

var (
	_ Playable = (*Game)(nil)
	_ Playable = (*Composite)(nil)
)

// Config describes a single-grid game
type Config struct {
	Rows      int
	Cols      int
	WinLength int // 0 selects DefaultWinLength
	Rules     Rules
	Sides     []*Side
	Label     string
}

// Move is one placement request
type Move struct {
	Row   int
	Col   int
	Side  int
	Actor string
	Piece Piece // only consulted when the rules let the player choose
}

// Game is a turn-based game over a single grid
type Game struct {
	id        string
	label     string
	number    int
	rules     Rules
	sides     []*Side
	cache     *LineCache
	lines     []Line
	winLength int

	grid      *Grid
	turn      int
	current   int
	lastMover *Side
	status    Status
	winner    *Side
	winLine   Line
}

// NewGame creates a game with the specified configuration
func NewGame(cfg Config) (*Game, error) {
	if err := validateSides(cfg.Sides); err != nil {
		return nil, err
	}
	if cfg.Rules == nil {
		cfg.Rules = TicTacToeRules{}
	}

	grid, err := NewGrid(cfg.Rows, cfg.Cols)
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

	return &Game{
		id:        uuid.New().String(),
		label:     cfg.Label,
		number:    1,
		rules:     cfg.Rules,
		sides:     cfg.Sides,
		cache:     cache,
		lines:     lines,
		winLength: winLength,
		grid:      grid,
		status:    StatusInProgress,
	}, nil
}

// SetWinLength changes the run length before the first move
func (g *Game) SetWinLength(winLength int) error {
	if g.turn > 0 {
		return ErrGameAlreadyStarted
	}
	lines, err := g.cache.Lines(g.grid.Rows(), g.grid.Cols(), winLength)
	if err != nil {
		return err
	}
	g.lines = lines
	g.winLength = winLength
	return nil
}

// ApplyMove validates and places a move for the side whose turn it is, then
// re-evaluates the game. A rejected move leaves the game untouched.
func (g *Game) ApplyMove(m Move) error {
	if g.status.IsFinished() {
		return ErrGameFinished
	}

	side := g.sideByID(m.Side)
	if side == nil {
		return ErrUnknownSide
	}
	if side != g.CurrentSide() {
		return ErrNotYourTurn
	}

	if err := g.place(m, side, g.turn); err != nil {
		return err
	}
	g.CheckOutcome()
	return nil
}

// place writes the move with the given provenance turn and advances the turn
// counter. Side order is the caller's responsibility.
func (g *Game) place(m Move, side *Side, turnIndex int) error {
	if g.status.IsFinished() {
		return ErrGameFinished
	}

	piece, err := g.rules.Piece(side, m.Piece)
	if err != nil {
		return err
	}
	if err := g.grid.Place(m.Row, m.Col, piece, side.ID, turnIndex, m.Actor); err != nil {
		return err
	}

	g.turn++
	g.lastMover = side
	return nil
}

// CheckOutcome evaluates the game for the side that moved last. It only
// depends on the current board, so repeated calls give the same answer.
func (g *Game) CheckOutcome() Outcome {
	if g.status.IsFinished() || g.lastMover == nil {
		return g.outcome()
	}

	if winner, line := g.rules.Winner(g.grid, g.lines, g.lastMover, g.sides); winner != nil {
		g.status = StatusWon
		g.winner = winner
		g.winLine = line
		return g.outcome()
	}

	if g.grid.IsFull() {
		if winner := g.rules.OnFull(g.sides); winner != nil {
			g.status = StatusWon
			g.winner = winner
		} else {
			g.status = StatusDrawn
		}
		return g.outcome()
	}

	g.current = g.turn % len(g.sides)
	return g.outcome()
}

func (g *Game) outcome() Outcome {
	return Outcome{Status: g.status, Winner: g.winner, Line: g.winLine}
}

// Reset archives the current grid and starts a fresh game of the same shape
func (g *Game) Reset() []GameRecord {
	return []GameRecord{g.reset()}
}

func (g *Game) reset() GameRecord {
	rec := g.Record()

	grid, _ := NewGrid(g.grid.Rows(), g.grid.Cols())
	g.grid = grid
	g.id = uuid.New().String()
	g.number++
	g.turn = 0
	g.current = 0
	g.lastMover = nil
	g.status = StatusInProgress
	g.winner = nil
	g.winLine = nil

	return rec
}

// Record snapshots the game as a history entry
func (g *Game) Record() GameRecord {
	return GameRecord{
		ID:         g.id,
		Number:     g.number,
		Name:       g.rules.Name(),
		Label:      g.label,
		Status:     g.status,
		Winner:     sideName(g.winner),
		TotalTurns: g.turn,
		Rows:       g.grid.Rows(),
		Cols:       g.grid.Cols(),
		Moves:      movesFromCells(g.grid.OccupiedByTurn(), g.sides),
	}
}

func (g *Game) sideByID(id int) *Side {
	for _, s := range g.sides {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (g *Game) ID() string         { return g.id }
func (g *Game) Label() string      { return g.label }
func (g *Game) Number() int        { return g.number }
func (g *Game) Name() string       { return g.rules.Name() }
func (g *Game) Rules() Rules       { return g.rules }
func (g *Game) Status() Status     { return g.status }
func (g *Game) Winner() *Side      { return g.winner }
func (g *Game) WinningLine() Line  { return g.winLine }
func (g *Game) Turn() int          { return g.turn }
func (g *Game) WinLength() int     { return g.winLength }
func (g *Game) Sides() []*Side     { return g.sides }
func (g *Game) CurrentSide() *Side { return g.sides[g.current] }

// Lines returns the cached candidate lines. Callers must not modify them.
func (g *Game) Lines() []Line { return g.lines }

// Grid returns a copy of the board
func (g *Game) Grid() *Grid { return g.grid.Clone() }
