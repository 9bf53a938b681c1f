package game

// Game names as shown in history records
const (
	NameTicTacToe      = "Tic Tac Toe"
	NameOrderAndChaos  = "Order and Chaos"
	NameSuperTicTacToe = "Super Tic Tac Toe"
)

// Side names used by Order and Chaos
const (
	SideOrder = "ORDER"
	SideChaos = "CHAOS"
)

// Order and Chaos geometry
const (
	OrderAndChaosSize      = 6
	OrderAndChaosWinLength = 5
)

// Rules are the per-game strategies plugged into a Game
type Rules interface {
	// Name identifies the game in history records
	Name() string

	// ChoosesPiece reports whether players pick their piece each turn
	ChoosesPiece() bool

	// Piece resolves what a side places this turn. choice is the piece the
	// player asked for, PieceNone if the game does not let them choose.
	Piece(side *Side, choice Piece) (Piece, error)

	// Winner is consulted after every accepted move. mover is the side that
	// just moved. A nil side means no winner yet.
	Winner(grid *Grid, lines []Line, mover *Side, sides []*Side) (*Side, Line)

	// OnFull decides a full board that has no winner. nil means a draw.
	OnFull(sides []*Side) *Side
}

// TicTacToeRules: each side owns a fixed symbol, first side X, second side O.
// The mover wins with a full line of its own symbol; a full board is a draw.
type TicTacToeRules struct{}

func (TicTacToeRules) Name() string { return NameTicTacToe }

func (TicTacToeRules) ChoosesPiece() bool { return false }

func (TicTacToeRules) Piece(side *Side, _ Piece) (Piece, error) {
	return SymbolFor(side.ID)
}

func (r TicTacToeRules) Winner(grid *Grid, lines []Line, mover *Side, _ []*Side) (*Side, Line) {
	piece, err := SymbolFor(mover.ID)
	if err != nil {
		return nil, nil
	}
	if line, ok := WinningLine(lines, PieceMatcher(grid, piece)); ok {
		return mover, line
	}
	return nil, nil
}

func (TicTacToeRules) OnFull([]*Side) *Side { return nil }

// SymbolFor returns the fixed symbol of a side in symbol-per-side games
func SymbolFor(sideID int) (Piece, error) {
	switch sideID {
	case 0:
		return PieceX, nil
	case 1:
		return PieceO, nil
	default:
		return PieceNone, ErrUnknownSide
	}
}

// OrderAndChaosRules: either side may place X or O. Any line of identical
// symbols wins for the first side (ORDER) no matter who completed it; a full
// board without such a line wins for the second side (CHAOS).
type OrderAndChaosRules struct{}

func (OrderAndChaosRules) Name() string { return NameOrderAndChaos }

func (OrderAndChaosRules) ChoosesPiece() bool { return true }

func (OrderAndChaosRules) Piece(_ *Side, choice Piece) (Piece, error) {
	if choice != PieceX && choice != PieceO {
		return PieceNone, ErrInvalidPiece
	}
	return choice, nil
}

func (OrderAndChaosRules) Winner(grid *Grid, lines []Line, _ *Side, sides []*Side) (*Side, Line) {
	for _, piece := range []Piece{PieceX, PieceO} {
		if line, ok := WinningLine(lines, PieceMatcher(grid, piece)); ok {
			return sides[0], line
		}
	}
	return nil, nil
}

func (OrderAndChaosRules) OnFull(sides []*Side) *Side {
	return sides[1]
}
