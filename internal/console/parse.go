package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gridgames/internal/game"
)

// ErrMalformedInput is returned by the parsers when a line cannot be used.
// Prompts re-ask on it instead of failing.
var ErrMalformedInput = errors.New("malformed input")

// Selector picks one of the playable game types
type Selector string

const (
	SelectTicTacToe      Selector = "T"
	SelectOrderAndChaos  Selector = "O"
	SelectSuperTicTacToe Selector = "S"
)

// Name returns the game name the selector starts
func (s Selector) Name() string {
	switch s {
	case SelectTicTacToe:
		return game.NameTicTacToe
	case SelectOrderAndChaos:
		return game.NameOrderAndChaos
	case SelectSuperTicTacToe:
		return game.NameSuperTicTacToe
	default:
		return "Unknown"
	}
}

// ParseSelector reads a game selector from the first character of s
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrMalformedInput
	}
	sel := Selector(strings.ToUpper(s[:1]))
	switch sel {
	case SelectTicTacToe, SelectOrderAndChaos, SelectSuperTicTacToe:
		return sel, nil
	default:
		return "", fmt.Errorf("%w: unknown game %q", ErrMalformedInput, s)
	}
}

func parsePair(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: expected two comma separated numbers", ErrMalformedInput)
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return a, b, nil
}

// ParseCoord reads "row,col". Bounds are checked by the game.
func ParseCoord(s string) (game.Coord, error) {
	row, col, err := parsePair(s)
	if err != nil {
		return game.Coord{}, err
	}
	return game.Coord{Row: row, Col: col}, nil
}

// ParseBoardSize reads "rows,cols" within [1, max]. A blank line returns
// zeros, meaning the default board. A single cell is refused since no win
// length fits it.
func ParseBoardSize(s string, maxRows, maxCols int) (rows, cols int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, nil
	}
	rows, cols, err = parsePair(s)
	if err != nil {
		return 0, 0, err
	}
	if rows < 1 || rows > maxRows || cols < 1 || cols > maxCols || max(rows, cols) < 2 {
		return 0, 0, fmt.Errorf("%w: board %dx%d out of range", ErrMalformedInput, rows, cols)
	}
	return rows, cols, nil
}

// ParseWinLength reads a positive integer; blank returns 0 for the default
func ParseWinLength(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: win length must be a positive number", ErrMalformedInput)
	}
	return n, nil
}

// ParseYesNo accepts y, yes, n and no in any case
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrMalformedInput
	}
}

// ParsePlayers splits a comma separated list of names, dropping blanks
func ParsePlayers(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// ParsePiece reads X or O
func ParsePiece(s string) (game.Piece, error) {
	piece, err := game.ParsePiece(s)
	if err != nil {
		return game.PieceNone, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return piece, nil
}

// ParseLabel matches s against the known sub-game labels, ignoring case
func ParseLabel(s string, labels []string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, l := range labels {
		if s == l {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unknown game %q", ErrMalformedInput, s)
}
