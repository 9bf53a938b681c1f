package game

// Matcher reports whether the cell at a coordinate counts toward a win.
// Empty cells must never match.
type Matcher func(Coord) bool

// WinningLine returns the first line whose every cell satisfies match.
// A line is abandoned at its first non-matching cell.
func WinningLine(lines []Line, match Matcher) (Line, bool) {
	for _, line := range lines {
		if lineMatches(line, match) {
			return line, true
		}
	}
	return nil, false
}

// IsWinningFor reports whether any line is fully matched
func IsWinningFor(lines []Line, match Matcher) bool {
	_, ok := WinningLine(lines, match)
	return ok
}

func lineMatches(line Line, match Matcher) bool {
	if len(line) == 0 {
		return false
	}
	for _, c := range line {
		if !match(c) {
			return false
		}
	}
	return true
}

// PieceMatcher matches occupied cells holding piece
func PieceMatcher(g *Grid, piece Piece) Matcher {
	return func(c Coord) bool {
		cell, err := g.At(c.Row, c.Col)
		return err == nil && cell.Occupied() && cell.Piece == piece
	}
}

// SideMatcher matches occupied cells placed by the given side
func SideMatcher(g *Grid, side int) Matcher {
	return func(c Coord) bool {
		cell, err := g.At(c.Row, c.Col)
		return err == nil && cell.Occupied() && cell.Side == side
	}
}
