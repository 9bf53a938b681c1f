package game

// MoveRecord is one occupied cell of an archived game
type MoveRecord struct {
	Turn  int
	Row   int
	Col   int
	Actor string
	Piece Piece
	Side  string
}

// GameRecord is an immutable summary of one completed game instance
type GameRecord struct {
	ID         string
	Number     int
	Name       string
	Label      string // sub-game label, empty for top-level games
	Status     Status
	Winner     string // side name, empty unless Status is StatusWon
	TotalTurns int
	Rows       int
	Cols       int
	Moves      []MoveRecord // ordered by turn
}

// IsTie returns true if the game ended without a winner
func (r GameRecord) IsTie() bool {
	return r.Status == StatusDrawn
}

func sideName(s *Side) string {
	if s == nil {
		return ""
	}
	return s.Name
}

func movesFromCells(cells []Cell, sides []*Side) []MoveRecord {
	names := make(map[int]string, len(sides))
	for _, s := range sides {
		names[s.ID] = s.Name
	}

	moves := make([]MoveRecord, 0, len(cells))
	for _, c := range cells {
		moves = append(moves, MoveRecord{
			Turn:  c.Turn,
			Row:   c.Row,
			Col:   c.Col,
			Actor: c.Actor,
			Piece: c.Piece,
			Side:  names[c.Side],
		})
	}
	return moves
}
