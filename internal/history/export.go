package history

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gridgames/internal/game"
)

// Write renders records as flat text blocks separated by a blank line
func Write(w io.Writer, records []game.GameRecord) error {
	bw := bufio.NewWriter(w)
	for i, rec := range records {
		if i > 0 {
			bw.WriteString("\n")
		}
		writeRecord(bw, rec)
	}
	return bw.Flush()
}

func writeRecord(w *bufio.Writer, rec game.GameRecord) {
	fmt.Fprintf(w, "GAME NUMBER:\t%d\n", rec.Number)

	name := rec.Name
	if rec.Label != "" {
		name += " (" + rec.Label + ")"
	}
	fmt.Fprintf(w, "GAME NAME:\t%s\n", name)

	switch rec.Status {
	case game.StatusWon:
		fmt.Fprintf(w, "WINNER TEAM:\tTeam %s\n", rec.Winner)
	case game.StatusDrawn:
		w.WriteString("GAME TIED\n")
	default:
		w.WriteString("GAME UNFINISHED\n")
	}

	fmt.Fprintf(w, "TURNS TAKEN:\t%d\n", rec.TotalTurns)
	fmt.Fprintf(w, "BOARD SIZE:\t%dx%d\n", rec.Rows, rec.Cols)
	w.WriteString("MOVES (NUMBER, POSITION, PLAYER, PIECE, TEAM):\n")
	for _, m := range rec.Moves {
		fmt.Fprintf(w, "%d,(%d,%d),%s,Piece %s,Team %s\n", m.Turn, m.Row, m.Col, m.Actor, m.Piece, m.Side)
	}
}

// AppendFile appends records to the file at path, creating it if needed
func AppendFile(path string, records []game.GameRecord) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close history file: %w", cerr)
		}
	}()

	if err := Write(f, records); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}
