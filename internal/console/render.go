package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gridgames/internal/game"
)

// gridLines draws a grid with a column header and a row index prefix
func gridLines(grid *game.Grid) []string {
	lines := make([]string, 0, 2*grid.Rows()+2)

	var b strings.Builder
	b.WriteString("     ")
	for c := 0; c < grid.Cols(); c++ {
		fmt.Fprintf(&b, "%-4d", c)
	}
	lines = append(lines, strings.TrimRight(b.String(), " "))

	// Build separator line
	separator := "   +" + strings.Repeat("---+", grid.Cols())

	for r := 0; r < grid.Rows(); r++ {
		lines = append(lines, separator)

		b.Reset()
		fmt.Fprintf(&b, "%-3d", r)
		for c := 0; c < grid.Cols(); c++ {
			cell, _ := grid.At(r, c)
			b.WriteString("| ")
			b.WriteString(cell.Piece.String())
			b.WriteString(" ")
		}
		b.WriteString("|")
		lines = append(lines, b.String())
	}
	lines = append(lines, separator)

	return lines
}

// RenderGrid writes a single board
func RenderGrid(w io.Writer, grid *game.Grid) {
	for _, line := range gridLines(grid) {
		fmt.Fprintln(w, line)
	}
}

// RenderComposite writes every outer row of sub-boards side by side, each
// under a title with its label and status.
func RenderComposite(w io.Writer, c *game.Composite) {
	for r := 0; r < c.Rows(); r++ {
		blocks := make([][]string, 0, c.Cols())
		width := 0
		for col := 0; col < c.Cols(); col++ {
			sub, _ := c.SubGame(r, col)
			block := append([]string{subGameTitle(sub)}, gridLines(sub.Grid())...)
			for _, line := range block {
				width = max(width, len([]rune(line)))
			}
			blocks = append(blocks, block)
		}

		for i := range blocks[0] {
			parts := make([]string, 0, len(blocks))
			for _, block := range blocks {
				line := block[i]
				parts = append(parts, line+strings.Repeat(" ", width-len([]rune(line))))
			}
			fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
		}
		fmt.Fprintln(w)
	}
}

func subGameTitle(g *game.Game) string {
	switch g.Status() {
	case game.StatusWon:
		return fmt.Sprintf("   Game %s (won by %s)", g.Label(), g.Winner().Name)
	case game.StatusDrawn:
		return fmt.Sprintf("   Game %s (tied)", g.Label())
	default:
		return "   Game " + g.Label()
	}
}

// resultMessage returns a human-readable result for a finished game
func resultMessage(p game.Playable) string {
	switch p.Status() {
	case game.StatusWon:
		return fmt.Sprintf("Congratulations team %s! You won the game!", p.Winner().Name)
	case game.StatusDrawn:
		return "The game has ended in a tie."
	default:
		return "Game in progress"
	}
}

// moveErrorMessage explains why a move was rejected
func moveErrorMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidPosition):
		return "Invalid move. That position is not on the board."
	case errors.Is(err, game.ErrCellOccupied):
		return "Invalid move. That cell is already occupied."
	case errors.Is(err, game.ErrSubGameDecided):
		return "Invalid move. That game has already been decided."
	case errors.Is(err, game.ErrInvalidPiece):
		return "Invalid game piece. Please use X or O."
	case errors.Is(err, game.ErrNotYourTurn):
		return "It's not your turn."
	case errors.Is(err, game.ErrGameFinished):
		return "The game is already finished."
	default:
		return "Invalid move."
	}
}
