package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"gridgames/internal/game"
)

// ErrInputClosed is returned once the input stream is exhausted
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on out and reads one answer per line from in
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a prompter over the given streams
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Ask prints prompt and returns the next trimmed line
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// askUntil re-asks with retry for as long as parse reports malformed input
func askUntil[T any](p *Prompter, prompt, retry string, parse func(string) (T, error)) (T, error) {
	var zero T

	line, err := p.Ask(prompt)
	for {
		if err != nil {
			return zero, err
		}
		v, perr := parse(line)
		if perr == nil {
			return v, nil
		}
		if !errors.Is(perr, ErrMalformedInput) {
			return zero, perr
		}
		line, err = p.Ask(retry)
	}
}

func turnPrefix(side *game.Side, player *game.Player) string {
	return fmt.Sprintf("[TEAM %s] %s", side.Name, player.Name)
}

// AskSelector asks which game to play
func (p *Prompter) AskSelector() (Selector, error) {
	return askUntil(p,
		"Please enter game to play (T/O/S):\t",
		"Invalid input. Please enter game to play (T/O/S):\t",
		ParseSelector)
}

// AskPlayers asks for the members of a side
func (p *Prompter) AskPlayers(sideName string) ([]string, error) {
	line, err := p.Ask(fmt.Sprintf("Enter comma separated list of players on team %s (leave blank for default player):\t", sideName))
	if err != nil {
		return nil, err
	}
	return ParsePlayers(line), nil
}

// AskBoardSize asks for "rows,cols"; zeros mean the default board
func (p *Prompter) AskBoardSize(maxRows, maxCols int) (int, int, error) {
	prompt := "Enter desired board size (rows,columns) or leave blank to play default game:\t"
	retry := fmt.Sprintf("Invalid input. Rows ∈ [1, %d], columns ∈ [1, %d], not both 1\n%s", maxRows, maxCols, prompt)

	size, err := askUntil(p, prompt, retry, func(s string) (game.Coord, error) {
		rows, cols, err := ParseBoardSize(s, maxRows, maxCols)
		return game.Coord{Row: rows, Col: cols}, err
	})
	return size.Row, size.Col, err
}

// AskWinLength asks for a run length; 0 means the default
func (p *Prompter) AskWinLength() (int, error) {
	prompt := "Enter desired win length (pieces in a row to win) or leave blank to play default:\t"
	return askUntil(p, prompt, "Invalid input. "+prompt, ParseWinLength)
}

// AskMove asks the acting player for a "row,col" position
func (p *Prompter) AskMove(side *game.Side, player *game.Player) (game.Coord, error) {
	return askUntil(p,
		turnPrefix(side, player)+" enter your move (row,col):\t",
		"Invalid move. Please enter a valid move (row,col):\t",
		ParseCoord)
}

// AskPiece asks the acting player which piece to place
func (p *Prompter) AskPiece(side *game.Side, player *game.Player) (game.Piece, error) {
	return askUntil(p,
		turnPrefix(side, player)+" enter your game piece (X/O):\t",
		"Invalid game piece. Please enter a valid piece (X/O):\t",
		ParsePiece)
}

// AskSubGame asks the acting player which sub-game to play in
func (p *Prompter) AskSubGame(side *game.Side, player *game.Player, labels []string) (string, error) {
	span := labels[0] + "-" + labels[len(labels)-1]
	return askUntil(p,
		fmt.Sprintf("%s enter the game grid ID to make a move (%s):\t", turnPrefix(side, player), span),
		fmt.Sprintf("Invalid input. Please enter a valid game ID (%s):\t", span),
		func(s string) (string, error) { return ParseLabel(s, labels) })
}

// AskYesNo asks a y/n question
func (p *Prompter) AskYesNo(prompt string) (bool, error) {
	return askUntil(p, prompt, "Invalid input. Please enter y/n:\t", ParseYesNo)
}
