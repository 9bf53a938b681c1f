package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"gridgames/internal/game"
	"gridgames/internal/history"
	"gridgames/internal/stats"
)

// Options bound what the user may ask for
type Options struct {
	DefaultRows int
	DefaultCols int
	MaxRows     int
	MaxCols     int
	HistoryPath string
}

// Session drives one game type from side setup until the user stops playing
type Session struct {
	log     *slog.Logger
	prompt  *Prompter
	out     io.Writer
	history *history.Log
	stats   *stats.Store
	rng     *rand.Rand
	opts    Options
}

// NewSession creates a console session. rng picks the acting player of a
// side each turn.
func NewSession(
	logger *slog.Logger,
	in io.Reader,
	out io.Writer,
	hist *history.Log,
	st *stats.Store,
	rng *rand.Rand,
	opts Options,
) *Session {
	return &Session{
		log:     logger.With("component", "console"),
		prompt:  NewPrompter(in, out),
		out:     out,
		history: hist,
		stats:   st,
		rng:     rng,
		opts:    opts,
	}
}

// Run plays the selected game type; an empty selector is asked for. Running
// out of input ends the session without an error.
func (s *Session) Run(selector string) error {
	err := s.run(selector)
	if errors.Is(err, ErrInputClosed) {
		s.log.Info("input closed, ending session")
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}

func (s *Session) run(selector string) error {
	sel, err := ParseSelector(selector)
	if err != nil {
		if selector != "" {
			fmt.Fprintf(s.out, "Unknown game %q\n", selector)
		}
		if sel, err = s.prompt.AskSelector(); err != nil {
			return err
		}
	}

	s.log = s.log.With("game", sel.Name())
	s.log.Info("session started")

	switch sel {
	case SelectTicTacToe:
		return s.runTicTacToe()
	case SelectOrderAndChaos:
		return s.runOrderAndChaos()
	case SelectSuperTicTacToe:
		return s.runSuperTicTacToe()
	default:
		return fmt.Errorf("unsupported game %q", sel)
	}
}

func (s *Session) askSides(names ...string) ([]*game.Side, error) {
	sides := make([]*game.Side, 0, len(names))
	for i, name := range names {
		players, err := s.prompt.AskPlayers(name)
		if err != nil {
			return nil, err
		}
		sides = append(sides, game.NewSide(i, name, players...))
	}
	return sides, nil
}

func (s *Session) runTicTacToe() error {
	sides, err := s.askSides("X", "O")
	if err != nil {
		return err
	}

	rows, cols, err := s.prompt.AskBoardSize(s.opts.MaxRows, s.opts.MaxCols)
	if err != nil {
		return err
	}
	if rows == 0 {
		rows, cols = s.opts.DefaultRows, s.opts.DefaultCols
	}

	g, err := game.NewGame(game.Config{
		Rows:  rows,
		Cols:  cols,
		Rules: game.TicTacToeRules{},
		Sides: sides,
	})
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	if err := s.askWinLength(g); err != nil {
		return err
	}

	return s.playRounds(g, func() error { return s.playGame(g) })
}

func (s *Session) askWinLength(g *game.Game) error {
	longest := max(g.Grid().Rows(), g.Grid().Cols())
	for {
		winLength, err := s.prompt.AskWinLength()
		if err != nil {
			return err
		}
		if winLength == 0 {
			return nil
		}

		err = g.SetWinLength(winLength)
		if err == nil {
			return nil
		}
		if !errors.Is(err, game.ErrInvalidConfig) {
			return err
		}
		fmt.Fprintf(s.out, "Invalid input. winLength ∈ [2, %d]\n", longest)
	}
}

func (s *Session) runOrderAndChaos() error {
	sides, err := s.askSides(game.SideOrder, game.SideChaos)
	if err != nil {
		return err
	}

	g, err := game.NewGame(game.Config{
		Rows:      game.OrderAndChaosSize,
		Cols:      game.OrderAndChaosSize,
		WinLength: game.OrderAndChaosWinLength,
		Rules:     game.OrderAndChaosRules{},
		Sides:     sides,
	})
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	return s.playRounds(g, func() error { return s.playGame(g) })
}

func (s *Session) runSuperTicTacToe() error {
	sides, err := s.askSides("X", "O")
	if err != nil {
		return err
	}

	c, err := game.NewComposite(game.SuperTicTacToeConfig(sides))
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	return s.playRounds(c, func() error { return s.playComposite(c) })
}

// playRounds repeats play until the user declines another round, then shows
// the win counts with the session scoreboard and offers to save the history.
func (s *Session) playRounds(p game.Playable, play func() error) error {
	for {
		if err := play(); err != nil {
			return err
		}
		s.finish(p)

		again, err := s.prompt.AskYesNo("Would you like to play again (y/n):\t")
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	s.showWins(p.Sides())
	s.showScoreboard()
	return s.offerSave()
}

// finish announces the result, credits the winners and archives the game
func (s *Session) finish(p game.Playable) {
	fmt.Fprintln(s.out, resultMessage(p))

	winner := p.Winner()
	if winner != nil {
		winner.RecordWin()
	}
	s.stats.RecordGame(winner, p.Sides())

	number, turns := p.Number(), p.Turn()
	records := p.Reset()
	if err := s.history.Append(records...); err != nil {
		s.log.Error("could not archive game", "error", err)
		return
	}

	s.log.Info("game finished",
		"number", number,
		"winner", winnerName(winner),
		"turns", turns,
		"record_id", records[0].ID,
	)
}

func winnerName(side *game.Side) string {
	if side == nil {
		return "none"
	}
	return side.Name
}

func (s *Session) playGame(g *game.Game) error {
	for !g.Status().IsFinished() {
		RenderGrid(s.out, g.Grid())

		side := g.CurrentSide()
		player := side.RandomPlayer(s.rng)
		if err := s.takeTurn(g, side, player); err != nil {
			return err
		}
	}
	RenderGrid(s.out, g.Grid())
	return nil
}

func (s *Session) takeTurn(g *game.Game, side *game.Side, player *game.Player) error {
	for {
		pos, err := s.prompt.AskMove(side, player)
		if err != nil {
			return err
		}

		piece := game.PieceNone
		if g.Rules().ChoosesPiece() {
			if piece, err = s.prompt.AskPiece(side, player); err != nil {
				return err
			}
		}

		err = g.ApplyMove(game.Move{
			Row:   pos.Row,
			Col:   pos.Col,
			Side:  side.ID,
			Actor: player.Name,
			Piece: piece,
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, game.ErrInvalidMove) {
			return err
		}
		s.rejectMove(err)
	}
}

func (s *Session) playComposite(c *game.Composite) error {
	labels := subGameLabels(c)

	for !c.Status().IsFinished() {
		RenderComposite(s.out, c)

		side := c.CurrentSide()
		player := side.RandomPlayer(s.rng)
		if err := s.takeCompositeTurn(c, labels, side, player); err != nil {
			return err
		}
	}
	RenderComposite(s.out, c)
	return nil
}

func subGameLabels(c *game.Composite) []string {
	labels := make([]string, 0, c.Rows()*c.Cols())
	for r := 0; r < c.Rows(); r++ {
		for col := 0; col < c.Cols(); col++ {
			sub, _ := c.SubGame(r, col)
			labels = append(labels, sub.Label())
		}
	}
	return labels
}

func (s *Session) takeCompositeTurn(c *game.Composite, labels []string, side *game.Side, player *game.Player) error {
	for {
		label, err := s.prompt.AskSubGame(side, player, labels)
		if err != nil {
			return err
		}
		sub, at, err := c.SubGameByLabel(label)
		if err != nil {
			return err
		}
		if err := c.CanPlay(at.Row, at.Col); err != nil {
			s.rejectMove(err)
			continue
		}

		pos, err := s.prompt.AskMove(side, player)
		if err != nil {
			return err
		}

		err = c.ApplyMove(game.CompositeMove{
			SubRow: at.Row,
			SubCol: at.Col,
			Move: game.Move{
				Row:   pos.Row,
				Col:   pos.Col,
				Side:  side.ID,
				Actor: player.Name,
			},
		})
		if err == nil {
			if sub.Status().IsFinished() {
				fmt.Fprintf(s.out, "Game %s: %s\n", label, subGameResult(sub))
			}
			return nil
		}
		if !errors.Is(err, game.ErrInvalidMove) {
			return err
		}
		s.rejectMove(err)
	}
}

func subGameResult(g *game.Game) string {
	if g.Status() == game.StatusWon {
		return "won by team " + g.Winner().Name
	}
	return "tied"
}

func (s *Session) rejectMove(err error) {
	fmt.Fprintln(s.out, moveErrorMessage(err))
	s.log.Debug("move rejected", "error", err)
}

func (s *Session) showWins(sides []*game.Side) {
	for _, side := range sides {
		for _, player := range side.Players {
			fmt.Fprintf(s.out, "[TEAM %s] %s:\t%d wins\n", side.Name, player.Name, player.Wins)
		}
	}
}

// showScoreboard prints the tally of every player name seen this session
func (s *Session) showScoreboard() {
	fmt.Fprintln(s.out, "Scoreboard:")
	for _, st := range s.stats.All() {
		fmt.Fprintf(s.out, "%s:\t%d wins, %d losses, %d draws\n", st.Player, st.Wins, st.Losses, st.Draws)
	}
}

// offerSave appends the history to the configured file if the user agrees.
// A failed write is reported but does not fail the session.
func (s *Session) offerSave() error {
	path := s.opts.HistoryPath
	save, err := s.prompt.AskYesNo(fmt.Sprintf("Would you like to save your game histories to %s (y/n):\t", path))
	if err != nil {
		return err
	}
	if !save {
		return nil
	}

	if err := history.AppendFile(path, s.history.Records()); err != nil {
		s.log.Warn("could not save history", "path", path, "error", err)
		fmt.Fprintf(s.out, "Error writing game history data to %s\n", path)
		return nil
	}

	s.log.Info("history saved", "path", path, "records", s.history.Len())
	fmt.Fprintf(s.out, "Saved game history data in %s\n", path)
	return nil
}
