package app

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"gridgames/internal/config"
	"gridgames/internal/console"
	"gridgames/internal/history"
	"gridgames/internal/stats"
)

// Run - runs one console session over in/out.
func Run(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer, selector string) error {
	logger = logger.With("session", uuid.New().String())
	log := logger.With("component", "app")

	seed := conf.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug("starting session", "seed", seed, "history_path", conf.History.Path)

	session := console.NewSession(
		logger,
		in,
		out,
		history.NewLog(),
		stats.NewStore(),
		rand.New(rand.NewPCG(seed, seed>>1|1)),
		console.Options{
			DefaultRows: conf.TicTacToe.DefaultRows,
			DefaultCols: conf.TicTacToe.DefaultCols,
			MaxRows:     conf.TicTacToe.MaxRows,
			MaxCols:     conf.TicTacToe.MaxCols,
			HistoryPath: conf.History.Path,
		},
	)

	if err := session.Run(selector); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	log.Info("session ended")
	return nil
}
