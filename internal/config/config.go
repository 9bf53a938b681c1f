package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"gridgames/internal/game"
)

// Board size bounds for Tic Tac Toe
const (
	MinBoardSize = 1
	MaxBoardSize = 40
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env-default:"warn"`
	Seed      uint64    `yaml:"seed" env-default:"0"`
	History   History   `yaml:"history"`
	TicTacToe TicTacToe `yaml:"tictactoe"`
}

type History struct {
	Path string `yaml:"path" env-default:"data.txt"`
}

type TicTacToe struct {
	DefaultRows int `yaml:"default-rows" env-default:"3"`
	DefaultCols int `yaml:"default-cols" env-default:"3"`
	MaxRows     int `yaml:"max-rows" env-default:"40"`
	MaxCols     int `yaml:"max-cols" env-default:"40"`
}

// Load reads the config file at path. A missing file is not an error: the
// defaults are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to apply config defaults: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// Validate checks that the configured bounds describe playable boards
func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log-level %q", game.ErrInvalidConfig, that.LogLevel)
	}

	if that.History.Path == "" {
		return fmt.Errorf("%w: history.path is empty", game.ErrInvalidConfig)
	}

	return that.TicTacToe.Validate()
}

func (that *TicTacToe) Validate() error {
	if that.MaxRows < MinBoardSize || that.MaxRows > MaxBoardSize ||
		that.MaxCols < MinBoardSize || that.MaxCols > MaxBoardSize {
		return fmt.Errorf("%w: max board must be within %dx%d", game.ErrInvalidBoardSize, MaxBoardSize, MaxBoardSize)
	}
	if that.DefaultRows < MinBoardSize || that.DefaultRows > that.MaxRows ||
		that.DefaultCols < MinBoardSize || that.DefaultCols > that.MaxCols {
		return fmt.Errorf("%w: default board %dx%d exceeds %dx%d",
			game.ErrInvalidBoardSize, that.DefaultRows, that.DefaultCols, that.MaxRows, that.MaxCols)
	}
	if game.DefaultWinLength(that.DefaultRows, that.DefaultCols) > max(that.DefaultRows, that.DefaultCols) {
		return fmt.Errorf("%w: default board %dx%d has no valid win length",
			game.ErrInvalidBoardSize, that.DefaultRows, that.DefaultCols)
	}
	return nil
}
