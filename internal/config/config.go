// Package config provides configuration for chess games.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Verbosity levels.
const (
	Silent     = 0 // no diagnostics
	Summary    = 1 // game over messages
	Commentary = 2 // every accepted and rejected move
)

// Config holds the settings a game is created with.
type Config struct {
	// StartFEN is the starting position. Empty means the standard start.
	StartFEN string

	// Verbosity selects how much is written to LogFile.
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Output controls PGN rendering.
	Output *OutputConfig

	// Tags are copied into the PGN header of every game.
	Tags map[string]string

	// LogFile receives diagnostic messages.
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: Summary,
		Output:    NewOutputConfig(),
		Tags:      make(map[string]string),
		LogFile:   os.Stderr,
	}
}

// SetLogFile sets the diagnostic writer.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Validate checks the configuration for values a game cannot start with.
// It does not parse the start position; that happens when the game is
// created.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d out of range", c.Verbosity)
	}
	if c.Output == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "no output settings")
	}
	if c.LogFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "no log writer")
	}
	return nil
}
