package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravflip/internal/config"
)

// loadConfig loads the game config and applies command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.Loop.TickRate = flagFPS
	}
	return cfg, nil
}

// seed returns the --seed value, or a time-based seed when the flag was not
// given. Zero is a valid seed.
func seed(cmd *cobra.Command) int64 {
	if cmd.Flags().Changed("seed") {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// openLogger returns a logger writing to --log, or one that discards
// everything when no file is given. Interactive modes own the terminal, so
// they never log to stderr.
func openLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
