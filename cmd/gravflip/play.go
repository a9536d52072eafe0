package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravflip/internal/engine"
	"github.com/vovakirdan/gravflip/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Click/Space  - Flip gravity
  R/Enter      - Restart (after game over)
  Q/Esc/Ctrl+C - Quit

Examples:
  gravflip play
  gravflip play --fps 30
  gravflip play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger("gravflip")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	s := seed(cmd)
	logger.Info("starting terminal game", "seed", s, "fps", cfg.Loop.TickRate, "motion", cfg.Physics.Motion)

	err = tui.Run(engine.New(cfg, s), tui.Options{
		Width:    width,
		Height:   height,
		TickRate: cfg.Loop.TickRate,
		MaxDelta: engine.MaxDeltaFromMillis(cfg.Physics.MaxFrameDeltaMS),
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
