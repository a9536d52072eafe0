package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravflip/internal/engine"
	"github.com/vovakirdan/gravflip/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window with an 800x400 canvas.

Controls:
  Left click/Touch - Flip gravity (or press the Restart button after game over)
  Space            - Flip gravity
  R/Enter          - Restart (after game over)
  Q/Esc            - Quit

Examples:
  gravflip window
  gravflip window --scale 1.5`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the canvas")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger("gravflip")
	if err != nil {
		return err
	}
	defer closeLog()

	s := seed(cmd)
	logger.Info("starting window game", "seed", s, "fps", cfg.Loop.TickRate, "motion", cfg.Physics.Motion)

	err = window.Run(engine.New(cfg, s), window.Options{
		Scale:    flagScale,
		TickRate: cfg.Loop.TickRate,
		MaxDelta: engine.MaxDeltaFromMillis(cfg.Physics.MaxFrameDeltaMS),
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
