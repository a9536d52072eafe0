// gravflip is a one-button arcade game: keep the square alive by flipping
// gravity before it runs into the obstacles.
//
// Usage:
//
//	gravflip play      - Play in the terminal
//	gravflip window    - Play in a desktop window
//	gravflip serve     - Host the terminal game over SSH
//	gravflip config    - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Load a custom YAML config
//	--fps <rate>    - Override the frame rate
//	--seed <value>  - Set RNG seed for reproducible obstacles
//	--log <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gravflip",
	Short: "Gravity Flip - dodge obstacles by flipping gravity",
	Long: `Gravity Flip is a one-button reflex game. Your square slides along the
floor or the ceiling; click (or press space) to flip gravity and dodge
the obstacle pairs. Obstacles speed up the longer you survive.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Host the terminal game over SSH
  config   - Print the effective configuration

Examples:
  gravflip play
  gravflip window --seed 42
  gravflip serve --ssh :2222
  gravflip config > my-config.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (random based on time when not set)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
