// space is a tick-driven space shooter for the terminal.
//
// Usage:
//
//	space play               - Play in the terminal
//	space run                - Run a scripted game headless and print the result
//	space scores             - Show the best finished runs
//	space config             - Print the effective configuration as YAML
//
// Global flags:
//
//	--rate <tps>         - Simulation ticks per second (default: 5)
//	--seed <value>       - RNG seed for reproducible gameplay
//	--db <path>          - Runs database (default: ~/.space-arcade/scores.db)
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/logging"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

var (
	// Global flags
	flagRate       int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "space",
	Short: "Space Arcade - a tick-driven space shooter in your terminal",
	Long: `Space Arcade is a grid-based space shooter. Steer the ship along the
bottom of the field, shoot down enemies, dodge asteroids and pick up
health and shield power-ups.

Available commands:
  play     - Play in the terminal
  run      - Run a scripted game headless
  scores   - View the best finished runs
  config   - Print the effective configuration

Examples:
  space play
  space play --difficulty hard --seed 42
  space run --ticks 500 --script "a f d f" --frames
  space scores -i`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagRate, "rate", 5, "Simulation ticks per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration file and applies the difficulty
// preset from the global flags.
func loadConfig() (config.SpaceConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SpaceConfig{}, "", err
	}

	cfg, err := config.LoadSpace(flagConfig)
	if err != nil {
		return config.SpaceConfig{}, "", err
	}
	config.ApplySpacePreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.SpaceConfig{}, "", err
	}
	return cfg, preset, nil
}

// newLogger builds a logger at the level given by --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	return logging.New(w, flagLogLevel, logging.DefaultPrefix)
}
