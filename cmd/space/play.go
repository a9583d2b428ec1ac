package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/games/space"
	"github.com/vovakirdan/space-arcade/internal/logging"
	"github.com/vovakirdan/space-arcade/internal/platform/tui"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

// Columns taken by the HUD to the right of the playfield box.
const hudWidth = 24

// eventLines is how many recent events the side pane keeps.
const eventLines = 64

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  W/A/S/D or arrows  - Move the ship
  F/Space            - Fire
  P/Esc              - Pause
  R                  - Restart (after game over)
  Ctrl+S             - Save a screenshot
  Ctrl+Y             - Copy the screen to the clipboard
  ?                  - Show all keys
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Full health, slow spawning
  normal - Default configuration
  hard   - One hit point, dense spawning
  fixed  - Spawn rate never increases

Examples:
  space play
  space play --difficulty easy
  space play --rate 8 --seed 1234
  space play --log-file ~/.space-arcade/space.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is used for the game)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	// The playfield box, the gap and the HUD must fit.
	screenW := cfg.Grid.Width + 2 + 3 + hudWidth
	screenH := cfg.Grid.Height + 2
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < screenW || h < screenH+2 {
			return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, screenW, screenH+2)
		}
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := logging.OpenFile(flagLogFile)
		if openErr != nil {
			return openErr
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open runs database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	events := logging.NewRing(eventLines)
	game := space.New(cfg, space.Tee(events, logging.NewSink(logger)))

	runtime := core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: flagRate,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, runtime, tui.Options{
		Store:  store,
		Preset: string(preset),
		Events: events,
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
