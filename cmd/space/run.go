package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/games/space"
	"github.com/vovakirdan/space-arcade/internal/logging"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

var (
	flagTicks      int
	flagScript     string
	flagScriptFile string
	flagFrames     bool
	flagSave       bool
	flagUntilOver  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scripted game headless",
	Long: `Run the simulation without a terminal UI and print the final state.

The script lists one step per tick, separated by spaces or commas. A step is
"." (idle), a run of keys such as "df" (right, then fire), or named intents
joined by "+" such as "left+fire". Keys: w/a/s/d move, f fires, p pauses.
The script does not loop; ticks past its end are idle.

The same seed, config and script always produce the same result and hash.

Examples:
  space run --ticks 300 --seed 42
  space run --script "a a f . d f" --frames
  space run --script-file moves.txt --until-over --save`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Ticks to run (0 = script length, or 100 without a script)")
	runCmd.Flags().StringVar(&flagScript, "script", "", "Intent script, one step per tick")
	runCmd.Flags().StringVar(&flagScriptFile, "script-file", "", "Read the intent script from a file")
	runCmd.Flags().BoolVar(&flagFrames, "frames", false, "Print every frame as text")
	runCmd.Flags().BoolVar(&flagSave, "save", false, "Save the result to the runs database")
	runCmd.Flags().BoolVar(&flagUntilOver, "until-over", false, "Stop as soon as the game is over")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	scriptText := flagScript
	if flagScriptFile != "" {
		data, readErr := os.ReadFile(flagScriptFile)
		if readErr != nil {
			return fmt.Errorf("reading script: %w", readErr)
		}
		scriptText = string(data)
	}
	script := space.ParseScript(scriptText)

	ticks := flagTicks
	if ticks <= 0 && len(script) == 0 {
		ticks = 100
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	out := cmd.OutOrStdout()
	var renderer space.Renderer
	if flagFrames {
		renderer = space.NewTextRenderer(out, core.Grid{Width: cfg.Grid.Width, Height: cfg.Grid.Height})
	}

	logger.Debug("starting headless run", "seed", seed, "ticks", ticks, "steps", len(script), "preset", preset)
	started := time.Now()
	snap, err := space.Replay(space.ReplayOptions{
		Config:         cfg,
		Seed:           seed,
		Ticks:          ticks,
		Script:         script,
		Logger:         logging.NewSink(logger),
		Renderer:       renderer,
		StopOnGameOver: flagUntilOver,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	printSummary(out, snap, seed, string(preset))

	if !flagSave {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	saved, err := store.SaveRun(storage.Run{
		Score:    snap.Score,
		Level:    snap.Level,
		Ticks:    snap.Tick,
		Seed:     seed,
		Preset:   string(preset),
		Duration: elapsed,
	})
	if err != nil {
		return err
	}
	logger.Info("run saved", "run_id", saved.RunID)
	fmt.Fprintf(out, "  Saved:     %s\n", saved.RunID)
	return nil
}

func printSummary(w io.Writer, snap space.Snapshot, seed int64, preset string) {
	state := "running"
	if snap.GameOver {
		state = "game over"
	}

	fmt.Fprintf(w, "Run finished after %s ticks (%s)\n", humanize.Comma(int64(snap.Tick)), state)
	fmt.Fprintf(w, "  Seed:      %d\n", seed)
	fmt.Fprintf(w, "  Preset:    %s\n", preset)
	fmt.Fprintf(w, "  Score:     %s\n", humanize.Comma(int64(snap.Score)))
	fmt.Fprintf(w, "  Level:     %d\n", snap.Level)
	fmt.Fprintf(w, "  Spawn:     %d%%\n", snap.SpawnRate)
	fmt.Fprintf(w, "  Health:    %d\n", snap.Health)
	if snap.Shielded {
		fmt.Fprintf(w, "  Shield:    %d ticks left\n", snap.ShieldRemaining)
	}
	fmt.Fprintf(w, "  Objects:   %d\n", len(snap.Objects))
	fmt.Fprintf(w, "  Hash:      %016x\n", snap.Hash())
}
