package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/platform/tui"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

var (
	flagLimit       int
	flagRecent      bool
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished runs",
	Long: `Display the best finished runs and overall statistics.

Runs are filtered by --difficulty when it is given. Use -i for an interactive
table with one tab per difficulty.

Examples:
  space scores
  space scores --difficulty hard --limit 20
  space scores --recent
  space scores -i
  space scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved runs")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		n, clearErr := store.ClearRuns()
		if clearErr != nil {
			return clearErr
		}
		fmt.Fprintf(out, "Deleted %d runs.\n", n)
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	preset := ""
	if flagDifficulty != "" {
		p, parseErr := config.ParsePreset(flagDifficulty)
		if parseErr != nil {
			return parseErr
		}
		preset = string(p)
	}

	var runs []storage.Run
	title := "High Scores"
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(preset, flagLimit)
	}
	if err != nil {
		return err
	}

	if preset != "" && !flagRecent {
		title += " - " + preset
	}
	fmt.Fprintf(out, "Space Arcade %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'space play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-7s  %-7s  %-9s  %s\n", "Rank", "Score", "Level", "Ticks", "Preset", "Duration", "Played")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-7s  %-7s  %-9s  %s\n", "----", "-----", "-----", "-----", "------", "--------", "------")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-8s  %-5d  %-7s  %-7s  %-9s  %s\n",
			i+1,
			humanize.Comma(int64(r.Score)),
			r.Level,
			humanize.Comma(int64(r.Ticks)),
			r.Preset,
			r.Duration.Round(time.Second),
			humanize.Time(r.CreatedAt),
		)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s runs, best score %s, best level %d, average %.1f, last played %s\n",
		humanize.Comma(int64(stats.Runs)),
		humanize.Comma(int64(stats.HighScore)),
		stats.BestLevel,
		stats.AvgScore,
		humanize.Time(stats.LastPlayed),
	)
	return nil
}
