package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/space-arcade/internal/storage"
)

// execute runs the root command with fresh flag values and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flagRate, flagSeed = 5, 0
	flagDBPath = filepath.Join(t.TempDir(), "runs.db")
	flagConfig, flagDifficulty, flagLogLevel = "", "", "info"
	flagTicks, flagScript, flagScriptFile = 0, "", ""
	flagFrames, flagSave, flagUntilOver = false, false, false
	flagLimit, flagRecent, flagInteractive, flagClear = 10, false, false, false
	flagDefaults = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunIsDeterministic(t *testing.T) {
	args := []string{"run", "--seed", "9", "--ticks", "150", "--script", "a f d f . w s"}

	first, err := execute(t, args...)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	second, err := execute(t, args...)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if first != second {
		t.Errorf("outputs differ:\n%s\n---\n%s", first, second)
	}
	if !strings.Contains(first, "Hash:") || !strings.Contains(first, "Seed:      9") {
		t.Errorf("summary = %s", first)
	}
}

func TestRunFrames(t *testing.T) {
	out, err := execute(t, "run", "--seed", "1", "--ticks", "3", "--frames")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, want := range []string{"-- frame 0 --", "-- frame 2 --", "S"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunSaveThenScores(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	if _, err := execute(t, "run", "--seed", "4", "--ticks", "20", "--difficulty", "hard", "--save", "--db", db); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	store, err := storage.Open(db)
	if err != nil {
		t.Fatal(err)
	}
	runs, err := store.TopRuns("hard", 10)
	store.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Seed != 4 {
		t.Fatalf("saved runs = %+v", runs)
	}

	out, err := execute(t, "scores", "--db", db)
	if err != nil {
		t.Fatalf("scores failed: %v", err)
	}
	if !strings.Contains(out, "High Scores") || !strings.Contains(out, "hard") {
		t.Errorf("scores output = %s", out)
	}
}

func TestScoresEmpty(t *testing.T) {
	out, err := execute(t, "scores")
	if err != nil {
		t.Fatalf("scores failed: %v", err)
	}
	if !strings.Contains(out, "No runs recorded yet.") {
		t.Errorf("output = %s", out)
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--defaults")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "score_threshold: 100") {
		t.Errorf("defaults output = %s", out)
	}

	out, err = execute(t, "config", "--difficulty", "hard")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "start_health: 1") {
		t.Errorf("hard config = %s", out)
	}
}

func TestUnknownDifficulty(t *testing.T) {
	if _, err := execute(t, "run", "--difficulty", "brutal"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}
