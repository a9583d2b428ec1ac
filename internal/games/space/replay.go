package space

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/space-arcade/internal/config"
)

// Script lists the intents delivered before each tick.
type Script [][]Intent

// ParseScript reads a script of whitespace- or comma-separated steps, one
// step per tick. A step is either "." (idle), a run of single-key tokens
// such as "df", or named tokens joined by "+" such as "left+fire".
// Unrecognized keys are ignored.
func ParseScript(s string) Script {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	script := make(Script, 0, len(fields))
	for _, field := range fields {
		var step []Intent
		for _, part := range strings.Split(field, "+") {
			if in := ParseIntent(part); in != IntentNone {
				step = append(step, in)
				continue
			}
			for _, r := range part {
				if in := ParseIntent(string(r)); in != IntentNone {
					step = append(step, in)
				}
			}
		}
		script = append(script, step)
	}
	return script
}

// ReplayOptions configures a headless run.
type ReplayOptions struct {
	Config   config.SpaceConfig
	Seed     int64
	Ticks    int // Number of ticks to run; 0 means len(Script)
	Script   Script
	Logger   Logger
	Renderer Renderer

	// StopOnGameOver ends the run at the first tick that starts with the
	// game already over.
	StopOnGameOver bool
}

// Replay runs a fresh simulation with a fixed seed, delivering the scripted
// intents before each tick. The same options always produce the same
// snapshot.
func Replay(opts ReplayOptions) (Snapshot, error) {
	if err := opts.Config.Validate(); err != nil {
		return Snapshot{}, err
	}

	rng := rand.New(rand.NewSource(opts.Seed)) //#nosec G404 -- deterministic replay
	model := NewModel(opts.Config, rng, opts.Logger)
	ctrl := NewController(model, opts.Renderer)
	if err := ctrl.Start(); err != nil {
		return Snapshot{}, fmt.Errorf("space: start replay: %w", err)
	}

	ticks := opts.Ticks
	if ticks <= 0 {
		ticks = len(opts.Script)
	}

	tick := 0
	for ; tick < ticks; tick++ {
		if opts.StopOnGameOver && model.IsGameOver() {
			break
		}
		if tick < len(opts.Script) {
			for _, in := range opts.Script[tick] {
				ctrl.HandleIntent(in)
			}
		}
		ctrl.OnTick(tick)
	}

	snap := model.Snapshot()
	snap.Tick = tick
	return snap, nil
}
