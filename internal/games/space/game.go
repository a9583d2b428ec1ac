package space

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
)

// Visual characters for the playfield frame and HUD.
const (
	HeartChar  = '♥'
	ShieldChar = '◆'
	hudGap     = 3
)

// actionIntents lists the per-tick input order. Moves are applied before
// firing so a bullet leaves from the ship's new cell.
var actionIntents = []struct {
	action core.Action
	intent Intent
}{
	{core.ActionLeft, IntentLeft},
	{core.ActionRight, IntentRight},
	{core.ActionUp, IntentUp},
	{core.ActionDown, IntentDown},
	{core.ActionFire, IntentFire},
}

// Game adapts the simulation to the terminal platform. It owns the tick
// counter and suspends tick delivery while paused.
type Game struct {
	cfg    config.SpaceConfig
	logger Logger
	model  *Model
	ctrl   *Controller
	tick   int
	seed   int64
	paused bool
}

// New creates a game with the given configuration and event sink.
// Reset must be called before Step.
func New(cfg config.SpaceConfig, logger Logger) *Game {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Game{cfg: cfg, logger: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "space"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Arcade"
}

// Reset starts a new run seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.tick = 0
	g.paused = false

	rng := rand.New(rand.NewSource(cfg.Seed)) //#nosec G404 -- gameplay randomness
	g.model = NewModel(g.cfg, rng, g.logger)
	g.ctrl = NewController(g.model, nil)
	// A fresh model has no ship, so Start cannot fail.
	_ = g.ctrl.Start()
}

// Step delivers this frame's intents and runs one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.model.IsGameOver() {
		return core.StepResult{Tick: g.tick, State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.ctrl.HandleIntent(IntentPause)
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{Tick: g.tick, State: g.State()}
	}

	for _, ai := range actionIntents {
		if in.Has(ai.action) {
			g.ctrl.HandleIntent(ai.intent)
		}
	}
	g.ctrl.OnTick(g.tick)
	g.tick++

	return core.StepResult{Tick: g.tick, State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.model.Score(),
		Level:    g.model.Level(),
		GameOver: g.model.IsGameOver(),
		Paused:   g.paused,
	}
	if ship := g.model.Ship(); ship != nil {
		st.Health = ship.Health()
		st.Shielded = ship.Shielded()
	}
	return st
}

// Tick returns the number of ticks run so far.
func (g *Game) Tick() int { return g.tick }

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 { return g.seed }

// Elapsed returns wall-clock time since the run started.
func (g *Game) Elapsed() time.Duration { return g.ctrl.Elapsed() }

// Model exposes the simulation for inspection.
func (g *Game) Model() *Model { return g.model }

// Snapshot returns the current state with the tick counter filled in.
func (g *Game) Snapshot() Snapshot {
	snap := g.model.Snapshot()
	snap.Tick = g.tick
	return snap
}

// Render draws the playfield in a box on the left and the HUD to its right.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	grid := g.model.Grid()
	frame := core.NewRect(0, 0, grid.Width+2, grid.Height+2)
	dst.DrawBox(frame, core.ColorGray)

	objects := g.model.Objects()
	for _, o := range objects {
		if o.Kind != KindShip {
			dst.SetColored(o.Pos.X+1, o.Pos.Y+1, o.Graphic.Glyph, o.Kind.Color())
		}
	}
	if ship := g.model.Ship(); ship != nil {
		p := ship.Position()
		color := KindShip.Color()
		if ship.Shielded() {
			color = core.ColorBlue
		}
		dst.SetColored(p.X+1, p.Y+1, GraphicFor(KindShip).Glyph, color)
	}

	g.drawHUD(dst, frame.Right()+hudGap)

	switch {
	case g.model.IsGameOver():
		g.drawBanner(dst, frame, "GAME OVER", core.ColorRed)
	case g.paused:
		g.drawBanner(dst, frame, "PAUSED", core.ColorYellow)
	}
}

func (g *Game) drawHUD(dst *core.Screen, x int) {
	st := g.State()
	y := 1
	line := func(text string, c core.Color) {
		dst.DrawTextColored(x, y, text, c)
		y++
	}

	line(g.Title(), core.ColorWhite)
	y++
	line(fmt.Sprintf("Score  %d", st.Score), core.ColorDefault)
	line(fmt.Sprintf("Level  %d", st.Level), core.ColorDefault)
	line(fmt.Sprintf("Spawn  %d%%", g.model.SpawnRate()), core.ColorDefault)
	line(fmt.Sprintf("Tick   %d", g.tick), core.ColorGray)
	y++

	hearts := strings.Repeat(string(HeartChar), core.Max(st.Health, 0))
	line("Health "+hearts, core.ColorRed)
	if ship := g.model.Ship(); ship != nil && ship.Shielded() {
		line(fmt.Sprintf("Shield %c %d", ShieldChar, ship.ShieldRemaining()), core.ColorBlue)
	}
}

func (g *Game) drawBanner(dst *core.Screen, frame core.Rect, text string, c core.Color) {
	y := frame.Y + frame.H/2
	x := frame.X + (frame.W-len(text))/2
	dst.DrawTextColored(core.Max(x, 0), y, text, c)
}
