package space

import (
	"errors"
	"strings"
	"time"
)

// Intent is a discrete player request delivered to the Controller.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentFire
	IntentPause
)

// String returns the name of the intent.
func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentFire:
		return "fire"
	case IntentPause:
		return "pause"
	default:
		return "none"
	}
}

// ParseIntent maps an input token to an intent. Tokens are
// case-insensitive single keys (W, A, S, D, F, P) or names (up, down, left,
// right, fire, pause). Anything else yields IntentNone.
func ParseIntent(token string) Intent {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "w", "up":
		return IntentUp
	case "s", "down":
		return IntentDown
	case "a", "left":
		return IntentLeft
	case "d", "right":
		return IntentRight
	case "f", "fire":
		return IntentFire
	case "p", "pause":
		return IntentPause
	default:
		return IntentNone
	}
}

// Renderer receives a read-only snapshot of the entities once per tick.
type Renderer interface {
	Render(objects []ObjectView)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(objects []ObjectView)

// Render calls f(objects).
func (f RendererFunc) Render(objects []ObjectView) { f(objects) }

// NopRenderer ignores every frame.
type NopRenderer struct{}

// Render does nothing.
func (NopRenderer) Render([]ObjectView) {}

// Controller forwards player intents and ticks to a Model.
type Controller struct {
	model     *Model
	renderer  Renderer
	clock     func() time.Time
	startedAt time.Time
}

// ControllerOption customizes a Controller.
type ControllerOption func(*Controller)

// WithClock replaces time.Now as the source of the start time.
func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) { c.clock = now }
}

// NewController wires a controller to a model. A nil renderer ignores frames.
// The start time is taken when the controller is created.
func NewController(model *Model, renderer Renderer, opts ...ControllerOption) *Controller {
	if renderer == nil {
		renderer = NopRenderer{}
	}
	c := &Controller{
		model:    model,
		renderer: renderer,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.startedAt = c.clock()
	return c
}

// Model returns the controlled model.
func (c *Controller) Model() *Model { return c.model }

// StartedAt returns the wall-clock time the controller was created.
func (c *Controller) StartedAt() time.Time { return c.startedAt }

// Elapsed returns the wall-clock time since the controller was created.
func (c *Controller) Elapsed() time.Duration { return c.clock().Sub(c.startedAt) }

// Start places the ship at the bottom centre of the grid with the
// configured starting health.
func (c *Controller) Start() error {
	g := c.model.Grid()
	ship := c.model.NewShip(g.Width/2, g.Height-1, c.model.Config().Ship.StartHealth)
	return c.model.Add(ship)
}

// HandleInput parses a raw token and handles the resulting intent.
// Unknown tokens are ignored.
func (c *Controller) HandleInput(token string) {
	c.HandleIntent(ParseIntent(token))
}

// HandleIntent applies one intent. Boundary violations are logged and
// swallowed. Nothing happens before the ship exists.
func (c *Controller) HandleIntent(in Intent) {
	ship := c.model.Ship()
	if ship == nil {
		return
	}

	var err error
	switch in {
	case IntentUp:
		err = ship.Move(DirUp)
	case IntentDown:
		err = ship.Move(DirDown)
	case IntentLeft:
		err = ship.Move(DirLeft)
	case IntentRight:
		err = ship.Move(DirRight)
	case IntentFire:
		c.model.FireBullet()
	case IntentPause:
		c.Pause()
	}

	var boundary *BoundaryError
	if errors.As(err, &boundary) {
		c.model.Logger().Log("Boundary exceeded: " + boundary.Error())
	}
}

// Pause records a pause request. Suspending tick delivery is up to the
// caller.
func (c *Controller) Pause() {
	c.model.Logger().Log("Game paused")
}

// OnTick runs one full tick: render, update, collisions, spawn, level up.
func (c *Controller) OnTick(tick int) {
	c.renderer.Render(c.model.Objects())
	c.model.Update(tick)
	c.model.CheckCollisions()
	c.model.SpawnObjects()
	c.model.LevelUp()
}
