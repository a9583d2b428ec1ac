package space

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
)

// Direction is a single-cell movement request for the ship.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ErrBoundaryExceeded is matched by every BoundaryError.
var ErrBoundaryExceeded = errors.New("boundary exceeded")

// BoundaryError reports a move that would leave the grid.
// Edge names the violated edge: Top, Bottom, Left or Right.
type BoundaryError struct {
	Edge string
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("Cannot move %s, boundary exceeded.", e.Edge)
}

func (e *BoundaryError) Unwrap() error {
	return ErrBoundaryExceeded
}

// ShipRules holds the tunables that govern healing and shields.
type ShipRules struct {
	MaxHealth   int
	HealAmount  int
	ShieldTicks int
}

// DefaultShipRules returns the rules from the default configuration.
func DefaultShipRules() ShipRules {
	return RulesFromConfig(config.DefaultSpaceConfig().Ship)
}

// RulesFromConfig extracts ship rules from a ship config section.
func RulesFromConfig(c config.ShipConfig) ShipRules {
	return ShipRules{
		MaxHealth:   c.MaxHealth,
		HealAmount:  c.HealAmount,
		ShieldTicks: c.ShieldTicks,
	}
}

// Ship is the player-controlled entity.
type Ship struct {
	body
	grid            core.Grid
	rules           ShipRules
	health          int
	shielded        bool
	shieldRemaining int
}

// ShipOption customizes a new ship.
type ShipOption func(*Ship)

// WithGrid sets the bounds enforced by Move.
func WithGrid(g core.Grid) ShipOption {
	return func(s *Ship) { s.grid = g }
}

// WithRules sets the healing and shield rules.
func WithRules(r ShipRules) ShipOption {
	return func(s *Ship) { s.rules = r }
}

// NewShip creates a ship at (x, y) with the given health. Without options
// the ship uses the default 10x20 grid and default rules.
func NewShip(x, y, health int, opts ...ShipOption) *Ship {
	def := config.DefaultSpaceConfig()
	s := &Ship{
		body:   body{core.Pt(x, y)},
		grid:   core.Grid{Width: def.Grid.Width, Height: def.Grid.Height},
		rules:  RulesFromConfig(def.Ship),
		health: health,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Ship) Kind() Kind { return KindShip }
func (s *Ship) Graphic() Graphic { return GraphicFor(KindShip) }

// Advance runs shield bookkeeping. The ship never moves on a tick.
func (s *Ship) Advance(int) {
	if !s.shielded {
		return
	}
	s.shieldRemaining--
	if s.shieldRemaining <= 0 {
		s.shieldRemaining = 0
		s.shielded = false
	}
}

// Move shifts the ship one cell. A move past the grid edge returns a
// *BoundaryError and leaves the position unchanged.
func (s *Ship) Move(dir Direction) error {
	switch dir {
	case DirUp:
		if s.pos.Y == 0 {
			return &BoundaryError{Edge: "Top"}
		}
		s.pos.Y--
	case DirDown:
		if s.pos.Y == s.grid.Height-1 {
			return &BoundaryError{Edge: "Bottom"}
		}
		s.pos.Y++
	case DirLeft:
		if s.pos.X == 0 {
			return &BoundaryError{Edge: "Left"}
		}
		s.pos.X--
	case DirRight:
		if s.pos.X == s.grid.Width-1 {
			return &BoundaryError{Edge: "Right"}
		}
		s.pos.X++
	default:
		return fmt.Errorf("space: unknown direction %d", int(dir))
	}
	return nil
}

// Heal restores health, capped at the ship's maximum.
func (s *Ship) Heal(amount int) {
	s.health = core.Min(s.rules.MaxHealth, s.health+amount)
}

// TakeDamage reduces health unless the shield is up.
// It reports whether the damage was applied.
func (s *Ship) TakeDamage(amount int) bool {
	if s.shielded {
		return false
	}
	s.health -= amount
	return true
}

// EnableShield raises the shield for the configured number of ticks,
// resetting any shield already up.
func (s *Ship) EnableShield() {
	s.shielded = true
	s.shieldRemaining = s.rules.ShieldTicks
}

func (s *Ship) Health() int { return s.health }
func (s *Ship) Shielded() bool { return s.shielded }
func (s *Ship) ShieldRemaining() int { return s.shieldRemaining }
func (s *Ship) IsAlive() bool { return s.health > 0 }
