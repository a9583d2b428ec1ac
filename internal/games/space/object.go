// Package space implements the tick-driven space shooter simulation.
//
// The simulation is pure logic: a Model owns the entities and runs the
// update, collision, spawn and level-up phases; a Controller turns player
// intents and tick indices into Model calls. Logging and rendering are
// injected through the Logger and Renderer interfaces.
package space

import (
	"fmt"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// Kind tags the concrete entity variant. Collision handling dispatches on
// pairs of kinds.
type Kind int

const (
	KindShip Kind = iota
	KindBullet
	KindAsteroid
	KindEnemy
	KindHealthPowerUp
	KindShieldPowerUp
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "Ship"
	case KindBullet:
		return "Bullet"
	case KindAsteroid:
		return "Asteroid"
	case KindEnemy:
		return "Enemy"
	case KindHealthPowerUp:
		return "HealthPowerUp"
	case KindShieldPowerUp:
		return "ShieldPowerUp"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsPowerUp reports whether the kind is one of the power-up variants.
func (k Kind) IsPowerUp() bool {
	return k == KindHealthPowerUp || k == KindShieldPowerUp
}

// Color returns the display color for the kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindShip:
		return core.ColorCyan
	case KindBullet:
		return core.ColorYellow
	case KindAsteroid:
		return core.ColorGray
	case KindEnemy:
		return core.ColorRed
	case KindHealthPowerUp:
		return core.ColorGreen
	case KindShieldPowerUp:
		return core.ColorBlue
	default:
		return core.ColorDefault
	}
}

// Graphic is the render handle of an entity: a glyph for text output and
// an asset path for image-based frontends.
type Graphic struct {
	Glyph rune
	Asset string
}

var graphics = map[Kind]Graphic{
	KindShip:          {Glyph: 'S', Asset: "assets/ship.png"},
	KindBullet:        {Glyph: 'B', Asset: "assets/bullet.png"},
	KindAsteroid:      {Glyph: 'A', Asset: "assets/asteroid.png"},
	KindEnemy:         {Glyph: 'E', Asset: "assets/enemy.png"},
	KindHealthPowerUp: {Glyph: 'H', Asset: "assets/health.png"},
	KindShieldPowerUp: {Glyph: 'D', Asset: "assets/shield.png"},
}

// GraphicFor returns the render handle for a kind.
func GraphicFor(k Kind) Graphic {
	if g, ok := graphics[k]; ok {
		return g
	}
	return Graphic{Glyph: '?'}
}

// SpaceObject is the capability set every simulated entity satisfies.
type SpaceObject interface {
	// Position returns the current cell.
	Position() core.Point

	// Advance applies the entity's per-tick rule.
	Advance(tick int)

	// Graphic returns the render handle.
	Graphic() Graphic

	// Kind returns the variant tag.
	Kind() Kind
}

// ObjectView is a read-only copy of an entity handed to renderers.
type ObjectView struct {
	ID      int
	Kind    Kind
	Pos     core.Point
	Graphic Graphic
}

// body carries the position shared by all entity variants.
type body struct {
	pos core.Point
}

func (b *body) Position() core.Point {
	return b.pos
}
