package space

import "github.com/vovakirdan/space-arcade/internal/core"

// Bullet is fired by the ship and travels up one row per tick.
type Bullet struct {
	body
}

// NewBullet creates a bullet at (x, y).
func NewBullet(x, y int) *Bullet {
	return &Bullet{body{core.Pt(x, y)}}
}

func (b *Bullet) Advance(int) { b.pos.Y-- }
func (b *Bullet) Kind() Kind { return KindBullet }
func (b *Bullet) Graphic() Graphic { return GraphicFor(KindBullet) }

// Asteroid descends one row per tick and damages the ship on contact.
type Asteroid struct {
	body
}

// NewAsteroid creates an asteroid at (x, y).
func NewAsteroid(x, y int) *Asteroid {
	return &Asteroid{body{core.Pt(x, y)}}
}

func (a *Asteroid) Advance(int) { a.pos.Y++ }
func (a *Asteroid) Kind() Kind { return KindAsteroid }
func (a *Asteroid) Graphic() Graphic { return GraphicFor(KindAsteroid) }

// Enemy descends one row per tick. Bullets destroy it; touching the ship
// damages the ship and destroys the enemy.
type Enemy struct {
	body
}

// NewEnemy creates an enemy at (x, y).
func NewEnemy(x, y int) *Enemy {
	return &Enemy{body{core.Pt(x, y)}}
}

func (e *Enemy) Advance(int) { e.pos.Y++ }
func (e *Enemy) Kind() Kind { return KindEnemy }
func (e *Enemy) Graphic() Graphic { return GraphicFor(KindEnemy) }

// Effect is the action a power-up applies to the ship.
type Effect int

const (
	EffectHeal Effect = iota
	EffectShield
)

// String returns the name of the effect.
func (e Effect) String() string {
	switch e {
	case EffectHeal:
		return "Heal"
	case EffectShield:
		return "Shield"
	default:
		return "Unknown"
	}
}

// PowerUp descends one row per tick and applies its effect when it touches
// the ship.
type PowerUp struct {
	body
	effect Effect
}

// NewHealthPowerUp creates a power-up that heals the ship.
func NewHealthPowerUp(x, y int) *PowerUp {
	return &PowerUp{body: body{core.Pt(x, y)}, effect: EffectHeal}
}

// NewShieldPowerUp creates a power-up that raises the ship's shield.
func NewShieldPowerUp(x, y int) *PowerUp {
	return &PowerUp{body: body{core.Pt(x, y)}, effect: EffectShield}
}

// Effect returns the effect bound at construction.
func (p *PowerUp) Effect() Effect { return p.effect }

func (p *PowerUp) Advance(int) { p.pos.Y++ }

func (p *PowerUp) Kind() Kind {
	if p.effect == EffectShield {
		return KindShieldPowerUp
	}
	return KindHealthPowerUp
}

func (p *PowerUp) Graphic() Graphic { return GraphicFor(p.Kind()) }

// ApplyEffect applies a power-up effect to the ship.
func ApplyEffect(effect Effect, ship *Ship) {
	switch effect {
	case EffectHeal:
		ship.Heal(ship.rules.HealAmount)
	case EffectShield:
		ship.EnableShield()
	}
}
