package space

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
)

// ErrDuplicateShip is returned when a second ship is added to a model.
var ErrDuplicateShip = errors.New("space: model already has a ship")

// entry pairs an entity with the ID assigned when it was added.
type entry struct {
	id  int
	obj SpaceObject
}

// Model owns the simulation state and runs the per-tick phases.
// It is not safe for concurrent use; the caller serializes ticks.
type Model struct {
	cfg    config.SpaceConfig
	grid   core.Grid
	rng    *rand.Rand
	logger Logger

	objects []entry
	nextID  int
	ship    *Ship

	score     int
	level     int
	spawnRate int
	gameOver  bool
}

// NewModel creates an empty model. rng is the only source of randomness;
// pass a seeded generator for reproducible runs. A nil rng is replaced by a
// time-seeded one and a nil logger discards events.
func NewModel(cfg config.SpaceConfig, rng *rand.Rand, logger Logger) *Model {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //#nosec G404 -- gameplay randomness
	}
	if logger == nil {
		logger = NopLogger{}
	}
	return &Model{
		cfg:       cfg,
		grid:      core.Grid{Width: cfg.Grid.Width, Height: cfg.Grid.Height},
		rng:       rng,
		logger:    logger,
		level:     cfg.Level.Start,
		spawnRate: cfg.Spawn.StartRate,
	}
}

// Logger returns the event sink.
func (m *Model) Logger() Logger { return m.logger }

// Config returns the configuration the model was built with.
func (m *Model) Config() config.SpaceConfig { return m.cfg }

// Grid returns the playfield bounds.
func (m *Model) Grid() core.Grid { return m.grid }

// Ship returns the player ship, or nil before one is added.
func (m *Model) Ship() *Ship { return m.ship }

// Score returns the current score.
func (m *Model) Score() int { return m.score }

// Level returns the current level.
func (m *Model) Level() int { return m.level }

// SpawnRate returns the current spawn chance in percent.
func (m *Model) SpawnRate() int { return m.spawnRate }

// IsGameOver reports whether the ship has been destroyed.
func (m *Model) IsGameOver() bool { return m.gameOver }

// Len returns the number of live entities, ship included.
func (m *Model) Len() int { return len(m.objects) }

// NewShip builds a ship bound to this model's grid and ship rules.
// The ship still has to be added with Add.
func (m *Model) NewShip(x, y, health int) *Ship {
	return NewShip(x, y, health, WithGrid(m.grid), WithRules(RulesFromConfig(m.cfg.Ship)))
}

// Add appends an entity to the model. A ship additionally becomes the
// model's ship; adding a second ship fails with ErrDuplicateShip.
func (m *Model) Add(obj SpaceObject) error {
	if s, ok := obj.(*Ship); ok {
		if m.ship != nil {
			return ErrDuplicateShip
		}
		m.ship = s
	}
	m.nextID++
	m.objects = append(m.objects, entry{id: m.nextID, obj: obj})

	p := obj.Position()
	m.logger.Log(fmt.Sprintf("Added object at (%d, %d)", p.X, p.Y))
	return nil
}

// Objects returns a copy of all live entities in insertion order.
// Mutating the model afterwards does not affect the returned slice.
func (m *Model) Objects() []ObjectView {
	views := make([]ObjectView, len(m.objects))
	for i, e := range m.objects {
		views[i] = ObjectView{
			ID:      e.id,
			Kind:    e.obj.Kind(),
			Pos:     e.obj.Position(),
			Graphic: e.obj.Graphic(),
		}
	}
	return views
}

// Update advances every entity, removes those that left the vertical
// bounds, and ends the game when the ship has no health left.
// It does nothing once the game is over or before a ship exists.
func (m *Model) Update(tick int) {
	if m.gameOver || m.ship == nil {
		return
	}

	for _, e := range m.objects {
		e.obj.Advance(tick)
	}
	m.removeWhere(func(e entry) bool {
		return !m.grid.ContainsRow(e.obj.Position().Y)
	})

	if !m.ship.IsAlive() {
		m.gameOver = true
		m.logger.Log("Game Over!")
	}
}

// CheckCollisions resolves every unordered pair of entities sharing a cell.
// Pairs are scanned in insertion order over an unchanged collection and
// destroyed entities are removed once the scan completes. An entity is
// destroyed at most once: after its first destroying collision it takes
// part in no further pairs this scan.
func (m *Model) CheckCollisions() {
	destroyed := make(map[int]bool)

	for i := 0; i < len(m.objects); i++ {
		for j := i + 1; j < len(m.objects); j++ {
			a, b := m.objects[i], m.objects[j]
			if destroyed[a.id] || destroyed[b.id] {
				continue
			}
			if a.obj.Position() != b.obj.Position() {
				continue
			}
			m.resolve(a, b, destroyed)
		}
	}

	if len(destroyed) > 0 {
		m.removeWhere(func(e entry) bool { return destroyed[e.id] })
	}
}

// resolve applies the collision rule for one pair, if any.
func (m *Model) resolve(a, b entry, destroyed map[int]bool) {
	if x, y, ok := pairOf(a, b, KindBullet, KindEnemy); ok {
		destroyed[x.id] = true
		destroyed[y.id] = true
		m.score += m.cfg.Scoring.EnemyDestroyed
		m.logger.Log("Enemy destroyed!")
		return
	}

	other, ok := m.shipPartner(a, b)
	if !ok {
		return
	}

	switch k := other.obj.Kind(); {
	case k.IsPowerUp():
		if p, ok := other.obj.(*PowerUp); ok {
			ApplyEffect(p.Effect(), m.ship)
		}
		destroyed[other.id] = true
		m.logger.Log("Power-up applied!")
	case k == KindAsteroid:
		destroyed[other.id] = true
		m.logger.Log("Asteroid hit the ship!")
		m.damageShip(m.cfg.Damage.Asteroid)
	case k == KindEnemy:
		destroyed[other.id] = true
		m.logger.Log("Enemy hit the ship!")
		m.damageShip(m.cfg.Damage.Enemy)
	}
}

// damageShip applies contact damage, noting when the shield absorbed it.
func (m *Model) damageShip(amount int) {
	if !m.ship.TakeDamage(amount) {
		m.logger.Log(fmt.Sprintf("Shield absorbed %d damage", amount))
	}
}

// pairOf orders a and b as (first, second) when their kinds match the pair.
func pairOf(a, b entry, first, second Kind) (entry, entry, bool) {
	ka, kb := a.obj.Kind(), b.obj.Kind()
	switch {
	case ka == first && kb == second:
		return a, b, true
	case ka == second && kb == first:
		return b, a, true
	default:
		return entry{}, entry{}, false
	}
}

// shipPartner returns the entity paired with the model's ship.
func (m *Model) shipPartner(a, b entry) (entry, bool) {
	if m.ship == nil {
		return entry{}, false
	}
	switch {
	case a.obj == SpaceObject(m.ship):
		return b, true
	case b.obj == SpaceObject(m.ship):
		return a, true
	default:
		return entry{}, false
	}
}

// SpawnObjects may add one entity at the top row. Draws happen in a fixed
// order: spawn chance, column, kind.
func (m *Model) SpawnObjects() {
	if m.gameOver {
		return
	}
	if m.rng.Intn(100) >= m.spawnRate {
		return
	}

	x := m.rng.Intn(m.grid.Width)
	chance := m.rng.Float64()

	var obj SpaceObject
	switch {
	case chance < m.cfg.Spawn.HealthBelow:
		obj = NewHealthPowerUp(x, 0)
	case chance < m.cfg.Spawn.ShieldBelow:
		obj = NewShieldPowerUp(x, 0)
	case chance < m.cfg.Spawn.EnemyBelow:
		obj = NewEnemy(x, 0)
	default:
		obj = NewAsteroid(x, 0)
	}
	// Spawned objects are never ships, so Add cannot fail.
	_ = m.Add(obj)
}

// LevelUp raises the level by one when the score reaches
// ScoreThreshold * level, and speeds up spawning.
func (m *Model) LevelUp() {
	if m.gameOver {
		return
	}
	if m.score < m.cfg.Level.ScoreThreshold*m.level {
		return
	}
	m.level++
	m.spawnRate = core.Min(m.cfg.Spawn.MaxRate, m.spawnRate+m.cfg.Spawn.RateIncrease)
	m.logger.Log(fmt.Sprintf("Level Up! Now at level %d", m.level))
}

// FireBullet adds a bullet directly above the ship.
func (m *Model) FireBullet() {
	if m.ship == nil {
		return
	}
	p := m.ship.Position()
	_ = m.Add(NewBullet(p.X, p.Y-1))
	m.logger.Log("Bullet fired!")
}

// removeWhere drops matching entities, keeping order. The ship is never
// removed.
func (m *Model) removeWhere(drop func(entry) bool) {
	kept := m.objects[:0]
	for _, e := range m.objects {
		if e.obj != SpaceObject(m.ship) && drop(e) {
			continue
		}
		kept = append(kept, e)
	}
	// Clear the tail so dropped entities can be collected.
	for i := len(kept); i < len(m.objects); i++ {
		m.objects[i] = entry{}
	}
	m.objects = kept
}
