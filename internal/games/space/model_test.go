package space

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
)

// recorder collects logged events in order.
type recorder struct {
	msgs []string
}

func (r *recorder) Log(msg string) { r.msgs = append(r.msgs, msg) }

func (r *recorder) has(msg string) bool {
	for _, m := range r.msgs {
		if m == msg {
			return true
		}
	}
	return false
}

func (r *recorder) count(msg string) int {
	n := 0
	for _, m := range r.msgs {
		if m == msg {
			n++
		}
	}
	return n
}

func newTestModel(t *testing.T) (*Model, *recorder) {
	t.Helper()
	rec := &recorder{}
	m := NewModel(config.DefaultSpaceConfig(), rand.New(rand.NewSource(1)), rec)
	return m, rec
}

// addShip adds a ship bound to the model at (x, y).
func addShip(t *testing.T, m *Model, x, y, health int) *Ship {
	t.Helper()
	s := m.NewShip(x, y, health)
	if err := m.Add(s); err != nil {
		t.Fatalf("Add(ship) failed: %v", err)
	}
	return s
}

func mustAdd(t *testing.T, m *Model, obj SpaceObject) {
	t.Helper()
	if err := m.Add(obj); err != nil {
		t.Fatalf("Add(%v) failed: %v", obj.Kind(), err)
	}
}

func kinds(objects []ObjectView) []Kind {
	out := make([]Kind, len(objects))
	for i, o := range objects {
		out[i] = o.Kind
	}
	return out
}

func TestNewModelDefaults(t *testing.T) {
	m, _ := newTestModel(t)

	if m.Level() != 1 || m.SpawnRate() != 2 || m.Score() != 0 {
		t.Errorf("initial level=%d rate=%d score=%d, expected 1/2/0", m.Level(), m.SpawnRate(), m.Score())
	}
	if m.Ship() != nil || m.Len() != 0 || m.IsGameOver() {
		t.Error("new model should be empty and running")
	}
	if m.Grid() != (core.Grid{Width: 10, Height: 20}) {
		t.Errorf("Grid = %+v", m.Grid())
	}
}

func TestAddLogsAndAssignsIDs(t *testing.T) {
	m, rec := newTestModel(t)
	addShip(t, m, 5, 19, 3)
	mustAdd(t, m, NewEnemy(2, 0))

	if !rec.has("Added object at (5, 19)") || !rec.has("Added object at (2, 0)") {
		t.Errorf("missing add events: %v", rec.msgs)
	}

	objs := m.Objects()
	if len(objs) != 2 || objs[0].ID == objs[1].ID {
		t.Fatalf("Objects = %+v", objs)
	}
	if objs[0].Kind != KindShip || objs[1].Kind != KindEnemy {
		t.Errorf("insertion order not kept: %v", kinds(objs))
	}
}

func TestAddDuplicateShip(t *testing.T) {
	m, _ := newTestModel(t)
	first := addShip(t, m, 5, 19, 3)

	if err := m.Add(m.NewShip(1, 1, 3)); err != ErrDuplicateShip {
		t.Fatalf("second ship error = %v, expected ErrDuplicateShip", err)
	}
	if m.Ship() != first || m.Len() != 1 {
		t.Error("failed add should leave the model unchanged")
	}
}

func TestObjectsReturnsCopy(t *testing.T) {
	m, _ := newTestModel(t)
	addShip(t, m, 5, 19, 3)
	mustAdd(t, m, NewEnemy(5, 3))

	objs := m.Objects()
	objs[1].Pos = core.Pt(0, 0)
	objs = append(objs[:1], objs[2:]...)

	m.Update(0)
	again := m.Objects()
	if len(again) != 2 {
		t.Fatalf("model lost objects: %d", len(again))
	}
	if again[1].Pos != core.Pt(5, 4) {
		t.Errorf("enemy at %v, expected (5, 4)", again[1].Pos)
	}
	if len(objs) != 1 {
		t.Error("returned slice should be independent")
	}
}

func TestUpdateMovesAndPrunes(t *testing.T) {
	m, _ := newTestModel(t)
	addShip(t, m, 5, 19, 3)
	mustAdd(t, m, NewBullet(2, 0))    // leaves through the top
	mustAdd(t, m, NewAsteroid(3, 19)) // leaves through the bottom
	mustAdd(t, m, NewEnemy(4, 5))
	mustAdd(t, m, NewShieldPowerUp(7, 0))

	m.Update(0)

	objs := m.Objects()
	want := []Kind{KindShip, KindEnemy, KindShieldPowerUp}
	if !reflect.DeepEqual(kinds(objs), want) {
		t.Fatalf("kinds after update = %v, expected %v", kinds(objs), want)
	}
	if objs[1].Pos != core.Pt(4, 6) || objs[2].Pos != core.Pt(7, 1) {
		t.Errorf("positions after update: %v %v", objs[1].Pos, objs[2].Pos)
	}
	for _, o := range objs {
		if !m.Grid().ContainsRow(o.Pos.Y) {
			t.Errorf("%v left at row %d", o.Kind, o.Pos.Y)
		}
	}
}

func TestUpdateWithoutShipIsNoop(t *testing.T) {
	m, _ := newTestModel(t)
	mustAdd(t, m, NewEnemy(1, 1))

	m.Update(0)

	if got := m.Objects()[0].Pos; got != core.Pt(1, 1) {
		t.Errorf("enemy moved to %v without a ship", got)
	}
	if m.IsGameOver() {
		t.Error("no ship should not mean game over")
	}
}

func TestGameOverStopsSimulation(t *testing.T) {
	m, rec := newTestModel(t)
	addShip(t, m, 5, 19, 0)
	mustAdd(t, m, NewEnemy(1, 1))

	m.Update(0)
	if !m.IsGameOver() {
		t.Fatal("ship with zero health should end the game")
	}
	if rec.count("Game Over!") != 1 {
		t.Errorf("Game Over! logged %d times", rec.count("Game Over!"))
	}

	before := m.Objects()
	m.spawnRate = 100
	m.score = 1000
	for tick := 1; tick < 20; tick++ {
		m.Update(tick)
		m.SpawnObjects()
		m.LevelUp()
	}

	if !reflect.DeepEqual(m.Objects(), before) {
		t.Error("objects changed after game over")
	}
	if m.Level() != 1 {
		t.Errorf("level changed after game over: %d", m.Level())
	}
	if rec.count("Game Over!") != 1 {
		t.Error("Game Over! should be logged once")
	}
}

func TestCollisionRules(t *testing.T) {
	tests := []struct {
		name      string
		partner   SpaceObject
		health    int
		shielded  bool
		wantLog   string
		wantScore int
		wantLeft  []Kind
	}{
		{"asteroid", NewAsteroid(5, 19), 3 - 10, false, "Asteroid hit the ship!", 0, []Kind{KindShip}},
		{"enemy", NewEnemy(5, 19), 3 - 20, false, "Enemy hit the ship!", 0, []Kind{KindShip}},
		{"health power-up", NewHealthPowerUp(5, 19), 4, false, "Power-up applied!", 0, []Kind{KindShip}},
		{"shield power-up", NewShieldPowerUp(5, 19), 3, true, "Power-up applied!", 0, []Kind{KindShip}},
		{"own bullet", NewBullet(5, 19), 3, false, "", 0, []Kind{KindShip, KindBullet}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, rec := newTestModel(t)
			ship := addShip(t, m, 5, 19, 3)
			mustAdd(t, m, tc.partner)

			m.CheckCollisions()

			if ship.Health() != tc.health {
				t.Errorf("health = %d, expected %d", ship.Health(), tc.health)
			}
			if ship.Shielded() != tc.shielded {
				t.Errorf("shielded = %v, expected %v", ship.Shielded(), tc.shielded)
			}
			if tc.wantLog != "" && !rec.has(tc.wantLog) {
				t.Errorf("missing %q in %v", tc.wantLog, rec.msgs)
			}
			if m.Score() != tc.wantScore {
				t.Errorf("score = %d, expected %d", m.Score(), tc.wantScore)
			}
			if got := kinds(m.Objects()); !reflect.DeepEqual(got, tc.wantLeft) {
				t.Errorf("remaining = %v, expected %v", got, tc.wantLeft)
			}
		})
	}
}

func TestCollisionIgnoredPairs(t *testing.T) {
	m, rec := newTestModel(t)
	addShip(t, m, 9, 19, 3)
	mustAdd(t, m, NewBullet(2, 2))
	mustAdd(t, m, NewAsteroid(2, 2))
	mustAdd(t, m, NewEnemy(4, 4))
	mustAdd(t, m, NewAsteroid(4, 4))
	mustAdd(t, m, NewHealthPowerUp(6, 6))
	mustAdd(t, m, NewEnemy(6, 6))
	rec.msgs = nil

	m.CheckCollisions()

	if m.Len() != 7 {
		t.Errorf("Len = %d, expected nothing destroyed", m.Len())
	}
	if len(rec.msgs) != 0 {
		t.Errorf("unexpected events: %v", rec.msgs)
	}
}

func TestCollisionBulletEnemy(t *testing.T) {
	m, rec := newTestModel(t)
	addShip(t, m, 9, 19, 3)
	mustAdd(t, m, NewEnemy(3, 7))
	mustAdd(t, m, NewBullet(3, 7))

	m.CheckCollisions()

	if m.Score() != 10 {
		t.Errorf("score = %d, expected 10", m.Score())
	}
	if !rec.has("Enemy destroyed!") {
		t.Error("missing Enemy destroyed! event")
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, expected only the ship", m.Len())
	}
}

func TestCollisionEnemyDestroyedOnce(t *testing.T) {
	m, rec := newTestModel(t)
	ctrl := NewController(m, nil)
	if err := ctrl.Start(); err != nil {
		t.Fatal(err)
	}
	mustAdd(t, m, NewEnemy(5, 0))

	for tick := 0; tick < 18; tick++ {
		m.Update(tick)
	}
	m.FireBullet()
	m.FireBullet()
	m.CheckCollisions()

	if m.Score() != 10 {
		t.Errorf("score = %d, expected 10", m.Score())
	}
	if rec.count("Enemy destroyed!") != 1 {
		t.Errorf("Enemy destroyed! logged %d times", rec.count("Enemy destroyed!"))
	}
	want := []Kind{KindShip, KindBullet}
	if got := kinds(m.Objects()); !reflect.DeepEqual(got, want) {
		t.Errorf("remaining = %v, expected %v", got, want)
	}
}

func TestAsteroidHitEndsGame(t *testing.T) {
	m, rec := newTestModel(t)
	ctrl := NewController(m, nil)
	if err := ctrl.Start(); err != nil {
		t.Fatal(err)
	}
	mustAdd(t, m, NewAsteroid(5, 18))

	m.Update(0)
	m.CheckCollisions()
	if m.Ship().Health() != -7 {
		t.Fatalf("health = %d, expected -7", m.Ship().Health())
	}
	if m.IsGameOver() {
		t.Fatal("game over is only detected on the next update")
	}

	m.Update(1)
	if !m.IsGameOver() || !rec.has("Game Over!") {
		t.Error("expected game over after the next update")
	}
}

func TestShieldAbsorbsDamage(t *testing.T) {
	m, rec := newTestModel(t)
	ship := addShip(t, m, 5, 19, 3)
	ship.EnableShield()
	mustAdd(t, m, NewEnemy(5, 19))

	m.CheckCollisions()

	if ship.Health() != 3 {
		t.Errorf("health = %d, expected 3", ship.Health())
	}
	if !rec.has("Enemy hit the ship!") || !rec.has("Shield absorbed 20 damage") {
		t.Errorf("events = %v", rec.msgs)
	}
	if m.Len() != 1 {
		t.Error("enemy should be destroyed even when absorbed")
	}
}

func TestSpawnMatchesReferenceDraws(t *testing.T) {
	cfg := config.DefaultSpaceConfig()
	cfg.Spawn.StartRate = 50

	const seed = 42
	m := NewModel(cfg, rand.New(rand.NewSource(seed)), nil)
	ref := rand.New(rand.NewSource(seed))
	addShip(t, m, 5, 19, 3)

	for i := 0; i < 500; i++ {
		before := m.Len()
		m.SpawnObjects()

		if ref.Intn(100) >= 50 {
			if m.Len() != before {
				t.Fatalf("draw %d: spawned although chance failed", i)
			}
			continue
		}
		x := ref.Intn(cfg.Grid.Width)
		chance := ref.Float64()

		var want Kind
		switch {
		case chance < 0.125:
			want = KindHealthPowerUp
		case chance < 0.25:
			want = KindShieldPowerUp
		case chance < 0.75:
			want = KindEnemy
		default:
			want = KindAsteroid
		}

		objs := m.Objects()
		if len(objs) != before+1 {
			t.Fatalf("draw %d: expected one spawn", i)
		}
		last := objs[len(objs)-1]
		if last.Kind != want || last.Pos != core.Pt(x, 0) {
			t.Fatalf("draw %d: spawned %v at %v, expected %v at (%d, 0)", i, last.Kind, last.Pos, want, x)
		}
	}
}

func TestSpawnRateBounds(t *testing.T) {
	t.Run("zero never spawns", func(t *testing.T) {
		cfg := config.DefaultSpaceConfig()
		cfg.Spawn.StartRate = 0
		m := NewModel(cfg, rand.New(rand.NewSource(7)), nil)
		for i := 0; i < 1000; i++ {
			m.SpawnObjects()
		}
		if m.Len() != 0 {
			t.Errorf("Len = %d, expected 0", m.Len())
		}
	})

	t.Run("hundred always spawns on top row", func(t *testing.T) {
		cfg := config.DefaultSpaceConfig()
		cfg.Spawn.StartRate = 100
		m := NewModel(cfg, rand.New(rand.NewSource(7)), nil)
		for i := 0; i < 200; i++ {
			m.SpawnObjects()
		}
		if m.Len() != 200 {
			t.Fatalf("Len = %d, expected 200", m.Len())
		}
		for _, o := range m.Objects() {
			if o.Pos.Y != 0 || o.Pos.X < 0 || o.Pos.X >= cfg.Grid.Width {
				t.Errorf("spawn at %v outside the top row", o.Pos)
			}
			if o.Kind == KindShip || o.Kind == KindBullet {
				t.Errorf("spawned %v", o.Kind)
			}
		}
	})
}

func TestLevelUp(t *testing.T) {
	m, rec := newTestModel(t)

	m.LevelUp()
	if m.Level() != 1 {
		t.Fatal("level up without score")
	}

	m.score = 100
	m.LevelUp()
	if m.Level() != 2 || m.SpawnRate() != 7 {
		t.Errorf("level=%d rate=%d, expected 2/7", m.Level(), m.SpawnRate())
	}
	if !rec.has("Level Up! Now at level 2") {
		t.Errorf("events = %v", rec.msgs)
	}

	m.LevelUp()
	if m.Level() != 2 {
		t.Error("score 100 should not reach level 3")
	}

	m.score = 1000
	m.LevelUp()
	if m.Level() != 3 {
		t.Errorf("one call should raise one level, got %d", m.Level())
	}
}

func TestLevelUpCapsSpawnRate(t *testing.T) {
	m, _ := newTestModel(t)
	m.spawnRate = 98
	m.score = 100

	m.LevelUp()

	if m.SpawnRate() != 100 {
		t.Errorf("spawn rate = %d, expected cap of 100", m.SpawnRate())
	}
}

func TestFireBullet(t *testing.T) {
	m, rec := newTestModel(t)

	m.FireBullet()
	if m.Len() != 0 {
		t.Fatal("firing without a ship should do nothing")
	}

	addShip(t, m, 5, 19, 3)
	m.FireBullet()

	objs := m.Objects()
	if len(objs) != 2 || objs[1].Kind != KindBullet || objs[1].Pos != core.Pt(5, 18) {
		t.Fatalf("Objects = %+v", objs)
	}
	if !rec.has("Bullet fired!") {
		t.Error("missing Bullet fired! event")
	}
}

func TestFireBulletFromTopRow(t *testing.T) {
	m, _ := newTestModel(t)
	addShip(t, m, 5, 0, 3)

	m.FireBullet()
	if m.Len() != 2 {
		t.Fatal("bullet above the grid is still added")
	}

	m.Update(0)
	if m.Len() != 1 {
		t.Errorf("Len = %d, bullet should be pruned on update", m.Len())
	}
}
