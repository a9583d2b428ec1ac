package space

// Snapshot captures the observable simulation state for replay checks.
type Snapshot struct {
	Tick            int
	Score           int
	Level           int
	SpawnRate       int
	GameOver        bool
	Health          int
	Shielded        bool
	ShieldRemaining int
	Objects         []ObjectView
}

// Snapshot returns the current state. Tick is left at zero; callers that
// count ticks fill it in.
func (m *Model) Snapshot() Snapshot {
	snap := Snapshot{
		Score:     m.score,
		Level:     m.level,
		SpawnRate: m.spawnRate,
		GameOver:  m.gameOver,
		Objects:   m.Objects(),
	}
	if m.ship != nil {
		snap.Health = m.ship.Health()
		snap.Shielded = m.ship.Shielded()
		snap.ShieldRemaining = m.ship.ShieldRemaining()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnRate)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShieldRemaining) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + boolBit(snap.Shielded)

	for _, o := range snap.Objects {
		h = h*31 + uint64(o.ID)    //#nosec G115 -- hash computation
		h = h*31 + uint64(o.Kind)  //#nosec G115 -- hash computation
		h = h*31 + uint64(o.Pos.X) //#nosec G115 -- hash computation
		h = h*31 + uint64(o.Pos.Y) //#nosec G115 -- hash computation
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
