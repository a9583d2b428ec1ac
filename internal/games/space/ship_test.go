package space

import (
	"errors"
	"testing"

	"github.com/vovakirdan/space-arcade/internal/core"
)

func TestShipMoveInside(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected core.Point
	}{
		{DirUp, core.Pt(5, 9)},
		{DirDown, core.Pt(5, 11)},
		{DirLeft, core.Pt(4, 10)},
		{DirRight, core.Pt(6, 10)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			s := NewShip(5, 10, 3)
			if err := s.Move(tc.dir); err != nil {
				t.Fatalf("Move(%v) failed: %v", tc.dir, err)
			}
			if s.Position() != tc.expected {
				t.Errorf("Move(%v) moved to %v, expected %v", tc.dir, s.Position(), tc.expected)
			}
		})
	}
}

func TestShipMoveBoundary(t *testing.T) {
	tests := []struct {
		name  string
		start core.Point
		dir   Direction
		edge  string
	}{
		{"top edge", core.Pt(3, 0), DirUp, "Top"},
		{"bottom edge", core.Pt(3, 19), DirDown, "Bottom"},
		{"left edge", core.Pt(0, 7), DirLeft, "Left"},
		{"right edge", core.Pt(9, 7), DirRight, "Right"},
		{"corner up", core.Pt(0, 0), DirUp, "Top"},
		{"corner left", core.Pt(0, 0), DirLeft, "Left"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewShip(tc.start.X, tc.start.Y, 3)
			err := s.Move(tc.dir)

			if !errors.Is(err, ErrBoundaryExceeded) {
				t.Fatalf("Move(%v) error = %v, expected ErrBoundaryExceeded", tc.dir, err)
			}
			var be *BoundaryError
			if !errors.As(err, &be) {
				t.Fatalf("error should be a *BoundaryError, got %T", err)
			}
			if be.Edge != tc.edge {
				t.Errorf("Edge = %q, expected %q", be.Edge, tc.edge)
			}
			if want := "Cannot move " + tc.edge + ", boundary exceeded."; err.Error() != want {
				t.Errorf("Error() = %q, expected %q", err.Error(), want)
			}
			if s.Position() != tc.start {
				t.Errorf("failed move changed position to %v", s.Position())
			}
		})
	}
}

func TestShipMoveCustomGrid(t *testing.T) {
	s := NewShip(15, 3, 3, WithGrid(core.Grid{Width: 16, Height: 4}))

	if err := s.Move(DirRight); !errors.Is(err, ErrBoundaryExceeded) {
		t.Errorf("Move right at x=15 of 16 should fail, got %v", err)
	}
	if err := s.Move(DirDown); !errors.Is(err, ErrBoundaryExceeded) {
		t.Errorf("Move down at y=3 of 4 should fail, got %v", err)
	}
	if err := s.Move(DirLeft); err != nil {
		t.Errorf("Move left should succeed, got %v", err)
	}
}

func TestShipAdvanceDoesNotMove(t *testing.T) {
	s := NewShip(4, 12, 3)
	for tick := 0; tick < 5; tick++ {
		s.Advance(tick)
	}
	if s.Position() != core.Pt(4, 12) {
		t.Errorf("ship moved on tick to %v", s.Position())
	}
}

func TestShipShieldExpires(t *testing.T) {
	s := NewShip(5, 19, 3)
	s.EnableShield()

	if !s.Shielded() || s.ShieldRemaining() != 10 {
		t.Fatalf("EnableShield: shielded=%v remaining=%d, expected true/10", s.Shielded(), s.ShieldRemaining())
	}

	for tick := 1; tick <= 9; tick++ {
		s.Advance(tick)
		if !s.Shielded() {
			t.Fatalf("shield dropped after %d ticks", tick)
		}
	}

	s.Advance(10)
	if s.Shielded() {
		t.Error("shield should expire after 10 ticks")
	}
	if s.ShieldRemaining() != 0 {
		t.Errorf("ShieldRemaining = %d, expected 0", s.ShieldRemaining())
	}
}

func TestShipEnableShieldResets(t *testing.T) {
	s := NewShip(5, 19, 3)
	s.EnableShield()
	s.Advance(0)
	s.Advance(1)
	s.Advance(2)

	s.EnableShield()
	if s.ShieldRemaining() != 10 {
		t.Errorf("ShieldRemaining = %d, expected reset to 10", s.ShieldRemaining())
	}
}

func TestShipHealCapped(t *testing.T) {
	tests := []struct {
		start, amount, expected int
	}{
		{3, 1, 4},
		{4, 1, 5},
		{5, 1, 5},
		{1, 10, 5},
		{-7, 1, -6},
	}

	for _, tc := range tests {
		s := NewShip(0, 0, tc.start)
		s.Heal(tc.amount)
		if s.Health() != tc.expected {
			t.Errorf("Heal(%d) from %d = %d, expected %d", tc.amount, tc.start, s.Health(), tc.expected)
		}
	}
}

func TestShipTakeDamage(t *testing.T) {
	s := NewShip(0, 0, 3)
	if !s.TakeDamage(10) {
		t.Error("unshielded ship should take damage")
	}
	if s.Health() != -7 {
		t.Errorf("Health = %d, expected -7", s.Health())
	}
	if s.IsAlive() {
		t.Error("ship with negative health should not be alive")
	}

	shielded := NewShip(0, 0, 3)
	shielded.EnableShield()
	if shielded.TakeDamage(20) {
		t.Error("shielded ship should absorb damage")
	}
	if shielded.Health() != 3 {
		t.Errorf("Health = %d, expected 3", shielded.Health())
	}
}

func TestShipRulesFromOptions(t *testing.T) {
	s := NewShip(0, 0, 1, WithRules(ShipRules{MaxHealth: 9, HealAmount: 4, ShieldTicks: 2}))

	ApplyEffect(EffectHeal, s)
	if s.Health() != 5 {
		t.Errorf("Health = %d, expected 5", s.Health())
	}
	ApplyEffect(EffectShield, s)
	if s.ShieldRemaining() != 2 {
		t.Errorf("ShieldRemaining = %d, expected 2", s.ShieldRemaining())
	}
}
