// Package config provides YAML-based game configuration loading and
// difficulty presets for the space arcade.
package config

import (
	"errors"
	"fmt"
)

// SpaceConfig contains all tunable parameters of the simulation.
type SpaceConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Level   LevelConfig   `yaml:"level"`
	Damage  DamageConfig  `yaml:"damage"`
	Ship    ShipConfig    `yaml:"ship"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// GridConfig defines the playfield dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines how new objects enter the playfield.
type SpawnConfig struct {
	StartRate    int `yaml:"start_rate"`    // Percent chance per tick at level 1
	RateIncrease int `yaml:"rate_increase"` // Added to the rate on every level up
	MaxRate      int `yaml:"max_rate"`      // Upper bound for the rate

	// Cumulative thresholds on a [0,1) draw selecting the spawned kind.
	// Draws at or above EnemyBelow spawn an asteroid.
	HealthBelow float64 `yaml:"health_below"`
	ShieldBelow float64 `yaml:"shield_below"`
	EnemyBelow  float64 `yaml:"enemy_below"`
}

// LevelConfig defines level progression.
type LevelConfig struct {
	Start          int `yaml:"start"`
	ScoreThreshold int `yaml:"score_threshold"` // Score needed per level, cumulative
}

// DamageConfig defines contact damage dealt to the ship.
type DamageConfig struct {
	Asteroid int `yaml:"asteroid"`
	Enemy    int `yaml:"enemy"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	StartHealth int `yaml:"start_health"`
	MaxHealth   int `yaml:"max_health"`   // Healing never raises health above this
	HealAmount  int `yaml:"heal_amount"`  // Health restored by a health power-up
	ShieldTicks int `yaml:"shield_ticks"` // Ticks a shield power-up lasts
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	EnemyDestroyed int `yaml:"enemy_destroyed"`
}

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks that the configuration describes a playable game.
func (c SpaceConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Grid.Width > 0, "grid.width must be positive, got %d", c.Grid.Width)
	check(c.Grid.Height > 0, "grid.height must be positive, got %d", c.Grid.Height)
	check(c.Spawn.StartRate >= 0 && c.Spawn.StartRate <= 100, "spawn.start_rate must be in [0,100], got %d", c.Spawn.StartRate)
	check(c.Spawn.MaxRate >= 0 && c.Spawn.MaxRate <= 100, "spawn.max_rate must be in [0,100], got %d", c.Spawn.MaxRate)
	check(c.Spawn.RateIncrease >= 0, "spawn.rate_increase must not be negative, got %d", c.Spawn.RateIncrease)
	check(c.Spawn.HealthBelow >= 0 && c.Spawn.HealthBelow <= c.Spawn.ShieldBelow &&
		c.Spawn.ShieldBelow <= c.Spawn.EnemyBelow && c.Spawn.EnemyBelow <= 1,
		"spawn thresholds must be ordered within [0,1], got %.3f/%.3f/%.3f",
		c.Spawn.HealthBelow, c.Spawn.ShieldBelow, c.Spawn.EnemyBelow)
	check(c.Level.Start >= 1, "level.start must be at least 1, got %d", c.Level.Start)
	check(c.Level.ScoreThreshold > 0, "level.score_threshold must be positive, got %d", c.Level.ScoreThreshold)
	check(c.Damage.Asteroid >= 0 && c.Damage.Enemy >= 0, "damage must not be negative")
	check(c.Ship.StartHealth > 0, "ship.start_health must be positive, got %d", c.Ship.StartHealth)
	check(c.Ship.MaxHealth > 0, "ship.max_health must be positive, got %d", c.Ship.MaxHealth)
	check(c.Ship.ShieldTicks >= 0, "ship.shield_ticks must not be negative, got %d", c.Ship.ShieldTicks)

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
// An empty string selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplySpacePreset modifies the config based on a difficulty preset.
func ApplySpacePreset(cfg *SpaceConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.StartHealth = cfg.Ship.MaxHealth
		cfg.Spawn.StartRate = 1
		cfg.Spawn.RateIncrease = 3
	case DifficultyHard:
		cfg.Ship.StartHealth = 1
		cfg.Spawn.StartRate = 10
		cfg.Spawn.RateIncrease = 10
	case DifficultyFixed:
		// Levels still count up, but the spawn rate never changes.
		cfg.Spawn.RateIncrease = 0
	}
}
