package config

import (
	_ "embed"
)

//go:embed defaults/space.yaml
var defaultSpaceYAML []byte

// DefaultSpaceConfig returns the built-in configuration.
func DefaultSpaceConfig() SpaceConfig {
	return SpaceConfig{
		Grid: GridConfig{
			Width:  10,
			Height: 20,
		},
		Spawn: SpawnConfig{
			StartRate:    2,
			RateIncrease: 5,
			MaxRate:      100,
			HealthBelow:  0.125,
			ShieldBelow:  0.25,
			EnemyBelow:   0.75,
		},
		Level: LevelConfig{
			Start:          1,
			ScoreThreshold: 100,
		},
		Damage: DamageConfig{
			Asteroid: 10,
			Enemy:    20,
		},
		Ship: ShipConfig{
			StartHealth: 3,
			MaxHealth:   5,
			HealAmount:  1,
			ShieldTicks: 10,
		},
		Scoring: ScoringConfig{
			EnemyDestroyed: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSpaceYAML
}
