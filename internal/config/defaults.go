package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the default Vector Arena configuration.
// Used as the last-resort fallback if the embedded YAML cannot be parsed.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Ship: ArenaShip{
			TurnRate:           3.5,
			Thrust:             40.0,
			MaxSpeed:           28.0,
			Friction:           0.5,
			Size:               3.0,
			FireCooldownTicks:  12,
			Lives:              3,
			RespawnInvulnTicks: 120,
		},
		Shots: ArenaShots{
			Speed:    55.0,
			TTLTicks: 80,
			Size:     0.6,
		},
		Rocks: ArenaRocks{
			InitialCount:  4,
			MaxCount:      10,
			MinRadius:     1.2,
			MaxRadius:     5.0,
			Segments:      10,
			Jaggedness:    0.35,
			MinSpeed:      3.0,
			MaxSpeed:      9.0,
			SplitChildren: 2,
			ScorePerRock:  10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 400,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.2,
				ExtraRocks:      6,
			},
		},
	}
}
