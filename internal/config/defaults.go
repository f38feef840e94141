package config

import (
	_ "embed"
)

//go:embed defaults/drifter.yaml
var defaultDrifterYAML []byte

// DefaultDrifterConfig returns the default Drifter configuration.
// Used as the last-resort fallback when the embedded YAML cannot be parsed.
func DefaultDrifterConfig() DrifterConfig {
	return DrifterConfig{
		Arena: DrifterArena{
			HalfExtent: 4000,
		},
		Obstacles: DrifterObstacles{
			Count:           80,
			MaxSpeed:        10.0,
			MaxAngularSpeed: 0.1,
		},
		Supply: DrifterSupply{
			CraftSeconds:  60,
			PickupSeconds: 15,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Level:   0.0,
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				ExtraObstacles:  40,
			},
		},
	}
}
