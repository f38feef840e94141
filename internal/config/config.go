// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// DrifterConfig contains all configuration for the Drifter game.
type DrifterConfig struct {
	Arena      DrifterArena     `yaml:"arena"`
	Obstacles  DrifterObstacles `yaml:"obstacles"`
	Supply     DrifterSupply    `yaml:"supply"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DrifterArena defines the square play field. The arena spans
// [-half_extent, half_extent] on both axes in world units.
type DrifterArena struct {
	HalfExtent float64 `yaml:"half_extent"`
}

// DrifterObstacles defines the drifting obstacle field seeded at game start.
type DrifterObstacles struct {
	Count           int     `yaml:"count"`             // Obstacles placed at game start
	MaxSpeed        float64 `yaml:"max_speed"`         // Upper bound of the sampled drift speed, units/tick
	MaxAngularSpeed float64 `yaml:"max_angular_speed"` // Upper bound of the sampled spin, radians/tick
}

// DrifterSupply defines the air timers, in seconds of survival at the
// simulation rate.
type DrifterSupply struct {
	CraftSeconds  float64 `yaml:"craft_seconds"`
	PickupSeconds float64 `yaml:"pickup_seconds"`
}

// DifficultyConfig defines how the selected difficulty level shapes
// world generation. Drifter fields are fixed per run, so the level is
// applied once when the world is seeded.
type DifficultyConfig struct {
	Enabled bool          `yaml:"enabled"`
	Level   float64       `yaml:"level"` // 0.0 = easy, 1.0 = hard
	Scaling ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines how strongly the level bends the obstacle field.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Obstacle speed grows by this factor at level 1.0
	ExtraObstacles  int     `yaml:"extra_obstacles"`  // Additional obstacles placed at level 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// LevelForPreset returns the difficulty level for a named preset.
func LevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
