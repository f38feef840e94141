package config

import "math"

// DifficultyManager folds a difficulty level into effective world
// generation parameters. The whole obstacle field is seeded up front,
// so the level is resolved once per run rather than rescaling a live
// world.
type DifficultyManager struct {
	cfg   DifficultyConfig
	level float64
}

// NewDifficultyManager creates a manager for the given difficulty config.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		level: clampF(cfg.Level, 0.0, 1.0),
	}
}

// Level returns the effective difficulty level (0.0 to 1.0).
// A disabled config always reads as level 0.
func (d *DifficultyManager) Level() float64 {
	if !d.cfg.Enabled {
		return 0.0
	}
	return d.level
}

// Speed returns the obstacle speed bound scaled for the level.
func (d *DifficultyManager) Speed(base float64) float64 {
	return base * (1.0 + d.Level()*d.cfg.Scaling.SpeedMultiplier)
}

// ObstacleCount returns the obstacle count scaled for the level.
// The field thickens as the level rises.
func (d *DifficultyManager) ObstacleCount(base int) int {
	return base + int(d.Level()*float64(d.cfg.Scaling.ExtraObstacles))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
