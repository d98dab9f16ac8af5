package config

import "math"

// Progression types understood by the difficulty curve.
const (
	ProgressionScore = "score"
	ProgressionTime  = "time"
	ProgressionNone  = "none"
)

// DifficultyManager turns the raw score and tick counters into a
// difficulty level and the rock parameters derived from it.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager for the given curve.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Level returns the difficulty in [0, 1]. The curve starts at the
// configured initial level and interpolates to 1.0 as the progression
// counter approaches MaxAt; with progression disabled the level stays
// at the initial value.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	base := clamp01(d.cfg.InitialLevel)
	if !d.cfg.Enabled {
		return base
	}

	span := float64(d.cfg.Progression.MaxAt)
	if span < 1 {
		span = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		progress = float64(score) / span
	case ProgressionTime:
		progress = float64(ticks) / span
	default:
		return base
	}

	return base + clamp01(progress)*(1-base)
}

// RockSpeed scales a base rock speed for the current level.
func (d *DifficultyManager) RockSpeed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// MaxRocks returns the live-rock cap for the current level.
func (d *DifficultyManager) MaxRocks(base, score, ticks int) int {
	return base + int(d.Level(score, ticks)*float64(d.cfg.Scaling.ExtraRocks))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
