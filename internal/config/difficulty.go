package config

import "math"

// DifficultyManager derives the number of kinds in play from the score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type == "score"
}

// Level returns the current difficulty level (0.0 to 1.0) for a score.
func (d *DifficultyManager) Level(score int) float64 {
	if !d.IsEnabled() {
		return 0
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	return clampF(float64(score)/maxAt, 0.0, 1.0)
}

// Kinds returns how many kinds should be in play, from base up to
// base + extra_kinds at max difficulty, never more than maxKinds.
func (d *DifficultyManager) Kinds(base, maxKinds, score int) int {
	extra := int(math.Floor(d.Level(score) * float64(d.cfg.Scaling.ExtraKinds)))
	kinds := base + extra
	if kinds > maxKinds {
		kinds = maxKinds
	}
	return kinds
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
