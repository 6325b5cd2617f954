// Package config provides YAML-based game configuration loading and
// difficulty management for the match-3 platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board      BoardConfig      `yaml:"board"`
	Rules      RulesConfig      `yaml:"rules"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Classic    ClassicConfig    `yaml:"classic"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Size  int `yaml:"size"`  // N for an N×N grid
	Kinds int `yaml:"kinds"` // Distinct token kinds in play
}

// RulesConfig defines board maintenance rules.
type RulesConfig struct {
	MaxValidationPasses int  `yaml:"max_validation_passes"` // 0 = unlimited
	Hints               bool `yaml:"hints"`
}

// TimingConfig defines animation durations in ticks.
type TimingConfig struct {
	SwapTicks   int `yaml:"swap_ticks"`
	ClearTicks  int `yaml:"clear_ticks"`
	FallTicks   int `yaml:"fall_ticks"`
	SettleTicks int `yaml:"settle_ticks"`
	HintTicks   int `yaml:"hint_ticks"` // How long a hint stays highlighted
}

// ScoringConfig defines how cleared tokens turn into points.
type ScoringConfig struct {
	PointsPerCell int `yaml:"points_per_cell"`
}

// ClassicConfig defines the move-budget mode.
type ClassicConfig struct {
	Moves int `yaml:"moves"`
}

// DifficultyConfig defines how endless mode gets harder with score.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Progression ProgressionConfig `yaml:"progression"`
	Scaling     ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives difficulty.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score" or "none"
	MaxAt int    `yaml:"max_at"` // Score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraKinds int `yaml:"extra_kinds"` // Kinds added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, s)
}

// ApplyPreset adjusts kinds, move budget and progression for a preset.
// Fewer kinds make runs more likely, so easy boards use fewer kinds.
func ApplyPreset(cfg *Match3Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Kinds = 5
		cfg.Classic.Moves = 40
		cfg.Difficulty.Enabled = true
	case DifficultyNormal:
		cfg.Board.Kinds = 6
		cfg.Classic.Moves = 30
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Board.Kinds = 7
		cfg.Classic.Moves = 25
		cfg.Difficulty.Enabled = true
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c Match3Config) Validate() error {
	switch {
	case c.Board.Size < 4 || c.Board.Size > 32:
		return fmt.Errorf("%w: board.size %d not in [4, 32]", ErrInvalid, c.Board.Size)
	case c.Board.Kinds < 3 || c.Board.Kinds > 8:
		return fmt.Errorf("%w: board.kinds %d not in [3, 8]", ErrInvalid, c.Board.Kinds)
	case c.Rules.MaxValidationPasses < 0:
		return fmt.Errorf("%w: rules.max_validation_passes must not be negative", ErrInvalid)
	case c.Timing.SwapTicks < 0 || c.Timing.ClearTicks < 0 || c.Timing.FallTicks < 0 ||
		c.Timing.SettleTicks < 0 || c.Timing.HintTicks < 0:
		return fmt.Errorf("%w: timing values must not be negative", ErrInvalid)
	case c.Scoring.PointsPerCell <= 0:
		return fmt.Errorf("%w: scoring.points_per_cell must be positive", ErrInvalid)
	case c.Classic.Moves <= 0:
		return fmt.Errorf("%w: classic.moves must be positive", ErrInvalid)
	}

	switch c.Difficulty.Progression.Type {
	case "score", "none", "":
	default:
		return fmt.Errorf("%w: difficulty.progression.type %q", ErrInvalid, c.Difficulty.Progression.Type)
	}
	if c.Difficulty.Scaling.ExtraKinds < 0 {
		return fmt.Errorf("%w: difficulty.scaling.extra_kinds must not be negative", ErrInvalid)
	}
	return nil
}
