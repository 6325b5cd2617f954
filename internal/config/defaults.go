package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the hardcoded match-3 configuration.
// It mirrors defaults/match3.yaml and is used when the embedded file cannot be parsed.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Size:  12,
			Kinds: 6,
		},
		Rules: RulesConfig{
			MaxValidationPasses: 0,
			Hints:               true,
		},
		Timing: TimingConfig{
			SwapTicks:   24,
			ClearTicks:  24,
			FallTicks:   6,
			SettleTicks: 6,
			HintTicks:   90,
		},
		Scoring: ScoringConfig{
			PointsPerCell: 10,
		},
		Classic: ClassicConfig{
			Moves: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				ExtraKinds: 2,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMatch3YAML
}
