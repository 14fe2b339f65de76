package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultConfig returns the default dodge configuration.
func DefaultConfig() DodgeConfig {
	return DodgeConfig{
		Canvas: CanvasConfig{
			Size: 400,
		},
		Character: CharacterConfig{
			Size:                 20,
			HitboxSize:           5,
			NormalSpeed:          3,
			SlowSpeed:            1,
			FastSpeed:            5,
			StartLife:            3,
			MaxLife:              5,
			Cloaks:               3,
			CloakMS:              3000,
			DamageInvulnerableMS: 5000,
			BlinkMS:              3000,
			BlinkIntervalMS:      100,
		},
		Obstacles: ObstacleConfig{
			BaseCount:          3,
			MinSize:            5,
			BaseMaxSize:        10,
			MaxSizePerLevel:    4,
			MinSpeed:           1,
			BaseMaxSpeed:       3,
			MaxSpeedPerLevel:   0.5,
			SpawnMinDistance:   200,
			SpawnRetries:       64,
			SpawnIntervalMS:    2500,
			SpawnIntervalDecay: 0.97,
			ColorSmall:         "#a020f0",
			ColorLarge:         "#ff0000",
		},
		Items: ItemConfig{
			Size:                15,
			Cap:                 5,
			ExclusionRadius:     100,
			SpawnIntervalMS:     2000,
			SpawnIntervalGrowth: 1.1,
			SpawnRetries:        64,
		},
		Food: FoodConfig{
			SpawnIntervalMS: 500,
			BaseSize:        5,
			MaxBonus:        15,
			ScorePerWeight:  10,
			EdgeMargin:      20,
		},
		Scoring: ScoringConfig{
			WeightBase:  2.5,
			LevelUpBase: 1000,
		},
		Loop: LoopConfig{
			TickMS:  16,
			ClockMS: 10,
		},
		Difficulty: DifficultyConfig{
			Preset:     string(DifficultyNormal),
			SpeedScale: 1.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
