// Package config provides YAML-based game configuration loading and
// difficulty management for the game.
package config

// DodgeConfig contains all configuration for the dodge game.
type DodgeConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Character  CharacterConfig  `yaml:"character"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Items      ItemConfig       `yaml:"items"`
	Food       FoodConfig       `yaml:"food"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Loop       LoopConfig       `yaml:"loop"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig defines the square playfield in canvas units.
type CanvasConfig struct {
	Size float64 `yaml:"size"`
}

// CharacterConfig defines the player character.
type CharacterConfig struct {
	Size                 float64 `yaml:"size"`        // Visible sprite and pickup box
	HitboxSize           float64 `yaml:"hitbox_size"` // Damage box
	NormalSpeed          float64 `yaml:"normal_speed"`
	SlowSpeed            float64 `yaml:"slow_speed"`
	FastSpeed            float64 `yaml:"fast_speed"`
	StartLife            int     `yaml:"start_life"`
	MaxLife              int     `yaml:"max_life"`
	Cloaks               int     `yaml:"cloaks"`
	CloakMS              int     `yaml:"cloak_ms"`
	DamageInvulnerableMS int     `yaml:"damage_invulnerable_ms"`
	BlinkMS              int     `yaml:"blink_ms"`
	BlinkIntervalMS      int     `yaml:"blink_interval_ms"`
}

// ObstacleConfig defines obstacle generation and level scaling.
type ObstacleConfig struct {
	BaseCount          int     `yaml:"base_count"` // Initial count is base_count + level
	MinSize            float64 `yaml:"min_size"`
	BaseMaxSize        float64 `yaml:"base_max_size"`
	MaxSizePerLevel    float64 `yaml:"max_size_per_level"`
	MinSpeed           float64 `yaml:"min_speed"`
	BaseMaxSpeed       float64 `yaml:"base_max_speed"`
	MaxSpeedPerLevel   float64 `yaml:"max_speed_per_level"`
	SpawnMinDistance   float64 `yaml:"spawn_min_distance"`
	SpawnRetries       int     `yaml:"spawn_retries"`
	SpawnIntervalMS    int     `yaml:"spawn_interval_ms"`
	SpawnIntervalDecay float64 `yaml:"spawn_interval_decay"` // Interval multiplier per level
	ColorSmall         string  `yaml:"color_small"`
	ColorLarge         string  `yaml:"color_large"`
}

// ItemConfig defines power-up item spawning.
type ItemConfig struct {
	Size                float64 `yaml:"size"`
	Cap                 int     `yaml:"cap"`
	ExclusionRadius     float64 `yaml:"exclusion_radius"`
	SpawnIntervalMS     int     `yaml:"spawn_interval_ms"`
	SpawnIntervalGrowth float64 `yaml:"spawn_interval_growth"` // Interval multiplier per level
	SpawnRetries        int     `yaml:"spawn_retries"`
}

// FoodConfig defines food spawning and value.
type FoodConfig struct {
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
	BaseSize        float64 `yaml:"base_size"`
	MaxBonus        int     `yaml:"max_bonus"`
	ScorePerWeight  int     `yaml:"score_per_weight"`
	EdgeMargin      float64 `yaml:"edge_margin"`
}

// ScoringConfig defines level progression.
type ScoringConfig struct {
	WeightBase  float64 `yaml:"weight_base"`   // scoreWeight = round(weight_base^(level-1))
	LevelUpBase int     `yaml:"level_up_base"` // levelUpScore = level_up_base * scoreWeight
}

// LoopConfig defines the simulation cadences.
type LoopConfig struct {
	TickMS  int `yaml:"tick_ms"`
	ClockMS int `yaml:"clock_ms"`
}

// DifficultyConfig holds the values a difficulty preset adjusts.
type DifficultyConfig struct {
	Preset     string  `yaml:"preset"`
	SpeedScale float64 `yaml:"speed_scale"` // Multiplies obstacle max speed
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Character.StartLife = 5
		cfg.Character.Cloaks = 5
		cfg.Difficulty.SpeedScale = 0.8
	case DifficultyNormal:
		cfg.Character.StartLife = 3
		cfg.Character.Cloaks = 3
		cfg.Difficulty.SpeedScale = 1.0
	case DifficultyHard:
		cfg.Character.StartLife = 1
		cfg.Character.Cloaks = 1
		cfg.Difficulty.SpeedScale = 1.3
	default:
		return
	}
	cfg.Difficulty.Preset = string(preset)
}
