package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "dodge.yaml"

// Load loads the dodge configuration.
// Search order: customPath -> ~/.arcade/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default
//
// Files are decoded on top of DefaultConfig, so a partial file only
// overrides the keys it names.
func Load(customPath string) (DodgeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultDodgeYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func Marshal(cfg DodgeConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func parse(data []byte) (DodgeConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c DodgeConfig) Validate() error {
	switch {
	case c.Canvas.Size <= 0:
		return fmt.Errorf("canvas.size must be positive, got %v", c.Canvas.Size)
	case c.Character.Size <= 0 || c.Character.Size >= c.Canvas.Size:
		return fmt.Errorf("character.size must be in (0, canvas.size), got %v", c.Character.Size)
	case c.Character.HitboxSize <= 0:
		return fmt.Errorf("character.hitbox_size must be positive, got %v", c.Character.HitboxSize)
	case c.Character.MaxLife < 1:
		return fmt.Errorf("character.max_life must be at least 1, got %d", c.Character.MaxLife)
	case c.Character.StartLife < 1 || c.Character.StartLife > c.Character.MaxLife:
		return fmt.Errorf("character.start_life must be in [1, max_life], got %d", c.Character.StartLife)
	case c.Obstacles.MinSize <= 0 || c.Obstacles.MinSize > c.Obstacles.BaseMaxSize:
		return fmt.Errorf("obstacles.min_size must be in (0, base_max_size], got %v", c.Obstacles.MinSize)
	case c.Obstacles.SpawnIntervalMS <= 0 || c.Items.SpawnIntervalMS <= 0 || c.Food.SpawnIntervalMS <= 0:
		return fmt.Errorf("spawn intervals must be positive")
	case c.Loop.TickMS <= 0 || c.Loop.ClockMS <= 0:
		return fmt.Errorf("loop.tick_ms and loop.clock_ms must be positive")
	case c.Scoring.WeightBase < 1:
		return fmt.Errorf("scoring.weight_base must be at least 1, got %v", c.Scoring.WeightBase)
	case c.Scoring.LevelUpBase <= 0:
		return fmt.Errorf("scoring.level_up_base must be positive, got %d", c.Scoring.LevelUpBase)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
